package entity

import "fmt"

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func MoveFromIndex(index int) Move {
	return Move{Row: index / BoardSize, Col: index % BoardSize}
}

func (that Move) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Index is the row-major cell index of the move.
func (that Move) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
