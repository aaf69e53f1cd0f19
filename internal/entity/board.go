package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
)

const BoardSize = 3

const (
	OutcomeXWins = 1
	OutcomeOWins = -1
	OutcomeDraw  = 0
)

// WinCombos lists the winning lines in check order: rows, columns, then diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 tic-tac-toe grid. Whose turn it is is never stored: it is
// derived from the number of marks of each kind on the grid.
type Board struct {
	cells    [BoardSize * BoardSize]Mark
	terminal bool
	winner   Mark
}

func NewBoard() *Board {
	board := &Board{}
	board.Reset()

	return board
}

// BoardFromGrid builds a board from an arbitrary grid and evaluates its state.
// The grid is taken as-is, so it may break the alternating-turn invariant.
func BoardFromGrid(grid [BoardSize][BoardSize]Mark) *Board {
	board := &Board{}
	for row := range BoardSize {
		for col := range BoardSize {
			board.cells[row*BoardSize+col] = grid[row][col]
		}
	}

	board.updateGameState()

	return board
}

func (that *Board) Reset() {
	for i := range that.cells {
		that.cells[i] = EmptyCell
	}

	that.terminal = false
	that.winner = EmptyCell
}

// LegalMoves returns the empty cells in row-major order.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, len(that.cells))
	for i, cell := range that.cells {
		if cell == EmptyCell {
			moves = append(moves, MoveFromIndex(i))
		}
	}

	return moves
}

func (that *Board) CurrentPlayer() Mark {
	var xCount, oCount int
	for _, cell := range that.cells {
		switch cell {
		case MarkX:
			xCount++
		case MarkO:
			oCount++
		}
	}

	if xCount > oCount {
		return MarkO
	}

	return MarkX
}

// ApplyMove places the current player's mark. The grid is left untouched when
// the move is rejected.
func (that *Board) ApplyMove(move Move) error {
	if !move.InBounds() {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrOutOfBounds, move)
	}

	if that.cells[move.Index()] != EmptyCell {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, move)
	}

	that.cells[move.Index()] = that.CurrentPlayer()
	that.updateGameState()

	return nil
}

func (that *Board) IsTerminal() bool {
	return that.terminal
}

// Winner returns the winning mark, or EmptyCell for a draw or an unfinished game.
func (that *Board) Winner() Mark {
	return that.winner
}

// OutcomeValue reports +1 for an X win, -1 for an O win and 0 for a draw.
// ok is false while the game is still being played.
func (that *Board) OutcomeValue() (value int, ok bool) {
	if !that.terminal {
		return 0, false
	}

	switch that.winner {
	case MarkX:
		return OutcomeXWins, true
	case MarkO:
		return OutcomeOWins, true
	default:
		return OutcomeDraw, true
	}
}

func (that *Board) At(row, col int) Mark {
	return that.cells[row*BoardSize+col]
}

func (that *Board) Grid() [BoardSize][BoardSize]Mark {
	var grid [BoardSize][BoardSize]Mark
	for i, cell := range that.cells {
		grid[i/BoardSize][i%BoardSize] = cell
	}

	return grid
}

// Key serializes the grid row by row, one character per cell.
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(that.cells))

	for _, cell := range that.cells {
		sb.WriteString(cell.Symbol())
	}

	return sb.String()
}

func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		for col := range BoardSize {
			sb.WriteString(that.At(row, col).Symbol())
		}

		if row < BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (that *Board) updateGameState() {
	if winner := that.determineWinner(); winner != EmptyCell {
		that.terminal = true
		that.winner = winner

		return
	}

	that.winner = EmptyCell
	that.terminal = len(that.LegalMoves()) == 0
}

func (that *Board) determineWinner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that.cells[combo[0]], that.cells[combo[1]], that.cells[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}
