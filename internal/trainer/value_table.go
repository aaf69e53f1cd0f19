package trainer

import "github.com/rocketscienceinc/tictactoe-trainer/internal/entity"

type valueKey struct {
	state string
	move  entity.Move
}

// ValueTable maps a (board state, move) pair to its estimated value.
// Unseen pairs are worth 0. Entries are never removed.
type ValueTable struct {
	values map[valueKey]float64
}

func NewValueTable() *ValueTable {
	return &ValueTable{
		values: make(map[valueKey]float64),
	}
}

func (that *ValueTable) Get(state string, move entity.Move) float64 {
	return that.values[valueKey{state: state, move: move}]
}

// Update moves the stored value towards reward by learningRate.
func (that *ValueTable) Update(state string, move entity.Move, reward, learningRate float64) float64 {
	key := valueKey{state: state, move: move}

	old := that.values[key]
	updated := old + learningRate*(reward-old)
	that.values[key] = updated

	return updated
}

func (that *ValueTable) Len() int {
	return len(that.values)
}
