package trainer

import "github.com/rocketscienceinc/tictactoe-trainer/internal/entity"

const (
	drawReward = 0.5
	lossReward = -1.0

	winReward      = 1.0
	winRewardDecay = 0.9
)

// Step is one recorded move of a self-play episode.
type Step struct {
	State string
	Move  entity.Move
	Mover entity.Mark
}

type Episode struct {
	History []Step
	Board   *entity.Board
}

// Outcome is +1, -1 or 0 for an X win, an O win or a draw. ok is false when the
// episode stopped before reaching a terminal board.
func (that *Episode) Outcome() (int, bool) {
	return that.Board.OutcomeValue()
}

// Reward returns the reward for the step at index in a history of length steps.
// Winning moves closer to the end of the game are rewarded more, reaching 1.0
// for the final move.
func Reward(index, steps int, mover entity.Mark, outcome int) float64 {
	if outcome == entity.OutcomeDraw {
		return drawReward
	}

	if winnerOf(outcome) != mover {
		return lossReward
	}

	stepsFromEnd := steps - index - 1

	return winReward - winRewardDecay*float64(stepsFromEnd)/float64(steps)
}

func winnerOf(outcome int) entity.Mark {
	switch outcome {
	case entity.OutcomeXWins:
		return entity.MarkX
	case entity.OutcomeOWins:
		return entity.MarkO
	default:
		return entity.EmptyCell
	}
}
