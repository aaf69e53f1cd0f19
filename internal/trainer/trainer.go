package trainer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
	"golang.org/x/exp/rand"
)

// Trainer learns move values for tic-tac-toe by playing against itself.
// A Trainer is not safe for concurrent use.
type Trainer struct {
	logger *slog.Logger
	values *ValueTable
	rnd    *rand.Rand

	learningRate    float64
	explorationRate float64
	reportEvery     int
}

func New(opts ...Option) *Trainer {
	trainer := &Trainer{
		logger:          slog.New(slog.NewJSONHandler(io.Discard, nil)),
		values:          NewValueTable(),
		learningRate:    DefaultLearningRate,
		explorationRate: DefaultExplorationRate,
		reportEvery:     DefaultReportEvery,
	}

	for _, opt := range opts {
		opt(trainer)
	}

	if trainer.rnd == nil {
		trainer.rnd = rand.New(rand.NewSource(defaultSeed()))
	}

	return trainer
}

func (that *Trainer) Values() *ValueTable {
	return that.values
}

// SelectMove picks a random legal move with probability equal to the
// exploration rate, and otherwise the first legal move with the highest value.
// ok is false when the board has no legal moves.
func (that *Trainer) SelectMove(board *entity.Board) (entity.Move, bool) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return entity.Move{}, false
	}

	if that.rnd.Float64() < that.explorationRate {
		return moves[that.rnd.Intn(len(moves))], true
	}

	return that.BestMove(board)
}

// BestMove is SelectMove without exploration.
func (that *Trainer) BestMove(board *entity.Board) (entity.Move, bool) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return entity.Move{}, false
	}

	state := board.Key()

	best := moves[0]
	bestValue := math.Inf(-1)

	for _, move := range moves {
		if value := that.values.Get(state, move); value > bestValue {
			best = move
			bestValue = value
		}
	}

	return best, true
}

// RunEpisode plays one self-play game. ctx is checked before every move; when
// it is cancelled the unfinished episode is returned with ctx.Err().
func (that *Trainer) RunEpisode(ctx context.Context) (*Episode, error) {
	return that.runEpisode(ctx, 0, nil)
}

// runEpisode sends every move to replayers, tagged with the episode number.
func (that *Trainer) runEpisode(ctx context.Context, number int, replayers []MoveObserver) (*Episode, error) {
	episode := &Episode{
		Board: entity.NewBoard(),
	}

	for !episode.Board.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return episode, err
		}

		mover := episode.Board.CurrentPlayer()
		state := episode.Board.Key()

		move, ok := that.SelectMove(episode.Board)
		if !ok {
			break
		}

		episode.History = append(episode.History, Step{State: state, Move: move, Mover: mover})

		if err := episode.Board.ApplyMove(move); err != nil {
			return episode, fmt.Errorf("self-play move %s: %w", move, err)
		}

		if len(replayers) == 0 {
			continue
		}

		event := MoveEvent{
			Episode:  number,
			Step:     len(episode.History),
			Grid:     episode.Board.Grid(),
			Move:     move,
			Mover:    mover,
			Terminal: episode.Board.IsTerminal(),
			Winner:   episode.Board.Winner(),
		}
		for _, replayer := range replayers {
			replayer.ObserveMove(ctx, event)
		}
	}

	return episode, nil
}

// AssignRewards updates the value of every recorded step towards its reward.
func (that *Trainer) AssignRewards(history []Step, outcome int) {
	for i, step := range history {
		reward := Reward(i, len(history), step.Mover, outcome)
		that.values.Update(step.State, step.Move, reward, that.learningRate)
	}
}

// Train plays episodes until the session target is reached or ctx is
// cancelled. Progress is reported to observers every reportEvery episodes and
// once more when the run ends. Observers that are also MoveObservers see the
// moves of the first game of every reportEvery games. It returns whether the
// run completed.
func (that *Trainer) Train(ctx context.Context, session *Session, observers ...Observer) (bool, error) {
	log := that.logger.With("method", "Train")

	if session.Episodes < 0 {
		return false, fmt.Errorf("%w: %d is negative", apperror.ErrInvalidEpisodeCount, session.Episodes)
	}

	defer func() {
		report(ctx, observers, session.progress(true))
	}()

	replayers := moveObservers(observers)

	for !session.done() {
		if ctx.Err() != nil {
			log.Info("training stopped", "played", session.Played, "episodes", session.Episodes)
			return false, nil
		}

		var episodeReplayers []MoveObserver
		if session.Played%that.reportEvery == 0 {
			episodeReplayers = replayers
		}

		episode, err := that.runEpisode(ctx, session.Played+1, episodeReplayers)
		if ctx.Err() != nil {
			log.Info("training stopped", "played", session.Played, "episodes", session.Episodes)
			return false, nil
		}

		if err != nil {
			return false, fmt.Errorf("episode %d: %w", session.Played+1, err)
		}

		outcome, ok := episode.Outcome()
		if !ok {
			return false, fmt.Errorf("episode %d: %w", session.Played+1, apperror.ErrNoLegalMoves)
		}

		session.record(outcome)
		that.AssignRewards(episode.History, outcome)

		if session.Played%that.reportEvery == 0 {
			report(ctx, observers, session.progress(false))
		}
	}

	session.Completed = true
	log.Debug("training completed", "episodes", session.Episodes, "values", that.values.Len())

	return true, nil
}

func report(ctx context.Context, observers []Observer, progress Progress) {
	for _, observer := range observers {
		observer.Observe(ctx, progress)
	}
}
