package trainer

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
)

// MoveEvent is one move of a replayed self-play game. Grid is the board after
// the move.
type MoveEvent struct {
	Episode  int
	Step     int
	Grid     [entity.BoardSize][entity.BoardSize]entity.Mark
	Move     entity.Move
	Mover    entity.Mark
	Terminal bool
	Winner   entity.Mark
}

// MoveObserver is an optional extension of Observer. Observers passed to Train
// that implement it receive every move of the first game of each report
// interval (games 1, 11, 21, ... with the default interval). ObserveMove runs
// on the training goroutine and must not block.
type MoveObserver interface {
	ObserveMove(ctx context.Context, event MoveEvent)
}

// Replay is a complete self-play game, move by move.
type Replay struct {
	Episode int
	Moves   []MoveEvent
}

// ReplayChannel collects moves into whole games and hands finished games to a
// reader through a single-slot channel. An unread game is replaced by the next
// one, so training never waits for the reader. Games cut short by a stop are
// not delivered.
type ReplayChannel struct {
	replays chan Replay
	current Replay
}

func NewReplayChannel() *ReplayChannel {
	return &ReplayChannel{
		replays: make(chan Replay, 1),
	}
}

func (that *ReplayChannel) Replays() <-chan Replay {
	return that.replays
}

// Observe ignores progress; ReplayChannel is passed to Train as an Observer so
// that it receives moves.
func (that *ReplayChannel) Observe(context.Context, Progress) {}

// ObserveMove must only be called from one goroutine.
func (that *ReplayChannel) ObserveMove(_ context.Context, event MoveEvent) {
	if event.Episode != that.current.Episode || event.Step == 1 {
		that.current = Replay{Episode: event.Episode}
	}

	that.current.Moves = append(that.current.Moves, event)

	if !event.Terminal {
		return
	}

	replay := that.current
	that.current = Replay{}

	for {
		select {
		case that.replays <- replay:
			return
		default:
		}

		// drop the stale game
		select {
		case <-that.replays:
		default:
		}
	}
}

func (that *ReplayChannel) Close() {
	close(that.replays)
}

func moveObservers(observers []Observer) []MoveObserver {
	var result []MoveObserver

	for _, observer := range observers {
		if moveObserver, ok := observer.(MoveObserver); ok {
			result = append(result, moveObserver)
		}
	}

	return result
}
