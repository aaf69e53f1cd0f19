package trainer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
)

type moveRecorder struct {
	progress []Progress
	moves    []MoveEvent
}

func (that *moveRecorder) Observe(_ context.Context, progress Progress) {
	that.progress = append(that.progress, progress)
}

func (that *moveRecorder) ObserveMove(_ context.Context, event MoveEvent) {
	that.moves = append(that.moves, event)
}

func countMarks(grid [entity.BoardSize][entity.BoardSize]entity.Mark) int {
	count := 0
	for _, row := range grid {
		for _, mark := range row {
			if mark != entity.EmptyCell {
				count++
			}
		}
	}

	return count
}

func TestTrain_Replay(t *testing.T) {
	t.Run("Moves of the first game of every ten are sent", func(t *testing.T) {
		// Given: an observer that also watches moves
		recorder := &moveRecorder{}
		trainer := New(WithSeed(11))

		// When: training for 25 episodes
		completed, err := trainer.Train(context.Background(), NewSession(25), recorder)

		// Then: only games 1, 11 and 21 were replayed
		require.NoError(t, err)
		require.True(t, completed)

		episodes := map[int][]MoveEvent{}
		for _, event := range recorder.moves {
			episodes[event.Episode] = append(episodes[event.Episode], event)
		}

		require.Len(t, episodes, 3)
		for _, number := range []int{1, 11, 21} {
			moves := episodes[number]
			require.NotEmpty(t, moves, "episode %d", number)

			// Then: each game is complete and alternates from X
			for i, event := range moves {
				assert.Equal(t, i+1, event.Step)
				assert.Equal(t, i+1, countMarks(event.Grid))
				assert.Equal(t, event.Mover, event.Grid[event.Move.Row][event.Move.Col])

				expectedMover := entity.MarkX
				if i%2 == 1 {
					expectedMover = entity.MarkO
				}
				assert.Equal(t, expectedMover, event.Mover)
				assert.Equal(t, i == len(moves)-1, event.Terminal)
			}
		}

		// Then: progress reports are unchanged
		assert.Len(t, recorder.progress, 3)
	})

	t.Run("Plain observers receive no moves", func(t *testing.T) {
		var reports int
		observer := ObserverFunc(func(context.Context, Progress) { reports++ })

		completed, err := New(WithSeed(12)).Train(context.Background(), NewSession(10), observer)

		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, 2, reports)
	})

	t.Run("Stopped game is not replayed", func(t *testing.T) {
		// Given: a context cancelled by the first replayed move
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		replays := NewReplayChannel()
		stopper := &stopOnMove{ReplayChannel: replays, cancel: cancel}

		// When: training is started
		completed, err := New(WithSeed(13)).Train(ctx, NewSession(10), stopper)
		replays.Close()

		// Then: the unfinished game never reaches the reader
		require.NoError(t, err)
		assert.False(t, completed)

		_, ok := <-replays.Replays()
		assert.False(t, ok)
	})
}

type stopOnMove struct {
	*ReplayChannel
	cancel context.CancelFunc
}

func (that *stopOnMove) ObserveMove(ctx context.Context, event MoveEvent) {
	that.ReplayChannel.ObserveMove(ctx, event)
	that.cancel()
}

func TestReplayChannel(t *testing.T) {
	t.Run("Keeps only the latest unread game", func(t *testing.T) {
		// Given: a replay channel nobody reads from, sampling every game
		replays := NewReplayChannel()
		trainer := New(WithSeed(14), WithReportEvery(1))

		// When: training for 5 episodes
		completed, err := trainer.Train(context.Background(), NewSession(5), replays)
		replays.Close()

		// Then: only the last game is waiting, complete and ending on a terminal move
		require.NoError(t, err)
		require.True(t, completed)

		var received []Replay
		for replay := range replays.Replays() {
			received = append(received, replay)
		}

		require.Len(t, received, 1)
		replay := received[0]
		assert.Equal(t, 5, replay.Episode)
		require.GreaterOrEqual(t, len(replay.Moves), 5)
		require.LessOrEqual(t, len(replay.Moves), 9)
		assert.True(t, replay.Moves[len(replay.Moves)-1].Terminal)
		assert.Equal(t, 1, replay.Moves[0].Step)
	})

	t.Run("Starts a new game on the first step", func(t *testing.T) {
		replays := NewReplayChannel()
		ctx := context.Background()

		// Given: an unfinished game followed by a finished one with the same number
		replays.ObserveMove(ctx, MoveEvent{Episode: 1, Step: 1, Move: entity.Move{Row: 0, Col: 0}})
		replays.ObserveMove(ctx, MoveEvent{Episode: 1, Step: 1, Move: entity.Move{Row: 1, Col: 1}})
		replays.ObserveMove(ctx, MoveEvent{Episode: 1, Step: 2, Move: entity.Move{Row: 2, Col: 2}, Terminal: true})
		replays.Close()

		// Then: only the moves of the second game are delivered
		replay, ok := <-replays.Replays()
		require.True(t, ok)
		require.Len(t, replay.Moves, 2)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, replay.Moves[0].Move)
	})
}
