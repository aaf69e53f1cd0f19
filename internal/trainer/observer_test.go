package trainer

import (
	"context"
	"testing"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelObserver(t *testing.T) {
	t.Run("Keeps only the latest unread report", func(t *testing.T) {
		// Given: an observer nobody reads from
		observer := NewChannelObserver()

		// When: several reports are observed
		for episode := 10; episode <= 50; episode += 10 {
			observer.Observe(context.Background(), Progress{Episode: episode})
		}
		observer.Observe(context.Background(), Progress{Episode: 50, Final: true})
		observer.Close()

		// Then: the reader sees only the final report
		var received []Progress
		for progress := range observer.Events() {
			received = append(received, progress)
		}

		require.Len(t, received, 1)
		assert.Equal(t, Progress{Episode: 50, Final: true}, received[0])
	})

	t.Run("Delivers the final report of a training run", func(t *testing.T) {
		// Given: a reader draining the observer while training runs
		observer := NewChannelObserver()
		trainer := New(WithSeed(2))

		done := make(chan Progress)
		go func() {
			var last Progress
			for progress := range observer.Events() {
				last = progress
			}
			done <- last
		}()

		// When: training for 100 episodes
		completed, err := trainer.Train(context.Background(), NewSession(100), observer)
		observer.Close()

		// Then: the last report received is the final one
		require.NoError(t, err)
		require.True(t, completed)

		last := <-done
		assert.True(t, last.Final)
		assert.Equal(t, 100, last.Episode)
		assert.Equal(t, 100, last.WinsX+last.WinsO+last.Draws)
	})
}

func TestValueTable(t *testing.T) {
	// Given: an empty table
	table := NewValueTable()

	// Then: unseen pairs are worth zero
	assert.Zero(t, table.Get("---------", entity.MoveFromIndex(4)))
	assert.Equal(t, 0, table.Len())

	// When: a value is updated
	updated := table.Update("---------", entity.MoveFromIndex(4), 1.0, 0.5)

	// Then: it moves halfway to the reward and only that pair is stored
	assert.InDelta(t, 0.5, updated, 1e-9)
	assert.InDelta(t, 0.5, table.Get("---------", entity.MoveFromIndex(4)), 1e-9)
	assert.Zero(t, table.Get("---------", entity.MoveFromIndex(5)))
	assert.Equal(t, 1, table.Len())
}
