package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
	"github.com/rocketscienceinc/tictactoe-trainer/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepository_Save(t *testing.T) {
	ctx, st := suite.NewRedis(t)

	progressRepo := NewProgressRepository(st.Redis)

	// Given: a progress snapshot
	progress := trainer.Progress{Episode: 10, Total: 100, Percent: 10, WinsX: 6, WinsO: 3, Draws: 1}

	// When: Save is called
	err := progressRepo.Save(ctx, progress)

	// Then: no error should be returned, and the snapshot is stored
	require.NoError(t, err)
}

func TestProgressRepository_GetLatest(t *testing.T) {
	t.Run("GetLatest_Success", func(t *testing.T) {
		ctx, st := suite.NewRedis(t)

		progressRepo := NewProgressRepository(st.Redis)

		// Given: two snapshots saved one after another
		require.NoError(t, progressRepo.Save(ctx, trainer.Progress{Episode: 10, Total: 20, Percent: 50, WinsX: 5, WinsO: 4, Draws: 1}))
		latest := trainer.Progress{Episode: 20, Total: 20, Percent: 100, WinsX: 9, WinsO: 8, Draws: 3, Final: true}
		require.NoError(t, progressRepo.Save(ctx, latest))

		// When: GetLatest is called
		retrieved, err := progressRepo.GetLatest(ctx)

		// Then: the newest snapshot is returned
		require.NoError(t, err)
		assert.Equal(t, latest, *retrieved)
	})

	t.Run("GetLatest_NotFound", func(t *testing.T) {
		ctx, st := suite.NewRedis(t)

		progressRepo := NewProgressRepository(st.Redis)

		// When: GetLatest is called before anything was saved
		retrieved, err := progressRepo.GetLatest(ctx)

		// Then: an ErrProgressNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, apperror.ErrProgressNotFound, err)
		assert.Nil(t, retrieved)
	})
}

func TestProgressRepository_Subscribe(t *testing.T) {
	ctx, st := suite.NewRedis(t)

	progressRepo := NewProgressRepository(st.Redis)

	// Given: a subscriber listening for progress
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates, err := progressRepo.Subscribe(subCtx)
	require.NoError(t, err)

	// When: a malformed message and a snapshot are published
	require.NoError(t, st.Redis.Publish(ctx, progressChannel, "not json").Err())
	require.NoError(t, progressRepo.Save(ctx, trainer.Progress{Episode: 30, Total: 30, Percent: 100, Final: true}))

	// Then: the subscriber receives only the snapshot
	select {
	case progress := <-updates:
		assert.Equal(t, trainer.Progress{Episode: 30, Total: 30, Percent: 100, Final: true}, progress)
	case <-time.After(10 * time.Second):
		t.Fatal("no progress published")
	}

	// When: the subscription is cancelled
	cancel()

	// Then: the channel is closed
	select {
	case _, ok := <-updates:
		assert.False(t, ok)
	case <-time.After(10 * time.Second):
		t.Fatal("subscription was not closed")
	}
}
