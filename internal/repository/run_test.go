package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trainer/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRepository_Save(t *testing.T) {
	ctx, st := suite.NewSQLite(t)
	runRepo := NewRunRepository(st.SQLite.Connection)

	// Given: a finished run
	run := &entity.Run{
		StartedAt:  time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2024, 10, 1, 12, 0, 5, 0, time.UTC),
		Episodes:   100,
		Played:     100,
		WinsX:      60,
		WinsO:      25,
		Draws:      15,
		Completed:  true,
	}

	// When: Save is called
	err := runRepo.Save(ctx, run)

	// Then: the run is stored and gets an ID
	require.NoError(t, err)
	assert.Positive(t, run.ID)
}

func TestRunRepository_List(t *testing.T) {
	t.Run("List_NewestFirst", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		runRepo := NewRunRepository(st.SQLite.Connection)

		// Given: three stored runs
		started := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
		for i := range 3 {
			run := &entity.Run{
				StartedAt:  started.Add(time.Duration(i) * time.Minute),
				FinishedAt: started.Add(time.Duration(i)*time.Minute + time.Second),
				Episodes:   10 * (i + 1),
				Played:     10 * (i + 1),
				WinsX:      i,
				Completed:  i != 1,
			}
			require.NoError(t, runRepo.Save(ctx, run))
		}

		// When: listing two runs
		runs, err := runRepo.List(ctx, 2)

		// Then: the two newest runs come back, newest first
		require.NoError(t, err)
		require.Len(t, runs, 2)

		assert.Equal(t, 30, runs[0].Episodes)
		assert.Equal(t, 2, runs[0].WinsX)
		assert.True(t, runs[0].Completed)
		assert.True(t, started.Add(2*time.Minute).Equal(runs[0].StartedAt))

		assert.Equal(t, 20, runs[1].Episodes)
		assert.False(t, runs[1].Completed)
	})

	t.Run("List_Empty", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)
		runRepo := NewRunRepository(st.SQLite.Connection)

		// When: listing with nothing stored
		runs, err := runRepo.List(ctx, 10)

		// Then: no runs and no error
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
