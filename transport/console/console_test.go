package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *usecase.GameManager {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return usecase.NewGameManager(logger, usecase.WithTrainerOptions(trainer.WithSeed(1)))
}

func TestConsole_Run(t *testing.T) {
	t.Run("Trains, writes the report and plays a demo game", func(t *testing.T) {
		// Given: a console with a report path
		var out bytes.Buffer
		reportPath := filepath.Join(t.TempDir(), "training.html")
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		console := New(logger, newTestManager(), &out, Options{Episodes: "40", ReportPath: reportPath})

		// When: running it
		err := console.Run(context.Background())

		// Then: progress, the result and a finished board are printed
		require.NoError(t, err)
		assert.Contains(t, out.String(), "40/40 games")
		assert.Contains(t, out.String(), "Training completed successfully!")
		assert.Regexp(t, `X wins!|O wins!|Game ended in a draw!`, out.String())

		_, err = os.Stat(reportPath)
		require.NoError(t, err)
	})

	t.Run("Error on malformed episode count", func(t *testing.T) {
		// Given: a console with a non-numeric episode count
		var out bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		console := New(logger, newTestManager(), &out, Options{Episodes: "lots"})

		// When: running it
		err := console.Run(context.Background())

		// Then: the error is reported before anything is trained
		require.ErrorIs(t, err, apperror.ErrInvalidEpisodeCount)
		assert.Empty(t, out.String())
	})

	t.Run("Cancelled context stops training without a demo", func(t *testing.T) {
		var out bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		console := New(logger, newTestManager(), &out, Options{Episodes: "100000000"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := console.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Training stopped.")
		assert.NotContains(t, out.String(), "wins!")
	})
}

func TestConsole_Run_DemoIsGreedy(t *testing.T) {
	// Given: a console that trains for zero games, leaving every move value at zero
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, usecase.WithTrainerOptions(trainer.WithExplorationRate(1), trainer.WithSeed(2)))
	console := New(logger, manager, &out, Options{Episodes: "0"})

	// When: running it
	err := console.Run(context.Background())

	// Then: the demo fills cells in row-major order and X wins on the anti-diagonal
	require.NoError(t, err)
	assert.Contains(t, out.String(), " X | O | X \n---+---+---\n O | X | O \n---+---+---\n X |   |   \nX wins!\n")
}

type fakeWatcher struct {
	reports []trainer.Progress
	err     error
}

func (that *fakeWatcher) Watch(ctx context.Context, observer trainer.Observer) error {
	for _, progress := range that.reports {
		observer.Observe(ctx, progress)
	}

	return that.err
}

func TestConsole_Watch(t *testing.T) {
	t.Run("Prints published progress", func(t *testing.T) {
		// Given: a watcher replaying a stopped run and a finished one
		var out bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		console := New(logger, newTestManager(), &out, Options{})
		watcher := &fakeWatcher{reports: []trainer.Progress{
			{Episode: 10, Total: 50, Percent: 20, WinsX: 5, WinsO: 3, Draws: 2},
			{Episode: 12, Total: 50, Percent: 24, WinsX: 6, WinsO: 4, Draws: 2, Final: true},
			{Episode: 20, Total: 20, Percent: 100, WinsX: 9, WinsO: 7, Draws: 4, Final: true},
		}}

		// When: watching
		err := console.Watch(context.Background(), watcher)

		// Then: every report and the end of each run is printed
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Watching training progress...")
		assert.Contains(t, out.String(), "10/50 games")
		assert.Contains(t, out.String(), "Training stopped.")
		assert.Contains(t, out.String(), "20/20 games")
		assert.Contains(t, out.String(), "Training completed successfully!")
	})

	t.Run("Error from the watcher", func(t *testing.T) {
		var out bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		console := New(logger, newTestManager(), &out, Options{})

		err := console.Watch(context.Background(), &fakeWatcher{err: apperror.ErrProgressNotFound})

		require.ErrorIs(t, err, apperror.ErrProgressNotFound)
	})
}

func TestRenderer_Board(t *testing.T) {
	// Given: a renderer without colours
	var out bytes.Buffer
	renderer := NewRenderer(&out, false)
	board := entity.BoardFromGrid([3][3]entity.Mark{
		{entity.MarkX, entity.EmptyCell, entity.MarkO},
		{entity.EmptyCell, entity.MarkX, entity.EmptyCell},
		{entity.MarkO, entity.EmptyCell, entity.MarkX},
	})

	// When: rendering the board and its result
	renderer.Board(board)
	renderer.Result(board)

	// Then: the grid is drawn row by row
	expected := " X |   | O \n" +
		"---+---+---\n" +
		"   | X |   \n" +
		"---+---+---\n" +
		" O |   | X \n" +
		"X wins!\n"
	assert.Equal(t, expected, out.String())
}
