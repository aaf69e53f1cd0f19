package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/report"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
)

type gameManager interface {
	StartTraining(ctx context.Context, episodes int, observers ...trainer.Observer) (<-chan trainer.Progress, error)
	DemoGame() (*entity.Board, error)
}

type progressWatcher interface {
	Watch(ctx context.Context, observer trainer.Observer) error
}

type Options struct {
	Episodes   string
	ReportPath string
	Colors     bool
}

type Console struct {
	logger   *slog.Logger
	manager  gameManager
	renderer *Renderer
	options  Options
}

func New(logger *slog.Logger, manager gameManager, out io.Writer, options Options) *Console {
	return &Console{
		logger:   logger.With("component", "console"),
		manager:  manager,
		renderer: NewRenderer(out, options.Colors),
		options:  options,
	}
}

// Run trains the AI without a user interface and then shows one game of the
// trained AI playing both sides. It returns early when ctx is cancelled.
func (that *Console) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	episodes, err := trainer.ParseEpisodeCount(that.options.Episodes)
	if err != nil {
		return fmt.Errorf("failed to read episode count: %w", err)
	}

	recorder := report.NewChartRecorder()

	events, err := that.manager.StartTraining(ctx, episodes, recorder)
	if err != nil {
		return fmt.Errorf("failed to start training: %w", err)
	}

	var last trainer.Progress
	for progress := range events {
		that.renderer.Progress(progress)
		last = progress
	}

	that.renderer.Line("%s", finishedText(last))

	if that.options.ReportPath != "" {
		if err = recorder.WriteFile(that.options.ReportPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		log.Info("training report written", "path", that.options.ReportPath)
	}

	if ctx.Err() != nil {
		return nil
	}

	return that.demo()
}

// demo shows one game of the trained AI playing both sides greedily.
func (that *Console) demo() error {
	board, err := that.manager.DemoGame()
	if err != nil {
		return fmt.Errorf("failed to play demo game: %w", err)
	}

	that.renderer.Line("")
	that.renderer.Board(board)
	that.renderer.Result(board)

	return nil
}

// Watch prints progress of training runs published by another process until
// ctx is cancelled.
func (that *Console) Watch(ctx context.Context, watcher progressWatcher) error {
	log := that.logger.With("method", "Watch")

	that.renderer.Line("Watching training progress...")

	err := watcher.Watch(ctx, trainer.ObserverFunc(func(_ context.Context, progress trainer.Progress) {
		that.renderer.Progress(progress)

		if progress.Final {
			that.renderer.Line("%s", finishedText(progress))
		}
	}))
	if err != nil {
		return fmt.Errorf("failed to watch progress: %w", err)
	}

	log.Info("stopped watching progress")

	return nil
}

func finishedText(progress trainer.Progress) string {
	if progress.Episode < progress.Total {
		return "Training stopped."
	}

	return "Training completed successfully!"
}
