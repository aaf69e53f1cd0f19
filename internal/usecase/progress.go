package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
)

// progressPublisher forwards training progress to the progress repository.
// Storage failures are logged and never interrupt training.
type progressPublisher struct {
	logger *slog.Logger
	repo   progressRepo
}

func newProgressPublisher(logger *slog.Logger, repo progressRepo) *progressPublisher {
	return &progressPublisher{
		logger: logger.With("component", "progressPublisher"),
		repo:   repo,
	}
}

func (that *progressPublisher) Observe(ctx context.Context, progress trainer.Progress) {
	if progress.Final {
		ctx = context.WithoutCancel(ctx)
	}

	if err := that.repo.Save(ctx, progress); err != nil {
		that.logger.Error("failed to publish progress", "episode", progress.Episode, "error", err)
	}
}

type progressSource interface {
	GetLatest(ctx context.Context) (*trainer.Progress, error)
	Subscribe(ctx context.Context) (<-chan trainer.Progress, error)
}

// ProgressWatcher follows training progress published by another process.
type ProgressWatcher struct {
	logger *slog.Logger
	source progressSource
}

func NewProgressWatcher(logger *slog.Logger, source progressSource) *ProgressWatcher {
	return &ProgressWatcher{
		logger: logger.With("component", "progressWatcher"),
		source: source,
	}
}

// Watch hands the stored progress, if any, and then every published report to
// observer until ctx is cancelled.
func (that *ProgressWatcher) Watch(ctx context.Context, observer trainer.Observer) error {
	log := that.logger.With("method", "Watch")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates, err := that.source.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to progress: %w", err)
	}

	latest, err := that.source.GetLatest(ctx)
	switch {
	case errors.Is(err, apperror.ErrProgressNotFound):
		log.Info("no training progress stored yet")
	case err != nil:
		return fmt.Errorf("failed to get latest progress: %w", err)
	default:
		observer.Observe(ctx, *latest)
	}

	for progress := range updates {
		observer.Observe(ctx, progress)
	}

	return nil
}
