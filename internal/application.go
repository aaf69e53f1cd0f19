package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/config"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/repository"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-trainer/transport/console"
	"github.com/rocketscienceinc/tictactoe-trainer/transport/tui"
)

const recentRunsLimit = 5

var ErrWatchWithoutRedis = errors.New("watch mode needs redis enabled")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	opts := []usecase.Option{
		usecase.WithTrainerOptions(
			trainer.WithLearningRate(conf.Trainer.LearningRate),
			trainer.WithExplorationRate(conf.Trainer.ExplorationRate),
			trainer.WithReportEvery(conf.Trainer.ReportEvery),
		),
	}

	var progressRepo repository.ProgressRepository

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		progressRepo = repository.NewProgressRepository(redisStorage)
		opts = append(opts, usecase.WithProgressRepo(progressRepo))
	}

	if conf.SQLiteStoragePath != "" {
		sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
		if err != nil {
			return fmt.Errorf("could not open sqlite storage: %w", err)
		}

		defer func() {
			if err = sqliteStorage.Close(); err != nil {
				log.Error("could not close sqlite storage", "error", err)
			}
		}()

		if err = sqliteStorage.Init(ctx); err != nil {
			return fmt.Errorf("could not init sqlite storage: %w", err)
		}

		runRepo := repository.NewRunRepository(sqliteStorage.Connection)
		logRecentRuns(ctx, log, runRepo)

		opts = append(opts, usecase.WithRunRepo(runRepo))
	}

	manager := usecase.NewGameManager(logger, opts...)

	switch conf.Interface {
	case config.InterfaceConsole:
		log.Info("Starting console training", "episodes", conf.Trainer.Episodes)

		return console.New(logger, manager, os.Stdout, console.Options{
			Episodes:   conf.Trainer.Episodes,
			ReportPath: conf.ReportPath,
			Colors:     true,
		}).Run(ctx)

	case config.InterfaceWatch:
		if progressRepo == nil {
			return ErrWatchWithoutRedis
		}

		log.Info("Watching training progress", "redis", conf.Redis.GetRedisAddr())

		return console.New(logger, manager, os.Stdout, console.Options{Colors: true}).
			Watch(ctx, usecase.NewProgressWatcher(logger, progressRepo))

	case config.InterfaceTUI:
		return tui.Run(ctx, logger, manager, conf.Trainer.Episodes, conf.TUI.ReplayDelay)

	default:
		return fmt.Errorf("unknown interface %q", conf.Interface)
	}
}

func logRecentRuns(ctx context.Context, log *slog.Logger, repo repository.RunRepository) {
	runs, err := repo.List(ctx, recentRunsLimit)
	if err != nil {
		log.Error("could not list previous training runs", "error", err)
		return
	}

	for _, run := range runs {
		log.Info("Previous training run",
			"id", run.ID,
			"finished_at", run.FinishedAt,
			"played", run.Played,
			"episodes", run.Episodes,
			"completed", run.Completed,
		)
	}
}
