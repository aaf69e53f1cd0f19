package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Run blocks until the user quits or ctx is cancelled. Training games are
// replayed on the board with replayDelay between moves.
func Run(ctx context.Context, logger *slog.Logger, manager gameManager, episodes string, replayDelay time.Duration) error {
	log := logger.With("component", "tui")

	program := tea.NewProgram(NewModel(ctx, manager, episodes, replayDelay), tea.WithContext(ctx), tea.WithAltScreen())

	log.Info("starting interactive session")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			log.Info("interactive session cancelled")
			return nil
		}

		return fmt.Errorf("failed to run tui: %w", err)
	}

	manager.StopTraining()

	return nil
}
