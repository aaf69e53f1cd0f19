package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
)

type RunRepository interface {
	Save(ctx context.Context, run *entity.Run) error
	List(ctx context.Context, limit int) ([]*entity.Run, error)
}

type runRepository struct {
	conn *sql.DB
}

func NewRunRepository(conn *sql.DB) RunRepository {
	return &runRepository{
		conn: conn,
	}
}

// Save inserts the run and sets its ID.
func (that *runRepository) Save(ctx context.Context, run *entity.Run) error {
	query := `INSERT INTO runs (started_at, finished_at, episodes, played, wins_x, wins_o, draws, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := that.conn.ExecContext(ctx, query,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
		run.Episodes,
		run.Played,
		run.WinsX,
		run.WinsO,
		run.Draws,
		run.Completed,
	)
	if err != nil {
		return fmt.Errorf("can't save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("can't get run id: %w", err)
	}

	run.ID = id

	return nil
}

// List returns up to limit runs, newest first.
func (that *runRepository) List(ctx context.Context, limit int) ([]*entity.Run, error) {
	query := `SELECT id, started_at, finished_at, episodes, played, wins_x, wins_o, draws, completed
		FROM runs ORDER BY id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list runs: %w", err)
	}
	defer rows.Close()

	var runs []*entity.Run
	for rows.Next() {
		var (
			run                   entity.Run
			startedAt, finishedAt string
		)

		if err = rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Episodes, &run.Played,
			&run.WinsX, &run.WinsO, &run.Draws, &run.Completed); err != nil {
			return nil, fmt.Errorf("can't scan run: %w", err)
		}

		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("can't parse run start: %w", err)
		}

		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finishedAt); err != nil {
			return nil, fmt.Errorf("can't parse run finish: %w", err)
		}

		runs = append(runs, &run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read runs: %w", err)
	}

	return runs, nil
}
