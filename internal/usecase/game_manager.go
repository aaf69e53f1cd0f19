package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
)

type progressRepo interface {
	Save(ctx context.Context, progress trainer.Progress) error
}

type runRepo interface {
	Save(ctx context.Context, run *entity.Run) error
}

type aiPlayer interface {
	SelectMove(board *entity.Board) (entity.Move, bool)
	BestMove(board *entity.Board) (entity.Move, bool)
}

type Option func(*GameManager)

// WithProgressRepo publishes every progress report of every run.
func WithProgressRepo(repo progressRepo) Option {
	return func(m *GameManager) {
		m.progressRepo = repo
	}
}

// WithRunRepo records a summary of every finished run.
func WithRunRepo(repo runRepo) Option {
	return func(m *GameManager) {
		m.runRepo = repo
	}
}

// WithTrainerOptions configures the trainers built for play and for each run.
func WithTrainerOptions(opts ...trainer.Option) Option {
	return func(m *GameManager) {
		m.trainerOpts = append(m.trainerOpts, opts...)
	}
}

// GameManager hosts one interactive game against the AI and at most one
// background training run. The AI is replaced by the freshly trained one
// when a run ends.
type GameManager struct {
	logger *slog.Logger

	progressRepo progressRepo
	runRepo      runRepo
	trainerOpts  []trainer.Option

	mu       sync.Mutex
	board    *entity.Board
	ai       aiPlayer
	training bool
	stop     context.CancelFunc
}

func NewGameManager(logger *slog.Logger, opts ...Option) *GameManager {
	manager := &GameManager{
		logger: logger,
		board:  entity.NewBoard(),
	}

	for _, opt := range opts {
		opt(manager)
	}

	manager.ai = manager.newTrainer()

	return manager
}

func (that *GameManager) Board() *entity.Board {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.Clone()
}

func (that *GameManager) CurrentPlayer() entity.Mark {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.CurrentPlayer()
}

func (that *GameManager) IsTerminal() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.IsTerminal()
}

// Winner is empty while the game runs and after a draw.
func (that *GameManager) Winner() entity.Mark {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.board.Winner()
}

func (that *GameManager) IsTraining() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.training
}

func (that *GameManager) NewGame() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.training {
		return apperror.ErrTrainingInProgress
	}

	that.board.Reset()

	return nil
}

// MakeTurn plays the human move and, unless that ended the game, the AI reply.
func (that *GameManager) MakeTurn(move entity.Move) (*entity.Board, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.training {
		return nil, apperror.ErrTrainingInProgress
	}

	if that.board.IsTerminal() {
		return that.board.Clone(), apperror.ErrGameFinished
	}

	if err := that.board.ApplyMove(move); err != nil {
		return that.board.Clone(), fmt.Errorf("failed make turn: %w", err)
	}

	if !that.board.IsTerminal() {
		if err := that.aiTurn(); err != nil {
			return that.board.Clone(), fmt.Errorf("ai failed make turn: %w", err)
		}
	}

	return that.board.Clone(), nil
}

// AIMoveFirst starts a new game with the AI playing X.
func (that *GameManager) AIMoveFirst() (*entity.Board, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.training {
		return nil, apperror.ErrTrainingInProgress
	}

	that.board.Reset()

	if err := that.aiTurn(); err != nil {
		return that.board.Clone(), fmt.Errorf("ai failed make first turn: %w", err)
	}

	return that.board.Clone(), nil
}

// SuggestMove returns the AI's highest valued move for the current board.
func (that *GameManager) SuggestMove() (entity.Move, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.training {
		return entity.Move{}, apperror.ErrTrainingInProgress
	}

	if that.board.IsTerminal() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	move, ok := that.ai.BestMove(that.board)
	if !ok {
		return entity.Move{}, apperror.ErrNoLegalMoves
	}

	return move, nil
}

// DemoGame plays a fresh game in which the AI takes both sides without
// exploring, and returns the finished board.
func (that *GameManager) DemoGame() (*entity.Board, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.training {
		return nil, apperror.ErrTrainingInProgress
	}

	that.board.Reset()

	for !that.board.IsTerminal() {
		move, ok := that.ai.BestMove(that.board)
		if !ok {
			return that.board.Clone(), apperror.ErrNoLegalMoves
		}

		if err := that.board.ApplyMove(move); err != nil {
			return that.board.Clone(), fmt.Errorf("ai demo move %s: %w", move, err)
		}
	}

	return that.board.Clone(), nil
}

// StartTraining trains a new AI for the given number of episodes in the
// background. The returned channel carries progress reports and is closed once
// the run has ended and the new AI is in place.
func (that *GameManager) StartTraining(ctx context.Context, episodes int, observers ...trainer.Observer) (<-chan trainer.Progress, error) {
	if episodes < 0 {
		return nil, fmt.Errorf("%w: %d is negative", apperror.ErrInvalidEpisodeCount, episodes)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.training {
		return nil, apperror.ErrTrainingInProgress
	}

	trainCtx, cancel := context.WithCancel(ctx)
	that.training = true
	that.stop = cancel

	events := trainer.NewChannelObserver()

	all := []trainer.Observer{events, trainer.ObserverFunc(that.logProgress)}
	if that.progressRepo != nil {
		all = append(all, newProgressPublisher(that.logger, that.progressRepo))
	}
	all = append(all, observers...)

	go that.train(trainCtx, cancel, episodes, events, all)

	return events.Events(), nil
}

// StopTraining asks the running training to stop at its next check point.
func (that *GameManager) StopTraining() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.stop != nil {
		that.stop()
	}
}

func (that *GameManager) train(ctx context.Context, cancel context.CancelFunc, episodes int, events *trainer.ChannelObserver, observers []trainer.Observer) {
	log := that.logger.With("method", "train")
	defer cancel()

	newAI := that.newTrainer()
	session := trainer.NewSession(episodes)
	started := time.Now()

	log.Info("training started", "episodes", episodes)

	completed, err := newAI.Train(ctx, session, observers...)
	if err != nil {
		log.Error("training failed", "error", err)
	}

	that.saveRun(context.WithoutCancel(ctx), &entity.Run{
		StartedAt:  started,
		FinishedAt: time.Now(),
		Episodes:   session.Episodes,
		Played:     session.Played,
		WinsX:      session.WinsX,
		WinsO:      session.WinsO,
		Draws:      session.Draws,
		Completed:  completed,
	})

	log.Info("training finished", "completed", completed, "played", session.Played, "values", newAI.Values().Len())

	that.mu.Lock()
	that.ai = newAI
	that.training = false
	that.stop = nil
	that.mu.Unlock()

	events.Close()
}

func (that *GameManager) saveRun(ctx context.Context, run *entity.Run) {
	if that.runRepo == nil {
		return
	}

	if err := that.runRepo.Save(ctx, run); err != nil {
		that.logger.Error("failed to save training run", "error", err)
	}
}

func (that *GameManager) logProgress(_ context.Context, progress trainer.Progress) {
	that.logger.Debug("training progress",
		"episode", progress.Episode,
		"total", progress.Total,
		"wins_x", progress.WinsX,
		"wins_o", progress.WinsO,
		"draws", progress.Draws,
	)
}

// aiTurn must be called with the mutex held.
func (that *GameManager) aiTurn() error {
	move, ok := that.ai.SelectMove(that.board)
	if !ok {
		return apperror.ErrNoLegalMoves
	}

	if err := that.board.ApplyMove(move); err != nil {
		return fmt.Errorf("ai move %s: %w", move, err)
	}

	return nil
}

func (that *GameManager) newTrainer() *trainer.Trainer {
	opts := append([]trainer.Option{trainer.WithLogger(that.logger)}, that.trainerOpts...)
	return trainer.New(opts...)
}
