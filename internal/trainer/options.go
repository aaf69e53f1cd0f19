package trainer

import (
	"log/slog"
	"time"

	"golang.org/x/exp/rand"
)

const (
	DefaultLearningRate    = 0.5
	DefaultExplorationRate = 0.1
	DefaultReportEvery     = 10
)

type Option func(*Trainer)

func WithLearningRate(rate float64) Option {
	return func(t *Trainer) {
		t.learningRate = rate
	}
}

func WithExplorationRate(rate float64) Option {
	return func(t *Trainer) {
		t.explorationRate = rate
	}
}

// WithReportEvery sets how many episodes pass between progress reports.
func WithReportEvery(episodes int) Option {
	return func(t *Trainer) {
		if episodes > 0 {
			t.reportEvery = episodes
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(t *Trainer) {
		t.rnd = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Trainer) {
		t.logger = logger
	}
}

func defaultSeed() uint64 {
	return uint64(time.Now().UnixNano()) //nolint: gosec // it's ok
}
