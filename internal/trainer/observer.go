package trainer

import "context"

// Progress is a snapshot of a training run.
type Progress struct {
	Episode int     `json:"episode"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
	WinsX   int     `json:"wins_x"`
	WinsO   int     `json:"wins_o"`
	Draws   int     `json:"draws"`
	Final   bool    `json:"final"`
}

// Observer receives progress reports from the training loop. Observe runs on
// the training goroutine and must not call back into the Trainer.
type Observer interface {
	Observe(ctx context.Context, progress Progress)
}

type ObserverFunc func(ctx context.Context, progress Progress)

func (that ObserverFunc) Observe(ctx context.Context, progress Progress) {
	that(ctx, progress)
}

// ChannelObserver hands progress to a reader through a single-slot channel.
// A report that has not been read yet is replaced by the newer one, so the
// training loop never waits for the reader.
type ChannelObserver struct {
	events chan Progress
}

func NewChannelObserver() *ChannelObserver {
	return &ChannelObserver{
		events: make(chan Progress, 1),
	}
}

func (that *ChannelObserver) Events() <-chan Progress {
	return that.events
}

// Observe must only be called from one goroutine.
func (that *ChannelObserver) Observe(_ context.Context, progress Progress) {
	for {
		select {
		case that.events <- progress:
			return
		default:
		}

		// drop the stale report
		select {
		case <-that.events:
		default:
		}
	}
}

func (that *ChannelObserver) Close() {
	close(that.events)
}
