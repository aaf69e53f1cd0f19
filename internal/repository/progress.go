package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
)

const (
	progressKey     = "training:progress"
	progressChannel = "training:progress"
)

type ProgressRepository interface {
	Save(ctx context.Context, progress trainer.Progress) error
	GetLatest(ctx context.Context) (*trainer.Progress, error)
	Subscribe(ctx context.Context) (<-chan trainer.Progress, error)
}

type dbProgress struct {
	client *redis.Client
}

func NewProgressRepository(client *redis.Client) ProgressRepository {
	return &dbProgress{
		client: client,
	}
}

// Save stores the snapshot as the latest progress and publishes it to subscribers.
func (that *dbProgress) Save(ctx context.Context, progress trainer.Progress) error {
	progressJSON, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("could not marshal progress: %w", err)
	}

	if err = that.client.Set(ctx, progressKey, progressJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set progress: %w", err)
	}

	if err = that.client.Publish(ctx, progressChannel, progressJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish progress: %w", err)
	}

	return nil
}

func (that *dbProgress) GetLatest(ctx context.Context) (*trainer.Progress, error) {
	response, err := that.client.Get(ctx, progressKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrProgressNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}

	var progress trainer.Progress
	if err = json.Unmarshal([]byte(response), &progress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	return &progress, nil
}

// Subscribe delivers progress published by Save until ctx is cancelled.
// Messages that cannot be decoded are skipped.
func (that *dbProgress) Subscribe(ctx context.Context) (<-chan trainer.Progress, error) {
	pubsub := that.client.Subscribe(ctx, progressChannel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to progress: %w", err)
	}

	updates := make(chan trainer.Progress)

	go func() {
		defer close(updates)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				var progress trainer.Progress
				if err := json.Unmarshal([]byte(msg.Payload), &progress); err != nil {
					continue
				}

				select {
				case updates <- progress:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates, nil
}
