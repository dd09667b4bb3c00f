package progress

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"devmastery/internal/domain"
)

// ResilientStore wraps a snapshot store with retry from fortify.
// Snapshot saves hit transient failures (network blips against
// postgres, a briefly locked sqlite file) that a short backoff
// absorbs.
type ResilientStore struct {
	inner  SnapshotStore
	saver  retry.Retry[struct{}]
	loader retry.Retry[loadResult]
}

type loadResult struct {
	progress *domain.Progress
	found    bool
}

// ResilientConfig tunes the retry behavior.
type ResilientConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultResilientConfig returns defaults suited to local and
// same-network stores.
func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
	}
}

// NewResilientStore wraps a store with retry using fortify.
func NewResilientStore(inner SnapshotStore, cfg ResilientConfig) *ResilientStore {
	retryConfig := func() retry.Config {
		return retry.Config{
			MaxAttempts:   cfg.MaxAttempts,
			InitialDelay:  cfg.InitialDelay,
			MaxDelay:      cfg.MaxDelay,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
			Jitter:        true,
			IsRetryable: func(err error) bool {
				return err != nil
			},
		}
	}
	return &ResilientStore{
		inner:  inner,
		saver:  retry.New[struct{}](retryConfig()),
		loader: retry.New[loadResult](retryConfig()),
	}
}

// Load reads the snapshot, retrying on failure.
func (s *ResilientStore) Load(ctx context.Context) (*domain.Progress, bool, error) {
	result, err := s.loader.Do(ctx, func(ctx context.Context) (loadResult, error) {
		p, found, err := s.inner.Load(ctx)
		return loadResult{progress: p, found: found}, err
	})
	if err != nil {
		return nil, false, err
	}
	return result.progress, result.found, nil
}

// Save writes the snapshot, retrying on failure.
func (s *ResilientStore) Save(ctx context.Context, p *domain.Progress) error {
	_, err := s.saver.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.inner.Save(ctx, p)
	})
	return err
}
