// Package progress holds the progress service: a single in-memory
// aggregate hydrated from a snapshot store at startup and written back
// after every mutation. Persistence is best-effort; a failed save is
// logged and never blocks the learner.
package progress

import (
	"context"
	"errors"

	"devmastery/internal/domain"
	"devmastery/internal/storage/local"
)

// snapshotSlot is the single slot all progress lives under.
const snapshotSlot = "progress"

// SnapshotStore persists the whole aggregate as one snapshot. Load's
// second return value is false when no snapshot exists yet, which is
// not an error.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Progress, bool, error)
	Save(ctx context.Context, p *domain.Progress) error
}

// LocalStore adapts the file-based JSON store to the snapshot
// interface.
type LocalStore struct {
	store *local.Store
}

// NewLocalStore creates a snapshot store backed by a JSON file under
// the given directory.
func NewLocalStore(basePath string) (*LocalStore, error) {
	store, err := local.NewStore(basePath)
	if err != nil {
		return nil, err
	}
	return &LocalStore{store: store}, nil
}

// Load reads the snapshot file.
func (s *LocalStore) Load(_ context.Context) (*domain.Progress, bool, error) {
	var p domain.Progress
	if err := s.store.Load(snapshotSlot, &p); err != nil {
		if errors.Is(err, local.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &p, true, nil
}

// Save writes the snapshot file.
func (s *LocalStore) Save(_ context.Context, p *domain.Progress) error {
	return s.store.Save(snapshotSlot, p)
}
