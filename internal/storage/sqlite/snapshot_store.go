package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"devmastery/internal/domain"
)

const defaultSlot = "progress"

// SnapshotStore persists the full progress state as a single row.
type SnapshotStore struct {
	db   *DB
	slot string
}

// NewSnapshotStore creates a SQLite-backed snapshot store.
func NewSnapshotStore(db *DB) *SnapshotStore {
	return &SnapshotStore{db: db, slot: defaultSlot}
}

// Save serializes the whole state and replaces the slot's row.
func (s *SnapshotStore) Save(ctx context.Context, p *domain.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			data=excluded.data,
			updated_at=excluded.updated_at`,
		s.slot, string(data), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Load reads the slot's row. The second return value is false when no
// snapshot has ever been written.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Progress, bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE slot = ?`, s.slot,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query snapshot: %w", err)
	}

	var p domain.Progress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return &p, true, nil
}

// Delete removes the slot's row.
func (s *SnapshotStore) Delete(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE slot = ?`, s.slot)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
