// Package postgres implements snapshot persistence on PostgreSQL, for
// learners who sync progress between machines through a shared database.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"devmastery/internal/domain"
)

const defaultSlot = "progress"

// SnapshotStore persists the full progress state as a single JSONB row.
type SnapshotStore struct {
	pool *pgxpool.Pool
	slot string
}

// NewSnapshotStore creates a PostgreSQL-backed snapshot store.
func NewSnapshotStore(pool *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool, slot: defaultSlot}
}

// Connect opens a pool and verifies connectivity.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the snapshots table if it does not exist.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			slot       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}
	return nil
}

// Save serializes the whole state and replaces the slot's row.
func (s *SnapshotStore) Save(ctx context.Context, p *domain.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO snapshots (slot, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (slot) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`,
		s.slot, data, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// Load reads the slot's row. The second return value is false when no
// snapshot has ever been written.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Progress, bool, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM snapshots WHERE slot = $1`, s.slot,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query snapshot: %w", err)
	}

	var p domain.Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return &p, true, nil
}

// Delete removes the slot's row.
func (s *SnapshotStore) Delete(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM snapshots WHERE slot = $1`, s.slot)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
