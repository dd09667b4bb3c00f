package progress

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"devmastery/internal/domain"
)

func TestLocalStoreLoadEmpty(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}

	p, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if found {
		t.Error("found = true for empty store; want false")
	}
	if p != nil {
		t.Errorf("progress = %v; want nil", p)
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	ctx := context.Background()

	p := domain.NewProgress()
	p.TotalPoints = 320
	p.CompletedLessons["docker"] = 5
	p.MarkLessonComplete("kubernetes", time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))

	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, found, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !found {
		t.Fatal("found = false after save")
	}
	if loaded.UserID != p.UserID {
		t.Errorf("UserID = %q; want %q", loaded.UserID, p.UserID)
	}
	if loaded.TotalPoints != p.TotalPoints {
		t.Errorf("TotalPoints = %d; want %d", loaded.TotalPoints, p.TotalPoints)
	}
	if loaded.CompletedLessons["docker"] != 5 || loaded.CompletedLessons["kubernetes"] != 1 {
		t.Errorf("CompletedLessons = %v", loaded.CompletedLessons)
	}
	if loaded.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d; want 1", loaded.CurrentStreak)
	}
}

func TestLocalStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "progress.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err = store.Load(context.Background())
	if err == nil {
		t.Fatal("Load() = nil error for corrupt file; want error")
	}
}

// flakyStore fails a fixed number of saves before succeeding.
type flakyStore struct {
	failures int
	attempts int
	saved    *domain.Progress
}

func (f *flakyStore) Load(_ context.Context) (*domain.Progress, bool, error) {
	if f.saved == nil {
		return nil, false, nil
	}
	return f.saved, true, nil
}

func (f *flakyStore) Save(_ context.Context, p *domain.Progress) error {
	f.attempts++
	if f.attempts <= f.failures {
		return errors.New("transient failure")
	}
	f.saved = p
	return nil
}

func TestResilientStoreRetriesSaves(t *testing.T) {
	inner := &flakyStore{failures: 2}
	store := NewResilientStore(inner, ResilientConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	})

	if err := store.Save(context.Background(), domain.NewProgress()); err != nil {
		t.Fatalf("Save() error = %v; want success after retries", err)
	}
	if inner.attempts != 3 {
		t.Errorf("attempts = %d; want 3", inner.attempts)
	}
	if inner.saved == nil {
		t.Error("snapshot was never written")
	}
}

func TestResilientStoreGivesUp(t *testing.T) {
	inner := &flakyStore{failures: 10}
	store := NewResilientStore(inner, ResilientConfig{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
	})

	if err := store.Save(context.Background(), domain.NewProgress()); err == nil {
		t.Fatal("Save() = nil error; want failure after exhausting attempts")
	}
	if inner.attempts != 2 {
		t.Errorf("attempts = %d; want 2", inner.attempts)
	}
}

func TestResilientStoreLoadPassthrough(t *testing.T) {
	p := domain.NewProgress()
	p.TotalPoints = 50
	inner := &flakyStore{saved: p}
	store := NewResilientStore(inner, DefaultResilientConfig())

	loaded, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !found || loaded.TotalPoints != 50 {
		t.Errorf("Load() = (%v, %v); want saved snapshot", loaded, found)
	}
}
