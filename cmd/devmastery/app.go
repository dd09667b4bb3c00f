package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"devmastery/internal/catalog"
	"devmastery/internal/config"
	"devmastery/internal/domain"
	"devmastery/internal/progress"
	"devmastery/internal/storage/postgres"
	"devmastery/internal/storage/sqlite"
)

// app bundles the wired service with cleanup for the configured
// backend.
type app struct {
	service *progress.Service
	cfg     *config.LocalConfig
	close   func()
}

// newApp loads config, opens the configured snapshot backend and
// hydrates the progress service.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadLocalConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)

	achievements, err := catalog.LoadAchievementsOrDefault(cfg.Catalog.AchievementsPath)
	if err != nil {
		return nil, fmt.Errorf("load achievement catalog: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	resilient := progress.NewResilientStore(store, progress.ResilientConfig{
		MaxAttempts:  cfg.Storage.Retry.MaxAttempts,
		InitialDelay: time.Duration(cfg.Storage.Retry.InitialDelayMS) * time.Millisecond,
		MaxDelay:     time.Duration(cfg.Storage.Retry.MaxDelayMS) * time.Millisecond,
	})

	service := progress.NewService(ctx, resilient, achievements, progress.WithLogger(logger))

	return &app{service: service, cfg: cfg, close: closeStore}, nil
}

func openStore(ctx context.Context, cfg *config.LocalConfig) (progress.SnapshotStore, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendLocal:
		dataDir, err := cfg.DataDir()
		if err != nil {
			return nil, nil, err
		}
		store, err := progress.NewLocalStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open local store: %w", err)
		}
		return store, func() {}, nil

	case config.BackendSQLite:
		dataDir, err := cfg.DataDir()
		if err != nil {
			return nil, nil, err
		}
		db, err := sqlite.Open(filepath.Join(dataDir, "devmastery.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return sqlite.NewSnapshotStore(db), func() { db.Close() }, nil

	case config.BackendPostgres:
		pool, err := postgres.Connect(ctx, cfg.Storage.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		store := postgres.NewSnapshotStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ensure postgres schema: %w", err)
		}
		return store, func() { pool.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// printUnlocked reports badges a command unlocked.
func printUnlocked(badges []domain.Badge) {
	for _, b := range badges {
		fmt.Printf("%s Achievement unlocked: %s (+%d points)\n", b.Icon, b.Title, b.Points)
	}
}
