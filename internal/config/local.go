// Package config loads the local configuration from ~/.devmastery.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backend names.
const (
	BackendLocal    = "local"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// LocalConfig holds the full local configuration
type LocalConfig struct {
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects and configures the snapshot backend
type StorageConfig struct {
	// Backend is one of "local", "sqlite" or "postgres".
	Backend string `yaml:"backend"`

	// Path overrides the data directory for the local and sqlite
	// backends. Empty means ~/.devmastery/data.
	Path string `yaml:"path,omitempty"`

	// PostgresURL is the connection string for the postgres backend.
	PostgresURL string `yaml:"postgres_url,omitempty"`

	// Retry tunes the save/load retry wrapper
	Retry RetryConfig `yaml:"retry"`
}

// RetryConfig tunes snapshot persistence retries
type RetryConfig struct {
	MaxAttempts    int `yaml:"max_attempts"`
	InitialDelayMS int `yaml:"initial_delay_ms"`
	MaxDelayMS     int `yaml:"max_delay_ms"`
}

// CatalogConfig points at catalog override files
type CatalogConfig struct {
	// AchievementsPath overrides the built-in achievement catalog.
	AchievementsPath string `yaml:"achievements_path,omitempty"`

	// SkillsPath points at the skill catalog.
	SkillsPath string `yaml:"skills_path,omitempty"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// DevmasteryDir returns the path to ~/.devmastery
func DevmasteryDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".devmastery"), nil
}

// EnsureDevmasteryDir creates ~/.devmastery and subdirectories if they don't exist
func EnsureDevmasteryDir() (string, error) {
	dir, err := DevmasteryDir()
	if err != nil {
		return "", err
	}

	subdirs := []string{
		"",
		"data",
		"catalogs",
		"logs",
	}

	for _, subdir := range subdirs {
		path := filepath.Join(dir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", fmt.Errorf("create dir %s: %w", path, err)
		}
	}

	return dir, nil
}

// DefaultLocalConfig returns sensible defaults for local use
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{
		Storage: StorageConfig{
			Backend: BackendLocal,
			Retry: RetryConfig{
				MaxAttempts:    3,
				InitialDelayMS: 100,
				MaxDelayMS:     2000,
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadLocalConfig loads configuration from ~/.devmastery/config.yaml,
// returning defaults when the file does not exist
func LoadLocalConfig() (*LocalConfig, error) {
	dir, err := DevmasteryDir()
	if err != nil {
		return nil, err
	}
	return LoadLocalConfigFrom(filepath.Join(dir, "config.yaml"))
}

// LoadLocalConfigFrom loads configuration from an explicit path
func LoadLocalConfigFrom(configPath string) (*LocalConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultLocalConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultLocalConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	switch cfg.Storage.Backend {
	case BackendLocal, BackendSQLite, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

// SaveLocalConfig saves configuration to ~/.devmastery/config.yaml
func SaveLocalConfig(cfg *LocalConfig) error {
	dir, err := EnsureDevmasteryDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// DataDir resolves the data directory for file-backed storage
func (c *LocalConfig) DataDir() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := EnsureDevmasteryDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "data"), nil
}
