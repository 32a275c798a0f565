// Package config reads prepdeck settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/abhisek/prepdeck/internal/store"
	"github.com/abhisek/prepdeck/internal/vwindow"
)

// Config holds runtime settings. Command-line flags override these.
type Config struct {
	// DBPath is the storage file. Empty resolves through
	// store.DefaultDBPath.
	DBPath string

	// Engine selects the storage engine: "sqlite", "json" or "memory".
	// Default: "sqlite".
	Engine string

	// QuotaBytes caps the total stored bytes. 0 disables the cap.
	QuotaBytes int

	// LogFile receives warnings while the TUI owns the terminal. Empty
	// means prepdeck.log in the data directory.
	LogFile string

	// Overscan is the number of extra list rows rendered off screen.
	// Default: 5.
	Overscan int
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{
		Engine:   store.EngineSQLite,
		Overscan: vwindow.DefaultOverscan,
	}
}

// Load reads a .env file from the working directory, if there is one, and
// then builds the Config from the environment.
func Load() Config {
	// A missing .env is the normal case.
	_ = godotenv.Load()
	return ConfigFromEnv()
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset or invalid values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PREPDECK_DB"); p != "" {
		cfg.DBPath = p
	}
	if e := os.Getenv("PREPDECK_ENGINE"); e != "" {
		cfg.Engine = e
	}
	cfg.QuotaBytes = envIntOr("PREPDECK_QUOTA_BYTES", cfg.QuotaBytes)
	if f := os.Getenv("PREPDECK_LOG_FILE"); f != "" {
		cfg.LogFile = f
	}
	cfg.Overscan = envIntOr("PREPDECK_OVERSCAN", cfg.Overscan)

	return cfg
}

// Validate checks the engine name and numeric ranges.
func (c Config) Validate() error {
	switch c.Engine {
	case store.EngineSQLite, store.EngineJSON, store.EngineMemory:
	default:
		return fmt.Errorf("PREPDECK_ENGINE: %w: %q", store.ErrUnknownEngine, c.Engine)
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("PREPDECK_QUOTA_BYTES must not be negative, got %d", c.QuotaBytes)
	}
	if c.Overscan < 0 {
		return fmt.Errorf("PREPDECK_OVERSCAN must not be negative, got %d", c.Overscan)
	}
	return nil
}

// ResolveDBPath returns DBPath, or the engine's default location when it is
// empty. The parent directory is created.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath(c.Engine)
}

// ResolveLogFile returns LogFile, or prepdeck.log in the data directory.
func (c Config) ResolveLogFile() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, store.EnsureDir(c.LogFile)
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "prepdeck.log")
	return p, store.EnsureDir(p)
}

// OpenStorage opens the configured engine and applies the quota.
func (c Config) OpenStorage() (store.Storage, error) {
	path := ""
	if c.Engine != store.EngineMemory {
		p, err := c.ResolveDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
		path = p
	}
	s, err := store.Open(c.Engine, path)
	if err != nil {
		return nil, err
	}
	return store.WithQuota(s, c.QuotaBytes), nil
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: invalid value for %s=%q, using default %d", key, v, def)
		return def
	}
	return i
}
