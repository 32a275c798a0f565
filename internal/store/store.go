package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage is a durable string-keyed, string-valued store. It mirrors the
// browser local-storage contract: whole values are read and written under a
// key, there are no partial updates.
type Storage interface {
	// GetItem returns the value stored under key. ok is false when the key
	// is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Close releases the underlying resources.
	Close() error
}

// Storage engines accepted by Open.
const (
	EngineSQLite = "sqlite"
	EngineJSON   = "json"
	EngineMemory = "memory"
)

// ErrUnknownEngine is returned by Open for an unsupported engine name.
var ErrUnknownEngine = errors.New("unknown storage engine")

// Open returns the Storage for engine rooted at path. An empty engine
// selects SQLite. path is ignored by the memory engine.
func Open(engine, path string) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		return OpenSQLite(path)
	case EngineJSON:
		return OpenJSON(path, nil)
	case EngineMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// DefaultDBPath resolves the storage file path in priority order:
// 1. PREPDECK_DB environment variable
// 2. $XDG_DATA_HOME/prepdeck/<file>
// 3. ~/.local/share/prepdeck/<file>
//
// The file name depends on the engine: prepdeck.db for SQLite, prepdeck.json
// for the JSON engine.
func DefaultDBPath(engine string) (string, error) {
	if p := os.Getenv("PREPDECK_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dir, err := DataDir()
	if err != nil {
		return "", err
	}

	name := "prepdeck.db"
	if strings.EqualFold(engine, EngineJSON) {
		name = "prepdeck.json"
	}
	p := filepath.Join(dir, name)
	return p, EnsureDir(p)
}

// DataDir returns the prepdeck data directory under XDG_DATA_HOME or
// ~/.local/share. It does not create it.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "prepdeck"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
