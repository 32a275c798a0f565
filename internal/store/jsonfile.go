package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// JSONFile is a Storage kept as one JSON object in a file. Every write
// rewrites the whole file through a temporary file and a rename.
type JSONFile struct {
	path   string
	logger *log.Logger
	mu     sync.RWMutex
	items  map[string]string
}

var _ Storage = (*JSONFile)(nil)

// OpenJSON loads the file at path. A missing file is an empty store.
// Damaged contents are logged and dropped: a file that is not a JSON object
// is moved to path+".corrupt", and entries whose value is not a string are
// skipped. Only an unreadable file is an error. A nil logger uses
// log.Default().
func OpenJSON(path string, logger *log.Logger) (*JSONFile, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &JSONFile{path: path, logger: logger, items: make(map[string]string)}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

func (s *JSONFile) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *JSONFile) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.items[key]
	s.items[key] = value
	if err := s.persistLocked(); err != nil {
		if had {
			s.items[key] = prev
		} else {
			delete(s.items, key)
		}
		return err
	}
	return nil
}

func (s *JSONFile) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.items[key]
	if !had {
		return nil
	}
	delete(s.items, key)
	if err := s.persistLocked(); err != nil {
		s.items[key] = prev
		return err
	}
	return nil
}

func (s *JSONFile) Close() error {
	return nil
}

func (s *JSONFile) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		corrupt := s.path + ".corrupt"
		s.logger.Printf("warning: %s is not a JSON object (%v), moving it to %s", s.path, err, corrupt)
		if err := os.Rename(s.path, corrupt); err != nil {
			s.logger.Printf("warning: move %s aside: %v", s.path, err)
		}
		return nil
	}

	for key, v := range raw {
		var value string
		if err := json.Unmarshal(v, &value); err != nil {
			s.logger.Printf("warning: dropping %s from %s: value is not a string", key, s.path)
			continue
		}
		s.items[key] = value
	}
	return nil
}

func (s *JSONFile) persistLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.path)
}
