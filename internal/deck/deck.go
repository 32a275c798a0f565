// Package deck wires the catalog, storage and progress stores together for
// the CLI and the TUI.
package deck

import (
	"fmt"
	"log"
	"time"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/config"
	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/store"
)

// Deck is everything a front end needs: the question catalog and the
// user's progress and quiz history. Create one per process.
type Deck struct {
	Catalog  *catalog.Catalog
	Progress *progress.Store
	History  *progress.History
	Overscan int
	Now      func() time.Time

	storage store.Storage
}

// Open opens the configured storage and loads progress and history from it.
func Open(cfg config.Config) (*Deck, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := cfg.OpenStorage()
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return New(catalog.Default(), s, cfg.Overscan, nil), nil
}

// New builds a Deck over an open storage. A nil logger uses log.Default().
func New(c *catalog.Catalog, s store.Storage, overscan int, logger *log.Logger) *Deck {
	opts := progress.Options{Logger: logger}
	h := progress.NewHistory(s, opts)
	opts.History = h
	return &Deck{
		Catalog:  c,
		Progress: progress.New(s, opts),
		History:  h,
		Overscan: overscan,
		Now:      time.Now,
		storage:  s,
	}
}

// Close releases the storage.
func (d *Deck) Close() error {
	return d.storage.Close()
}
