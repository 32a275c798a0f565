package progress

import (
	"log"
	"sync"
	"time"

	"github.com/abhisek/prepdeck/internal/store"
)

// Store tracks which questions are mastered or favorited and persists the
// whole record after every mutation. Construct one per storage and share
// it; it is the single source of truth for progress.
type Store struct {
	mu        sync.Mutex
	storage   store.Storage
	logger    *log.Logger
	now       func() time.Time
	history   *History
	mastered  *idSet
	favorites *idSet
	lastVisit string
}

// New loads progress from storage. A missing or malformed record yields
// empty progress; New never fails.
func New(storage store.Storage, opts Options) *Store {
	opts = opts.withDefaults()
	s := &Store{
		storage: storage,
		logger:  opts.Logger,
		now:     opts.Now,
		history: opts.History,
	}

	var rec Record
	if load(storage, ProgressKey, progressSchema, &rec, opts.Logger) {
		s.mastered = newIDSet(rec.Mastered)
		s.favorites = newIDSet(rec.Favorites)
		s.lastVisit = rec.LastVisit
	} else {
		s.mastered = newIDSet(nil)
		s.favorites = newIDSet(nil)
	}
	return s
}

// IsMastered reports whether questionID is marked mastered.
func (s *Store) IsMastered(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mastered.has(questionID)
}

// IsFavorite reports whether questionID is marked favorite.
func (s *Store) IsFavorite(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.has(questionID)
}

// ToggleMastered flips the mastered mark and persists. It returns the new
// state.
func (s *Store) ToggleMastered(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	on := s.mastered.toggle(questionID)
	s.persistLocked()
	return on
}

// ToggleFavorite flips the favorite mark and persists. It returns the new
// state.
func (s *Store) ToggleFavorite(questionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	on := s.favorites.toggle(questionID)
	s.persistLocked()
	return on
}

// MasteredCountByIDs returns how many of questionIDs are mastered.
func (s *Store) MasteredCountByIDs(questionIDs []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mastered.countOf(questionIDs)
}

// MasteredCount returns the number of mastered marks, including IDs no
// longer in the catalog.
func (s *Store) MasteredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mastered.len()
}

// FavoritesCount returns the number of favorite marks.
func (s *Store) FavoritesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.len()
}

// Mastered returns the mastered IDs in the order they were marked.
func (s *Store) Mastered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mastered.slice()
}

// Favorites returns the favorite IDs in the order they were marked.
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites.slice()
}

// LastVisit returns the date of the last mutation, or "".
func (s *Store) LastVisit() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastVisit
}

// snapshot returns a copy of the current record.
func (s *Store) snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordLocked()
}

// ResetAll restores empty progress, persists it, and clears the attached
// history.
func (s *Store) ResetAll() {
	s.mu.Lock()
	s.mastered = newIDSet(nil)
	s.favorites = newIDSet(nil)
	s.lastVisit = ""
	s.persistLocked()
	h := s.history
	s.mu.Unlock()

	if h != nil {
		h.Clear()
	}
}

func (s *Store) recordLocked() Record {
	return Record{
		Mastered:  s.mastered.slice(),
		Favorites: s.favorites.slice(),
		LastVisit: s.lastVisit,
	}
}

// persistLocked stamps lastVisit and writes the full record. Caller holds
// s.mu.
func (s *Store) persistLocked() {
	s.lastVisit = s.now().UTC().Format(time.DateOnly)
	save(s.storage, ProgressKey, s.recordLocked(), s.logger)
}
