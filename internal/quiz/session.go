// Package quiz steps through a range of questions and produces the history
// entry recorded when the run ends.
package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/progress"
)

// Session is one pass through a Selection.
type Session struct {
	// ID identifies the run in logs. History entries get their own IDs.
	ID        string
	Selection Selection
	StartTime time.Time

	progress *progress.Store
	pos      int
	furthest int

	// marked holds questions mastered during this run.
	marked map[string]bool
}

// Start begins a session at the first question of sel. Mastery marks made
// through the session are written to p.
func Start(sel Selection, p *progress.Store, now time.Time) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Selection: sel,
		StartTime: now,
		progress:  p,
		marked:    make(map[string]bool),
	}
}

// Current returns the question at the cursor, or false for an empty
// selection.
func (s *Session) Current() (catalog.Match, bool) {
	if s.Selection.Len() == 0 {
		return catalog.Match{}, false
	}
	return s.Selection.Matches[s.pos], true
}

// Position returns the zero-based cursor.
func (s *Session) Position() int {
	return s.pos
}

// Total returns the number of questions in the run.
func (s *Session) Total() int {
	return s.Selection.Len()
}

// Next advances the cursor. It reports false at the last question.
func (s *Session) Next() bool {
	if s.pos+1 >= s.Selection.Len() {
		return false
	}
	s.pos++
	s.furthest = max(s.furthest, s.pos)
	return true
}

// Prev moves the cursor back. It reports false at the first question.
func (s *Session) Prev() bool {
	if s.pos == 0 {
		return false
	}
	s.pos--
	return true
}

// AtEnd reports whether the cursor is on the last question.
func (s *Session) AtEnd() bool {
	return s.pos >= s.Selection.Len()-1
}

// MarkMastered toggles the mastered mark of the current question and
// returns the new state. Unmarking a question marked earlier in the run
// takes it back out of the run's count.
func (s *Session) MarkMastered() bool {
	m, ok := s.Current()
	if !ok {
		return false
	}
	id := m.Question.ID
	on := s.progress.ToggleMastered(id)
	if on {
		s.marked[id] = true
	} else {
		delete(s.marked, id)
	}
	return on
}

// MasteredCount returns how many questions were marked mastered in this run.
func (s *Session) MasteredCount() int {
	return len(s.marked)
}

// Viewed returns how many questions were reached, counting up to the
// furthest position.
func (s *Session) Viewed() int {
	if s.Selection.Len() == 0 {
		return 0
	}
	return s.furthest + 1
}

// Finish returns the history entry describing the run.
func (s *Session) Finish(now time.Time) progress.EntryInput {
	return progress.EntryInput{
		StartTime:     s.StartTime,
		EndTime:       now,
		Range:         string(s.Selection.Range),
		RangeLabel:    s.Selection.Label,
		TotalCount:    s.Total(),
		MasteredCount: s.MasteredCount(),
		ViewedCount:   s.Viewed(),
	}
}
