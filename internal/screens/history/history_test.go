package history

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/store"
)

func testDeck() *deck.Deck {
	return deck.New(catalog.New(nil), store.NewMemory(), 5, log.New(io.Discard, "", 0))
}

func addRun(d *deck.Deck, label string, viewed int) {
	start := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	d.History.Add(progress.EntryInput{
		StartTime:     start,
		EndTime:       start.Add(2*time.Minute + 5*time.Second),
		Range:         "all",
		RangeLabel:    label,
		TotalCount:    10,
		MasteredCount: 1,
		ViewedCount:   viewed,
	})
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestHistoryEmpty(t *testing.T) {
	s := New(testDeck())
	defer s.Teardown()

	if s.Title() != "History" {
		t.Errorf("Title = %q", s.Title())
	}
	if !strings.Contains(s.View(80, 24), "No quizzes yet") {
		t.Error("expected empty message")
	}
	s.Update(keyPress('x'))
	if s.confirming {
		t.Error("clear should not prompt on an empty history")
	}
}

func TestHistoryListsEntries(t *testing.T) {
	d := testDeck()
	addRun(d, "全部题目", 4)
	addRun(d, "CSS", 7)

	s := New(d)
	defer s.Teardown()

	out := s.View(100, 24)
	if !strings.Contains(out, "7/10 viewed") || !strings.Contains(out, "4/10 viewed") {
		t.Errorf("missing entries:\n%s", out)
	}
	if !strings.Contains(out, "2:05") {
		t.Errorf("missing duration:\n%s", out)
	}
	// Newest first, and the detail panel follows the cursor.
	if !strings.Contains(out, "Range     CSS") {
		t.Errorf("detail should show the newest entry:\n%s", out)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if !strings.Contains(s.View(100, 24), "Range     全部题目") {
		t.Error("detail did not follow the cursor")
	}
}

func TestHistoryPicksUpNewEntries(t *testing.T) {
	d := testDeck()
	s := New(d)
	defer s.Teardown()
	s.View(100, 24)

	addRun(d, "ES6+", 3)
	if !strings.Contains(s.View(100, 24), "ES6+") {
		t.Error("expected the new entry after it was added")
	}
}

func TestHistoryClearConfirm(t *testing.T) {
	d := testDeck()
	addRun(d, "CSS", 3)
	s := New(d)
	defer s.Teardown()

	s.Update(keyPress('x'))
	if !s.confirming {
		t.Fatal("expected confirmation prompt")
	}
	if len(s.KeyHints()) != 2 {
		t.Errorf("confirm hints = %d, want 2", len(s.KeyHints()))
	}
	if !strings.Contains(s.View(100, 24), "Delete all 1 history entries?") {
		t.Error("expected prompt text")
	}

	s.Update(keyPress('n'))
	if d.History.Count() != 1 {
		t.Fatal("n should cancel")
	}

	s.Update(keyPress('x'))
	s.Update(keyPress('y'))
	if d.History.Count() != 0 || s.list.Len() != 0 {
		t.Errorf("history count = %d, list = %d after clear", d.History.Count(), s.list.Len())
	}
}
