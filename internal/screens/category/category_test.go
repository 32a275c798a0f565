package category

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screens/question"
	"github.com/abhisek/prepdeck/internal/store"
)

func testDeck(n int) *deck.Deck {
	qs := make([]catalog.Question, n)
	for i := range qs {
		qs[i] = catalog.Question{
			ID:         fmt.Sprintf("q%04d", i),
			Title:      fmt.Sprintf("Question %d", i),
			Difficulty: catalog.Difficulty(i%3 + 1),
		}
	}
	c := catalog.New([]catalog.Category{
		{ID: "big", Name: "Big", Description: "Lots of questions", Questions: qs},
		{ID: "empty", Name: "Empty"},
	})
	return deck.New(c, store.NewMemory(), 5, log.New(io.Discard, "", 0))
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestCategoryTitle(t *testing.T) {
	s := New(testDeck(3), "big")
	defer s.Teardown()
	if s.Title() != "Big" {
		t.Errorf("Title = %q", s.Title())
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

func TestCategoryViewRendersVisibleRowsOnly(t *testing.T) {
	s := New(testDeck(2000), "big")
	defer s.Teardown()

	out := s.View(80, 20)
	if !strings.Contains(out, "Question 0") {
		t.Errorf("first row missing:\n%s", out)
	}
	if strings.Contains(out, "Question 1999") {
		t.Error("row outside the viewport was rendered")
	}
	if lines := strings.Count(out, "\n") + 1; lines > 20 {
		t.Errorf("view has %d lines, want at most 20", lines)
	}
	if w := s.list.Window(); w.Len() > 20+2*5+1 {
		t.Errorf("window materializes %d rows", w.Len())
	}
}

func TestCategoryEnterOpensQuestion(t *testing.T) {
	s := New(testDeck(5), "big")
	defer s.Teardown()
	s.View(80, 20)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	qs, ok := msg.Screen.(*question.QuestionScreen)
	if !ok {
		t.Fatalf("pushed %T", msg.Screen)
	}
	defer qs.Teardown()
	if !strings.Contains(qs.View(80, 20), "Question 1") {
		t.Error("pushed the wrong question")
	}
}

func TestCategoryToggles(t *testing.T) {
	d := testDeck(5)
	s := New(d, "big")
	defer s.Teardown()

	s.Update(keyPress('m'))
	s.Update(keyPress('f'))
	if !d.Progress.IsMastered("q0000") || !d.Progress.IsFavorite("q0000") {
		t.Error("expected q0000 mastered and favorite")
	}
	if !strings.Contains(s.View(80, 20), "1/5") {
		t.Error("progress bar should count the mastered question")
	}
}

func TestCategoryEmpty(t *testing.T) {
	for _, id := range []string{"empty", "missing"} {
		s := New(testDeck(1), id)
		if !strings.Contains(s.View(80, 20), "No questions") {
			t.Errorf("%s: expected empty message", id)
		}
		if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
			t.Errorf("%s: enter on an empty list returned a command", id)
		}
		s.Teardown()
	}
}

func TestCategoryTeardownReleasesListeners(t *testing.T) {
	s := New(testDeck(5), "big")
	s.Teardown()
	if n := s.list.Pane().Listeners(); n != 0 {
		t.Errorf("Listeners = %d after Teardown", n)
	}
}
