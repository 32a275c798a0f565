package search

import (
	"io"
	"log"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/store"
)

func testDeck() *deck.Deck {
	c := catalog.New([]catalog.Category{
		{
			ID:   "javascript",
			Name: "JavaScript",
			Questions: []catalog.Question{
				{ID: "js001", Title: "说说你对闭包的理解？", Tags: []string{"闭包"}},
				{ID: "js007", Title: "async/await 的原理是什么？", Tags: []string{"async", "Promise"}},
			},
		},
		{
			ID:   "algorithm",
			Name: "算法与手写题",
			Questions: []catalog.Question{
				{ID: "algo002", Title: "手写 Promise.all", Tags: []string{"手写题"}},
			},
		},
	})
	return deck.New(c, store.NewMemory(), 5, log.New(io.Discard, "", 0))
}

func typeText(s *SearchScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSearchStartsEmpty(t *testing.T) {
	s := New(testDeck())
	defer s.Teardown()

	if s.Title() != "Search" {
		t.Errorf("Title = %q", s.Title())
	}
	if !strings.Contains(s.View(80, 20), "Type a keyword") {
		t.Error("expected the prompt hint")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter with no results should do nothing")
	}
}

func TestSearchFiltersAsYouType(t *testing.T) {
	s := New(testDeck())
	defer s.Teardown()

	typeText(s, "promise")
	if s.list.Len() != 2 {
		t.Fatalf("results = %d, want 2", s.list.Len())
	}
	out := s.View(80, 20)
	if !strings.Contains(out, "2 results") {
		t.Errorf("missing result count:\n%s", out)
	}

	typeText(s, "xyz")
	if s.list.Len() != 0 {
		t.Errorf("results = %d, want 0", s.list.Len())
	}
	if !strings.Contains(s.View(80, 20), "No questions match") {
		t.Error("expected no-match message")
	}
}

func TestSearchEnterOpensSelected(t *testing.T) {
	s := New(testDeck())
	defer s.Teardown()

	typeText(s, "promise")
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
	if msg.Screen.Title() != "算法与手写题" {
		t.Errorf("opened question in %q", msg.Screen.Title())
	}
}

func TestSearchTeardownReleasesListeners(t *testing.T) {
	s := New(testDeck())
	s.Teardown()
	if n := s.list.Pane().Listeners(); n != 0 {
		t.Errorf("Listeners = %d after Teardown", n)
	}
}
