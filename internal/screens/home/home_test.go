package home

import (
	"io"
	"log"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screens/category"
	"github.com/abhisek/prepdeck/internal/screens/search"
	"github.com/abhisek/prepdeck/internal/store"
)

func testDeck() *deck.Deck {
	c := catalog.New([]catalog.Category{
		{ID: "javascript", Name: "JavaScript", Icon: "JS", Questions: []catalog.Question{{ID: "js001"}, {ID: "js002"}}},
		{ID: "css", Name: "CSS", Questions: []catalog.Question{{ID: "css001"}}},
	})
	return deck.New(c, store.NewMemory(), 5, log.New(io.Discard, "", 0))
}

func TestHomeView(t *testing.T) {
	d := testDeck()
	h := New(d)
	if h.Title() != "Home" {
		t.Errorf("Title = %q", h.Title())
	}

	out := h.View(100, 30)
	for _, want := range []string{"JS JavaScript", "0/2", "CSS", "Quiz", "Search", "Profile", "Exit", "3 questions in 2 categories"} {
		if !strings.Contains(out, want) {
			t.Errorf("home missing %q", want)
		}
	}

	// Counts follow progress on the next render.
	d.Progress.ToggleMastered("js002")
	if !strings.Contains(h.View(100, 30), "1/2") {
		t.Error("category count did not refresh")
	}
}

func TestHomeEnterOpensCategory(t *testing.T) {
	h := New(testDeck())
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	cs, ok := msg.Screen.(*category.CategoryScreen)
	if !ok {
		t.Fatalf("pushed %T", msg.Screen)
	}
	defer cs.Teardown()
	if cs.Title() != "CSS" {
		t.Errorf("opened %q, want CSS", cs.Title())
	}
}

func TestHomeSlashOpensSearch(t *testing.T) {
	h := New(testDeck())
	_, cmd := h.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd().(router.PushScreenMsg)
	ss, ok := msg.Screen.(*search.SearchScreen)
	if !ok {
		t.Fatalf("pushed %T", msg.Screen)
	}
	ss.Teardown()
}

func TestHomeSelectionSurvivesRefresh(t *testing.T) {
	h := New(testDeck())
	for i := 0; i < 3; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	h.View(100, 30)
	if h.menu.Selected != 3 {
		t.Errorf("Selected = %d, want 3", h.menu.Selected)
	}
	if len(h.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
