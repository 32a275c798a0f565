package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title     string
	initRan   bool
	teardowns int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) Teardown()                               { s.teardowns++ }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestPopTearsDownPoppedScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Update(PopScreenMsg{})

	if s2.teardowns != 1 {
		t.Errorf("expected popped screen torn down once, got %d", s2.teardowns)
	}
	if s1.teardowns != 0 {
		t.Errorf("expected remaining screen untouched, got %d teardowns", s1.teardowns)
	}
}

func TestPopAtBottomDoesNotTeardown(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	r.Pop()

	if s1.teardowns != 0 {
		t.Errorf("expected no teardown, got %d", s1.teardowns)
	}
}

func TestReplaceTearsDownReplacedScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if s1.teardowns != 1 {
		t.Errorf("expected replaced screen torn down once, got %d", s1.teardowns)
	}
	if s2.teardowns != 0 {
		t.Errorf("expected new screen untouched, got %d teardowns", s2.teardowns)
	}
}

func TestCloseTearsDownEveryScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	s3 := &stubScreen{title: "third"}
	r := New(s1)
	r.Push(s2)
	r.Push(s3)

	r.Close()

	for _, s := range []*stubScreen{s1, s2, s3} {
		if s.teardowns != 1 {
			t.Errorf("%s: expected 1 teardown, got %d", s.title, s.teardowns)
		}
	}
	if r.Depth() != 0 || r.Active() != nil {
		t.Errorf("expected empty stack after Close, depth %d", r.Depth())
	}
	if got := r.View(80, 24); got != "" {
		t.Errorf("expected empty view after Close, got %q", got)
	}
}

func TestPopWithoutTeardowner(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(screenOnly{title: "plain"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
}

// screenOnly implements screen.Screen and nothing else.
type screenOnly struct{ title string }

func (s screenOnly) Init() tea.Cmd                           { return nil }
func (s screenOnly) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s screenOnly) View(int, int) string                    { return s.title }
func (s screenOnly) Title() string                           { return s.title }
