package quiz

import (
	"io"
	"log"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/deck"
	qz "github.com/abhisek/prepdeck/internal/quiz"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/store"
)

func testDeck() *deck.Deck {
	c := catalog.New([]catalog.Category{
		{
			ID:   "javascript",
			Name: "JavaScript",
			Questions: []catalog.Question{
				{ID: "js001", Title: "说说你对闭包的理解？", Difficulty: catalog.DifficultyIntermediate, Answer: "闭包可以访问外层作用域。"},
				{ID: "js002", Title: "原型链", Difficulty: catalog.DifficultyBeginner, Answer: "每个对象都有原型。"},
				{ID: "js003", Title: "事件循环", Difficulty: catalog.DifficultyAdvanced, Answer: "宏任务与微任务。"},
			},
		},
	})
	d := deck.New(c, store.NewMemory(), 5, log.New(io.Discard, "", 0))
	t0 := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	calls := 0
	d.Now = func() time.Time {
		calls++
		return t0.Add(time.Duration(calls) * 90 * time.Second)
	}
	return d
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func startRun(t *testing.T, d *deck.Deck, r qz.Range) *RunScreen {
	t.Helper()
	sel, err := qz.Resolve(d.Catalog, d.Progress, r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return newRunScreen(d, sel)
}

func TestPickerListsRanges(t *testing.T) {
	s := New(testDeck())
	out := s.View(80, 24)
	for _, want := range []string{"全部题目", "收藏题目", "未掌握题目", "JavaScript", "3 questions"} {
		if !strings.Contains(out, want) {
			t.Errorf("picker missing %q", want)
		}
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}

func TestPickerStartsRun(t *testing.T) {
	s := New(testDeck())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	run := msg.Screen.(*RunScreen)
	defer run.Teardown()
	if run.session.Total() != 3 {
		t.Errorf("run total = %d, want 3", run.session.Total())
	}
}

func TestPickerEmptyRangeShowsNotice(t *testing.T) {
	s := New(testDeck())

	// Favorites is empty.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command for an empty range")
	}
	if !strings.Contains(s.View(80, 24), "收藏题目 has no questions") {
		t.Error("expected empty-range notice")
	}
}

func TestRunRevealAndNavigate(t *testing.T) {
	d := testDeck()
	s := startRun(t, d, qz.RangeAll)
	defer s.Teardown()

	if strings.Contains(s.View(80, 20), "外层作用域") {
		t.Error("answer shown before reveal")
	}
	s.Update(tea.KeyPressMsg{Code: ' '})
	if !strings.Contains(s.View(80, 20), "外层作用域") {
		t.Error("answer hidden after reveal")
	}

	s.Update(keyPress('n'))
	if s.showAnswer {
		t.Error("moving should hide the answer")
	}
	if !strings.Contains(s.View(80, 20), "原型链") {
		t.Error("expected second question")
	}
	s.Update(keyPress('n'))
	s.Update(keyPress('n'))
	if !strings.Contains(s.status, "Last question") {
		t.Errorf("status = %q", s.status)
	}
	s.Update(keyPress('p'))
	if s.session.Position() != 1 {
		t.Errorf("Position = %d, want 1", s.session.Position())
	}
}

func TestRunFinishRecordsHistoryOnce(t *testing.T) {
	d := testDeck()
	s := startRun(t, d, qz.RangeAll)

	s.Update(keyPress('m'))
	s.Update(keyPress('n'))
	s.Update(keyPress('f'))

	_, cmd := s.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}

	// The router tears the run down when it is replaced.
	s.Teardown()

	entries := d.History.Entries()
	if len(entries) != 1 {
		t.Fatalf("history has %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Range != "all" || e.RangeLabel != "全部题目" {
		t.Errorf("range = %q %q", e.Range, e.RangeLabel)
	}
	if e.TotalCount != 3 || e.ViewedCount != 2 || e.MasteredCount != 1 {
		t.Errorf("counts total=%d viewed=%d mastered=%d", e.TotalCount, e.ViewedCount, e.MasteredCount)
	}
	if !d.Progress.IsFavorite("js002") {
		t.Error("f should favorite the current question")
	}

	sum := msg.Screen.(*SummaryScreen)
	out := sum.View(80, 24)
	if !strings.Contains(out, "Viewed: 2/3") || !strings.Contains(out, "1:30") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if _, cmd := sum.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd == nil {
		t.Error("enter on summary should pop")
	}
}

func TestRunTeardownRecordsAbandonedRun(t *testing.T) {
	d := testDeck()
	s := startRun(t, d, "javascript")
	s.Teardown()
	s.Teardown()

	if d.History.Count() != 1 {
		t.Errorf("history count = %d, want 1", d.History.Count())
	}
	if n := s.pager.Pane().Listeners(); n != 0 {
		t.Errorf("Listeners = %d after Teardown", n)
	}
}

func TestRunEmptySelection(t *testing.T) {
	d := testDeck()
	s := startRun(t, d, qz.RangeFavorites)

	if !strings.Contains(s.View(80, 20), "No questions") {
		t.Error("expected empty message")
	}
	_, cmd := s.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	s.Teardown()
	if d.History.Count() != 0 {
		t.Error("empty run should not be recorded")
	}
}
