package quiz

import (
	"fmt"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/progress"
	qz "github.com/abhisek/prepdeck/internal/quiz"
	"github.com/abhisek/prepdeck/internal/render"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// RunScreen steps through the questions of a quiz one at a time with the
// answer hidden until asked for.
type RunScreen struct {
	deck    *deck.Deck
	session *qz.Session
	pager   *components.Pager

	showAnswer bool
	renderedID string
	renderedW  int
	status     string
	recorded   bool
}

var _ screen.Screen = (*RunScreen)(nil)
var _ screen.KeyHintProvider = (*RunScreen)(nil)
var _ screen.Teardowner = (*RunScreen)(nil)

func newRunScreen(d *deck.Deck, sel qz.Selection) *RunScreen {
	s := &RunScreen{
		deck:    d,
		session: qz.Start(sel, d.Progress, d.Now()),
		pager:   components.NewPager(d.Overscan),
	}
	log.Printf("quiz %s started: %s (%d questions)", s.session.ID, sel.Label, sel.Len())
	return s
}

func (s *RunScreen) Init() tea.Cmd {
	return nil
}

func (s *RunScreen) Title() string {
	return "Quiz · " + s.session.Selection.Label
}

func (s *RunScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Answer"},
		{Key: "n/p", Description: "Next/Prev"},
		{Key: "m", Description: "Mastered"},
		{Key: "f", Description: "Favorite"},
		{Key: "q", Description: "Finish"},
	}
}

// Teardown records the run if it was left without finishing and releases
// the pager.
func (s *RunScreen) Teardown() {
	s.record()
	s.pager.Close()
}

// record adds the run to history once.
func (s *RunScreen) record() (progress.Entry, bool) {
	if s.recorded || s.session.Total() == 0 {
		return progress.Entry{}, false
	}
	s.recorded = true
	e := s.deck.History.Add(s.session.Finish(s.deck.Now()))
	log.Printf("quiz %s recorded as %s: %d/%d viewed, %d mastered",
		s.session.ID, e.ID, e.ViewedCount, e.TotalCount, e.MasteredCount)
	return e, true
}

func (s *RunScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if kmsg.String() == "q" {
		e, ok := s.record()
		if !ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		sum := newSummaryScreen(e)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sum} }
	}
	m, ok := s.session.Current()
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "space", "enter":
		s.showAnswer = !s.showAnswer
		return s, nil
	case "n", "right":
		if s.session.Next() {
			s.moved()
		} else {
			s.status = "Last question. Press q to finish"
		}
		return s, nil
	case "p", "left":
		if s.session.Prev() {
			s.moved()
		}
		return s, nil
	case "m":
		if s.session.MarkMastered() {
			s.status = "Marked as mastered"
		} else {
			s.status = "Unmarked mastered"
		}
		return s, nil
	case "f":
		if s.deck.Progress.ToggleFavorite(m.Question.ID) {
			s.status = "Added to favorites"
		} else {
			s.status = "Removed from favorites"
		}
		return s, nil
	}

	if s.showAnswer {
		s.pager.Update(msg)
	}
	return s, nil
}

func (s *RunScreen) moved() {
	s.showAnswer = false
	s.status = ""
	s.pager.Pane().ScrollTo(0)
}

func (s *RunScreen) View(width, height int) string {
	m, ok := s.session.Current()
	if !ok {
		return components.Centered(theme.Hint.Render("No questions in this range"), width, height)
	}
	cw := max(width-4, 20)

	bar := components.NewProgressBar("", s.session.Position()+1, s.session.Total(), min(cw, 60))
	head := []string{
		"  " + bar.View(),
		"",
		"  " + theme.Title.Render(render.Truncate(m.Question.Title, cw)),
		"  " + s.metaLine(m),
		"  " + theme.Divider.Render(strings.Repeat("─", cw)),
	}
	bodyHeight := max(height-len(head)-1, 1)

	var body string
	if s.showAnswer {
		s.renderAnswer(m.Question, cw)
		body = s.pager.View(bodyHeight)
	} else {
		body = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("\n  Think it through, then press space to reveal the answer.")
	}
	if n := strings.Count(body, "\n") + 1; n < bodyHeight {
		body += strings.Repeat("\n", bodyHeight-n)
	}

	status := s.status
	if status == "" {
		status = fmt.Sprintf("%d mastered this run", s.session.MasteredCount())
	}

	return strings.Join(head, "\n") + "\n" + body + "\n  " + theme.Notice.Render(status)
}

func (s *RunScreen) metaLine(m catalog.Match) string {
	q := m.Question
	parts := []string{
		theme.Subtitle.Render(m.Category.Name),
		lipgloss.NewStyle().Foreground(theme.DifficultyColor(int(q.Difficulty))).Render(q.Difficulty.Label()),
	}
	if s.deck.Progress.IsMastered(q.ID) {
		parts = append(parts, theme.Mastered.Render(theme.MasteredMark))
	}
	if s.deck.Progress.IsFavorite(q.ID) {
		parts = append(parts, theme.Favorite.Render(theme.FavoriteMark))
	}
	return strings.Join(parts, " ")
}

func (s *RunScreen) renderAnswer(q *catalog.Question, width int) {
	if q.ID == s.renderedID && width == s.renderedW {
		return
	}
	out, err := render.Markdown(render.AnswerMarkdown(q), width, render.StyleDark)
	if err != nil {
		log.Printf("warning: render %s: %v", q.ID, err)
	}
	s.pager.SetLines(render.Lines(out))
	s.renderedID, s.renderedW = q.ID, width
}
