package question

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/render"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// QuestionScreen shows one question with its rendered answer.
type QuestionScreen struct {
	deck   *deck.Deck
	lookup catalog.Lookup
	pager  *components.Pager

	renderedWidth int
	status        string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.Teardowner = (*QuestionScreen)(nil)

// New creates a QuestionScreen. An unknown category or question renders a
// not-found message.
func New(d *deck.Deck, categoryID, questionID string) *QuestionScreen {
	return &QuestionScreen{
		deck:   d,
		lookup: d.Catalog.QuestionByID(categoryID, questionID),
		pager:  components.NewPager(d.Overscan),
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	if s.lookup.Category == nil {
		return "Question"
	}
	return s.lookup.Category.Name
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "m", Description: "Mastered"},
		{Key: "f", Description: "Favorite"},
		{Key: "n/p", Description: "Next/Prev"},
	}
	if s.lookup.Found() && s.lookup.Question.HasCode() {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Copy code"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// Teardown releases the pager's scroll listeners.
func (s *QuestionScreen) Teardown() {
	s.pager.Close()
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.lookup.Found() {
		return s, nil
	}
	q := s.lookup.Question

	switch kmsg.String() {
	case "m":
		if s.deck.Progress.ToggleMastered(q.ID) {
			s.status = "Marked as mastered"
		} else {
			s.status = "Unmarked mastered"
		}
		return s, nil
	case "f":
		if s.deck.Progress.ToggleFavorite(q.ID) {
			s.status = "Added to favorites"
		} else {
			s.status = "Removed from favorites"
		}
		return s, nil
	case "n", "right":
		return s, s.sibling(true)
	case "p", "left":
		return s, s.sibling(false)
	case "c":
		s.copyCode()
		return s, nil
	}

	if s.pager.Update(msg) {
		s.status = ""
	}
	return s, nil
}

func (s *QuestionScreen) View(width, height int) string {
	if !s.lookup.Found() {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\nQuestion not found")
	}

	q := s.lookup.Question
	cw := max(width-4, 20)

	if cw != s.renderedWidth {
		out, err := render.Markdown(render.AnswerMarkdown(q), cw, render.StyleDark)
		if err != nil {
			s.status = err.Error()
		}
		s.pager.SetLines(render.Lines(out))
		s.renderedWidth = cw
	}

	head := []string{
		"  " + theme.Title.Render(render.Truncate(q.Title, cw)),
		"  " + s.metaLine(q),
		"  " + theme.Divider.Render(strings.Repeat("─", cw)),
	}
	bodyHeight := max(height-len(head)-1, 1)

	var b strings.Builder
	b.WriteString(strings.Join(head, "\n"))
	b.WriteString("\n")
	b.WriteString(s.pager.View(bodyHeight))
	if n := s.pager.LineCount(); n < bodyHeight {
		b.WriteString(strings.Repeat("\n", bodyHeight-n))
	}
	b.WriteString("\n")
	b.WriteString("  " + s.statusLine())
	return b.String()
}

func (s *QuestionScreen) metaLine(q *catalog.Question) string {
	parts := []string{
		lipgloss.NewStyle().Foreground(theme.DifficultyColor(int(q.Difficulty))).Render(q.Difficulty.Label()),
	}
	for _, t := range q.Tags {
		parts = append(parts, theme.Tag.Render(t))
	}
	if s.deck.Progress.IsMastered(q.ID) {
		parts = append(parts, theme.Mastered.Render(theme.MasteredMark+" mastered"))
	}
	if s.deck.Progress.IsFavorite(q.ID) {
		parts = append(parts, theme.Favorite.Render(theme.FavoriteMark+" favorite"))
	}
	pos := fmt.Sprintf("%d/%d", s.lookup.Index+1, len(s.lookup.Category.Questions))
	parts = append(parts, theme.Subtitle.Render(pos))
	return strings.Join(parts, " ")
}

func (s *QuestionScreen) statusLine() string {
	if s.status != "" {
		return theme.Notice.Render(s.status)
	}
	return theme.Hint.Render(fmt.Sprintf("%d%%", s.pager.ScrollPercent()))
}

// sibling replaces this screen with the next or previous question in the
// category. It is a no-op at either end.
func (s *QuestionScreen) sibling(next bool) tea.Cmd {
	prev, nxt := s.deck.Catalog.Neighbors(s.lookup.Category.ID, s.lookup.Question.ID)
	id := prev
	if next {
		id = nxt
	}
	if id == "" {
		if next {
			s.status = "Already at the last question"
		} else {
			s.status = "Already at the first question"
		}
		return nil
	}
	target := New(s.deck, s.lookup.Category.ID, id)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: target}
	}
}

func (s *QuestionScreen) copyCode() {
	q := s.lookup.Question
	if !q.HasCode() {
		s.status = "This question has no code sample"
		return
	}
	if err := clipboardWrite(q.Code); err != nil {
		s.status = fmt.Sprintf("Clipboard copy failed: %v", err)
		return
	}
	s.status = "Code copied to clipboard"
}
