// Package quiz holds the quiz screens: the range picker, the run itself and
// the summary shown when a run ends.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/deck"
	qz "github.com/abhisek/prepdeck/internal/quiz"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// PickerScreen lets the user choose which questions to quiz on.
type PickerScreen struct {
	deck    *deck.Deck
	options []qz.Option
	menu    components.Menu
	notice  string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen.
func New(d *deck.Deck) *PickerScreen {
	s := &PickerScreen{deck: d}
	s.refresh()
	return s
}

func (s *PickerScreen) Init() tea.Cmd {
	return nil
}

func (s *PickerScreen) Title() string {
	return "Quiz"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose range"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// refresh rebuilds the menu from current progress, keeping the selection.
func (s *PickerScreen) refresh() {
	selected := s.menu.Selected
	s.options = qz.Options(s.deck.Catalog, s.deck.Progress)

	items := make([]components.MenuItem, len(s.options))
	for i, opt := range s.options {
		r := opt.Range
		items[i] = components.MenuItem{
			Label:  opt.Label,
			Hint:   fmt.Sprintf("%d questions", opt.Count),
			Action: func() tea.Cmd { return s.start(r) },
		}
	}
	s.menu = components.NewMenu(items)
	if selected < len(items) {
		s.menu.Selected = selected
	}
}

func (s *PickerScreen) start(r qz.Range) tea.Cmd {
	sel, err := qz.Resolve(s.deck.Catalog, s.deck.Progress, r)
	if err != nil {
		s.notice = err.Error()
		return nil
	}
	if sel.Len() == 0 {
		s.notice = fmt.Sprintf("%s has no questions right now", sel.Label)
		return nil
	}
	s.notice = ""
	run := newRunScreen(s.deck, sel)
	return func() tea.Msg { return router.PushScreenMsg{Screen: run} }
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *PickerScreen) View(width, height int) string {
	s.refresh()

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(components.SectionTitle("Pick a range", cw))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())
	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render(s.notice))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}
