package search

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/catalog"
	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/render"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/question"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

const maxKeywordLen = 64

// SearchScreen filters the whole catalog by title or tag as the user types.
type SearchScreen struct {
	deck    *deck.Deck
	input   components.TextInput
	list    *components.VirtualList[catalog.Match]
	keyword string
}

var _ screen.Screen = (*SearchScreen)(nil)
var _ screen.KeyHintProvider = (*SearchScreen)(nil)
var _ screen.Teardowner = (*SearchScreen)(nil)

// New creates a SearchScreen with an empty query.
func New(d *deck.Deck) *SearchScreen {
	return &SearchScreen{
		deck:  d,
		input: components.NewTextInput("/ ", "closure, Promise, flex...", maxKeywordLen),
		list:  components.NewVirtualList[catalog.Match](nil, d.Overscan),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SearchScreen) Title() string {
	return "Search"
}

func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Filter"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

// Teardown releases the result list's scroll listeners.
func (s *SearchScreen) Teardown() {
	s.list.Close()
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "down", "pgup", "pgdown":
			s.list.Update(msg)
			return s, nil
		case "enter":
			m, ok := s.list.Selected()
			if !ok {
				return s, nil
			}
			target := question.New(s.deck, m.Category.ID, m.Question.ID)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: target} }
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := s.input.Value(); v != s.keyword {
		s.keyword = v
		s.list.SetItems(s.deck.Catalog.Search(v))
	}
	return s, cmd
}

func (s *SearchScreen) View(width, height int) string {
	s.input.SetWidth(max(width-8, 10))

	var b strings.Builder
	b.WriteString("  " + s.input.View())
	b.WriteString("\n")

	var status string
	switch {
	case strings.TrimSpace(s.keyword) == "":
		status = "Type a keyword to search titles and tags"
	case s.list.Len() == 0:
		status = fmt.Sprintf("No questions match %q", s.keyword)
	default:
		status = fmt.Sprintf("%d results", s.list.Len())
	}
	b.WriteString("  " + theme.Hint.Render(status))
	b.WriteString("\n\n")

	b.WriteString(s.list.View(width, max(height-3, 1), s.renderRow))
	return b.String()
}

func (s *SearchScreen) renderRow(m catalog.Match, _ int, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = theme.Selected.Render(theme.CursorMark) + " "
	}
	mark := " "
	if s.deck.Progress.IsMastered(m.Question.ID) {
		mark = theme.Mastered.Render(theme.MasteredMark)
	}

	cat := theme.Subtitle.Render(render.Truncate(m.Category.Name, 14))
	prefix := "  " + cursor + mark + " "
	titleWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(cat)-4, 8)

	title := render.Truncate(m.Question.Title, titleWidth)
	if selected {
		title = theme.Selected.Render(title)
	} else {
		title = theme.Unselected.Render(title)
	}
	return prefix + lipgloss.NewStyle().Width(titleWidth).Render(title) + "  " + cat
}
