package category

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

// CategoryScreen lists the questions of one category.
type CategoryScreen struct {
	deck     *deck.Deck
	category *catalog.Category
	list     *components.VirtualList[*catalog.Question]
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)
var _ screen.Teardowner = (*CategoryScreen)(nil)

// New creates a CategoryScreen. An unknown category shows an empty list.
func New(d *deck.Deck, categoryID string) *CategoryScreen {
	c := d.Catalog.CategoryByID(categoryID)
	var items []*catalog.Question
	if c != nil {
		items = make([]*catalog.Question, len(c.Questions))
		for i := range c.Questions {
			items[i] = &c.Questions[i]
		}
	}
	return &CategoryScreen{
		deck:     d,
		category: c,
		list:     components.NewVirtualList(items, d.Overscan),
	}
}

func (s *CategoryScreen) Init() tea.Cmd {
	return nil
}

func (s *CategoryScreen) Title() string {
	if s.category == nil {
		return "Category"
	}
	return s.category.Name
}

func (s *CategoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "m", Description: "Mastered"},
		{Key: "f", Description: "Favorite"},
		{Key: "Esc", Description: "Back"},
	}
}

// Teardown releases the list's scroll listeners.
func (s *CategoryScreen) Teardown() {
	s.list.Close()
}

func (s *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	q, ok := s.list.Selected()

	switch kmsg.String() {
	case "enter":
		if !ok {
			return s, nil
		}
		target := question.New(s.deck, s.category.ID, q.ID)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: target} }
	case "m":
		if ok {
			s.deck.Progress.ToggleMastered(q.ID)
		}
		return s, nil
	case "f":
		if ok {
			s.deck.Progress.ToggleFavorite(q.ID)
		}
		return s, nil
	}

	s.list.Update(msg)
	return s, nil
}

func (s *CategoryScreen) View(width, height int) string {
	if s.category == nil || s.list.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\nNo questions here yet")
	}

	ids := s.deck.Catalog.QuestionIDs(s.category.ID)
	done := s.deck.Progress.MasteredCountByIDs(ids)

	var b strings.Builder
	if s.category.Description != "" {
		b.WriteString("  " + theme.Subtitle.Render(render.Truncate(s.category.Description, width-4)))
		b.WriteString("\n")
	}
	bar := components.NewProgressBar("Mastered", done, len(ids), min(width-30, 40))
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	used := strings.Count(b.String(), "\n")
	b.WriteString(s.list.View(width, max(height-used, 1), s.renderRow))
	return b.String()
}

func (s *CategoryScreen) renderRow(q *catalog.Question, index int, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = theme.Selected.Render(theme.CursorMark) + " "
	}

	mastered := " "
	if s.deck.Progress.IsMastered(q.ID) {
		mastered = theme.Mastered.Render(theme.MasteredMark)
	}
	fav := " "
	if s.deck.Progress.IsFavorite(q.ID) {
		fav = theme.Favorite.Render(theme.FavoriteMark)
	}

	label, labelWidth := q.Difficulty.Label(), 13
	if layout.IsCompactWidth(width) {
		label, labelWidth = label[:1], 2
	}
	level := lipgloss.NewStyle().
		Width(labelWidth).
		Foreground(theme.DifficultyColor(int(q.Difficulty))).
		Render(label)

	prefix := fmt.Sprintf("  %s%3d. %s %s ", cursor, index+1, mastered, fav)
	titleWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(level)-2, 8)

	title := render.Truncate(q.Title, titleWidth)
	if selected {
		title = theme.Selected.Render(title)
	} else {
		title = theme.Unselected.Render(title)
	}
	titleCell := lipgloss.NewStyle().Width(titleWidth).Render(title)
	return prefix + titleCell + "  " + level
}
