package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/history"
	"github.com/abhisek/prepdeck/internal/stats"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// ProfileScreen summarizes study progress per category.
type ProfileScreen struct {
	deck       *deck.Deck
	confirming bool
	notice     string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a new ProfileScreen.
func New(d *deck.Deck) *ProfileScreen {
	return &ProfileScreen{deck: d}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "y", Description: "Reset everything"},
			{Key: "n", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "h", Description: "Quiz history"},
		{Key: "R", Description: "Reset progress"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		s.confirming = false
		switch kmsg.String() {
		case "y", "Y":
			s.deck.Progress.ResetAll()
			s.notice = "All progress and history cleared"
		}
		return s, nil
	}

	switch kmsg.String() {
	case "h", "enter":
		target := history.New(s.deck)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: target} }
	case "R":
		s.confirming = true
		s.notice = ""
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	sum := stats.Summarize(s.deck.Catalog, s.deck.Progress)
	cw := components.ContentWidth(width)

	labelWidth := 0
	for _, c := range sum.Categories {
		labelWidth = max(labelWidth, lipgloss.Width(c.Category.Name))
	}
	labelWidth = min(labelWidth, cw/3)

	var overview strings.Builder
	total := components.NewProgressBar("Mastered", sum.Mastered, sum.Total, cw-6)
	overview.WriteString(total.View())
	overview.WriteString("\n\n")
	overview.WriteString(theme.Favorite.Render(theme.FavoriteMark) +
		theme.Body.Render(fmt.Sprintf(" %d favorites", sum.Favorites)))
	overview.WriteString("    ")
	overview.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d quizzes", s.deck.History.Count())))
	if sum.LastVisit != "" {
		overview.WriteString("    ")
		overview.WriteString(theme.Subtitle.Render("last visit " + sum.LastVisit))
	}

	var cats strings.Builder
	cats.WriteString(components.SectionTitle("Categories", cw))
	for _, c := range sum.Categories {
		bar := components.NewProgressBar(c.Category.Name, c.Mastered, c.Total, cw)
		bar.LabelWidth = labelWidth
		cats.WriteString("\n")
		cats.WriteString(bar.View())
	}

	parts := []string{
		components.Card(overview.String(), cw),
		"",
		cats.String(),
	}
	switch {
	case s.confirming:
		parts = append(parts, "", theme.Warning.Render("Reset all progress and quiz history? (y/n)"))
	case s.notice != "":
		parts = append(parts, "", theme.Notice.Render(s.notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n"+content)
}
