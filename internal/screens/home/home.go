package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/category"
	"github.com/abhisek/prepdeck/internal/screens/profile"
	quizscreen "github.com/abhisek/prepdeck/internal/screens/quiz"
	"github.com/abhisek/prepdeck/internal/screens/search"
	"github.com/abhisek/prepdeck/internal/stats"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deck *deck.Deck
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(d *deck.Deck) *HomeScreen {
	h := &HomeScreen{deck: d}
	h.refresh()
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// refresh rebuilds the menu so category counts follow progress. The
// selection is kept.
func (h *HomeScreen) refresh() {
	selected := h.menu.Selected
	sum := stats.Summarize(h.deck.Catalog, h.deck.Progress)

	items := make([]components.MenuItem, 0, len(sum.Categories)+4)
	for _, cs := range sum.Categories {
		id := cs.Category.ID
		label := cs.Category.Name
		if cs.Category.Icon != "" {
			label = cs.Category.Icon + " " + label
		}
		items = append(items, components.MenuItem{
			Label: label,
			Hint:  fmt.Sprintf("%d/%d", cs.Mastered, cs.Total),
			Action: func() tea.Cmd {
				return push(category.New(h.deck, id))
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "Quiz", Hint: "step through a range", Action: func() tea.Cmd {
			return push(quizscreen.New(h.deck))
		}},
		components.MenuItem{Label: "Search", Hint: "/", Action: func() tea.Cmd {
			return push(search.New(h.deck))
		}},
		components.MenuItem{Label: "Profile", Action: func() tea.Cmd {
			return push(profile.New(h.deck))
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	if selected < len(items) {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Search"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "/" {
		return h, push(search.New(h.deck))
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()
	sum := stats.Summarize(h.deck.Catalog, h.deck.Progress)
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Front-end Interview Deck")
	tagline := theme.Subtitle.Render(fmt.Sprintf("%d questions in %d categories", sum.Total, len(sum.Categories)))

	overall := components.NewProgressBar("Mastered", sum.Mastered, sum.Total, cw-6)

	var sections []string
	sections = append(sections, title+"\n"+tagline)
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		sections = append(sections, components.Card(overall.View(), cw))
	}
	sections = append(sections, components.SectionTitle("Categories", cw)+"\n"+h.menu.View())

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return components.Centered(content, width, height)
}
