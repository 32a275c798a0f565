package app

import (
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/router"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/screens/home"
	"github.com/abhisek/prepdeck/internal/screens/welcome"
	"github.com/abhisek/prepdeck/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// LogFile receives the standard logger while the TUI owns the terminal.
	// Empty leaves the standard logger as it is.
	LogFile string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deck   *deck.Deck
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen, behind the
// welcome splash when splash is set.
func newAppModel(d *deck.Deck, splash bool) AppModel {
	var root screen.Screen = home.New(d)
	if splash {
		root = welcome.New(func() screen.Screen { return home.New(d) },
			d.Catalog.TotalCount(), len(d.Catalog.Categories()))
	}
	return AppModel{
		deck:   d,
		router: router.New(root),
	}
}

// firstRun reports whether nothing has been recorded yet.
func firstRun(d *deck.Deck) bool {
	return d.Progress.LastVisit() == "" && d.History.Count() == 0
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.HeaderStats{
		Mastered:  m.deck.Progress.MasteredCount(),
		Total:     m.deck.Catalog.TotalCount(),
		Favorites: m.deck.Progress.FavoritesCount(),
	}, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program over d. Every screen still on the stack
// is torn down when the program exits.
func Run(d *deck.Deck, opts Options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "prepdeck")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	}

	m := newAppModel(d, firstRun(d))
	defer m.router.Close()

	log.Printf("starting with %d questions, %d mastered", d.Catalog.TotalCount(), d.Progress.MasteredCount())
	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
