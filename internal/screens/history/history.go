package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/deck"
	"github.com/abhisek/prepdeck/internal/progress"
	"github.com/abhisek/prepdeck/internal/render"
	"github.com/abhisek/prepdeck/internal/screen"
	"github.com/abhisek/prepdeck/internal/ui/components"
	"github.com/abhisek/prepdeck/internal/ui/layout"
	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// detailHeight is the number of lines under the list used for the selected
// entry.
const detailHeight = 4

// HistoryScreen displays past quiz runs, newest first.
type HistoryScreen struct {
	deck       *deck.Deck
	list       *components.VirtualList[progress.Entry]
	newest     string // ID of the first entry when the list was loaded
	confirming bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.Teardowner = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(d *deck.Deck) *HistoryScreen {
	entries := d.History.Entries()
	return &HistoryScreen{
		deck:   d,
		list:   components.NewVirtualList(entries, d.Overscan),
		newest: newestID(entries),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "y", Description: "Clear history"},
			{Key: "n", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "x", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

// Teardown releases the list's scroll listeners.
func (s *HistoryScreen) Teardown() {
	s.list.Close()
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		switch kmsg.String() {
		case "y", "Y":
			s.deck.History.Clear()
			s.reload()
		}
		s.confirming = false
		return s, nil
	}

	switch kmsg.String() {
	case "x":
		if s.list.Len() > 0 {
			s.confirming = true
		}
		return s, nil
	}
	s.list.Update(msg)
	return s, nil
}

// reload picks up entries written since the screen was created.
func (s *HistoryScreen) reload() {
	entries := s.deck.History.Entries()
	s.list.SetItems(entries)
	s.newest = newestID(entries)
}

func newestID(entries []progress.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].ID
}

func (s *HistoryScreen) View(width, height int) string {
	if newestID(s.deck.History.Entries()) != s.newest {
		s.reload()
	}
	if s.list.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")
	listHeight := max(height-detailHeight-2, 1)
	b.WriteString(s.list.View(width, listHeight, renderRow))
	if n := min(s.list.Len(), listHeight); n < listHeight {
		b.WriteString(strings.Repeat("\n", listHeight-n))
	}
	b.WriteString("\n")

	if s.confirming {
		b.WriteString("\n  " + theme.Warning.Render(
			fmt.Sprintf("Delete all %d history entries? (y/n)", s.list.Len())))
		return b.String()
	}
	if e, ok := s.list.Selected(); ok {
		b.WriteString("  " + theme.Divider.Render(strings.Repeat("─", max(width-4, 10))))
		b.WriteString("\n")
		b.WriteString(detail(e))
	}
	return b.String()
}

func renderRow(e progress.Entry, _ int, selected bool, width int) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	date := e.StartTime.Local().Format("Jan 02, 2006 15:04")
	line := fmt.Sprintf("%s%s  %-6s  %d/%d viewed  %d mastered  %s",
		prefix, date, duration(e), e.ViewedCount, e.TotalCount, e.MasteredCount, e.RangeLabel)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(render.Truncate(line, width))
}

func detail(e progress.Entry) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := []string{
		fmt.Sprintf("  Range     %s (%s)", e.RangeLabel, e.Range),
		fmt.Sprintf("  Started   %s", e.StartTime.Local().Format("2006-01-02 15:04:05")),
		fmt.Sprintf("  Finished  %s", e.EndTime.Local().Format("2006-01-02 15:04:05")),
	}
	return dim.Render(strings.Join(lines, "\n"))
}

func duration(e progress.Entry) string {
	d := e.Duration()
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
