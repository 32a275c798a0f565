package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// ProgressBar displays a horizontal completion bar with an optional label
// and a done/total counter.
type ProgressBar struct {
	Label      string
	LabelWidth int // pad the label so stacked bars line up; 0 to not pad
	Done       int
	Total      int
	Width      int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, done, total, width int) ProgressBar {
	return ProgressBar{
		Label: label,
		Done:  done,
		Total: total,
		Width: width,
	}
}

// Percent returns Done/Total in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		label := p.Label
		if pad := p.LabelWidth - lipgloss.Width(label); pad > 0 {
			label += strings.Repeat(" ", pad)
		}
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(label) + "  "
	}

	counter := fmt.Sprintf("  %d/%d %3d%%", p.Done, p.Total, int(p.Percent()*100))

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)

	return result
}

// ASCIIBar renders a plain text bar such as "[#####-----]" for output that
// is not a terminal UI.
func ASCIIBar(done, total, width int) string {
	p := ProgressBar{Done: done, Total: total}
	filled := int(float64(width) * p.Percent())
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
