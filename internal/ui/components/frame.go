package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// ContentWidth returns the inner width shared by stacked cards so their
// borders line up.
func ContentWidth(frameWidth int) int {
	// border (2) + padding (4)
	return min(max(frameWidth-6, 20), 72)
}

// Card wraps content in a rounded border at the given content width.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

// SectionTitle renders a bold heading followed by a rule of width w.
func SectionTitle(title string, w int) string {
	rule := strings.Repeat("─", max(w-lipgloss.Width(title)-1, 0))
	return theme.Title.Render(title) + " " + theme.Divider.Render(rule)
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
