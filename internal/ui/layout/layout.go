// Package layout draws the chrome around every screen: the stats header,
// the key-hint footer, and the notice shown when the terminal is too small.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// Terminal sizes. Below MinWidth x MinHeight only the size notice is drawn.
// HeaderHeight and FooterHeight are the rendered heights of the bars.
const (
	MinWidth  = 60
	MinHeight = 18

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint is one "key action" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether list rows should drop their long labels.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight reports whether decorative cards should be hidden.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a request to enlarge it.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("The deck needs a %d×%d terminal.\nThis one is %d×%d.\n\nEnlarge the window to keep studying.",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Align(lipgloss.Center).Render(text))
}

// HeaderStats are the deck-wide counters shown on the right of the header.
type HeaderStats struct {
	Mastered  int
	Total     int
	Favorites int
}

// bar wraps a single line of content in the rounded card used for both the
// header and the footer. The line is clipped to the inner width.
func bar(line string, width int) string {
	inner := max(width-4, 0)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(lipgloss.NewStyle().MaxWidth(inner).Render(line))
}

// RenderHeader draws the brand on the left, the active screen's title in
// the middle and the mastered and favorite counts on the right.
func RenderHeader(title string, stats HeaderStats, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("prepdeck")
	counts := theme.Mastered.Render(fmt.Sprintf("%s %d/%d", theme.MasteredMark, stats.Mastered, stats.Total)) +
		"  " + theme.Favorite.Render(fmt.Sprintf("%s %d", theme.FavoriteMark, stats.Favorites))

	inner := max(width-4, 0)
	side := max(lipgloss.Width(brand), lipgloss.Width(counts))
	middle := max(inner-2*side, 0)

	line := lipgloss.PlaceHorizontal(side, lipgloss.Left, brand) +
		lipgloss.PlaceHorizontal(middle, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(title)) +
		lipgloss.PlaceHorizontal(side, lipgloss.Right, counts)
	return bar(line, width)
}

// RenderFooter draws the key hints, separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	sep := desc.Render("  ·  ")

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(strings.Join(parts, sep), width)
}

// RenderFrame stacks header, content and footer, stretching the content to
// whatever height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).MaxHeight(body).Render(content),
		footer,
	)
}
