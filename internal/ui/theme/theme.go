package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette. Dark background, one accent per meaning.
var (
	Primary   = lipgloss.Color("#60A5FA") // Sky
	Secondary = lipgloss.Color("#34D399") // Mint, progress
	Accent    = lipgloss.Color("#FBBF24") // Amber, favorites
	Success   = lipgloss.Color("#22C55E") // Green, mastered
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#E5E7EB")
	TextDim   = lipgloss.Color("#9CA3AF")
	BgDark    = lipgloss.Color("#111827")
	BgCard    = lipgloss.Color("#1F2937")
	Border    = lipgloss.Color("#374151")
)

// Marker glyphs shown next to questions.
const (
	MasteredMark = "✓"
	FavoriteMark = "★"
	CursorMark   = "▸"
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Tag = lipgloss.NewStyle().
		Foreground(Primary).
		Background(BgCard).
		Padding(0, 1)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Divider = lipgloss.NewStyle().
		Foreground(Border)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Mastered = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Favorite = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	Notice = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// DifficultyColor returns the color for a difficulty level 1-3.
func DifficultyColor(level int) color.Color {
	switch level {
	case 1:
		return Success
	case 2:
		return Accent
	case 3:
		return Error
	default:
		return TextDim
	}
}
