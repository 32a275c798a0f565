package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestBarHeights(t *testing.T) {
	header := RenderHeader("JavaScript", HeaderStats{Mastered: 3, Total: 21, Favorites: 2}, 100)
	if h := lipgloss.Height(header); h != HeaderHeight {
		t.Errorf("header height = %d, want %d", h, HeaderHeight)
	}
	for _, want := range []string{"prepdeck", "JavaScript", "3/21", "2"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}

	hints := []KeyHint{{"↑↓", "Navigate"}, {"Enter", "Open"}, {"m", "Mastered"}, {"f", "Favorite"}, {"Esc", "Back"}}
	footer := RenderFooter(hints, MinWidth)
	if h := lipgloss.Height(footer); h != FooterHeight {
		t.Errorf("footer height = %d at minimum width, want %d", h, FooterHeight)
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Home", HeaderStats{}, 80)
	footer := RenderFooter([]KeyHint{{"Esc", "Back"}}, 80)

	frame := RenderFrame(header, "one\ntwo", footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}

	// Content taller than the body is clipped, not pushed past the footer.
	tall := strings.Repeat("row\n", 50)
	if h := lipgloss.Height(RenderFrame(header, tall, footer, 80, 24)); h != 24 {
		t.Errorf("frame height with tall content = %d, want 24", h)
	}
}

func TestMinSizeMessage(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || IsTooSmall(MinWidth, MinHeight) {
		t.Error("IsTooSmall boundary is wrong")
	}
	msg := RenderMinSizeMessage(50, 12)
	if !strings.Contains(msg, "This one is 50×12") {
		t.Errorf("unexpected message:\n%s", msg)
	}
}
