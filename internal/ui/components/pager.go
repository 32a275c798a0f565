package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/vwindow"
)

// Pager scrolls a block of pre-rendered text one line at a time. Only the
// lines inside the viewport are joined on each render.
type Pager struct {
	pane     *ScrollPane
	scroller *vwindow.Scroller[string]
}

// NewPager creates a mounted, empty pager.
func NewPager(overscan int) *Pager {
	p := &Pager{
		pane:     NewScrollPane(),
		scroller: vwindow.NewScroller[string](nil, 1, overscan),
	}
	p.scroller.Mount(p.pane)
	return p
}

// SetLines replaces the content. The scroll position is kept where it
// still fits.
func (p *Pager) SetLines(lines []string) {
	p.scroller.SetItems(lines)
	p.pane.SetContentHeight(len(lines))
}

// LineCount returns the number of content lines.
func (p *Pager) LineCount() int {
	return len(p.scroller.Items())
}

// Pane returns the pager's scroll container.
func (p *Pager) Pane() *ScrollPane {
	return p.pane
}

// Update scrolls on navigation keys and reports whether the key was
// consumed.
func (p *Pager) Update(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	page := max(p.pane.ClientHeight()-1, 1)
	switch kmsg.String() {
	case "up", "k":
		p.pane.ScrollBy(-1)
	case "down", "j":
		p.pane.ScrollBy(1)
	case "pgup", "ctrl+u", "b":
		p.pane.ScrollBy(-page)
	case "pgdown", "ctrl+d", "space":
		p.pane.ScrollBy(page)
	case "home", "g":
		p.pane.ScrollTo(0)
	case "end", "G":
		p.pane.ScrollTo(p.pane.MaxScroll())
	default:
		return false
	}
	return true
}

// View renders the lines inside a viewport of the given height.
func (p *Pager) View(height int) string {
	p.pane.SetHeight(height)
	top := p.pane.ScrollTop()
	viewport := vwindow.Window{Start: top, End: top + height}
	out := make([]string, 0, height)
	for _, it := range p.scroller.VisibleItems() {
		if viewport.Contains(it.Index) {
			out = append(out, it.Value)
		}
	}
	return strings.Join(out, "\n")
}

// ScrollPercent returns how far down the content is scrolled, 0-100.
func (p *Pager) ScrollPercent() int {
	if p.pane.MaxScroll() == 0 {
		return 100
	}
	return p.pane.ScrollTop() * 100 / p.pane.MaxScroll()
}

// Close unmounts the pager from its pane. Safe to call twice.
func (p *Pager) Close() {
	p.scroller.Unmount()
}
