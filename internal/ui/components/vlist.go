package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepdeck/internal/vwindow"
)

// RowRenderer renders one list row. It must return a single line.
type RowRenderer[T any] func(item T, index int, selected bool, width int) string

// VirtualList is a cursor-driven list that renders only the rows inside
// the scroll window. Each row is one terminal line.
//
// The list is mounted on its pane when created; call Close when the owning
// screen is torn down.
type VirtualList[T any] struct {
	pane     *ScrollPane
	scroller *vwindow.Scroller[T]
	cursor   int
}

// NewVirtualList creates a mounted list over items.
func NewVirtualList[T any](items []T, overscan int) *VirtualList[T] {
	l := &VirtualList[T]{
		pane:     NewScrollPane(),
		scroller: vwindow.NewScroller(items, 1, overscan),
	}
	l.pane.SetContentHeight(len(items))
	l.scroller.Mount(l.pane)
	return l
}

// SetItems replaces the rows and resets the cursor to the top.
func (l *VirtualList[T]) SetItems(items []T) {
	l.scroller.SetItems(items)
	l.pane.SetContentHeight(len(items))
	l.cursor = 0
	l.pane.ScrollTo(0)
}

// Len returns the number of rows.
func (l *VirtualList[T]) Len() int {
	return len(l.scroller.Items())
}

// Cursor returns the selected index.
func (l *VirtualList[T]) Cursor() int {
	return l.cursor
}

// SetCursor selects index i, clamped to the rows.
func (l *VirtualList[T]) SetCursor(i int) {
	l.cursor = min(max(i, 0), max(l.Len()-1, 0))
	l.pane.EnsureVisible(l.cursor)
}

// Selected returns the row under the cursor.
func (l *VirtualList[T]) Selected() (T, bool) {
	items := l.scroller.Items()
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[l.cursor], true
}

// Window returns the current render window.
func (l *VirtualList[T]) Window() vwindow.Window {
	return l.scroller.Window()
}

// Pane returns the list's scroll container.
func (l *VirtualList[T]) Pane() *ScrollPane {
	return l.pane
}

// Update moves the cursor on navigation keys and reports whether the key
// was consumed.
func (l *VirtualList[T]) Update(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}
	page := max(l.pane.ClientHeight()-1, 1)
	switch kmsg.String() {
	case "up", "k":
		l.SetCursor(l.cursor - 1)
	case "down", "j":
		l.SetCursor(l.cursor + 1)
	case "pgup", "ctrl+u":
		l.SetCursor(l.cursor - page)
	case "pgdown", "ctrl+d":
		l.SetCursor(l.cursor + page)
	case "home", "g":
		l.SetCursor(0)
	case "end", "G":
		l.SetCursor(l.Len() - 1)
	default:
		return false
	}
	return true
}

// View renders the rows visible in a viewport of the given size. Overscan
// rows outside the viewport are computed but not printed.
func (l *VirtualList[T]) View(width, height int, render RowRenderer[T]) string {
	l.pane.SetHeight(height)
	l.pane.EnsureVisible(l.cursor)

	if l.Window().Empty() {
		return ""
	}
	top := l.pane.ScrollTop()
	viewport := vwindow.Window{Start: top, End: top + height}
	lines := make([]string, 0, height)
	for _, it := range l.scroller.VisibleItems() {
		if viewport.Contains(it.Index) {
			lines = append(lines, render(it.Value, it.Index, it.Index == l.cursor, width))
		}
	}
	return strings.Join(lines, "\n")
}

// Close unmounts the scroller from its pane. Safe to call twice.
func (l *VirtualList[T]) Close() {
	l.scroller.Unmount()
}
