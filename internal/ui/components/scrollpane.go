package components

import "github.com/abhisek/prepdeck/internal/vwindow"

// ScrollPane is a terminal viewport measured in rows. It implements
// vwindow.Container: the owning screen reports its height on every render
// and moves the scroll position on key presses, and mounted scrollers are
// notified of both.
type ScrollPane struct {
	top           int
	height        int
	contentHeight int

	nextID   int
	onScroll []listener
	onResize []listener
}

type listener struct {
	id int
	fn func()
}

var _ vwindow.Container = (*ScrollPane)(nil)

// NewScrollPane returns an unmeasured pane with no content.
func NewScrollPane() *ScrollPane {
	return &ScrollPane{}
}

func (p *ScrollPane) ScrollTop() int    { return p.top }
func (p *ScrollPane) ClientHeight() int { return p.height }

func (p *ScrollPane) OnScroll(fn func()) func() {
	return p.add(&p.onScroll, fn)
}

func (p *ScrollPane) OnResize(fn func()) func() {
	return p.add(&p.onResize, fn)
}

// Listeners returns the number of registered scroll and resize listeners.
func (p *ScrollPane) Listeners() int {
	return len(p.onScroll) + len(p.onResize)
}

// SetHeight records the visible height. Resize listeners run when it
// changes.
func (p *ScrollPane) SetHeight(h int) {
	h = max(h, 0)
	if h == p.height {
		return
	}
	p.height = h
	fire(p.onResize)
	p.ScrollTo(p.top)
}

// SetContentHeight records the total number of rows and clamps the scroll
// position to it.
func (p *ScrollPane) SetContentHeight(n int) {
	p.contentHeight = max(n, 0)
	p.ScrollTo(p.top)
}

// MaxScroll returns the largest valid scroll position.
func (p *ScrollPane) MaxScroll() int {
	return max(p.contentHeight-p.height, 0)
}

// ScrollTo moves the top row to top, clamped to the content. Scroll
// listeners run when the position changes.
func (p *ScrollPane) ScrollTo(top int) {
	top = min(max(top, 0), p.MaxScroll())
	if top == p.top {
		return
	}
	p.top = top
	fire(p.onScroll)
}

// ScrollBy moves the scroll position by delta rows.
func (p *ScrollPane) ScrollBy(delta int) {
	p.ScrollTo(p.top + delta)
}

// EnsureVisible scrolls the minimum distance that brings row into view.
func (p *ScrollPane) EnsureVisible(row int) {
	if p.height <= 0 {
		return
	}
	if row < p.top {
		p.ScrollTo(row)
	} else if row >= p.top+p.height {
		p.ScrollTo(row - p.height + 1)
	}
}

func (p *ScrollPane) add(set *[]listener, fn func()) func() {
	id := p.nextID
	p.nextID++
	*set = append(*set, listener{id: id, fn: fn})
	return func() {
		for i, l := range *set {
			if l.id == id {
				*set = append((*set)[:i], (*set)[i+1:]...)
				return
			}
		}
	}
}

// fire runs a snapshot of ls so listeners may cancel themselves.
func fire(ls []listener) {
	for _, l := range append([]listener(nil), ls...) {
		l.fn()
	}
}
