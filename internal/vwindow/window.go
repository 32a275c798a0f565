// Package vwindow computes which slice of a fixed-height list has to be
// rendered to fill a viewport, so long lists cost only what is on screen.
package vwindow

// DefaultOverscan is the number of extra rows rendered above and below the
// viewport.
const DefaultOverscan = 5

// Params are the inputs of a window computation. Units are arbitrary but
// must agree: pixels in a browser, terminal rows here.
type Params struct {
	Count           int // N, number of items
	ItemHeight      int // H, must be > 0
	ContainerHeight int // C, 0 before the first layout
	ScrollTop       int // S
	Overscan        int // M
}

// Window is the index range to render and where to place it.
type Window struct {
	Start       int // first rendered index
	End         int // exclusive
	OffsetY     int // Start * ItemHeight
	TotalHeight int // Count * ItemHeight
}

// Len returns the number of items in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Empty reports whether the window renders nothing.
func (w Window) Empty() bool {
	return w.End <= w.Start
}

// Contains reports whether index i is rendered.
func (w Window) Contains(i int) bool {
	return i >= w.Start && i < w.End
}

// Compute returns the render window for p. It is O(1) in Count.
//
// A non-positive ItemHeight is a caller bug; Compute returns the zero
// Window for it instead of dividing by zero. Negative heights, offsets and
// overscan are treated as zero. When ScrollTop runs past the end of the
// list, Start is clamped so that Start <= End.
func Compute(p Params) Window {
	if p.ItemHeight <= 0 || p.Count <= 0 {
		return Window{}
	}
	h := p.ItemHeight
	s := max(p.ScrollTop, 0)
	c := max(p.ContainerHeight, 0)
	m := max(p.Overscan, 0)

	end := min(p.Count, ceilDiv(s+c, h)+m)
	start := min(max(0, s/h-m), end)

	return Window{
		Start:       start,
		End:         end,
		OffsetY:     start * h,
		TotalHeight: p.Count * h,
	}
}

// Item is an element of a visible slice paired with its index in the
// full list.
type Item[T any] struct {
	Index int
	Value T
}

// Visible returns the items inside w. The result never references more
// than w.Len() elements regardless of len(items).
func Visible[T any](items []T, w Window) []Item[T] {
	start := min(max(w.Start, 0), len(items))
	end := min(max(w.End, start), len(items))
	out := make([]Item[T], 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, Item[T]{Index: i, Value: items[i]})
	}
	return out
}

// ceilDiv returns ceil(a/b) for a >= 0, b > 0.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
