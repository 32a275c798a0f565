package vwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContainer struct {
	top, height int
	scroll      map[int]func()
	resize      map[int]func()
	next        int
}

func newFakeContainer(height int) *fakeContainer {
	return &fakeContainer{
		height: height,
		scroll: make(map[int]func()),
		resize: make(map[int]func()),
	}
}

func (f *fakeContainer) ScrollTop() int    { return f.top }
func (f *fakeContainer) ClientHeight() int { return f.height }

func (f *fakeContainer) OnScroll(fn func()) func() {
	return f.listen(f.scroll, fn)
}

func (f *fakeContainer) OnResize(fn func()) func() {
	return f.listen(f.resize, fn)
}

func (f *fakeContainer) listen(set map[int]func(), fn func()) func() {
	id := f.next
	f.next++
	set[id] = fn
	return func() { delete(set, id) }
}

func (f *fakeContainer) scrollTo(top int) {
	f.top = top
	for _, fn := range f.scroll {
		fn()
	}
}

func (f *fakeContainer) resizeTo(h int) {
	f.height = h
	for _, fn := range f.resize {
		fn()
	}
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestScrollerFollowsContainer(t *testing.T) {
	c := newFakeContainer(500)
	s := NewScroller(numbers(1000), 50, 5)

	var changes []Window
	s.OnChange = func(w Window) { changes = append(changes, w) }

	s.Mount(c)
	assert.Equal(t, Window{Start: 0, End: 15, OffsetY: 0, TotalHeight: 50000}, s.Window())

	c.scrollTo(1000)
	assert.Equal(t, Window{Start: 15, End: 35, OffsetY: 750, TotalHeight: 50000}, s.Window())

	c.resizeTo(1000)
	assert.Equal(t, 45, s.Window().End)

	require.Len(t, changes, 2)
	assert.Equal(t, 35, changes[0].End)
	assert.Equal(t, 45, changes[1].End)

	visible := s.VisibleItems()
	require.Len(t, visible, 30)
	assert.Equal(t, 15, visible[0].Index)
	assert.Equal(t, 15, visible[0].Value)
}

func TestScrollerUnmountReleasesListeners(t *testing.T) {
	c := newFakeContainer(100)
	s := NewScroller(numbers(100), 10, 0)

	s.Mount(c)
	assert.True(t, s.Mounted())
	assert.Len(t, c.scroll, 1)
	assert.Len(t, c.resize, 1)

	s.Unmount()
	assert.False(t, s.Mounted())
	assert.Empty(t, c.scroll)
	assert.Empty(t, c.resize)

	// Events after unmount no longer reach the scroller.
	before := s.Window()
	c.scrollTo(500)
	assert.Equal(t, before, s.Window())

	assert.NotPanics(t, s.Unmount)
}

func TestScrollerRemountMovesListeners(t *testing.T) {
	a := newFakeContainer(100)
	b := newFakeContainer(30)
	s := NewScroller(numbers(100), 10, 0)

	s.Mount(a)
	s.Mount(b)
	assert.Empty(t, a.scroll)
	assert.Empty(t, a.resize)
	assert.Len(t, b.scroll, 1)
	assert.Equal(t, 3, s.Window().End)
}

func TestScrollerUnmeasuredContainer(t *testing.T) {
	c := newFakeContainer(0)
	s := NewScroller(numbers(10), 1, 0)
	s.Mount(c)
	assert.True(t, s.Window().Empty())

	c.resizeTo(4)
	assert.Equal(t, 4, s.Window().Len())
}

func TestScrollerSetItems(t *testing.T) {
	c := newFakeContainer(10)
	s := NewScroller(numbers(100), 1, -1)
	s.Mount(c)
	assert.Equal(t, 10+DefaultOverscan, s.Window().End)

	s.SetItems(numbers(3))
	assert.Equal(t, 3, s.Window().End)
	assert.Len(t, s.VisibleItems(), 3)
	assert.Len(t, s.Items(), 3)
}
