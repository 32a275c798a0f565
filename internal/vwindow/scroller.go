package vwindow

// Container is a scrollable surface a Scroller can be mounted on.
// OnScroll and OnResize register a listener and return a function that
// removes it.
type Container interface {
	ScrollTop() int
	ClientHeight() int
	OnScroll(fn func()) (cancel func())
	OnResize(fn func()) (cancel func())
}

// Scroller keeps a Window in step with a Container. Mount it when the
// container becomes available and Unmount it when the view goes away; a
// mounted Scroller holds a listener on the container until then.
//
// A Scroller is not safe for concurrent use.
type Scroller[T any] struct {
	items      []T
	itemHeight int
	overscan   int

	scrollTop    int
	clientHeight int

	container    Container
	cancelScroll func()
	cancelResize func()

	// OnChange, if set, is called after every scroll or resize
	// notification with the recomputed window.
	OnChange func(Window)
}

// NewScroller returns an unmounted Scroller over items. A negative
// overscan selects DefaultOverscan.
func NewScroller[T any](items []T, itemHeight, overscan int) *Scroller[T] {
	if overscan < 0 {
		overscan = DefaultOverscan
	}
	return &Scroller[T]{
		items:      items,
		itemHeight: itemHeight,
		overscan:   overscan,
	}
}

// Mount attaches the scroller to c and reads its current geometry. A
// scroller already mounted elsewhere is unmounted first.
func (s *Scroller[T]) Mount(c Container) {
	s.Unmount()
	s.container = c
	s.scrollTop = c.ScrollTop()
	s.clientHeight = c.ClientHeight()
	s.cancelScroll = c.OnScroll(s.handleScroll)
	s.cancelResize = c.OnResize(s.handleResize)
}

// Unmount releases both container listeners. It is safe to call on an
// unmounted scroller and more than once. The last observed geometry is
// kept.
func (s *Scroller[T]) Unmount() {
	if s.cancelScroll != nil {
		s.cancelScroll()
		s.cancelScroll = nil
	}
	if s.cancelResize != nil {
		s.cancelResize()
		s.cancelResize = nil
	}
	s.container = nil
}

// Mounted reports whether the scroller is attached to a container.
func (s *Scroller[T]) Mounted() bool {
	return s.container != nil
}

// SetItems replaces the source list.
func (s *Scroller[T]) SetItems(items []T) {
	s.items = items
}

// Items returns the source list.
func (s *Scroller[T]) Items() []T {
	return s.items
}

// Window computes the current render window.
func (s *Scroller[T]) Window() Window {
	return Compute(Params{
		Count:           len(s.items),
		ItemHeight:      s.itemHeight,
		ContainerHeight: s.clientHeight,
		ScrollTop:       s.scrollTop,
		Overscan:        s.overscan,
	})
}

// VisibleItems returns the items in the current window.
func (s *Scroller[T]) VisibleItems() []Item[T] {
	return Visible(s.items, s.Window())
}

func (s *Scroller[T]) handleScroll() {
	if s.container == nil {
		return
	}
	s.scrollTop = s.container.ScrollTop()
	s.notify()
}

func (s *Scroller[T]) handleResize() {
	if s.container == nil {
		return
	}
	s.clientHeight = s.container.ClientHeight()
	s.notify()
}

func (s *Scroller[T]) notify() {
	if s.OnChange != nil {
		s.OnChange(s.Window())
	}
}
