package content

// Pager implements load-more pagination over an already-fetched,
// already-sorted in-memory list. Growing the window never refetches and
// never re-sorts.
type Pager struct {
	total   int
	visible int
	step    int
}

// NewPager shows the first step items of a list with total entries.
func NewPager(total, step int) Pager {
	if step <= 0 {
		step = 1
	}
	if total < 0 {
		total = 0
	}
	return Pager{total: total, visible: min(step, total), step: step}
}

// Visible returns the current window size.
func (p Pager) Visible() int { return p.visible }

// Exhausted reports whether the whole list is already visible.
func (p Pager) Exhausted() bool { return p.visible >= p.total }

// LoadMore grows the window by one step. Once the window covers the whole
// list the call is a no-op, so repeated invocations are safe.
func (p Pager) LoadMore() Pager {
	if p.Exhausted() {
		return p
	}
	p.visible = min(p.visible+p.step, p.total)
	return p
}

// Paginate slices the visible window out of a sorted list, clamping the
// count to the list bounds.
func Paginate[T any](sorted []T, visible int) []T {
	if visible <= 0 {
		return nil
	}
	if visible > len(sorted) {
		visible = len(sorted)
	}
	return sorted[:visible]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
