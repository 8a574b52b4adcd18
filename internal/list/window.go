package list

import "iter"

// Window is the inclusive range of filtered positions visible on screen.
// HiddenAbove and HiddenBelow count the entries outside of it.
type Window struct {
	Begin       int
	End         int
	HiddenAbove int
	HiddenBelow int
}

// Window computes the viewport for a screen of totalRows rows, of which
// reservedRows are used by headers and footers. The selection is pinned to
// the last visible row once it moves past the first page.
func (m *Manager[T]) Window(totalRows, reservedRows int) Window {
	height := totalRows - reservedRows
	if height < 0 {
		height = 0
	}

	var w Window
	if m.cursor >= height {
		w.Begin = m.cursor + 1 - height
		w.End = m.cursor
	} else {
		w.Begin = 0
		w.End = height - 1
	}

	w.HiddenAbove = w.Begin
	if n := len(m.filtered); n > w.End+1 {
		w.HiddenBelow = n - 1 - w.End
	}
	return w
}

// Height returns the number of rows the window spans.
func (w Window) Height() int {
	if w.End < w.Begin {
		return 0
	}
	return w.End - w.Begin + 1
}

// Visible yields the (position, entity) pairs inside w.
func (m *Manager[T]) Visible(w Window) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for pos, item := range m.All() {
			if pos < w.Begin {
				continue
			}
			if pos > w.End {
				return
			}
			if !yield(pos, item) {
				return
			}
		}
	}
}
