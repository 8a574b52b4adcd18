package session

// View is one of the screens of the picker.
type View int

const (
	ViewBookmarks View = iota + 1
	ViewLabels
	ViewUsage
)

// ViewByNumber returns the view with the given 1-based number.
func ViewByNumber(n int) (View, bool) {
	v := View(n)
	if v < ViewBookmarks || v > ViewUsage {
		return 0, false
	}
	return v, true
}

// Next returns the following view, wrapping to the first.
func (v View) Next() View {
	if v >= ViewUsage {
		return ViewBookmarks
	}
	return v + 1
}

// Prev returns the preceding view, wrapping to the last.
func (v View) Prev() View {
	if v <= ViewBookmarks {
		return ViewUsage
	}
	return v - 1
}

// Filterable reports whether the view shows a filterable list.
func (v View) Filterable() bool {
	return v == ViewBookmarks || v == ViewLabels
}

func (v View) String() string {
	switch v {
	case ViewBookmarks:
		return "Bookmarks"
	case ViewLabels:
		return "Labels"
	case ViewUsage:
		return "Usage"
	default:
		return "Unknown"
	}
}
