package filter

import (
	"strconv"
	"strings"

	"github.com/nikbrunner/cbm/internal/model"
)

// Filter decides whether an entity stays in the filtered view.
type Filter[T any] interface {
	Keep(T) bool
}

// Func adapts a plain function to the Filter interface.
type Func[T any] func(T) bool

// Keep implements Filter.
func (f Func[T]) Keep(t T) bool { return f(t) }

// BookmarkFilter matches bookmarks by name, id or label.
type BookmarkFilter struct {
	mode       Mode
	text       string
	ignoreCase bool
}

// NewBookmarkFilter creates a BookmarkFilter.
func NewBookmarkFilter(mode Mode, text string, ignoreCase bool) BookmarkFilter {
	return BookmarkFilter{mode: mode, text: text, ignoreCase: ignoreCase}
}

// Keep implements Filter.
// Label matching is exact; name matching is by substring.
func (f BookmarkFilter) Keep(b model.Bookmark) bool {
	if f.text == "" {
		return true
	}
	switch f.mode {
	case ModeID:
		return matchID(b.ID, f.text)
	case ModeLabel:
		text := fold(f.text, f.ignoreCase)
		for _, label := range b.Labels {
			if fold(label, f.ignoreCase) == text {
				return true
			}
		}
		return false
	default:
		return matchName(b.Name, f.text, f.ignoreCase)
	}
}

// LabelFilter matches labels by name or id. ModeLabel behaves like ModeName.
type LabelFilter struct {
	mode       Mode
	text       string
	ignoreCase bool
}

// NewLabelFilter creates a LabelFilter.
func NewLabelFilter(mode Mode, text string, ignoreCase bool) LabelFilter {
	return LabelFilter{mode: mode, text: text, ignoreCase: ignoreCase}
}

// Keep implements Filter.
func (f LabelFilter) Keep(l model.Label) bool {
	if f.text == "" {
		return true
	}
	if f.mode == ModeID {
		return matchID(l.ID, f.text)
	}
	return matchName(l.Name, f.text, f.ignoreCase)
}

func matchName(name, text string, ignoreCase bool) bool {
	return strings.Contains(fold(name, ignoreCase), fold(text, ignoreCase))
}

func matchID(id int, text string) bool {
	return strings.HasPrefix(strconv.Itoa(id), text)
}

func fold(s string, ignoreCase bool) string {
	if ignoreCase {
		return strings.ToLower(s)
	}
	return s
}
