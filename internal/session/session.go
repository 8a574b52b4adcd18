// Package session holds the picker state: the bookmark and label lists, the
// active view, the filter text and mode. Every operation runs to completion
// before the next one; a reload swaps in freshly built lists in one step.
package session

import (
	"errors"
	"unicode"

	"github.com/nikbrunner/cbm/internal/filter"
	"github.com/nikbrunner/cbm/internal/list"
	"github.com/nikbrunner/cbm/internal/logging/events"
	"github.com/nikbrunner/cbm/internal/model"
	"github.com/nikbrunner/cbm/internal/resolve"
)

// ErrNoSelection is returned when there is no bookmark to resolve.
var ErrNoSelection = errors.New("no bookmark selected")

// Options controls filtering behaviour.
type Options struct {
	IgnoreCase bool
	// AutodetectFilterMode switches to id filtering when the first typed
	// character is a digit, and back to name filtering otherwise.
	AutodetectFilterMode bool
}

// Session is the state behind the picker screens.
type Session struct {
	opts      Options
	catalog   *model.Catalog
	resolver  *resolve.Resolver
	bookmarks *list.Manager[model.Bookmark]
	labels    *list.Manager[model.Label]

	view     View
	mode     filter.Mode
	filter   string
	showDesc bool
}

// New creates a Session over catalog, starting in the bookmarks view.
func New(catalog *model.Catalog, opts Options) *Session {
	s := &Session{opts: opts, view: ViewBookmarks}
	s.load(catalog)
	return s
}

func (s *Session) load(catalog *model.Catalog) {
	if catalog == nil {
		catalog = model.EmptyCatalog()
	}
	s.catalog = catalog
	s.resolver = resolve.New(catalog)
	s.bookmarks = list.New(catalog.Bookmarks)
	s.labels = list.New(catalog.Labels)
}

// Reload replaces the catalog. The filter text is cleared and both
// selections reset; the filter mode and view are kept.
func (s *Session) Reload(catalog *model.Catalog) {
	s.load(catalog)
	s.filter = ""
	s.apply()
}

// Catalog returns the loaded catalog.
func (s *Session) Catalog() *model.Catalog { return s.catalog }

// View returns the active view.
func (s *Session) View() View { return s.view }

// Mode returns the active filter mode.
func (s *Session) Mode() filter.Mode { return s.mode }

// Filter returns the filter text.
func (s *Session) Filter() string { return s.filter }

// ShowDescription reports whether bookmarks are listed by description.
func (s *Session) ShowDescription() bool { return s.showDesc }

// IgnoreCase reports whether name and label matching ignore case.
func (s *Session) IgnoreCase() bool { return s.opts.IgnoreCase }

// Bookmarks returns the bookmark list.
func (s *Session) Bookmarks() *list.Manager[model.Bookmark] { return s.bookmarks }

// Labels returns the label list.
func (s *Session) Labels() *list.Manager[model.Label] { return s.labels }

// SetFilter replaces the filter text, mode and case sensitivity and
// recomputes the active list.
func (s *Session) SetFilter(text string, mode filter.Mode, ignoreCase bool) {
	s.filter = text
	s.mode = mode
	s.opts.IgnoreCase = ignoreCase
	s.apply()
}

func (s *Session) apply() {
	switch s.view {
	case ViewBookmarks:
		s.bookmarks.ApplyFilter(filter.NewBookmarkFilter(s.mode, s.filter, s.opts.IgnoreCase))
		events.Filter.Applied(s.view.String(), s.filter, s.bookmarks.Len())
	case ViewLabels:
		s.labels.ApplyFilter(filter.NewLabelFilter(s.mode, s.filter, s.opts.IgnoreCase))
		events.Filter.Applied(s.view.String(), s.filter, s.labels.Len())
	}
}

// AppendFilter adds r to the filter text. In id mode only digits are
// accepted and the text may not start with zero. It reports whether the
// filter changed.
func (s *Session) AppendFilter(r rune) bool {
	if !s.view.Filterable() {
		return false
	}

	isDigit := r >= '0' && r <= '9'
	if s.opts.AutodetectFilterMode && s.filter == "" {
		if isDigit {
			s.mode = filter.ModeID
		} else if s.mode == filter.ModeID {
			s.mode = filter.ModeName
		}
	}

	if s.mode == filter.ModeID {
		if !isDigit || (s.filter == "" && r == '0') {
			return false
		}
	} else if !unicode.IsPrint(r) {
		return false
	}

	s.filter += string(r)
	events.Filter.Append(s.view.String(), s.filter)
	s.apply()
	return true
}

// Backspace removes the last rune of the filter text.
func (s *Session) Backspace() bool {
	if !s.view.Filterable() {
		return false
	}
	if s.filter != "" {
		runes := []rune(s.filter)
		s.filter = string(runes[:len(runes)-1])
	}
	events.Filter.Backspace(s.view.String(), s.filter)
	s.apply()
	return true
}

// SwitchFilterMode toggles target on, or back to name filtering when it is
// already active. Label filtering only exists in the bookmarks view.
func (s *Session) SwitchFilterMode(target filter.Mode) bool {
	switch {
	case target == filter.ModeLabel && s.view != ViewBookmarks:
		return false
	case !s.view.Filterable():
		return false
	}
	s.mode = s.mode.SwitchTo(target)
	events.Filter.Mode(s.view.String(), s.mode.String())
	s.apply()
	return true
}

// SetView activates v. The filter mode falls back to name filtering and the
// current filter text is applied to the new view's list.
func (s *Session) SetView(v View) bool {
	if v == s.view {
		return false
	}
	s.view = v
	s.mode = filter.ModeName
	events.App.View(v.String())
	s.apply()
	return true
}

// NextView activates the following view.
func (s *Session) NextView() { s.SetView(s.view.Next()) }

// PrevView activates the preceding view.
func (s *Session) PrevView() { s.SetView(s.view.Prev()) }

// SelectDown moves the cursor of the active list down.
func (s *Session) SelectDown() bool {
	switch s.view {
	case ViewBookmarks:
		return s.bookmarks.SelectDown()
	case ViewLabels:
		return s.labels.SelectDown()
	}
	return false
}

// SelectUp moves the cursor of the active list up.
func (s *Session) SelectUp() bool {
	switch s.view {
	case ViewBookmarks:
		return s.bookmarks.SelectUp()
	case ViewLabels:
		return s.labels.SelectUp()
	}
	return false
}

// ResetSelection moves both cursors to the first entry.
func (s *Session) ResetSelection() {
	s.bookmarks.ResetSelection()
	s.labels.ResetSelection()
}

// VisibleWindow returns the viewport of the active list.
func (s *Session) VisibleWindow(rows, reservedRows int) list.Window {
	switch s.view {
	case ViewBookmarks:
		return s.bookmarks.Window(rows, reservedRows)
	case ViewLabels:
		return s.labels.Window(rows, reservedRows)
	}
	return list.Window{}
}

// SelectedBookmark returns the bookmark under the cursor.
func (s *Session) SelectedBookmark() (model.Bookmark, bool) {
	return s.bookmarks.Selected()
}

// ResolveSelected resolves the selected bookmark into its final command.
func (s *Session) ResolveSelected(defaultExec bool) (string, error) {
	b, ok := s.bookmarks.Selected()
	if !ok {
		return "", ErrNoSelection
	}
	cmd, err := s.resolver.Resolve(b, defaultExec)
	if err != nil {
		events.Resolve.Error(b.Name, err)
		return "", err
	}
	events.Resolve.Success(b.Name, len(cmd))
	return cmd, nil
}

// ChooseLabel shows the bookmarks carrying the selected label. The label
// name becomes the filter text and descriptions are turned off.
func (s *Session) ChooseLabel() bool {
	if s.view != ViewLabels {
		return false
	}
	name := ""
	if l, ok := s.labels.Selected(); ok {
		name = l.Name
	}
	s.view = ViewBookmarks
	s.mode = filter.ModeLabel
	s.filter = name
	s.showDesc = false
	events.App.View(s.view.String())
	s.apply()
	return true
}

// ToggleDescription switches the bookmark list between names and
// descriptions.
func (s *Session) ToggleDescription() bool {
	if s.view != ViewBookmarks {
		return false
	}
	s.showDesc = !s.showDesc
	return true
}
