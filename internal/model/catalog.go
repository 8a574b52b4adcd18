package model

import "fmt"

// Catalog holds the global variables, the shared command macros and the bookmarks.
// A Catalog is never mutated after construction; reloads build a new one.
type Catalog struct {
	Vars      map[string]string
	Cmds      map[string]string
	Bookmarks []Bookmark
	Labels    []Label
}

// DuplicateNamesError rejects a catalog whose bookmark names are not unique.
type DuplicateNamesError struct {
	Count int
	Names []string
}

func (e *DuplicateNamesError) Error() string {
	return fmt.Sprintf("duplicate bookmark names: %d", e.Count)
}

// NewCatalog validates the bookmarks and builds a Catalog.
// Bookmark ids are assigned from their position (1-based) and labels are
// derived in first-seen order. Any duplicate name rejects the whole catalog.
func NewCatalog(vars, cmds map[string]string, bookmarks []Bookmark) (*Catalog, error) {
	seen := make(map[string]struct{}, len(bookmarks))
	var dups []string
	result := make([]Bookmark, 0, len(bookmarks))

	for i, b := range bookmarks {
		if _, ok := seen[b.Name]; ok {
			dups = append(dups, b.Name)
			continue
		}
		seen[b.Name] = struct{}{}
		b = b.Clone()
		b.ID = i + 1
		result = append(result, b)
	}

	if len(dups) > 0 {
		return nil, &DuplicateNamesError{Count: len(dups), Names: dups}
	}

	if vars == nil {
		vars = map[string]string{}
	}
	if cmds == nil {
		cmds = map[string]string{}
	}

	return &Catalog{
		Vars:      vars,
		Cmds:      cmds,
		Bookmarks: result,
		Labels:    deriveLabels(result),
	}, nil
}

// EmptyCatalog returns a valid catalog with no bookmarks.
func EmptyCatalog() *Catalog {
	c, _ := NewCatalog(nil, nil, nil)
	return c
}

func deriveLabels(bookmarks []Bookmark) []Label {
	seen := make(map[string]struct{})
	var labels []Label
	for _, b := range bookmarks {
		for _, name := range b.Labels {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			labels = append(labels, Label{ID: len(labels) + 1, Name: name})
		}
	}
	return labels
}

// BookmarkByName returns the bookmark with the given name.
func (c *Catalog) BookmarkByName(name string) (Bookmark, bool) {
	for _, b := range c.Bookmarks {
		if b.Name == name {
			return b, true
		}
	}
	return Bookmark{}, false
}

// BookmarksWithLabel returns the bookmarks carrying label, in catalog order.
func (c *Catalog) BookmarksWithLabel(label string) []Bookmark {
	var result []Bookmark
	for _, b := range c.Bookmarks {
		if b.HasLabel(label) {
			result = append(result, b)
		}
	}
	return result
}

// Macro returns the shared command template stored under key.
func (c *Catalog) Macro(key string) (string, bool) {
	tpl, ok := c.Cmds[key]
	return tpl, ok
}
