package model

// Bookmark is a named, reusable shell command template.
type Bookmark struct {
	ID     int               `yaml:"-"`
	Name   string            `yaml:"name"`
	Desc   string            `yaml:"desc,omitempty"`
	Cmds   []string          `yaml:"cmds"`
	Labels []string          `yaml:"labels,omitempty"`
	Vars   map[string]string `yaml:"vars,omitempty"`
	Exec   *bool             `yaml:"exec,omitempty"` // nil = use the configured default
}

// Clone returns a copy that shares no mutable state with b.
func (b Bookmark) Clone() Bookmark {
	dup := b
	dup.Cmds = append([]string(nil), b.Cmds...)
	dup.Labels = append([]string(nil), b.Labels...)
	dup.Vars = make(map[string]string, len(b.Vars))
	for k, v := range b.Vars {
		dup.Vars[k] = v
	}
	if b.Exec != nil {
		exec := *b.Exec
		dup.Exec = &exec
	}
	return dup
}

// HasLabel reports whether the bookmark carries the given label.
func (b Bookmark) HasLabel(label string) bool {
	for _, l := range b.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Label is a distinct label name collected from the catalog's bookmarks.
type Label struct {
	ID   int
	Name string
}
