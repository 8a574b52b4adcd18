// Package resolve expands a bookmark's command lines into one shell command.
//
// Each command line is either a handlebars template, a reference to another
// bookmark ("bookmark::<name>") or a reference to a shared command
// ("cmd::<key>"). Referenced bookmarks inherit the referencing bookmark's
// variables. Resolved lines are joined with a shell line continuation.
package resolve

import (
	"maps"
	"strings"

	"github.com/aymerick/raymond"
	"github.com/nikbrunner/cbm/internal/model"
)

const (
	BookmarkPrefix = "bookmark::"
	MacroPrefix    = "cmd::"

	// Separator joins resolved lines into a single continued command.
	Separator = " \\\n&& "
)

// Resolver resolves bookmarks against one catalog.
type Resolver struct {
	catalog *model.Catalog
}

// New creates a Resolver for catalog.
func New(catalog *model.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve expands b into its final command. A trailing newline is appended
// when the bookmark (or defaultExec, if the bookmark does not say) asks for
// the command to be submitted.
func (r *Resolver) Resolve(b model.Bookmark, defaultExec bool) (string, error) {
	visited := make(map[string]struct{})
	cmd, err := r.expand(b, visited)
	if err != nil {
		return "", err
	}

	exec := defaultExec
	if b.Exec != nil {
		exec = *b.Exec
	}
	if exec {
		cmd += "\n"
	}
	return cmd, nil
}

// expand resolves every line of b. visited spans the whole Resolve call, so
// a bookmark may only be expanded once even across unrelated branches.
func (r *Resolver) expand(b model.Bookmark, visited map[string]struct{}) (string, error) {
	if _, ok := visited[b.Name]; ok {
		return "", &CircularDependencyError{Name: b.Name}
	}
	visited[b.Name] = struct{}{}

	lines := make([]string, 0, len(b.Cmds))
	for _, cmd := range b.Cmds {
		line, err := r.expandLine(b, cmd, visited)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, Separator), nil
}

func (r *Resolver) expandLine(b model.Bookmark, cmd string, visited map[string]struct{}) (string, error) {
	if name, ok := strings.CutPrefix(cmd, BookmarkPrefix); ok {
		dep, found := r.catalog.BookmarkByName(name)
		if !found {
			return "", &BookmarkNotFoundError{Name: name}
		}
		dep = dep.Clone()
		maps.Copy(dep.Vars, b.Vars)
		return r.expand(dep, visited)
	}

	if key, ok := strings.CutPrefix(cmd, MacroPrefix); ok {
		tpl, found := r.catalog.Macro(key)
		if !found {
			return "", &MacroNotFoundError{Key: key}
		}
		return r.render(tpl, b)
	}

	return r.render(cmd, b)
}

func (r *Resolver) render(tpl string, b model.Bookmark) (string, error) {
	vars := make(map[string]string, len(r.catalog.Vars)+len(b.Vars))
	maps.Copy(vars, r.catalog.Vars)
	maps.Copy(vars, b.Vars)

	out, err := raymond.Render(tpl, vars)
	if err != nil {
		return "", &TemplateError{Template: tpl, Err: err}
	}
	return strings.TrimSpace(out), nil
}
