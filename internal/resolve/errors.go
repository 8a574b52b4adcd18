package resolve

import "fmt"

// BookmarkNotFoundError is returned when a bookmark reference names no bookmark.
type BookmarkNotFoundError struct {
	Name string
}

func (e *BookmarkNotFoundError) Error() string {
	return fmt.Sprintf("bookmark '%s' not found", e.Name)
}

// MacroNotFoundError is returned when a macro reference names no shared command.
type MacroNotFoundError struct {
	Key string
}

func (e *MacroNotFoundError) Error() string {
	return fmt.Sprintf("command key '%s' not found in cmds", e.Key)
}

// CircularDependencyError is returned when a bookmark is expanded twice in
// one resolution.
type CircularDependencyError struct {
	Name string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected for bookmark '%s'", e.Name)
}

// TemplateError wraps a template parse or render failure.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template rendering error: %v", e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
