package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/nikbrunner/cbm/internal/storage"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	PrevView      key.Binding
	NextView      key.Binding
	BookmarksView key.Binding
	LabelsView    key.Binding
	UsageView     key.Binding
	Enter         key.Binding
	Backspace     key.Binding
	Quit          key.Binding

	// Configurable
	Edit              key.Binding
	Reload            key.Binding
	SwitchFilterLabel key.Binding
	SwitchFilterID    key.Binding
	Describe          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	km, _ := NewKeyMap(storage.DefaultBindings())
	return km
}

// NewKeyMap builds a KeyMap with the configurable bindings taken from b.
// When any binding is malformed the defaults are returned with the error.
func NewKeyMap(b storage.Bindings) (KeyMap, error) {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("Up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("Tab|Down", "move down"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("Left", "previous view"),
		),
		NextView: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("Right", "next view"),
		),
		BookmarksView: key.NewBinding(
			key.WithKeys("alt+1"),
			key.WithHelp("Alt 1", "bookmarks view"),
		),
		LabelsView: key.NewBinding(
			key.WithKeys("alt+2"),
			key.WithHelp("Alt 2", "labels view"),
		),
		UsageView: key.NewBinding(
			key.WithKeys("alt+3"),
			key.WithHelp("Alt 3", "usage view"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("Backspace", "delete character"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc|Ctrl c", "quit"),
		),
	}

	configurable := []struct {
		target  *key.Binding
		binding string
		help    string
		name    string
	}{
		{&km.Edit, b.Edit, "edit bookmarks", storage.KeyBindEdit},
		{&km.Reload, b.Reload, "reload bookmarks", storage.KeyBindReload},
		{&km.SwitchFilterLabel, b.SwitchFilterLabel, "filter by label", storage.KeyBindSwitchFilterLabel},
		{&km.SwitchFilterID, b.SwitchFilterID, "filter by id", storage.KeyBindSwitchFilterID},
		{&km.Describe, b.Describe, "show descriptions", storage.KeyBindDescribe},
	}
	for _, c := range configurable {
		keys, err := ParseBinding(c.binding)
		if err != nil {
			defaults, _ := NewKeyMap(storage.DefaultBindings())
			return defaults, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.target = key.NewBinding(key.WithKeys(keys), key.WithHelp(c.binding, c.help))
	}
	return km, nil
}

// ParseBinding converts a binding written as "<Modifier> <char>", such as
// "Ctrl e" or "Alt x", to a bubbletea key string.
func ParseBinding(binding string) (string, error) {
	parts := strings.Fields(binding)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid keybinding format: %q", binding)
	}

	var modifier string
	switch strings.ToLower(parts[0]) {
	case "ctrl":
		modifier = "ctrl"
	case "alt":
		modifier = "alt"
	default:
		return "", fmt.Errorf("unknown modifier %q in keybinding %q", parts[0], binding)
	}

	char := []rune(parts[1])
	if len(char) != 1 {
		return "", fmt.Errorf("keybinding %q must end in a single character", binding)
	}
	r := char[0]
	if modifier == "ctrl" {
		r = []rune(strings.ToLower(string(r)))[0]
	}
	return modifier + "+" + string(r), nil
}
