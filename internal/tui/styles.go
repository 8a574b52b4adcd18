package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	Label        lipgloss.Style // "Mode:", "Search", "All:" captions
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Counter      lipgloss.Style // "+ N more" indicators
	Error        lipgloss.Style
	TableHeader  lipgloss.Style
	TableCell    lipgloss.Style
	TableBorder  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	warn := lipgloss.AdaptiveColor{Light: "#8A6A00", Dark: "#D7AF5F"}    // counters, selection

	return Styles{
		Label: lipgloss.NewStyle().
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		ItemSelected: lipgloss.NewStyle().
			Foreground(warn).
			Reverse(true),

		Counter: lipgloss.NewStyle().
			Foreground(warn).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D75F5F")),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),

		TableCell: lipgloss.NewStyle().
			Foreground(primary).
			Padding(0, 1),

		TableBorder: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
