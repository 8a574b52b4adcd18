package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	List ListConfig
	Text TextConfig
}

// ListConfig holds list screen dimension configuration.
type ListConfig struct {
	// ReservedRows is subtracted from terminal height for list rows.
	// Accounts for: mode (1) + search (1) + top counter (1) + spacer (1) + footer (1) = 5
	ReservedRows int

	// MinRows is the smallest terminal height that can be rendered.
	MinRows int

	// MinCols is the smallest terminal width that can be rendered.
	MinCols int

	// Indent is the left margin of headers and footers.
	Indent int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		List: ListConfig{
			ReservedRows: 5, // mode (1) + search (1) + top counter (1) + spacer (1) + footer (1)
			MinRows:      5,
			MinCols:      12,
			Indent:       2,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
