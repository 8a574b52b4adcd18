package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/cbm/internal/model"
	"github.com/nikbrunner/cbm/internal/picker"
	"github.com/nikbrunner/cbm/internal/resolve"
	"github.com/nikbrunner/cbm/internal/search"
)

// runQuickSearch fuzzy searches the bookmark names and delivers the chosen
// bookmark. A picker is shown only when the match is ambiguous.
func runQuickSearch(cmd *cobra.Command, o *Options, args []string) error {
	query := strings.Join(args, " ")

	st, err := o.catalogStorage()
	if err != nil {
		return err
	}
	catalog, err := st.Load()
	if err != nil {
		return fmt.Errorf("load %s: %w", st.Path(), err)
	}

	results := search.FuzzySearchBookmarks(catalog, query)
	if len(results) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "No bookmarks found for '%s'\n", query)
		return nil
	}

	var chosen model.Bookmark
	if exact, ok := search.ExactMatch(results, query); ok {
		chosen = exact.Bookmark
	} else if len(results) == 1 {
		chosen = results[0].Bookmark
	} else {
		program := tea.NewProgram(picker.New(results, query), tea.WithOutput(cmd.ErrOrStderr()))
		finalModel, err := program.Run()
		if err != nil {
			return fmt.Errorf("run picker: %w", err)
		}

		finalPicker := finalModel.(picker.Picker)
		b, ok := finalPicker.SelectedBookmark()
		if !ok {
			return nil
		}
		chosen = b
	}

	text, err := resolve.New(catalog).Resolve(chosen, o.Config.Exec)
	if err != nil {
		return fmt.Errorf("generate command: %w", err)
	}
	return deliverCommand(cmd, o, chosen, text)
}
