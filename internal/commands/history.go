package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/cbm/internal/storage"
)

func addHistory(topLevel *cobra.Command, o *Options) {
	limit := 20
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recently delivered commands.",
		Example: `
cbm history
cbm history -n 5
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.NewHistoryStore(o.Config.History)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No history yet")
				return nil
			}

			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{
					e.UsedAt.Local().Format("2006-01-02 15:04"),
					e.Bookmark,
					e.Target,
					strings.ReplaceAll(strings.TrimSuffix(e.Command, "\n"), "\\\n", ""),
				}
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Used", "Bookmark", "Sent to", "Command").
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show.")

	topLevel.AddCommand(cmd)
}
