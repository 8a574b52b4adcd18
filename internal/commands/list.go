package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command, o *Options) {
	labels := false
	long := false
	label := ""
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the bookmarks or labels of the catalog.",
		Example: `
cbm list
cbm list --labels
cbm list --label k8s
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := o.catalogStorage()
			if err != nil {
				return err
			}
			catalog, err := st.Load()
			if err != nil {
				return fmt.Errorf("load %s: %w", st.Path(), err)
			}

			out := cmd.OutOrStdout()
			if labels {
				for _, l := range catalog.Labels {
					fmt.Fprintf(out, "%d. %s\n", l.ID, l.Name)
				}
				return nil
			}

			bookmarks := catalog.Bookmarks
			if label != "" {
				bookmarks = catalog.BookmarksWithLabel(label)
			}
			for _, b := range bookmarks {
				fmt.Fprintf(out, "%d. %s\n", b.ID, b.Name)
				if !long {
					continue
				}
				if b.Desc != "" {
					fmt.Fprintf(out, "   %s\n", b.Desc)
				}
				if len(b.Labels) > 0 {
					fmt.Fprintf(out, "   labels: %s\n", strings.Join(b.Labels, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&labels, "labels", false, "List the labels instead of the bookmarks.")
	cmd.Flags().StringVar(&label, "label", "", "Only list bookmarks carrying this label.")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Include descriptions and labels.")

	topLevel.AddCommand(cmd)
}
