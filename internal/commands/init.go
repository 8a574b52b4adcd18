package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/cbm/internal/storage"
)

func addInit(topLevel *cobra.Command, o *Options) {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty bookmarks file.",
		Example: `
cbm init
cbm init --catalog ./bookmarks.yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := storage.NewYAMLStorage(o.Config.Catalog)
			created, err := st.EnsureExists()
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", st.Path())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", st.Path())
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
