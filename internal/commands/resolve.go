package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/cbm/internal/resolve"
)

func addResolve(topLevel *cobra.Command, o *Options) {
	send := false
	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Print the resolved command of a bookmark.",
		Example: `
cbm resolve deploy
cbm resolve --exec --send deploy
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			st, err := o.catalogStorage()
			if err != nil {
				return err
			}
			catalog, err := st.Load()
			if err != nil {
				return fmt.Errorf("load %s: %w", st.Path(), err)
			}

			b, ok := catalog.BookmarkByName(name)
			if !ok {
				return &resolve.BookmarkNotFoundError{Name: name}
			}
			text, err := resolve.New(catalog).Resolve(b, o.Config.Exec)
			if err != nil {
				return fmt.Errorf("generate command: %w", err)
			}

			if send {
				return deliverCommand(cmd, o, b, text)
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, text)
			if !strings.HasSuffix(text, "\n") {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&send, "send", false, "Deliver the command like the picker does instead of printing it.")

	topLevel.AddCommand(cmd)
}
