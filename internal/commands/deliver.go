package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/cbm/internal/deliver"
	"github.com/nikbrunner/cbm/internal/logging"
	"github.com/nikbrunner/cbm/internal/model"
	"github.com/nikbrunner/cbm/internal/storage"
)

// deliverCommand sends the resolved text of b to the configured output and
// records it in the history.
func deliverCommand(cmd *cobra.Command, o *Options, b model.Bookmark, text string) error {
	mode, err := deliver.ParseMode(o.Config.Output)
	if err != nil {
		return err
	}

	where, err := deliver.New(mode, o.Config.Target, cmd.OutOrStdout()).Deliver(text)
	if err != nil {
		return fmt.Errorf("deliver %s: %w", b.Name, err)
	}
	if where != string(deliver.ModeStdout) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Sent '%s' to %s\n", b.Name, where)
	}

	entry := model.NewHistoryEntry(b.Name, text)
	entry.Target = where
	if err := recordHistory(o.Config.History, entry); err != nil {
		// Non-fatal: the command has been delivered
		logging.Error(fmt.Errorf("record history: %w", err))
	}
	return nil
}

func recordHistory(path string, entry model.HistoryEntry) error {
	store, err := storage.NewHistoryStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(entry)
}
