package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/cbm/internal/logging"
	"github.com/nikbrunner/cbm/internal/session"
	"github.com/nikbrunner/cbm/internal/storage"
	"github.com/nikbrunner/cbm/internal/tui"
)

// runUI runs the full interactive picker.
func runUI(cmd *cobra.Command, o *Options) error {
	cfg := o.Config
	st, err := o.catalogStorage()
	if err != nil {
		return err
	}

	// A broken catalog or keybinding is shown inside the picker, which can
	// then be used to edit and reload the file.
	catalog, loadErr := st.Load()
	if loadErr != nil {
		loadErr = fmt.Errorf("load %s: %w", st.Path(), loadErr)
		logging.Error(loadErr)
	}
	keys, keyErr := tui.NewKeyMap(cfg.Bindings)
	if keyErr != nil {
		logging.Error(keyErr)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	changes, err := storage.Watch(ctx, st.Path())
	if err != nil {
		logging.Error(fmt.Errorf("watch %s: %w", st.Path(), err))
	}

	s := session.New(catalog, session.Options{
		IgnoreCase:           cfg.IgnoreCase,
		AutodetectFilterMode: cfg.AutodetectFilterMode,
	})
	app := tui.NewApp(tui.AppParams{
		Session: s,
		Loader:  st,
		Changes: changes,
		Keys:    &keys,
		Exec:    cfg.Exec,
		Err:     errors.Join(loadErr, keyErr),
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	finalApp := finalModel.(tui.App)
	text, b, ok := finalApp.Result()
	if !ok {
		return nil
	}
	return deliverCommand(cmd, o, b, text)
}
