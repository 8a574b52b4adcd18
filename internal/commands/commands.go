package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nikbrunner/cbm/internal/logging"
	"github.com/nikbrunner/cbm/internal/logging/events"
	"github.com/nikbrunner/cbm/internal/storage"
)

// Options is the state shared by every command: the viper instance the
// persistent flags are bound to and the configuration read from it.
type Options struct {
	ConfigPath string
	Config     *storage.Config

	v *viper.Viper
}

func New() *cobra.Command {
	o := &Options{v: storage.NewViper()}

	cmd := &cobra.Command{
		Use:   "cbm [query...]",
		Short: "Pick a shell command bookmark and send it to the terminal.",
		Long: `cbm keeps a catalog of named shell commands ("bookmarks") in a YAML file.
Without arguments it opens an interactive picker. With arguments it fuzzy
searches the bookmark names and delivers the best match.`,
		Example: `
cbm
cbm deploy
cbm --output stdout list pods
`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logging.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runQuickSearch(cmd, o, args)
			}
			return runUI(cmd, o)
		},
	}

	addPersistentFlags(cmd, o)
	AddCommands(cmd, o)
	return cmd
}

func AddCommands(topLevel *cobra.Command, o *Options) {
	addResolve(topLevel, o)
	addList(topLevel, o)
	addInit(topLevel, o)
	addHistory(topLevel, o)
	addVersion(topLevel)
}

func addPersistentFlags(cmd *cobra.Command, o *Options) {
	defaultConfig, err := storage.DefaultConfigFilePath()
	if err != nil {
		defaultConfig = "config.yaml"
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.ConfigPath, "config", defaultConfig, "Path to the config file.")
	flags.String("catalog", "", "Path to the bookmarks file.")
	flags.String("history", "", "Path to the history database.")
	flags.String("log-file", "", "Path to the log file.")
	flags.String("output", "", "Where to send the command. One of auto, tmux, clipboard or stdout.")
	flags.StringP("target", "t", "", "tmux pane to type into.")
	flags.Bool("exec", false, "End the command with a newline so the shell runs it.")
	flags.Bool("trace", false, "Write trace events to the log file.")

	for key, name := range map[string]string{
		storage.KeyCatalog: "catalog",
		storage.KeyHistory: "history",
		storage.KeyLogFile: "log-file",
		storage.KeyOutput:  "output",
		storage.KeyTarget:  "target",
		storage.KeyExec:    "exec",
		storage.KeyTrace:   "trace",
	} {
		_ = o.v.BindPFlag(key, flags.Lookup(name))
	}
}

// load reads the config file and starts logging.
func (o *Options) load() error {
	cfg, err := storage.LoadConfig(o.v, storage.ExpandHome(o.ConfigPath))
	if err != nil {
		return err
	}
	o.Config = cfg

	if err := logging.Configure(cfg.LogFile); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	logging.SetTraceEnabled(cfg.Trace)
	events.App.Start(map[string]any{
		"config":  o.ConfigPath,
		"catalog": cfg.Catalog,
		"output":  cfg.Output,
		"exec":    cfg.Exec,
	})
	return nil
}

// catalogStorage returns the storage of the configured catalog, creating an
// empty catalog file on first use.
func (o *Options) catalogStorage() (*storage.YAMLStorage, error) {
	st := storage.NewYAMLStorage(o.Config.Catalog)
	if _, err := st.EnsureExists(); err != nil {
		return nil, err
	}
	return st, nil
}
