package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/nikbrunner/cbm/internal/logging"
)

// Configuration keys. Environment variables use the CBM_ prefix,
// e.g. CBM_EXEC=true.
const (
	KeyExec                 = "exec"
	KeyIgnoreCase           = "ignore_case"
	KeyAutodetectFilterMode = "autodetect_filter_mode"
	KeyCatalog              = "catalog"
	KeyOutput               = "output"
	KeyTarget               = "target"
	KeyHistory              = "history"
	KeyLogFile              = "log_file"
	KeyTrace                = "trace"

	KeyBindEdit              = "bind_edit"
	KeyBindReload            = "bind_reload"
	KeyBindSwitchFilterLabel = "bind_switch_filter_label"
	KeyBindSwitchFilterID    = "bind_switch_filter_id"
	KeyBindDescribe          = "bind_describe"
)

// Config holds application configuration.
type Config struct {
	Exec                 bool   `mapstructure:"exec"`
	IgnoreCase           bool   `mapstructure:"ignore_case"`
	AutodetectFilterMode bool   `mapstructure:"autodetect_filter_mode"`
	Catalog              string `mapstructure:"catalog"`
	Output               string `mapstructure:"output"`
	Target               string `mapstructure:"target"`
	History              string `mapstructure:"history"`
	LogFile              string `mapstructure:"log_file"`
	Trace                bool   `mapstructure:"trace"`

	Bindings `mapstructure:",squash"`
}

// Bindings holds the configurable keybindings, written as "<Modifier> <char>".
type Bindings struct {
	Edit              string `mapstructure:"bind_edit"`
	Reload            string `mapstructure:"bind_reload"`
	SwitchFilterLabel string `mapstructure:"bind_switch_filter_label"`
	SwitchFilterID    string `mapstructure:"bind_switch_filter_id"`
	Describe          string `mapstructure:"bind_describe"`
}

// DefaultBindings returns the default keybindings.
func DefaultBindings() Bindings {
	return Bindings{
		Edit:              "Ctrl e",
		Reload:            "Ctrl r",
		SwitchFilterLabel: "Ctrl l",
		SwitchFilterID:    "Ctrl t",
		Describe:          "Ctrl d",
	}
}

// NewViper returns a viper instance with the defaults and environment
// lookup in place.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("CBM")
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	catalog, err := DefaultCatalogPath()
	if err != nil {
		catalog = "bookmarks.yaml"
	}
	history, err := DefaultHistoryPath()
	if err != nil {
		history = "history.db"
	}
	bindings := DefaultBindings()

	v.SetDefault(KeyExec, false)
	v.SetDefault(KeyIgnoreCase, true)
	v.SetDefault(KeyAutodetectFilterMode, true)
	v.SetDefault(KeyCatalog, catalog)
	v.SetDefault(KeyOutput, "auto")
	v.SetDefault(KeyTarget, "")
	v.SetDefault(KeyHistory, history)
	v.SetDefault(KeyLogFile, logging.DefaultPath())
	v.SetDefault(KeyTrace, false)

	v.SetDefault(KeyBindEdit, bindings.Edit)
	v.SetDefault(KeyBindReload, bindings.Reload)
	v.SetDefault(KeyBindSwitchFilterLabel, bindings.SwitchFilterLabel)
	v.SetDefault(KeyBindSwitchFilterID, bindings.SwitchFilterID)
	v.SetDefault(KeyBindDescribe, bindings.Describe)
}

// LoadConfig reads config from the YAML file at path into v.
// Creates the file with defaults if it doesn't exist; failing to do so is
// not fatal.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr == nil {
			if saveErr := v.SafeWriteConfigAs(path); saveErr != nil {
				// Non-fatal: continue with defaults even if save fails
				logging.Error(fmt.Errorf("write default config: %w", saveErr))
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	config.Catalog = ExpandHome(config.Catalog)
	config.History = ExpandHome(config.History)
	config.LogFile = ExpandHome(config.LogFile)
	return &config, nil
}

// DefaultConfigFilePath returns the default config path: ~/.config/cbm/config.yaml
func DefaultConfigFilePath() (string, error) {
	return configFile("config.yaml")
}
