package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/cbm/internal/logging/events"
	"github.com/nikbrunner/cbm/internal/model"
)

// Storage defines the interface for persisting the bookmark catalog.
type Storage interface {
	Load() (*model.Catalog, error)
	Save(catalog *model.Catalog) error
}

// catalogFile is the on-disk layout of the catalog.
type catalogFile struct {
	Vars      map[string]string `yaml:"vars"`
	Cmds      map[string]string `yaml:"cmds"`
	Bookmarks []model.Bookmark  `yaml:"bookmarks"`
}

// YAMLStorage implements Storage using a YAML file.
type YAMLStorage struct {
	path string
}

// NewYAMLStorage creates a new YAMLStorage with the given file path.
func NewYAMLStorage(path string) *YAMLStorage {
	return &YAMLStorage{path: path}
}

// Path returns the storage file path.
func (s *YAMLStorage) Path() string {
	return s.path
}

// Load reads and validates the catalog. A catalog with duplicate bookmark
// names is rejected as a whole.
func (s *YAMLStorage) Load() (*model.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	catalog, err := model.NewCatalog(file.Vars, file.Cmds, file.Bookmarks)
	if err != nil {
		return nil, err
	}

	events.Catalog.Loaded(s.path, len(catalog.Bookmarks), len(catalog.Labels))
	return catalog, nil
}

// Save writes the catalog to the YAML file.
// Creates the directory if it doesn't exist.
func (s *YAMLStorage) Save(catalog *model.Catalog) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file := catalogFile{
		Vars:      catalog.Vars,
		Cmds:      catalog.Cmds,
		Bookmarks: catalog.Bookmarks,
	}
	if file.Bookmarks == nil {
		file.Bookmarks = []model.Bookmark{}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// EnsureExists writes an empty catalog when the file is missing.
// It reports whether a file was created.
func (s *YAMLStorage) EnsureExists() (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}

	if err := s.Save(model.EmptyCatalog()); err != nil {
		return false, fmt.Errorf("create %s: %w", s.path, err)
	}
	events.Catalog.Created(s.path)
	return true, nil
}

// DefaultCatalogPath returns the default catalog path: ~/.config/cbm/bookmarks.yaml
func DefaultCatalogPath() (string, error) {
	return configFile("bookmarks.yaml")
}

func configFile(name string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "cbm", name), nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, rest)
}
