package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nikbrunner/cbm/internal/model"
)

const currentSchemaVersion = 2

// timeLayout has a fixed width so that stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// HistoryStore records delivered commands in a SQLite database.
type HistoryStore struct {
	db   *sql.DB
	path string
}

// NewHistoryStore opens (and migrates) the history database at path.
func NewHistoryStore(path string) (*HistoryStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &HistoryStore{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *HistoryStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the schema version recorded in the database.
func (s *HistoryStore) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

// migrate runs database migrations.
func (s *HistoryStore) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	if version < currentSchemaVersion {
		if err := s.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema.
func (s *HistoryStore) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS history (
			id TEXT PRIMARY KEY NOT NULL,
			bookmark TEXT NOT NULL,
			command TEXT NOT NULL,
			used_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_history_used_at ON history(used_at);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// migrateV2 adds the delivery target column.
func (s *HistoryStore) migrateV2() error {
	migration := `
		ALTER TABLE history ADD COLUMN target TEXT NOT NULL DEFAULT '';
		UPDATE schema_version SET version = 2;
	`
	_, err := s.db.Exec(migration)
	return err
}

// Record stores one history entry.
func (s *HistoryStore) Record(entry model.HistoryEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO history (id, bookmark, command, target, used_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Bookmark, entry.Command, entry.Target, entry.UsedAt.UTC().Format(timeLayout))
	return err
}

// Recent returns up to limit entries, newest first.
func (s *HistoryStore) Recent(limit int) ([]model.HistoryEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, bookmark, command, target, used_at
		FROM history
		ORDER BY used_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.HistoryEntry{}
	for rows.Next() {
		var e model.HistoryEntry
		var usedAtStr string
		if err := rows.Scan(&e.ID, &e.Bookmark, &e.Command, &e.Target, &usedAtStr); err != nil {
			return nil, err
		}
		e.UsedAt, err = time.Parse(timeLayout, usedAtStr)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// DefaultHistoryPath returns the default history path: ~/.config/cbm/history.db
func DefaultHistoryPath() (string, error) {
	return configFile("history.db")
}
