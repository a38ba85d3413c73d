// Package valuestore persists small per-app records, keyed by app name
// and key, in a local SQLite database. It is the desktop stand-in for the
// badge firmware's settings store.
package valuestore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS records (
	app        TEXT NOT NULL,
	key        TEXT NOT NULL,
	value_json TEXT NOT NULL,
	PRIMARY KEY (app, key)
)`

// Store is a SQLite-backed value store implementing hal.ValueStore.
type Store struct {
	db *sql.DB
}

// Open opens the store at path, creating the database and its table if
// they do not exist yet.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the record stored under app/key into out. It reports false
// with no error when the record does not exist.
func (s *Store) Load(app, key string, out any) (bool, error) {
	row := s.db.QueryRow(`SELECT value_json FROM records WHERE app = ? AND key = ?`, app, key)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("load %s/%s: %w", app, key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s/%s: %w", app, key, err)
	}
	return true, nil
}

// Save upserts the record stored under app/key.
func (s *Store) Save(app, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", app, key, err)
	}
	_, err = s.db.Exec(`INSERT INTO records (app, key, value_json) VALUES (?, ?, ?)
		ON CONFLICT (app, key) DO UPDATE SET value_json = excluded.value_json`, app, key, raw)
	if err != nil {
		return fmt.Errorf("save %s/%s: %w", app, key, err)
	}
	return nil
}
