// Package localstore is the device-local persisted key-value store backing
// the bidder identity and the watchlist. Values are flat JSON blobs with no
// schema versioning; every write is synchronous so state survives a reload.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("local key not found")

// Store is a typed JSON key-value store over a local sqlite file.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the local store at the given sqlite
// path. Use "file::memory:" in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open local store %s: %w", path, err)
	}
	// A single connection keeps in-memory databases coherent across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS local_kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init local store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get unmarshals the stored value for key into dst. Returns ErrNotFound if
// the key has never been set or was deleted.
func (s *Store) Get(key string, dst any) error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM local_kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("get %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Set marshals v and writes it under key, replacing any previous value.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.Exec(`INSERT INTO local_kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes a single key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM local_kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Clear removes every stored key. Used on logout.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM local_kv`); err != nil {
		return fmt.Errorf("clear local store: %w", err)
	}
	return nil
}
