// Package store provides the durable local key-value storage backing the
// tracker. Each state slice is stored under its own key as JSON and loaded
// independently; a missing or unparsable slice falls back to its default
// value rather than failing, since persisted state is advisory.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

// Persisted state keys.
const (
	KeyTransactions    = "transactions"
	KeyReviewQueue     = "reviewQueue"
	KeyCategories      = "categories"
	KeyCategoryBudgets = "categoryBudgets"
	KeyMonthlyIncome   = "MonthlyIncome"
)

var errNotFound = errors.New("key not found")

// Store is a durable key-value store over a local sqlite database.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the sqlite database at path and ensures the
// kv table exists.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Clear removes every persisted key.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv`)
	return err
}

// load reads the value at key into dest. Absent keys and corrupt values leave
// dest at its zero/default value; corruption is logged and recovered, never
// propagated. Decoding goes through a temporary so a value that fails partway
// (valid JSON, wrong shape) never leaks partial data into dest.
func load[T any](s *Store, key string, dest *T) {
	raw, err := s.get(key)
	if errors.Is(err, errNotFound) {
		return
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("reading slice failed, using default")
		return
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt slice, using default")
		return
	}
	*dest = decoded
}

// save writes v to key as JSON, replacing any previous value.
func (s *Store) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(key string) ([]byte, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(raw), nil
}
