// Package shortlist persists the set of posting ids the user has flagged.
//
// The set lives in a single key of a local SQLite key-value table, stored
// as a JSON-encoded array. It is advisory local state: the in-memory set is
// the source of truth for the session, and persistence failures are logged
// and otherwise ignored.
package shortlist

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	_ "modernc.org/sqlite"
)

// storeKey is the fixed key the JSON-encoded id array lives under.
const storeKey = "shortlist"

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store holds the shortlisted posting ids.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
	ids    map[string]struct{}
}

// Open opens or creates the store at path and loads the persisted set. A
// corrupt or unreadable persisted value degrades to an empty set.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open shortlist db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init shortlist schema: %w", err)
	}

	s := &Store{db: db, logger: logger, ids: make(map[string]struct{})}
	s.load()
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) load() {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", storeKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		s.logger.Warn("shortlist load failed, starting empty", "error", err)
		return
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Warn("shortlist value corrupt, starting empty", "error", err)
		return
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Contains reports whether id is shortlisted.
func (s *Store) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// IDs returns the shortlisted ids in sorted order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Toggle flips the shortlist state of id, persists the new set, and returns
// the state after the flip. A persistence failure leaves the in-memory set
// authoritative for the rest of the session.
func (s *Store) Toggle(id string) bool {
	var now bool
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
		now = true
	}

	if err := s.persist(); err != nil {
		s.logger.Warn("shortlist persist failed, keeping in-memory state", "id", id, "error", err)
	}
	return now
}

func (s *Store) persist() error {
	raw, err := json.Marshal(s.IDs())
	if err != nil {
		return fmt.Errorf("encode shortlist: %w", err)
	}
	_, err = s.db.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		storeKey, string(raw))
	if err != nil {
		return fmt.Errorf("write shortlist: %w", err)
	}
	return nil
}
