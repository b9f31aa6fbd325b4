package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/retrowave-arcade/internal/kv"
)

// KV is the database's key-value table seen as a kv.Store. The SSH server
// keeps its shared leaderboard and per-user settings here.
type KV struct {
	db *sql.DB
}

var _ kv.Store = (*KV)(nil)

// KV returns the key-value view of the database.
func (s *Store) KV() *KV {
	return &KV{db: s.db}
}

// Get returns the value for key. Query failures read as a missing key.
func (k *KV) Get(key string) (string, bool) {
	var value string
	err := k.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores value under key, replacing any previous value.
func (k *KV) Set(key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}
	_, err := k.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (k *KV) Delete(key string) error {
	_, err := k.db.Exec("DELETE FROM kv WHERE key = ?", key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}
