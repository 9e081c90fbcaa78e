package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/emereole/taskdeck/internal/repository"
)

// KVStore implements repository.KeyValueStore on top of a single SQLite
// table. One string value per key; the whole application state is a handful
// of entries.
type KVStore struct {
	db *DB
}

// NewKVStore creates a new SQLite-backed key-value store
func NewKVStore(db *DB) *KVStore {
	return &KVStore{db: db}
}

// Get returns the value stored under key, or repository.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading key %q: %w", key, repository.ErrStorageUnavailable)
	}
	return value, nil
}

// Set writes value under key, overwriting any prior contents.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, repository.ErrStorageUnavailable)
	}
	return nil
}

// Delete removes the entry under key. Deleting a missing key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, repository.ErrStorageUnavailable)
	}
	return nil
}
