package repository

import "context"

// KeyValueStore is the contract of the persistent key-value store backing the
// gateway. A single string value lives under each key; Set overwrites prior
// contents. Implementations return ErrNotFound from Get when the key has never
// been written, and wrap ErrStorageUnavailable when the store itself fails.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
