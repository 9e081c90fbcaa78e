package repository

import "errors"

var (
	// ErrNotFound is returned when a requested key has no stored value
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned when the underlying store cannot be
	// read or written. Callers are not required to retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
