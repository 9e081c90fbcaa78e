package todo

import "errors"

var (
	// ErrInvalidStatus indicates a status string outside the closed set.
	ErrInvalidStatus = errors.New("invalid task status")
	// ErrSelfDependency indicates a task listing its own id as a dependency.
	ErrSelfDependency = errors.New("task cannot depend on itself")
)
