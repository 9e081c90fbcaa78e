package mcp

import (
	"errors"
	"fmt"

	"github.com/emereole/taskdeck/internal/domain/todo"
	"github.com/emereole/taskdeck/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Not-found mutations never
// reach here; the service treats unknown ids as silent no-ops.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, todo.ErrInvalidStatus):
		return &APIError{Code: "INVALID_STATUS", Message: "status must be todo, inprogress, or done"}
	case errors.Is(err, todo.ErrSelfDependency):
		return &APIError{Code: "SELF_DEPENDENCY", Message: "a task cannot depend on itself"}
	case errors.Is(err, repository.ErrStorageUnavailable):
		return &APIError{Code: "STORAGE_UNAVAILABLE", Message: "persistent store is unavailable", RecoveryHint: "Check the database path and free space"}
	default:
		return err
	}
}

func errInvalidInput(msg string) error {
	return &APIError{Code: "INVALID_INPUT", Message: msg}
}

func errNotFound(msg string) error {
	return &APIError{Code: "NOT_FOUND", Message: msg, RecoveryHint: "Call list_projects to see current ids"}
}
