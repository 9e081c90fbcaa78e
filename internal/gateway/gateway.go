package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/emereole/taskdeck/internal/domain/todo"
	"github.com/emereole/taskdeck/internal/repository"
)

// Storage keys. ProjectsKey holds the JSON-encoded project list; RemindersKey
// holds a task-id to last-due-soon-fired (unix millis, nullable) map.
const (
	ProjectsKey  = "todo-app"
	RemindersKey = "reminders"
)

// ProjectGateway persists the full project list as a single JSON string under
// a fixed key in a key-value store.
type ProjectGateway struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// New creates a gateway over the given store.
func New(store repository.KeyValueStore, logger *slog.Logger) *ProjectGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectGateway{store: store, logger: logger}
}

// Load returns the stored project list. A missing entry or malformed stored
// value yields an empty list, never an error; only store unavailability
// propagates.
func (g *ProjectGateway) Load(ctx context.Context) ([]todo.Project, error) {
	raw, err := g.store.Get(ctx, ProjectsKey)
	if errors.Is(err, repository.ErrNotFound) {
		return []todo.Project{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}

	var projects []todo.Project
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		g.logger.Warn("stored project data is malformed, starting empty", "error", err)
		return []todo.Project{}, nil
	}
	if projects == nil {
		projects = []todo.Project{}
	}
	return projects, nil
}

// Save serializes the full project list, overwriting prior contents.
func (g *ProjectGateway) Save(ctx context.Context, projects []todo.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("encoding projects: %w", err)
	}
	if err := g.store.Set(ctx, ProjectsKey, string(data)); err != nil {
		return fmt.Errorf("saving projects: %w", err)
	}
	return nil
}

// ClearReminder resets the reminder dedup entry for a task to unset, making a
// changed due date immediately eligible for a fresh due-soon notification.
func (g *ProjectGateway) ClearReminder(ctx context.Context, taskID string) error {
	state, err := g.loadReminderState(ctx)
	if err != nil {
		return err
	}
	state[taskID] = nil

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding reminder state: %w", err)
	}
	if err := g.store.Set(ctx, RemindersKey, string(data)); err != nil {
		return fmt.Errorf("saving reminder state: %w", err)
	}
	return nil
}

// ReminderState returns the persisted reminder dedup map.
func (g *ProjectGateway) ReminderState(ctx context.Context) (map[string]*int64, error) {
	return g.loadReminderState(ctx)
}

func (g *ProjectGateway) loadReminderState(ctx context.Context) (map[string]*int64, error) {
	raw, err := g.store.Get(ctx, RemindersKey)
	if errors.Is(err, repository.ErrNotFound) {
		return map[string]*int64{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading reminder state: %w", err)
	}

	var state map[string]*int64
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		g.logger.Warn("stored reminder state is malformed, starting empty", "error", err)
		return map[string]*int64{}, nil
	}
	if state == nil {
		state = map[string]*int64{}
	}
	return state, nil
}
