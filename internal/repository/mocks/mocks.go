package mocks

import (
	"context"

	"github.com/emereole/taskdeck/internal/domain/todo"
	"github.com/stretchr/testify/mock"
)

// Gateway is a mock for todo.Gateway.
type Gateway struct {
	mock.Mock
}

func (m *Gateway) Load(ctx context.Context) ([]todo.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]todo.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Gateway) Save(ctx context.Context, projects []todo.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

func (m *Gateway) ClearReminder(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// KeyValueStore is a mock for repository.KeyValueStore.
type KeyValueStore struct {
	mock.Mock
}

func (m *KeyValueStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *KeyValueStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *KeyValueStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
