package mcp

import (
	"context"
	"testing"

	"github.com/emereole/taskdeck/internal/domain/todo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// serviceMock is a mock for TaskService.
type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) Projects(ctx context.Context) ([]todo.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]todo.Project); ok {
		return projects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) SaveProjects(ctx context.Context, projects []todo.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

func (m *serviceMock) AddProject(ctx context.Context, name string) (*todo.Project, error) {
	args := m.Called(ctx, name)
	if proj, ok := args.Get(0).(*todo.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *serviceMock) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *serviceMock) AddTask(ctx context.Context, projectID string, task todo.Task) error {
	args := m.Called(ctx, projectID, task)
	return args.Error(0)
}

func (m *serviceMock) UpdateTask(ctx context.Context, projectID string, task todo.Task) error {
	args := m.Called(ctx, projectID, task)
	return args.Error(0)
}

func (m *serviceMock) DeleteTask(ctx context.Context, projectID, taskID string) error {
	args := m.Called(ctx, projectID, taskID)
	return args.Error(0)
}

func (m *serviceMock) AddSubtask(ctx context.Context, projectID, taskID string, subtask todo.Subtask) error {
	args := m.Called(ctx, projectID, taskID, subtask)
	return args.Error(0)
}

func (m *serviceMock) UpdateSubtask(ctx context.Context, projectID, taskID string, subtask todo.Subtask) error {
	args := m.Called(ctx, projectID, taskID, subtask)
	return args.Error(0)
}

func (m *serviceMock) DeleteSubtask(ctx context.Context, projectID, taskID, subtaskID string) error {
	args := m.Called(ctx, projectID, taskID, subtaskID)
	return args.Error(0)
}

func (m *serviceMock) ToggleTracking(ctx context.Context, projectID, taskID string) error {
	args := m.Called(ctx, projectID, taskID)
	return args.Error(0)
}

func TestCreateProject_RequiresName(t *testing.T) {
	h := &handlers{svc: &serviceMock{}}

	_, _, err := h.createProject(context.Background(), nil, CreateProjectParams{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "INVALID_INPUT", apiErr.Code)
}

func TestCreateTask_ParsesStatusAndNormalizes(t *testing.T) {
	ctx := context.Background()
	svc := &serviceMock{}
	svc.On("AddTask", ctx, "p1", mock.Anything).Return(nil)

	h := &handlers{svc: svc}
	_, result, err := h.createTask(ctx, nil, CreateTaskParams{
		ProjectID: "p1",
		Title:     "ship it",
		Status:    "done",
	})
	require.NoError(t, err)
	require.Equal(t, todo.StatusDone, result.Task.Status)
	require.True(t, result.Task.Completed)
	require.NotEmpty(t, result.Task.ID)
}

func TestCreateTask_ResolvesDependsOn(t *testing.T) {
	ctx := context.Background()
	svc := &serviceMock{}
	svc.On("Projects", ctx).Return([]todo.Project{{
		ID: "p1",
		Tasks: []todo.Task{
			{ID: "t1", Title: "Design schema"},
			{ID: "t2", Title: "Write migrations"},
		},
	}}, nil)
	svc.On("AddTask", ctx, "p1", mock.Anything).Return(nil)

	h := &handlers{svc: svc}
	_, result, err := h.createTask(ctx, nil, CreateTaskParams{
		ProjectID: "p1",
		Title:     "Ship",
		DependsOn: "design schema, t2, nonexistent",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"t1", "t2"}, result.Task.Dependencies)
}

func TestCreateTask_RejectsUnknownStatus(t *testing.T) {
	h := &handlers{svc: &serviceMock{}}

	_, _, err := h.createTask(context.Background(), nil, CreateTaskParams{
		ProjectID: "p1",
		Title:     "x",
		Status:    "blocked",
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "INVALID_STATUS", apiErr.Code)
}

func TestMoveTask_AppliesBoardMove(t *testing.T) {
	ctx := context.Background()
	svc := &serviceMock{}
	svc.On("Projects", ctx).Return([]todo.Project{{
		ID: "p1",
		Tasks: []todo.Task{
			{ID: "t1", Status: todo.StatusTodo},
			{ID: "d1", Status: todo.StatusDone, Completed: true},
		},
	}}, nil)
	svc.On("SaveProjects", ctx, mock.Anything).Return(nil)

	h := &handlers{svc: svc}
	_, result, err := h.moveTask(ctx, nil, MoveTaskParams{
		ProjectID: "p1",
		TaskID:    "t1",
		ToColumn:  "done",
		Index:     0,
	})
	require.NoError(t, err)
	require.True(t, result.OK)

	svc.AssertCalled(t, "SaveProjects", ctx, mock.MatchedBy(func(projects []todo.Project) bool {
		tasks := projects[0].Tasks
		return len(tasks) == 2 &&
			tasks[0].ID == "t1" && tasks[0].Status == todo.StatusDone && tasks[0].Completed &&
			tasks[1].ID == "d1"
	}))
}

func TestDependencyStatus(t *testing.T) {
	ctx := context.Background()
	svc := &serviceMock{}
	svc.On("Projects", ctx).Return([]todo.Project{{
		ID: "p1",
		Tasks: []todo.Task{
			{ID: "a", Dependencies: []string{"b", "c"}},
			{ID: "b", Status: todo.StatusDone, Completed: true},
			{ID: "c", Status: todo.StatusTodo},
		},
	}}, nil)

	h := &handlers{svc: svc}
	_, result, err := h.dependencyStatus(ctx, nil, DependencyStatusParams{ProjectID: "p1", TaskID: "a"})
	require.NoError(t, err)
	require.Equal(t, []string{"c"}, result.Incomplete)
	require.False(t, result.Met)
}

func TestProjectStats_CountsOverdue(t *testing.T) {
	ctx := context.Background()
	svc := &serviceMock{}
	svc.On("Projects", ctx).Return([]todo.Project{{
		ID: "p1",
		Tasks: []todo.Task{
			{ID: "t1", Status: todo.StatusTodo, DueDate: "2000-01-01"},
			{ID: "t2", Status: todo.StatusDone, Completed: true, DueDate: "2000-01-01"},
			{ID: "t3", Status: todo.StatusTodo},
		},
	}}, nil)

	h := &handlers{svc: svc}
	_, result, err := h.projectStats(ctx, nil, ProjectStatsParams{ProjectID: "p1"})
	require.NoError(t, err)
	require.Equal(t, 3, result.Stats.TotalTasks)
	require.Equal(t, 1, result.Overdue, "completed and undated tasks don't count")
	require.Zero(t, result.DueSoon)
}

func TestProjectStats_UnknownProject(t *testing.T) {
	ctx := context.Background()
	svc := &serviceMock{}
	svc.On("Projects", ctx).Return([]todo.Project{}, nil)

	h := &handlers{svc: svc}
	_, _, err := h.projectStats(ctx, nil, ProjectStatsParams{ProjectID: "ghost"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "NOT_FOUND", apiErr.Code)
}
