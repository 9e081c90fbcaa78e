package todo_test

import (
	"context"
	"testing"

	"github.com/emereole/taskdeck/internal/domain/todo"
	"github.com/emereole/taskdeck/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_AddProject(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	proj, err := svc.AddProject(ctx, "Launch")
	require.NoError(t, err)
	require.NotEmpty(t, proj.ID)
	require.Equal(t, "Launch", proj.Name)
	require.Empty(t, proj.Tasks)

	gw.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(projects []todo.Project) bool {
		return len(projects) == 1 && projects[0].ID == proj.ID
	}))
}

func TestService_DeleteProject(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{
		{ID: "p1", Name: "Keep"},
		{ID: "p2", Name: "Drop"},
	}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	require.NoError(t, svc.DeleteProject(ctx, "p2"))

	gw.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(projects []todo.Project) bool {
		return len(projects) == 1 && projects[0].ID == "p1"
	}))
}

func TestService_AddTask_ProjectNotFound(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1"}}, nil)

	svc := todo.NewService(gw, nil)
	task := todo.NewTask("orphan", "", "")
	require.NoError(t, svc.AddTask(ctx, "missing", task))

	// Silent no-op: nothing was saved
	gw.AssertNotCalled(t, "Save", ctx, mock.Anything)
}

func TestService_AddTask_NormalizesCompleted(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1"}}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	task := todo.NewTask("ship", "", "")
	task.Status = todo.StatusDone
	task.Completed = false
	require.NoError(t, svc.AddTask(ctx, "p1", task))

	gw.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(projects []todo.Project) bool {
		saved := projects[0].Tasks[0]
		return saved.Completed && saved.Status == todo.StatusDone
	}))
}

func TestService_AddTask_RejectsSelfDependency(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}

	svc := todo.NewService(gw, nil)
	task := todo.NewTask("loop", "", "")
	task.Dependencies = []string{task.ID}
	require.ErrorIs(t, svc.AddTask(ctx, "p1", task), todo.ErrSelfDependency)
}

func TestService_UpdateTask_ClearsReminderState(t *testing.T) {
	ctx := context.Background()
	task := todo.NewTask("Write spec", "", "2025-01-01")
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1", Tasks: []todo.Task{task}}}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)
	gw.On("ClearReminder", ctx, task.ID).Return(nil)

	svc := todo.NewService(gw, nil)
	task.DueDate = "2025-02-01"
	require.NoError(t, svc.UpdateTask(ctx, "p1", task))

	gw.AssertCalled(t, "ClearReminder", ctx, task.ID)
}

func TestService_UpdateTask_NoDueDateSkipsReminderReset(t *testing.T) {
	ctx := context.Background()
	task := todo.NewTask("no deadline", "", "")
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1", Tasks: []todo.Task{task}}}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	task.Title = "renamed"
	require.NoError(t, svc.UpdateTask(ctx, "p1", task))

	gw.AssertNotCalled(t, "ClearReminder", ctx, mock.Anything)
}

func TestService_DeleteTask(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1", Tasks: []todo.Task{
		{ID: "t1"}, {ID: "t2"},
	}}}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	require.NoError(t, svc.DeleteTask(ctx, "p1", "t1"))

	gw.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(projects []todo.Project) bool {
		return len(projects[0].Tasks) == 1 && projects[0].Tasks[0].ID == "t2"
	}))
}

func TestService_SubtaskLifecycle(t *testing.T) {
	ctx := context.Background()
	task := todo.Task{ID: "t1", Title: "parent"}
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1", Tasks: []todo.Task{task}}}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)

	subtask := todo.NewSubtask("step one")
	require.False(t, subtask.Completed, "subtasks start incomplete")
	require.NoError(t, svc.AddSubtask(ctx, "p1", "t1", subtask))
	gw.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(projects []todo.Project) bool {
		subs := projects[0].Tasks[0].Subtasks
		return len(subs) == 1 && subs[0].ID == subtask.ID
	}))

	// Unknown parent task: silent no-op, one save so far
	require.NoError(t, svc.AddSubtask(ctx, "p1", "missing", subtask))
	gw.AssertNumberOfCalls(t, "Save", 1)
}

func TestService_ToggleTracking(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1", Tasks: []todo.Task{
		{ID: "t1", TimeTracked: 42},
	}}}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	require.NoError(t, svc.ToggleTracking(ctx, "p1", "t1"))

	gw.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(projects []todo.Project) bool {
		saved := projects[0].Tasks[0]
		return saved.IsTracking && saved.TimeTracked == 42
	}))
}

func TestService_AccrueTrackedTime(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1", Tasks: []todo.Task{
		{ID: "t1", IsTracking: true, TimeTracked: 10},
		{ID: "t2", TimeTracked: 5},
	}}}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	var changes int
	svc.OnChange(func([]todo.Project) { changes++ })

	require.NoError(t, svc.AccrueTrackedTime(ctx))

	gw.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(projects []todo.Project) bool {
		tasks := projects[0].Tasks
		return tasks[0].TimeTracked == 11 && tasks[1].TimeTracked == 5
	}))
	require.Zero(t, changes, "accrual must not restart reminder polling")
}

func TestService_AccrueTrackedTime_NothingTracking(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{{ID: "p1", Tasks: []todo.Task{{ID: "t1"}}}}, nil)

	svc := todo.NewService(gw, nil)
	require.NoError(t, svc.AccrueTrackedTime(ctx))

	gw.AssertNotCalled(t, "Save", ctx, mock.Anything)
}

// stateGateway is an in-memory Gateway holding the latest saved state.
type stateGateway struct {
	projects []todo.Project
}

func (g *stateGateway) Load(ctx context.Context) ([]todo.Project, error) {
	return g.projects, nil
}

func (g *stateGateway) Save(ctx context.Context, projects []todo.Project) error {
	g.projects = projects
	return nil
}

func (g *stateGateway) ClearReminder(ctx context.Context, taskID string) error {
	return nil
}

func TestService_AccrueTrackedTime_PreservesInterleavedEdits(t *testing.T) {
	ctx := context.Background()
	gw := &stateGateway{projects: []todo.Project{{ID: "p1", Tasks: []todo.Task{
		{ID: "t1", IsTracking: true},
	}}}}
	svc := todo.NewService(gw, nil)

	// an edit lands between ticks; the next accrual reads fresh state, so
	// the edit survives
	added, err := svc.AddProject(ctx, "Launch")
	require.NoError(t, err)
	require.NoError(t, svc.AccrueTrackedTime(ctx))

	projects, err := svc.Projects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, added.ID, projects[1].ID)
	require.Equal(t, int64(1), projects[0].Tasks[0].TimeTracked)
}

func TestService_OnChangeFiresAfterSave(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Load", ctx).Return([]todo.Project{}, nil)
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	var seen [][]todo.Project
	svc.OnChange(func(projects []todo.Project) {
		seen = append(seen, projects)
	})

	_, err := svc.AddProject(ctx, "Launch")
	require.NoError(t, err)
	require.Len(t, seen, 1)
	require.Len(t, seen[0], 1)
}

func TestService_SaveProjects_NormalizesInvariant(t *testing.T) {
	ctx := context.Background()
	gw := &mocks.Gateway{}
	gw.On("Save", ctx, mock.Anything).Return(nil)

	svc := todo.NewService(gw, nil)
	projects := []todo.Project{{ID: "p1", Tasks: []todo.Task{
		{ID: "t1", Status: todo.StatusDone, Completed: false},
		{ID: "t2", Status: todo.StatusTodo, Completed: true},
	}}}
	require.NoError(t, svc.SaveProjects(ctx, projects))

	gw.AssertCalled(t, "Save", ctx, mock.MatchedBy(func(saved []todo.Project) bool {
		return saved[0].Tasks[0].Completed && !saved[0].Tasks[1].Completed
	}))
}
