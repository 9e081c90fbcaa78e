package mcp

import (
	"context"
	"time"

	"github.com/emereole/taskdeck/internal/domain/board"
	"github.com/emereole/taskdeck/internal/domain/reminder"
	"github.com/emereole/taskdeck/internal/domain/todo"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// handlers binds the tool implementations to a service.
type handlers struct {
	svc TaskService
}

func registerTools(server *sdkmcp.Server, svc TaskService) {
	h := &handlers{svc: svc}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects with their tasks and subtasks",
	}, h.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project with an empty task list",
	}, h.createProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project and all its tasks",
	}, h.deleteProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_task",
		Description: "Add a task to a project; due_date is YYYY-MM-DD (end of day) or an absolute timestamp",
	}, h.createTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task",
		Description: "Replace a task wholesale; a due date change re-arms its due-soon reminder",
	}, h.updateTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task from a project",
	}, h.deleteTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_subtask",
		Description: "Add a checklist subtask under a task",
	}, h.addSubtask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_subtask",
		Description: "Replace a subtask, e.g. to toggle its completed flag",
	}, h.updateSubtask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_subtask",
		Description: "Delete a subtask from a task",
	}, h.deleteSubtask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_task",
		Description: "Kanban drag: move a task to a status column (todo, inprogress, done) at an index",
	}, h.moveTask)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "reorder_tasks",
		Description: "List drag: move a task from one index to another within a project's task list",
	}, h.reorderTasks)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_tracking",
		Description: "Start or pause time tracking for a task",
	}, h.toggleTracking)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "project_stats",
		Description: "Status breakdown, tracked time, and completion rate for a project",
	}, h.projectStats)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "dependency_status",
		Description: "Report which of a task's dependencies are still incomplete",
	}, h.dependencyStatus)
}

func (h *handlers) listProjects(ctx context.Context, req *sdkmcp.CallToolRequest, params ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
	projects, err := h.svc.Projects(ctx)
	if err != nil {
		return nil, ListProjectsResult{}, MapError(err)
	}
	return nil, ListProjectsResult{Projects: projects}, nil
}

func (h *handlers) createProject(ctx context.Context, req *sdkmcp.CallToolRequest, params CreateProjectParams) (*sdkmcp.CallToolResult, ProjectResult, error) {
	if params.Name == "" {
		return nil, ProjectResult{}, errInvalidInput("name is required")
	}
	proj, err := h.svc.AddProject(ctx, params.Name)
	if err != nil {
		return nil, ProjectResult{}, MapError(err)
	}
	return nil, ProjectResult{Project: *proj}, nil
}

func (h *handlers) deleteProject(ctx context.Context, req *sdkmcp.CallToolRequest, params DeleteProjectParams) (*sdkmcp.CallToolResult, OKResult, error) {
	if err := h.svc.DeleteProject(ctx, params.ID); err != nil {
		return nil, OKResult{}, MapError(err)
	}
	return nil, OKResult{OK: true}, nil
}

func (h *handlers) createTask(ctx context.Context, req *sdkmcp.CallToolRequest, params CreateTaskParams) (*sdkmcp.CallToolResult, TaskResult, error) {
	if params.Title == "" {
		return nil, TaskResult{}, errInvalidInput("title is required")
	}
	task := todo.NewTask(params.Title, params.Description, params.DueDate)
	if params.Status != "" {
		status, err := todo.ParseStatus(params.Status)
		if err != nil {
			return nil, TaskResult{}, MapError(err)
		}
		task.Status = status
		task.Normalize()
	}
	task.Dependencies = params.Dependencies

	if params.DependsOn != "" {
		projects, err := h.svc.Projects(ctx)
		if err != nil {
			return nil, TaskResult{}, MapError(err)
		}
		for _, p := range projects {
			if p.ID == params.ProjectID {
				task.Dependencies = append(task.Dependencies, todo.ResolveDependencies(p, params.DependsOn)...)
			}
		}
	}

	if err := h.svc.AddTask(ctx, params.ProjectID, task); err != nil {
		return nil, TaskResult{}, MapError(err)
	}
	return nil, TaskResult{Task: task}, nil
}

func (h *handlers) updateTask(ctx context.Context, req *sdkmcp.CallToolRequest, params UpdateTaskParams) (*sdkmcp.CallToolResult, TaskResult, error) {
	if params.Task.ID == "" {
		return nil, TaskResult{}, errInvalidInput("task.id is required")
	}
	if err := h.svc.UpdateTask(ctx, params.ProjectID, params.Task); err != nil {
		return nil, TaskResult{}, MapError(err)
	}
	task := params.Task
	task.Normalize()
	return nil, TaskResult{Task: task}, nil
}

func (h *handlers) deleteTask(ctx context.Context, req *sdkmcp.CallToolRequest, params DeleteTaskParams) (*sdkmcp.CallToolResult, OKResult, error) {
	if err := h.svc.DeleteTask(ctx, params.ProjectID, params.TaskID); err != nil {
		return nil, OKResult{}, MapError(err)
	}
	return nil, OKResult{OK: true}, nil
}

func (h *handlers) addSubtask(ctx context.Context, req *sdkmcp.CallToolRequest, params AddSubtaskParams) (*sdkmcp.CallToolResult, SubtaskResult, error) {
	if params.Title == "" {
		return nil, SubtaskResult{}, errInvalidInput("title is required")
	}
	subtask := todo.NewSubtask(params.Title)
	if err := h.svc.AddSubtask(ctx, params.ProjectID, params.TaskID, subtask); err != nil {
		return nil, SubtaskResult{}, MapError(err)
	}
	return nil, SubtaskResult{Subtask: subtask}, nil
}

func (h *handlers) updateSubtask(ctx context.Context, req *sdkmcp.CallToolRequest, params UpdateSubtaskParams) (*sdkmcp.CallToolResult, SubtaskResult, error) {
	if params.Subtask.ID == "" {
		return nil, SubtaskResult{}, errInvalidInput("subtask.id is required")
	}
	if err := h.svc.UpdateSubtask(ctx, params.ProjectID, params.TaskID, params.Subtask); err != nil {
		return nil, SubtaskResult{}, MapError(err)
	}
	return nil, SubtaskResult{Subtask: params.Subtask}, nil
}

func (h *handlers) deleteSubtask(ctx context.Context, req *sdkmcp.CallToolRequest, params DeleteSubtaskParams) (*sdkmcp.CallToolResult, OKResult, error) {
	if err := h.svc.DeleteSubtask(ctx, params.ProjectID, params.TaskID, params.SubtaskID); err != nil {
		return nil, OKResult{}, MapError(err)
	}
	return nil, OKResult{OK: true}, nil
}

func (h *handlers) moveTask(ctx context.Context, req *sdkmcp.CallToolRequest, params MoveTaskParams) (*sdkmcp.CallToolResult, OKResult, error) {
	if _, err := todo.ParseStatus(params.ToColumn); err != nil {
		return nil, OKResult{}, MapError(err)
	}
	projects, err := h.svc.Projects(ctx)
	if err != nil {
		return nil, OKResult{}, MapError(err)
	}
	for i := range projects {
		if projects[i].ID == params.ProjectID {
			projects[i].Tasks = board.MoveTask(projects[i].Tasks, board.Move{
				TaskID:   params.TaskID,
				ToColumn: params.ToColumn,
				Index:    params.Index,
			})
		}
	}
	if err := h.svc.SaveProjects(ctx, projects); err != nil {
		return nil, OKResult{}, MapError(err)
	}
	return nil, OKResult{OK: true}, nil
}

func (h *handlers) reorderTasks(ctx context.Context, req *sdkmcp.CallToolRequest, params ReorderTasksParams) (*sdkmcp.CallToolResult, OKResult, error) {
	projects, err := h.svc.Projects(ctx)
	if err != nil {
		return nil, OKResult{}, MapError(err)
	}
	for i := range projects {
		if projects[i].ID == params.ProjectID {
			projects[i].Tasks = board.Reorder(projects[i].Tasks, params.FromIndex, params.ToIndex)
		}
	}
	if err := h.svc.SaveProjects(ctx, projects); err != nil {
		return nil, OKResult{}, MapError(err)
	}
	return nil, OKResult{OK: true}, nil
}

func (h *handlers) toggleTracking(ctx context.Context, req *sdkmcp.CallToolRequest, params ToggleTrackingParams) (*sdkmcp.CallToolResult, OKResult, error) {
	if err := h.svc.ToggleTracking(ctx, params.ProjectID, params.TaskID); err != nil {
		return nil, OKResult{}, MapError(err)
	}
	return nil, OKResult{OK: true}, nil
}

func (h *handlers) projectStats(ctx context.Context, req *sdkmcp.CallToolRequest, params ProjectStatsParams) (*sdkmcp.CallToolResult, ProjectStatsResult, error) {
	projects, err := h.svc.Projects(ctx)
	if err != nil {
		return nil, ProjectStatsResult{}, MapError(err)
	}
	for _, p := range projects {
		if p.ID == params.ProjectID {
			result := ProjectStatsResult{Stats: todo.Stats(p)}
			now := time.Now()
			loc := reminder.Location()
			for _, t := range p.Tasks {
				if t.Completed {
					continue
				}
				switch state, _ := reminder.Evaluate(t.DueDate, now, loc); state {
				case reminder.DueSoon:
					result.DueSoon++
				case reminder.Overdue:
					result.Overdue++
				}
			}
			return nil, result, nil
		}
	}
	return nil, ProjectStatsResult{}, errNotFound("project not found")
}

func (h *handlers) dependencyStatus(ctx context.Context, req *sdkmcp.CallToolRequest, params DependencyStatusParams) (*sdkmcp.CallToolResult, DependencyStatusResult, error) {
	projects, err := h.svc.Projects(ctx)
	if err != nil {
		return nil, DependencyStatusResult{}, MapError(err)
	}
	for _, p := range projects {
		if p.ID != params.ProjectID {
			continue
		}
		for _, t := range p.Tasks {
			if t.ID == params.TaskID {
				incomplete := board.IncompleteDependencies(p, t)
				return nil, DependencyStatusResult{
					Incomplete: incomplete,
					Met:        len(incomplete) == 0,
				}, nil
			}
		}
	}
	return nil, DependencyStatusResult{}, errNotFound("task not found")
}
