package mcp

import (
	"context"
	"log/slog"

	"github.com/emereole/taskdeck/internal/domain/todo"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// TaskService defines the repository operations needed by the MCP surface.
type TaskService interface {
	Projects(ctx context.Context) ([]todo.Project, error)
	SaveProjects(ctx context.Context, projects []todo.Project) error
	AddProject(ctx context.Context, name string) (*todo.Project, error)
	DeleteProject(ctx context.Context, id string) error
	AddTask(ctx context.Context, projectID string, task todo.Task) error
	UpdateTask(ctx context.Context, projectID string, task todo.Task) error
	DeleteTask(ctx context.Context, projectID, taskID string) error
	AddSubtask(ctx context.Context, projectID, taskID string, subtask todo.Subtask) error
	UpdateSubtask(ctx context.Context, projectID, taskID string, subtask todo.Subtask) error
	DeleteSubtask(ctx context.Context, projectID, taskID, subtaskID string) error
	ToggleTracking(ctx context.Context, projectID, taskID string) error
}

// Config contains server configuration.
type Config struct {
	Service TaskService
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "taskdeck",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Service)

	return server
}

const serverInstructions = `taskdeck manages Projects → Tasks → Subtasks with due dates, dependencies, and time tracking.

Core concepts:
- Project: a user-named container of tasks.
- Task: a unit of work with status (todo | inprogress | done), an optional due date, dependency ids, subtasks, and a time-tracking counter.
- Board columns use the status identifiers; move_task performs a kanban drag, reorder_tasks a within-list drag.
- Dependencies are advisory: dependency_status reports unmet dependencies but transitions are never blocked.

Conventions:
- Due dates: a bare YYYY-MM-DD means end of that day; otherwise pass an absolute timestamp.
- Mutations on unknown ids are silent no-ops: re-list to confirm an effect.
- Marking a task done and setting status are the same thing; completed always mirrors status == done.
`
