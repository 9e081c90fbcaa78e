package mcp

import "github.com/emereole/taskdeck/internal/domain/todo"

type ListProjectsParams struct{}

type ListProjectsResult struct {
	Projects []todo.Project `json:"projects"`
}

type CreateProjectParams struct {
	Name string `json:"name"`
}

type ProjectResult struct {
	Project todo.Project `json:"project"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
}

type CreateTaskParams struct {
	ProjectID    string   `json:"project_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	DueDate      string   `json:"due_date,omitempty"`
	Status       string   `json:"status,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	// DependsOn is a comma-separated list of task titles or ids, resolved
	// against the project; entries matching nothing are dropped.
	DependsOn string `json:"depends_on,omitempty"`
}

type TaskResult struct {
	Task todo.Task `json:"task"`
}

type UpdateTaskParams struct {
	ProjectID string    `json:"project_id"`
	Task      todo.Task `json:"task"`
}

type DeleteTaskParams struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
}

type AddSubtaskParams struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
	Title     string `json:"title"`
}

type SubtaskResult struct {
	Subtask todo.Subtask `json:"subtask"`
}

type UpdateSubtaskParams struct {
	ProjectID string       `json:"project_id"`
	TaskID    string       `json:"task_id"`
	Subtask   todo.Subtask `json:"subtask"`
}

type DeleteSubtaskParams struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
	SubtaskID string `json:"subtask_id"`
}

type MoveTaskParams struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
	ToColumn  string `json:"to_column"`
	Index     int    `json:"index"`
}

type ReorderTasksParams struct {
	ProjectID string `json:"project_id"`
	FromIndex int    `json:"from_index"`
	ToIndex   int    `json:"to_index"`
}

type ToggleTrackingParams struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
}

type ProjectStatsParams struct {
	ProjectID string `json:"project_id"`
}

type ProjectStatsResult struct {
	Stats todo.ProjectStats `json:"stats"`
	// Deadline pressure among incomplete tasks, using the same due-date
	// evaluation as the reminder engine.
	DueSoon int `json:"due_soon"`
	Overdue int `json:"overdue"`
}

type DependencyStatusParams struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
}

type DependencyStatusResult struct {
	Incomplete []string `json:"incomplete"`
	Met        bool     `json:"met"`
}

// OKResult acknowledges a mutation. Silent no-ops still acknowledge.
type OKResult struct {
	OK bool `json:"ok"`
}
