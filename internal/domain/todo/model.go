package todo

import "github.com/google/uuid"

// Status represents the workflow state of a task. The string values double as
// the board column identifiers and the persisted representation.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inprogress"
	StatusDone       Status = "done"
)

// ParseStatus maps an external string to a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// IsValid reports whether the status is one of the closed set.
func (s Status) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Subtask is a checklist item nested under a task
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is a unit of work with status, due date, dependencies, and optional
// time tracking. DueDate is either empty ("no due date"), a bare calendar date
// (YYYY-MM-DD), or an absolute timestamp. Dependencies hold ids of tasks in
// the same project.
type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Dependencies []string  `json:"dependencies,omitempty"`
	Completed    bool      `json:"completed"`
	DueDate      string    `json:"dueDate"`
	Status       Status    `json:"status"`
	Subtasks     []Subtask `json:"subtasks,omitempty"`
	IsTracking   bool      `json:"isTracking,omitempty"`
	TimeTracked  int64     `json:"timeTracked,omitempty"`
}

// Project is a user-named container of tasks. It owns its tasks exclusively;
// deleting a project deletes all its tasks and their subtasks.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// NewProject creates a project with a fresh id and an empty task list
func NewProject(name string) Project {
	return Project{
		ID:    uuid.NewString(),
		Name:  name,
		Tasks: []Task{},
	}
}

// NewTask creates a task with a fresh id and default status
func NewTask(title, description, dueDate string) Task {
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      StatusTodo,
	}
}

// NewSubtask creates an incomplete subtask with a fresh id
func NewSubtask(title string) Subtask {
	return Subtask{
		ID:    uuid.NewString(),
		Title: title,
	}
}

// Normalize enforces the completed/status invariant: completed is true exactly
// when status is done. Status is authoritative.
func (t *Task) Normalize() {
	t.Completed = t.Status == StatusDone
}
