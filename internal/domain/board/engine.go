// Package board implements the reordering and status-transition logic behind
// the kanban and list drag interactions. All functions are pure: they take the
// current task list plus a drag descriptor and return a new task list, which
// the caller persists.
package board

import "github.com/emereole/taskdeck/internal/domain/todo"

// Move describes a cross-column kanban drag: the dragged task, the destination
// column (a status identifier), and the insertion index within that column.
type Move struct {
	TaskID   string
	ToColumn string
	Index    int
}

// Reorder moves the element at src to dst within a single list, preserving
// all other relative orders. Out-of-range indices leave the list unchanged.
func Reorder(tasks []todo.Task, src, dst int) []todo.Task {
	if src < 0 || src >= len(tasks) || dst < 0 || dst >= len(tasks) {
		return tasks
	}

	out := make([]todo.Task, 0, len(tasks))
	out = append(out, tasks...)
	moved := out[src]
	out = append(out[:src], out[src+1:]...)

	out = append(out, todo.Task{})
	copy(out[dst+1:], out[dst:])
	out[dst] = moved
	return out
}

// MoveTask applies a cross-column drag. The moved task takes on the
// destination column's status (with the completed flag kept consistent) and
// is inserted at the destination index within that column. Column order is
// preserved within each column's contiguous run, not globally. An unknown
// task id or column leaves the list unchanged.
func MoveTask(tasks []todo.Task, move Move) []todo.Task {
	newStatus, err := todo.ParseStatus(move.ToColumn)
	if err != nil {
		return tasks
	}

	var moved *todo.Task
	for i := range tasks {
		if tasks[i].ID == move.TaskID {
			moved = &tasks[i]
			break
		}
	}
	if moved == nil {
		return tasks
	}

	updated := *moved
	updated.Status = newStatus
	updated.Normalize()

	var inColumn, rest []todo.Task
	for _, t := range tasks {
		if t.ID == move.TaskID {
			continue
		}
		if t.Status == newStatus {
			inColumn = append(inColumn, t)
		} else {
			rest = append(rest, t)
		}
	}

	idx := move.Index
	if idx < 0 {
		idx = 0
	}
	if idx > len(inColumn) {
		idx = len(inColumn)
	}
	inColumn = append(inColumn, todo.Task{})
	copy(inColumn[idx+1:], inColumn[idx:])
	inColumn[idx] = updated

	return append(rest, inColumn...)
}

// Column returns the tasks belonging to a status column, in list order.
func Column(tasks []todo.Task, status todo.Status) []todo.Task {
	var out []todo.Task
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// IncompleteDependencies returns the ids of the task's dependencies that exist
// in the project and are not completed. A dependency id with no matching task
// is treated as satisfied. The result drives a display-only warning; unmet
// dependencies never block a status transition.
func IncompleteDependencies(p todo.Project, task todo.Task) []string {
	var incomplete []string
	for _, depID := range task.Dependencies {
		for _, t := range p.Tasks {
			if t.ID == depID && !t.Completed {
				incomplete = append(incomplete, depID)
				break
			}
		}
	}
	return incomplete
}

// DependenciesMet reports whether every existing dependency of the task is
// completed.
func DependenciesMet(p todo.Project, task todo.Task) bool {
	return len(IncompleteDependencies(p, task)) == 0
}
