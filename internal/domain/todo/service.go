package todo

import (
	"context"
	"fmt"
	"log/slog"
)

// Service exposes project, task, and subtask CRUD. Every mutating operation is
// a full read-modify-write cycle against the gateway: load all projects,
// mutate in memory, save all projects back. Operations are not atomic across
// concurrent callers; the system assumes a single process.
//
// Ids that match nothing make the operation a silent no-op: callers cannot
// distinguish "nothing changed" from "successfully changed nothing".
type Service struct {
	gateway  Gateway
	logger   *slog.Logger
	onChange func([]Project)
}

// NewService creates a new task service.
func NewService(gateway Gateway, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gateway: gateway, logger: logger}
}

// OnChange registers a listener invoked with the full project list after every
// successful save. The caller uses it to refresh reminder polling with a fresh
// snapshot.
func (s *Service) OnChange(fn func([]Project)) {
	s.onChange = fn
}

// Projects returns the stored project list.
func (s *Service) Projects(ctx context.Context) ([]Project, error) {
	return s.gateway.Load(ctx)
}

// SaveProjects persists a full project list produced outside the service, such
// as a board rearrangement. Task invariants are normalized before saving.
func (s *Service) SaveProjects(ctx context.Context, projects []Project) error {
	for pi := range projects {
		for ti := range projects[pi].Tasks {
			projects[pi].Tasks[ti].Normalize()
		}
	}
	return s.save(ctx, projects)
}

// AddProject creates a project with the given name and an empty task list.
// The service does not trim or reject the name; input hygiene belongs to the
// caller.
func (s *Service) AddProject(ctx context.Context, name string) (*Project, error) {
	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return nil, err
	}

	proj := NewProject(name)
	projects = append(projects, proj)
	if err := s.save(ctx, projects); err != nil {
		return nil, err
	}

	s.logger.Info("project added", "project_id", proj.ID, "name", name)
	return &proj, nil
}

// DeleteProject removes the matching project and all its tasks. No-op if the
// id matches nothing.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.save(ctx, kept)
}

// AddTask appends a task to the project's task list. No-op if the project is
// not found.
func (s *Service) AddTask(ctx context.Context, projectID string, task Task) error {
	if err := ValidateTask(task); err != nil {
		return err
	}
	task.Normalize()

	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	proj := findProject(projects, projectID)
	if proj == nil {
		return nil
	}
	proj.Tasks = append(proj.Tasks, task)
	return s.save(ctx, projects)
}

// UpdateTask replaces the task with a matching id. No-op if project or task is
// not found. When the updated task carries a due date, its reminder dedup
// entry is cleared so the new deadline is immediately eligible for a fresh
// due-soon notification.
func (s *Service) UpdateTask(ctx context.Context, projectID string, task Task) error {
	if err := ValidateTask(task); err != nil {
		return err
	}
	task.Normalize()

	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	proj := findProject(projects, projectID)
	if proj == nil {
		return nil
	}
	for i := range proj.Tasks {
		if proj.Tasks[i].ID == task.ID {
			proj.Tasks[i] = task
		}
	}
	if err := s.save(ctx, projects); err != nil {
		return err
	}

	if task.DueDate != "" {
		if err := s.gateway.ClearReminder(ctx, task.ID); err != nil {
			return fmt.Errorf("clearing reminder state: %w", err)
		}
	}
	return nil
}

// DeleteTask removes the matching task. No-op if nothing matches.
func (s *Service) DeleteTask(ctx context.Context, projectID, taskID string) error {
	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	proj := findProject(projects, projectID)
	if proj == nil {
		return nil
	}
	kept := proj.Tasks[:0]
	for _, t := range proj.Tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	proj.Tasks = kept
	return s.save(ctx, projects)
}

// AddSubtask appends a subtask under project/task. No-op if nothing matches.
func (s *Service) AddSubtask(ctx context.Context, projectID, taskID string, subtask Subtask) error {
	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	task := findTask(projects, projectID, taskID)
	if task == nil {
		return nil
	}
	task.Subtasks = append(task.Subtasks, subtask)
	return s.save(ctx, projects)
}

// UpdateSubtask replaces the subtask with a matching id. No-op if nothing
// matches.
func (s *Service) UpdateSubtask(ctx context.Context, projectID, taskID string, subtask Subtask) error {
	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	task := findTask(projects, projectID, taskID)
	if task == nil {
		return nil
	}
	for i := range task.Subtasks {
		if task.Subtasks[i].ID == subtask.ID {
			task.Subtasks[i] = subtask
		}
	}
	return s.save(ctx, projects)
}

// DeleteSubtask removes the matching subtask. No-op if nothing matches.
func (s *Service) DeleteSubtask(ctx context.Context, projectID, taskID, subtaskID string) error {
	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	task := findTask(projects, projectID, taskID)
	if task == nil {
		return nil
	}
	kept := task.Subtasks[:0]
	for _, st := range task.Subtasks {
		if st.ID != subtaskID {
			kept = append(kept, st)
		}
	}
	task.Subtasks = kept
	return s.save(ctx, projects)
}

// ToggleTracking flips the task's time-tracking flag. Tracked seconds are
// frozen while the flag is off. No-op if nothing matches.
func (s *Service) ToggleTracking(ctx context.Context, projectID, taskID string) error {
	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	task := findTask(projects, projectID, taskID)
	if task == nil {
		return nil
	}
	task.IsTracking = !task.IsTracking
	return s.save(ctx, projects)
}

// AccrueTrackedTime adds one second of tracked time to every task currently
// tracking. The accrual is a fresh read-modify-write, so a tick can never
// overwrite edits made since the previous tick. Nothing is saved when no task
// is tracking, and the change listener is not fired; tracked seconds have no
// effect on reminder scheduling.
func (s *Service) AccrueTrackedTime(ctx context.Context) error {
	projects, err := s.gateway.Load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for pi := range projects {
		for ti := range projects[pi].Tasks {
			task := &projects[pi].Tasks[ti]
			if task.IsTracking {
				task.TimeTracked++
				changed = true
			}
		}
	}
	if !changed {
		return nil
	}
	if err := s.gateway.Save(ctx, projects); err != nil {
		return fmt.Errorf("saving projects: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, projects []Project) error {
	if err := s.gateway.Save(ctx, projects); err != nil {
		return fmt.Errorf("saving projects: %w", err)
	}
	if s.onChange != nil {
		s.onChange(projects)
	}
	return nil
}

func findProject(projects []Project, id string) *Project {
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i]
		}
	}
	return nil
}

func findTask(projects []Project, projectID, taskID string) *Task {
	proj := findProject(projects, projectID)
	if proj == nil {
		return nil
	}
	for i := range proj.Tasks {
		if proj.Tasks[i].ID == taskID {
			return &proj.Tasks[i]
		}
	}
	return nil
}
