package todo

import "context"

// Gateway provides persistence for the full project list. Load returns an
// empty list when nothing is stored or the stored value is malformed; Save
// overwrites prior contents. ClearReminder resets the reminder dedup entry for
// a task in the secondary reminder-state store.
type Gateway interface {
	Load(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, projects []Project) error
	ClearReminder(ctx context.Context, taskID string) error
}
