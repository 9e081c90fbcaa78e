package reminder

import "time"

// Kind classifies a notification.
type Kind string

const (
	// KindDueSoon is informational: the task is within the due-soon window.
	KindDueSoon Kind = "due_soon"
	// KindOverdue is urgent: the task's due instant has passed.
	KindOverdue Kind = "overdue"
)

// Notification carries a human-readable message plus an icon hint for the
// display layer.
type Notification struct {
	TaskID  string `json:"task_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
	Icon    string `json:"icon"`
}

// Notifier is the sink for reminder notifications. Implementations render
// them however they like (toast, log line, MCP notification).
type Notifier interface {
	Notify(n Notification)
}

// AlertPlayer plays the reminder alert sound. Playback failures are swallowed
// by the engine; they never halt notification delivery.
type AlertPlayer interface {
	Play() error
}

// Clock supplies the current time. Production uses the wall clock; tests
// inject a fixed one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
