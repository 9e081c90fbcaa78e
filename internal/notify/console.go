// Package notify provides the default notification sink and alert-sound
// capability for headless operation: reminders become structured log lines
// and the alert is a terminal bell.
package notify

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/emereole/taskdeck/internal/domain/reminder"
)

// LogNotifier renders notifications as log lines, warnings for overdue and
// info for due-soon.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier over the given logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(note reminder.Notification) {
	switch note.Kind {
	case reminder.KindOverdue:
		n.logger.Warn(note.Message, "task_id", note.TaskID, "icon", note.Icon)
	default:
		n.logger.Info(note.Message, "task_id", note.TaskID, "icon", note.Icon)
	}
}

// Bell rings the terminal bell on the given writer.
type Bell struct {
	w io.Writer
}

// NewBell creates an alert player writing to w, typically stderr.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play() error {
	if _, err := fmt.Fprint(b.w, "\a"); err != nil {
		return fmt.Errorf("ringing bell: %w", err)
	}
	return nil
}
