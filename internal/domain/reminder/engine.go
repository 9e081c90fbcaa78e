package reminder

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/emereole/taskdeck/internal/domain/todo"
)

// Polling cadences and dedup windows. The due-soon check runs every 5 minutes
// and may re-fire for a task after 5 minutes; the overdue check runs hourly
// and re-fires after an hour.
const (
	defaultDueSoonPeriod = 5 * time.Minute
	defaultOverduePeriod = 60 * time.Minute
	dueSoonWindowMinutes = 30
	dueSoonRefireAfter   = 5 * time.Minute
	overdueRefireAfter   = 60 * time.Minute
)

// Engine polls a project snapshot on two independent cadences and emits
// due-soon and overdue notifications with per-task dedup memory. It holds the
// most recent snapshot passed to Start and never re-fetches on its own; the
// owner restarts the engine whenever the project list changes. Dedup memory
// survives restarts.
type Engine struct {
	notifier      Notifier
	alert         AlertPlayer
	clock         Clock
	logger        *slog.Logger
	loc           *time.Location
	dueSoonPeriod time.Duration
	overduePeriod time.Duration

	mu          sync.Mutex
	projects    []todo.Project
	lastDueSoon map[string]time.Time
	lastOverdue map[string]time.Time
	dueSoonTask *repeatingTask
	overdueTask *repeatingTask
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the time source, for tests.
func WithClock(clock Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithPeriods overrides both polling cadences, for tests.
func WithPeriods(dueSoon, overdue time.Duration) Option {
	return func(e *Engine) {
		e.dueSoonPeriod = dueSoon
		e.overduePeriod = overdue
	}
}

// NewEngine creates a reminder engine. The alert player may be nil when no
// sound capability exists.
func NewEngine(notifier Notifier, alert AlertPlayer, logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		notifier:      notifier,
		alert:         alert,
		clock:         systemClock{},
		logger:        logger,
		loc:           loadReferenceLocation(),
		dueSoonPeriod: defaultDueSoonPeriod,
		overduePeriod: defaultOverduePeriod,
		lastDueSoon:   make(map[string]time.Time),
		lastOverdue:   make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start cancels any running timers, adopts the given snapshot, runs both
// checks immediately, and schedules them on their cadences. Calling Start
// twice behaves like calling it once with the later snapshot.
func (e *Engine) Start(projects []todo.Project) {
	e.mu.Lock()
	e.stopLocked()
	e.projects = projects
	e.checkDueSoonLocked()
	e.checkOverdueLocked()
	e.dueSoonTask = newRepeatingTask(e.dueSoonPeriod, e.checkDueSoon)
	e.overdueTask = newRepeatingTask(e.overduePeriod, e.checkOverdue)
	e.mu.Unlock()
}

// Stop cancels both timers. Safe to call when not started, and idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopLocked()
	e.mu.Unlock()
}

func (e *Engine) stopLocked() {
	if e.dueSoonTask != nil {
		e.dueSoonTask.cancel()
		e.dueSoonTask = nil
	}
	if e.overdueTask != nil {
		e.overdueTask.cancel()
		e.overdueTask = nil
	}
}

func (e *Engine) checkDueSoon() {
	e.mu.Lock()
	e.checkDueSoonLocked()
	e.mu.Unlock()
}

func (e *Engine) checkOverdue() {
	e.mu.Lock()
	e.checkOverdueLocked()
	e.mu.Unlock()
}

func (e *Engine) checkDueSoonLocked() {
	now := e.clock.Now().In(e.loc)
	e.eachPendingTask(func(task todo.Task, due time.Time) {
		minutes := MinutesUntil(due, now)
		if minutes <= 0 {
			// already overdue, the hourly check owns it
			return
		}
		if minutes > dueSoonWindowMinutes {
			return
		}
		if last, ok := e.lastDueSoon[task.ID]; ok && now.Sub(last) < dueSoonRefireAfter {
			return
		}
		e.fire(Notification{
			TaskID:  task.ID,
			Title:   task.Title,
			Message: fmt.Sprintf("%q is due in %d minutes!", task.Title, minutes),
			Kind:    KindDueSoon,
			Icon:    "⏳",
		})
		e.lastDueSoon[task.ID] = now
	})
}

func (e *Engine) checkOverdueLocked() {
	now := e.clock.Now().In(e.loc)
	e.eachPendingTask(func(task todo.Task, due time.Time) {
		if MinutesUntil(due, now) > 0 {
			return
		}
		if last, ok := e.lastOverdue[task.ID]; ok && now.Sub(last) < overdueRefireAfter {
			return
		}
		e.fire(Notification{
			TaskID:  task.ID,
			Title:   task.Title,
			Message: fmt.Sprintf("%q is overdue!", task.Title),
			Kind:    KindOverdue,
			Icon:    "🚨",
		})
		e.lastOverdue[task.ID] = now
	})
}

// eachPendingTask visits every task across the snapshot that has a parseable
// due date and is not completed.
func (e *Engine) eachPendingTask(fn func(task todo.Task, due time.Time)) {
	for _, p := range e.projects {
		for _, t := range p.Tasks {
			if t.DueDate == "" || t.Completed {
				continue
			}
			due, ok := ParseDueDate(t.DueDate, e.loc)
			if !ok {
				continue
			}
			fn(t, due)
		}
	}
}

func (e *Engine) fire(n Notification) {
	e.logger.Debug("reminder fired", "task_id", n.TaskID, "kind", n.Kind)
	e.notifier.Notify(n)
	if e.alert != nil {
		if err := e.alert.Play(); err != nil {
			// alert playback failures never surface to the user
			e.logger.Debug("alert playback failed", "error", err)
		}
	}
}

// repeatingTask is a cancellable timer that invokes fn every period until
// cancelled.
type repeatingTask struct {
	stop chan struct{}
	once sync.Once
}

func newRepeatingTask(period time.Duration, fn func()) *repeatingTask {
	task := &repeatingTask{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-task.stop:
				return
			}
		}
	}()
	return task
}

func (t *repeatingTask) cancel() {
	t.once.Do(func() { close(t.stop) })
}
