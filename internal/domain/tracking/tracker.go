// Package tracking owns the time-tracking cadence: while started, it invokes
// an accrual callback once per second. The callback performs the actual
// read-modify-write against current state; the tracker holds no project data
// of its own.
package tracking

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultTickPeriod = time.Second

// Tracker invokes the accrual callback on a fixed cadence.
type Tracker struct {
	logger *slog.Logger
	tick   func(context.Context)
	period time.Duration

	mu   sync.Mutex
	stop chan struct{}
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithTickPeriod overrides the accrual cadence, for tests.
func WithTickPeriod(d time.Duration) Option {
	return func(tr *Tracker) { tr.period = d }
}

// NewTracker creates a tracker calling tick once per period.
func NewTracker(logger *slog.Logger, tick func(context.Context), opts ...Option) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	tr := &Tracker{logger: logger, tick: tick, period: defaultTickPeriod}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// Start begins ticking. A running tracker is restarted.
func (tr *Tracker) Start() {
	tr.mu.Lock()
	tr.stopLocked()
	stop := make(chan struct{})
	tr.stop = stop
	tr.mu.Unlock()

	go func() {
		ticker := time.NewTicker(tr.period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				tr.tick(context.Background())
			case <-stop:
				return
			}
		}
	}()
}

// Stop halts ticking. Safe to call when not started, and idempotent.
func (tr *Tracker) Stop() {
	tr.mu.Lock()
	tr.stopLocked()
	tr.mu.Unlock()
}

func (tr *Tracker) stopLocked() {
	if tr.stop != nil {
		close(tr.stop)
		tr.stop = nil
	}
}
