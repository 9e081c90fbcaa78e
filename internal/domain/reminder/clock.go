package reminder

import (
	"math"
	"regexp"
	"time"
)

// All "now" comparisons use a fixed reference timezone so notifications are
// consistent across deployments regardless of the host's local zone.
const referenceZone = "Africa/Lagos"

var bareDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// loadReferenceLocation returns the reference timezone, falling back to a
// fixed UTC+1 offset when the zone database is unavailable.
func loadReferenceLocation() *time.Location {
	loc, err := time.LoadLocation(referenceZone)
	if err != nil {
		return time.FixedZone("WAT", 60*60)
	}
	return loc
}

// Location returns the reference timezone used for all due-date evaluation.
func Location() *time.Location {
	return loadReferenceLocation()
}

// ParseDueDate interprets a task's due-date string in the reference timezone.
// A bare calendar date (YYYY-MM-DD) means 23:59:59 of that date, an
// end-of-day deadline. Anything else is parsed as an absolute timestamp. The
// second return value is false when the string is empty or unparseable.
func ParseDueDate(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if bareDate.MatchString(s) {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t.Add(23*time.Hour + 59*time.Minute + 59*time.Second), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	// datetime-local form widgets emit timestamps without a zone
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MinutesUntil is the floored number of whole minutes between now and due.
// Negative once the due instant has passed.
func MinutesUntil(due, now time.Time) int {
	return int(math.Floor(due.Sub(now).Minutes()))
}

// DueState classifies a task's deadline for display.
type DueState int

const (
	DueNone DueState = iota
	DueSoon
	Overdue
)

// Evaluate returns the display state for a due date together with the floored
// minutes remaining (negative when overdue). Uses the same parser as the
// polling engine so badges and notifications cannot disagree.
func Evaluate(dueDate string, now time.Time, loc *time.Location) (DueState, int) {
	due, ok := ParseDueDate(dueDate, loc)
	if !ok {
		return DueNone, 0
	}
	minutes := MinutesUntil(due, now.In(loc))
	switch {
	case minutes <= 0:
		return Overdue, minutes
	case minutes <= dueSoonWindowMinutes:
		return DueSoon, minutes
	default:
		return DueNone, minutes
	}
}
