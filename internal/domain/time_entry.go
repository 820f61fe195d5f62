package domain

import (
	"time"
)

// TimeEntry represents one interval of tracked work in the domain model.
// An entry with a nil End is only transiently in this shape: the timer
// engine, not the entry itself, is authoritative for in-progress sessions.
type TimeEntry struct {
	ID          int64
	Begin       time.Time
	End         *time.Time
	Project     *Project
	Activity    *Activity
	Description string
	Duration    int64 // seconds
	Rate        float64
	User        *int64
}

// IsComplete returns true if the entry has an end time at or after its begin time.
func (te TimeEntry) IsComplete() bool {
	return te.End != nil && !te.End.Before(te.Begin)
}

// IsValid checks if the time entry has valid data.
func (te TimeEntry) IsValid() bool {
	if te.Begin.IsZero() {
		return false
	}
	if te.Project == nil || te.Activity == nil {
		return false
	}
	if te.End != nil && te.End.Before(te.Begin) {
		return false
	}
	return true
}

// ElapsedAt returns the whole seconds elapsed from Begin to the given time,
// never negative.
func (te TimeEntry) ElapsedAt(now time.Time) int64 {
	seconds := int64(now.Sub(te.Begin).Seconds())
	if seconds < 0 {
		return 0
	}
	return seconds
}
