package timer

import (
	"fmt"
	"sync"
	"time"

	"hirotrack/internal/domain"
	"hirotrack/internal/errors"
	"hirotrack/internal/notify"
)

// IdleStatusLabel is the status text shown while no timer is running.
const IdleStatusLabel = "HiroTrack - Time Tracker"

// DefaultTickInterval is the period of the elapsed-time recomputation.
const DefaultTickInterval = time.Second

// Selection is the (project, activity, description) triple a timer is
// started for. Project and activity are mandatory; the caller is expected
// to prompt for them before starting.
type Selection struct {
	Project     *domain.Project
	Activity    *domain.Activity
	Description string
}

// Engine is the authoritative local state machine for the running timer.
// It owns the single in-memory session; the session is never persisted, so
// a process restart loses any running timer.
//
// Elapsed time is always derived from the absolute start timestamp, never
// by incrementing a counter, so the periodic tick cannot accumulate drift.
type Engine struct {
	mu       sync.Mutex
	notifier notify.Notifier
	now      func() time.Time
	interval time.Duration

	running   bool
	startedAt time.Time
	pending   *domain.TimeEntry
	elapsed   int64
	cancel    chan struct{}
}

// NewEngine creates a stopped engine reporting through the given notifier.
func NewEngine(notifier notify.Notifier) *Engine {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}
	return &Engine{
		notifier: notifier,
		now:      time.Now,
		interval: DefaultTickInterval,
	}
}

// SetTickInterval overrides the recurring tick period. It takes effect at
// the next Start; zero or negative values keep the current interval.
func (e *Engine) SetTickInterval(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if d > 0 {
		e.interval = d
	}
}

// Running returns true while a timer session is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Elapsed returns the whole seconds elapsed in the current session, or 0
// when stopped.
func (e *Engine) Elapsed() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsed
}

// StartedAt returns the start timestamp of the current session. The second
// return value is false when no session is running.
func (e *Engine) StartedAt() (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startedAt, e.running
}

// Start begins a new timer session for the given selection. The engine must
// be stopped, and both a project and an activity must be selected.
func (e *Engine) Start(selection Selection) error {
	if selection.Project == nil {
		return errors.NewMissingSelectionError("a project")
	}
	if selection.Activity == nil {
		return errors.NewMissingSelectionError("an activity")
	}

	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return errors.NewValidationError("a timer is already running", nil)
	}
	e.running = true
	e.startedAt = e.now()
	e.elapsed = 0
	e.pending = &domain.TimeEntry{
		Begin:       e.startedAt,
		Project:     selection.Project,
		Activity:    selection.Activity,
		Description: selection.Description,
	}
	e.cancel = make(chan struct{})
	go e.runTicker(e.cancel)
	e.mu.Unlock()

	label := selectionPath(selection.Project, selection.Activity)
	e.notifier.Notify("Timer started", label)
	e.notifier.UpdateStatusLabel(label)
	return nil
}

// Tick recomputes the elapsed seconds from the start timestamp. It is safe
// to call at any period and is a no-op while stopped.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running {
		return
	}
	seconds := int64(e.now().Sub(e.startedAt).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	e.elapsed = seconds
}

// Stop finalizes the running session and returns the completed time entry
// for submission. Stopping an already-stopped engine resets the fields
// defensively and returns nil; it is not an error.
//
// Submission is the caller's job: a later delivery failure must not reopen
// or mutate the session finalized here.
func (e *Engine) Stop() *domain.TimeEntry {
	e.mu.Lock()
	if !e.running {
		e.reset()
		e.mu.Unlock()
		return nil
	}

	endTime := e.now()
	entry := e.pending
	entry.End = &endTime
	entry.Duration = entry.ElapsedAt(endTime)
	e.reset()
	e.mu.Unlock()

	e.notifier.Notify("Timer stopped", "Tracked "+FormatDuration(entry.Duration))
	e.notifier.UpdateStatusLabel(IdleStatusLabel)
	return entry
}

// UpdateEntry merges a live description edit into the pending entry without
// affecting timing. It is a no-op while stopped.
func (e *Engine) UpdateEntry(description string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running || e.pending == nil {
		return
	}
	e.pending.Description = description
}

// Close tears the engine down, cancelling the periodic tick without
// emitting notifications. Any running session is discarded.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

// reset returns all session fields to their stopped defaults and cancels
// the recurring tick. Callers must hold the mutex.
func (e *Engine) reset() {
	if e.cancel != nil {
		close(e.cancel)
		e.cancel = nil
	}
	e.running = false
	e.startedAt = time.Time{}
	e.pending = nil
	e.elapsed = 0
}

// runTicker drives the periodic tick until cancelled. A leaked ticker is a
// defect, so cancellation is tied to every path that leaves Running.
func (e *Engine) runTicker(cancel chan struct{}) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.Tick()
		case <-cancel:
			return
		}
	}
}

// FormatDuration formats whole seconds as a compact hours/minutes string.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// selectionPath renders the "customer / project / activity" status text.
func selectionPath(project *domain.Project, activity *domain.Activity) string {
	return fmt.Sprintf("%s / %s / %s", project.CustomerName(), project.Name, activity.Name)
}
