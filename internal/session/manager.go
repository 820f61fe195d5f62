package session

import (
	"context"
	"sync"

	"hirotrack/internal/credentials"
	"hirotrack/internal/domain"
	"hirotrack/internal/errors"
	"hirotrack/internal/kimai"
	"hirotrack/internal/logging"
)

// ClientFactory builds an API client for a credential pair. Tests substitute
// a factory returning a fake.
type ClientFactory func(serverURL, apiToken string) kimai.API

// State is the outcome of a bootstrap attempt.
type State struct {
	Configured    bool
	Authenticated bool
	ServerURL     string
	Version       string
	Err           error
}

// Manager owns the credential store and the single memoized API client.
// Saving or clearing credentials invalidates the client so subsequent calls
// use fresh credentials; there is never more than one authoritative client.
type Manager struct {
	mu      sync.Mutex
	store   credentials.Store
	factory ClientFactory
	client  kimai.API
}

// NewManager creates a manager over the given credential store.
func NewManager(store credentials.Store) *Manager {
	return &Manager{
		store: store,
		factory: func(serverURL, apiToken string) kimai.API {
			return kimai.NewClient(serverURL, apiToken)
		},
	}
}

// NewManagerWithFactory creates a manager with a custom client factory.
func NewManagerWithFactory(store credentials.Store, factory ClientFactory) *Manager {
	return &Manager{store: store, factory: factory}
}

// Client returns the memoized API client, constructing it from stored
// credentials on first use. It fails with a not-configured error when no
// credentials are stored.
func (m *Manager) Client(ctx context.Context) (kimai.API, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clientLocked()
}

func (m *Manager) clientLocked() (kimai.API, error) {
	if m.client != nil {
		return m.client, nil
	}
	creds, err := m.store.Load()
	if err != nil || creds == nil || !creds.IsComplete() {
		return nil, errors.NewNotConfiguredError("remote operation")
	}
	m.client = m.factory(creds.ServerURL, creds.APIToken)
	return m.client, nil
}

// SaveCredentials persists a new credential pair and rebuilds the memoized
// client. The save fully completes before the old client is discarded.
func (m *Manager) SaveCredentials(serverURL, apiToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(serverURL, apiToken); err != nil {
		return err
	}
	m.client = nil
	return nil
}

// ClearCredentials removes the stored pair and drops the memoized client.
func (m *Manager) ClearCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Clear(); err != nil {
		return err
	}
	m.client = nil
	return nil
}

// Bootstrap loads credentials, verifies connectivity, and reports which
// mode the application should start in. A ping failure demotes to the
// unauthenticated state without clearing the store, so the user can retry
// once the server is reachable again.
func (m *Manager) Bootstrap(ctx context.Context) *State {
	client, err := m.Client(ctx)
	if err != nil {
		return &State{}
	}

	state := &State{Configured: true, ServerURL: client.ServerURL()}
	if _, err := client.Ping(ctx); err != nil {
		logging.Debugf("session: ping failed: %v\n", err)
		state.Err = err
		return state
	}
	state.Authenticated = true

	if version, err := client.GetVersion(ctx); err == nil {
		state.Version = version.Version
	}
	return state
}

// Submit converts a completed time entry to the API wire shape and forwards
// it to the server. The entry is already final: a failure here is reported
// to the caller as a delivery failure and never rolls the timer back.
func (m *Manager) Submit(ctx context.Context, entry *domain.TimeEntry) (*kimai.Timesheet, error) {
	if entry == nil || !entry.IsComplete() || !entry.IsValid() {
		return nil, errors.NewValidationError("only completed time entries can be submitted", nil)
	}

	client, err := m.Client(ctx)
	if err != nil {
		return nil, err
	}

	timesheet := &kimai.Timesheet{
		Begin:       kimai.FormatDateTime(entry.Begin),
		End:         kimai.FormatDateTime(*entry.End),
		Project:     entry.Project.ID,
		Activity:    entry.Activity.ID,
		Description: entry.Description,
		Duration:    entry.Duration,
		User:        entry.User,
	}
	return client.CreateTimesheet(ctx, timesheet)
}
