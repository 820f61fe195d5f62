package credentials

import (
	"strings"

	"hirotrack/internal/domain"
	"hirotrack/internal/logging"
)

// Store persists the (server URL, API token) pair. Two interchangeable
// backends exist: the OS keyring, and a sqlite key/value fallback. The
// backend is selected once at process start; callers never see which one
// is live.
type Store interface {
	// Load returns the stored credentials, or nil when absent. Backend
	// failures are never propagated: the application must always be able
	// to boot into the setup flow.
	Load() (*domain.Credentials, error)

	// Save persists the pair, stripping one trailing slash from the
	// server URL first.
	Save(serverURL, apiToken string) error

	// Clear removes the stored pair.
	Clear() error
}

const (
	keyServerURL = "server_url"
	keyAPIToken  = "api_token"
)

// NewStore probes the OS keyring once and returns the keyring-backed store
// when it is usable, falling back to the sqlite store at the given path
// otherwise.
func NewStore(dbPath string) Store {
	if probeKeyring() {
		return newKeyringStore()
	}
	logging.Debugln("credentials: keyring unavailable, using sqlite fallback")
	return newSQLiteStore(dbPath)
}

// normalizeServerURL strips one trailing slash before persisting.
func normalizeServerURL(serverURL string) string {
	return strings.TrimSuffix(serverURL, "/")
}
