package credentials

import (
	"github.com/zalando/go-keyring"

	"hirotrack/internal/domain"
	"hirotrack/internal/errors"
	"hirotrack/internal/logging"
)

const keyringService = "hirotrack"

// keyringStore persists credentials in the OS-native secure store.
type keyringStore struct {
	service string
}

func newKeyringStore() *keyringStore {
	return &keyringStore{service: keyringService}
}

// probeKeyring checks once whether the OS keyring is usable by writing and
// removing a probe entry.
func probeKeyring() bool {
	const probeKey = "capability_probe"
	if err := keyring.Set(keyringService, probeKey, "ok"); err != nil {
		return false
	}
	if err := keyring.Delete(keyringService, probeKey); err != nil {
		logging.Debugf("credentials: keyring probe cleanup failed: %v\n", err)
	}
	return true
}

func (s *keyringStore) Load() (*domain.Credentials, error) {
	serverURL, err := keyring.Get(s.service, keyServerURL)
	if err != nil {
		if err != keyring.ErrNotFound {
			logging.Debugf("credentials: keyring load failed: %v\n", err)
		}
		return nil, nil
	}
	apiToken, err := keyring.Get(s.service, keyAPIToken)
	if err != nil {
		if err != keyring.ErrNotFound {
			logging.Debugf("credentials: keyring load failed: %v\n", err)
		}
		return nil, nil
	}
	return &domain.Credentials{ServerURL: serverURL, APIToken: apiToken}, nil
}

func (s *keyringStore) Save(serverURL, apiToken string) error {
	if err := keyring.Set(s.service, keyServerURL, normalizeServerURL(serverURL)); err != nil {
		return errors.NewStorageError("save server URL", err)
	}
	if err := keyring.Set(s.service, keyAPIToken, apiToken); err != nil {
		return errors.NewStorageError("save API token", err)
	}
	return nil
}

func (s *keyringStore) Clear() error {
	for _, key := range []string{keyServerURL, keyAPIToken} {
		if err := keyring.Delete(s.service, key); err != nil && err != keyring.ErrNotFound {
			return errors.NewStorageError("clear credentials", err)
		}
	}
	return nil
}
