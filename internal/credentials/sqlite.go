package credentials

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"hirotrack/internal/domain"
	"hirotrack/internal/errors"
	"hirotrack/internal/logging"
)

// sqliteStore is the fallback backend: a simple persistent key/value table
// holding the two credential entries.
type sqliteStore struct {
	dbPath string
}

func newSQLiteStore(dbPath string) *sqliteStore {
	return &sqliteStore{dbPath: dbPath}
}

// open opens the database and ensures the settings table exists. The store
// opens per operation; credential access is rare enough that holding a
// connection for the process lifetime buys nothing.
func (s *sqliteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return nil, err
	}
	query := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (s *sqliteStore) Load() (*domain.Credentials, error) {
	db, err := s.open()
	if err != nil {
		logging.Debugf("credentials: sqlite open failed: %v\n", err)
		return nil, nil
	}
	defer db.Close()

	serverURL, err := s.get(db, keyServerURL)
	if err != nil {
		logging.Debugf("credentials: sqlite load failed: %v\n", err)
		return nil, nil
	}
	apiToken, err := s.get(db, keyAPIToken)
	if err != nil {
		logging.Debugf("credentials: sqlite load failed: %v\n", err)
		return nil, nil
	}
	if serverURL == "" || apiToken == "" {
		return nil, nil
	}
	return &domain.Credentials{ServerURL: serverURL, APIToken: apiToken}, nil
}

func (s *sqliteStore) Save(serverURL, apiToken string) error {
	db, err := s.open()
	if err != nil {
		return errors.NewStorageError("open store", err)
	}
	defer db.Close()

	if err := s.set(db, keyServerURL, normalizeServerURL(serverURL)); err != nil {
		return errors.NewStorageError("save server URL", err)
	}
	if err := s.set(db, keyAPIToken, apiToken); err != nil {
		return errors.NewStorageError("save API token", err)
	}
	return nil
}

func (s *sqliteStore) Clear() error {
	db, err := s.open()
	if err != nil {
		return errors.NewStorageError("open store", err)
	}
	defer db.Close()

	if _, err := db.Exec(`DELETE FROM settings WHERE key IN (?, ?)`, keyServerURL, keyAPIToken); err != nil {
		return errors.NewStorageError("clear credentials", err)
	}
	return nil
}

// get returns the value for a key, or empty string when the key is absent.
func (s *sqliteStore) get(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *sqliteStore) set(db *sql.DB, key, value string) error {
	query := `
	INSERT INTO settings (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := db.Exec(query, key, value)
	return err
}
