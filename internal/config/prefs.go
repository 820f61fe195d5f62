package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences persisted in ~/.config/hirotrack/prefs.toml.
// Everything here is optional; missing or unreadable files fall back to
// defaults silently.
type Prefs struct {
	Notifications       bool   `toml:"notifications"`
	DefaultUser         int64  `toml:"default_user"`
	TickIntervalSeconds int    `toml:"tick_interval_seconds"`
	DefaultSearch       string `toml:"default_search"`
}

const defaultPrefsPath = "~/.config/hirotrack/prefs.toml"

// DefaultPrefsPath returns the default preferences file path.
func DefaultPrefsPath() string {
	return defaultPrefsPath
}

func defaultPrefs() Prefs {
	return Prefs{Notifications: true}
}

// LoadPrefs reads preferences from the given path, falling back to defaults
// on any failure.
func LoadPrefs(path string) Prefs {
	prefs := defaultPrefs()

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return prefs
	}
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return defaultPrefs()
	}
	return prefs
}

// SavePrefs writes preferences to the given path, creating directories as
// needed.
func SavePrefs(path string, prefs Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	return filepath.Abs(trimmed)
}
