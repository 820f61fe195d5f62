package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrefsDefaultsWhenMissing(t *testing.T) {
	prefs := LoadPrefs(filepath.Join(t.TempDir(), "does-not-exist.toml"))

	assert.True(t, prefs.Notifications)
	assert.Zero(t, prefs.DefaultUser)
	assert.Zero(t, prefs.TickIntervalSeconds)
	assert.Empty(t, prefs.DefaultSearch)
}

func TestLoadPrefsDefaultsOnMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("notifications = {{{"), 0o644))

	prefs := LoadPrefs(path)
	assert.True(t, prefs.Notifications)
}

func TestSaveAndLoadPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings", "prefs.toml")

	saved := Prefs{
		Notifications:       false,
		DefaultUser:         7,
		TickIntervalSeconds: 2,
		DefaultSearch:       "acme",
	}
	require.NoError(t, SavePrefs(path, saved))

	loaded := LoadPrefs(path)
	assert.Equal(t, saved, loaded)
}

func TestLoadPrefsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("default_user = 12\n"), 0o644))

	prefs := LoadPrefs(path)
	assert.Equal(t, int64(12), prefs.DefaultUser)
	// Fields absent from the file keep their defaults.
	assert.True(t, prefs.Notifications)
}

func TestDefaultPrefsPath(t *testing.T) {
	assert.Equal(t, "~/.config/hirotrack/prefs.toml", DefaultPrefsPath())
}
