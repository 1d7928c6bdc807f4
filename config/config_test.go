package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	require.NotEmpty(t, cfg.Library.Path)
	require.NotEmpty(t, cfg.Database.Path)
	require.True(t, cfg.UI.Transitions)
	require.Equal(t, 180, cfg.UI.TransitionMS)
	require.True(t, cfg.UI.Haptics)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[library]\npath = \"/srv/books\"\n\n[ui]\ntransitions = false\ntransition_ms = 90\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "/srv/books", cfg.Library.Path)
	require.False(t, cfg.UI.Transitions)
	require.Equal(t, 90, cfg.UI.TransitionMS)
	// Unset keys keep their defaults.
	require.True(t, cfg.UI.Haptics)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Library.Path = "/data/shelf"
	cfg.UI.TransitionMS = 240
	require.NoError(t, cfg.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/data/shelf", reloaded.Library.Path)
	require.Equal(t, 240, reloaded.UI.TransitionMS)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_LIBRARY_PATH", "/env/books")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.Equal(t, "/env/books", cfg.Library.Path)
}
