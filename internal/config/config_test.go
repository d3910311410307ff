package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, 14, cfg.UI.TileWidth)
	require.Equal(t, "#f5c2e7", cfg.UI.Accent)
	require.Equal(t, "info", cfg.Log.Level)
	require.False(t, cfg.Launch.KeepOpen)
	require.Contains(t, cfg.Database.Path, "browserpick.db")
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
accent = "#89b4fa"
tile_width = 18

[launch]
keep_open = true
`), 0o644))
	t.Setenv("BROWSERPICK_LOG_LEVEL", "debug")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "#89b4fa", cfg.UI.Accent)
	require.Equal(t, 18, cfg.UI.TileWidth)
	require.True(t, cfg.Launch.KeepOpen)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFileFallsBackToConfigEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntile_width = 22\n"), 0o644))
	t.Setenv("BROWSERPICK_CONFIG", path)

	cfg, err := LoadFile("")
	require.NoError(t, err)
	require.Equal(t, 22, cfg.UI.TileWidth)
	require.Equal(t, path, Path())

	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, 22, cfg.UI.TileWidth)
}

func TestLoadFileFlagBeatsConfigEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	fromEnv := filepath.Join(dir, "env.toml")
	fromFlag := filepath.Join(dir, "flag.toml")
	require.NoError(t, os.WriteFile(fromEnv, []byte("[ui]\ntile_width = 22\n"), 0o644))
	require.NoError(t, os.WriteFile(fromFlag, []byte("[ui]\ntile_width = 30\n"), 0o644))
	t.Setenv("BROWSERPICK_CONFIG", fromEnv)

	cfg, err := LoadFile(fromFlag)
	require.NoError(t, err)
	require.Equal(t, 30, cfg.UI.TileWidth)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntile_width = 4\n"), 0o644))

	_, err := LoadFile(path)
	require.ErrorContains(t, err, "tile_width")
}

func TestValidateLogLevel(t *testing.T) {
	cfg := Config{
		Database: DatabaseConfig{Path: "x.db"},
		UI:       UIConfig{TileWidth: 14},
		Log:      LogConfig{Level: "loud"},
	}
	require.ErrorContains(t, cfg.Validate(), "log.level")
	cfg.Log.Level = "WARN"
	require.NoError(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		Database: DatabaseConfig{Path: "/tmp/pick.db"},
		UI:       UIConfig{Accent: "#a6e3a1", TileWidth: 16, Columns: 3},
		Launch:   LaunchConfig{KeepOpen: true},
		Log:      LogConfig{Path: "/tmp/pick.log", Level: "warn"},
	}
	require.NoError(t, Save(want, path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
