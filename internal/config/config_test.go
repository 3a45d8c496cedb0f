package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "chatsum", "chatsum.db"), cfg.DBPath)
	require.Equal(t, "Local", cfg.Timezone)
	require.Equal(t, 6, cfg.DayStartHour)
	require.Equal(t, 18, cfg.NightStartHour)
	require.Equal(t, 3*time.Hour, cfg.MonologueThreshold())
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "chatsum")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := `db_path = "~/data/chats.db"
timezone = "UTC"
day_start_hour = 7
night_start_hour = 22
monologue_min_hours = 1.5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "data", "chats.db"), cfg.DBPath, "~ expands to home")
	require.Equal(t, "UTC", cfg.Timezone)
	require.Equal(t, 7, cfg.DayStartHour)
	require.Equal(t, 22, cfg.NightStartHour)
	require.Equal(t, 90*time.Minute, cfg.MonologueThreshold())

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.UTC, loc)
}

func TestLoadRejectsInvertedDayNight(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "chatsum")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "day_start_hour = 20\nnight_start_hour = 8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	_, err := Load()

	require.Error(t, err)
}

func TestLocationRejectsUnknownZone(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}

	_, err := cfg.Location()

	require.Error(t, err)
}
