package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "assets", s.ConfigDir)
	assert.Equal(t, int64(12345), s.Seed)
	assert.Equal(t, 200, s.MaxTurns)
	assert.Equal(t, 8, s.Workers)
	assert.Empty(t, s.DBPath)
}

func TestLoadSettings_FromEnv(t *testing.T) {
	t.Setenv("BATTLESIM_SEED", "99")
	t.Setenv("BATTLESIM_RUNS", "500")
	t.Setenv("BATTLESIM_DB_PATH", "/tmp/reports.db")
	t.Setenv("BATTLESIM_LOG_LEVEL", "DEBUG")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, 500, s.Runs)
	assert.Equal(t, "/tmp/reports.db", s.DBPath)
	assert.Equal(t, slog.LevelDebug, s.SlogLevel())
}

func TestLoadSettings_BadValue(t *testing.T) {
	t.Setenv("BATTLESIM_WORKERS", "many")
	_, err := LoadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"debug":   slog.LevelDebug,
	}
	for in, want := range tests {
		assert.Equal(t, want, Settings{LogLevel: in}.SlogLevel(), in)
	}
}
