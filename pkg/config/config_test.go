package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matt-steen/focus-board/pkg/config"
	"github.com/matt-steen/focus-board/pkg/pomodoro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(config.DayBoundaryLocal, cfg.DayBoundary)
	assert.Equal(time.Second, cfg.TickInterval)
	assert.Equal("info", cfg.LogLevel)
	assert.Equal(pomodoro.DefaultSettings(), cfg.PomodoroSettings())
	assert.Equal(time.Local, cfg.Location())
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	path := writeConfig(t, `
db_path: /tmp/board.sqlite
day_boundary: utc
tick_interval: 500ms
pomodoro:
  focus_minutes: 50
  long_break_every: 2
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal("/tmp/board.sqlite", cfg.DBPath)
	assert.Equal(time.UTC, cfg.Location())
	assert.Equal(500*time.Millisecond, cfg.TickInterval)

	settings := cfg.PomodoroSettings()
	assert.Equal((50 * time.Minute).Milliseconds(), settings.FocusMs)
	assert.Equal((5 * time.Minute).Milliseconds(), settings.ShortBreakMs)
	assert.Equal(2, settings.LongBreakEvery)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	_, err := config.Load(writeConfig(t, "day_boundary: mars\n"))
	assert.Error(err)

	_, err = config.Load(writeConfig(t, "pomodoro:\n  long_break_every: 0\n"))
	assert.Error(err)

	_, err = config.Load(writeConfig(t, "db_path: [unclosed\n"))
	assert.Error(err)
}
