// Package config loads the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/matt-steen/focus-board/pkg/pomodoro"
	"gopkg.in/yaml.v3"
)

// Day boundary modes.
const (
	DayBoundaryLocal = "local"
	DayBoundaryUTC   = "utc"
)

// Config holds everything cmd/main needs to wire the app.
type Config struct {
	DBPath       string        `yaml:"db_path"`
	LogPath      string        `yaml:"log_path"`
	LogLevel     string        `yaml:"log_level"`
	DayBoundary  string        `yaml:"day_boundary"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Pomodoro     Pomodoro      `yaml:"pomodoro"`
}

// Pomodoro holds the initial timer settings used until the user saves their own.
type Pomodoro struct {
	FocusMinutes      int `yaml:"focus_minutes"`
	ShortBreakMinutes int `yaml:"short_break_minutes"`
	LongBreakMinutes  int `yaml:"long_break_minutes"`
	LongBreakEvery    int `yaml:"long_break_every"`
}

// Default returns the configuration used when no file exists. Files live under dir.
func Default(dir string) *Config {
	return &Config{
		DBPath:       filepath.Join(dir, "focus-board.sqlite"),
		LogPath:      filepath.Join(dir, "debug.log"),
		LogLevel:     "info",
		DayBoundary:  DayBoundaryLocal,
		TickInterval: time.Second,
		Pomodoro: Pomodoro{
			FocusMinutes:      int(pomodoro.DefaultFocus.Minutes()),
			ShortBreakMinutes: int(pomodoro.DefaultShortBreak.Minutes()),
			LongBreakMinutes:  int(pomodoro.DefaultLongBreak.Minutes()),
			LongBreakEvery:    pomodoro.DefaultLongBreakEvery,
		},
	}
}

// DefaultDir is ~/.focus-board, or the working directory if the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".focus-board")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default(DefaultDir())

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the fields that have no sensible fallback.
func (c *Config) Validate() error {
	switch c.DayBoundary {
	case DayBoundaryLocal, DayBoundaryUTC:
	default:
		return fmt.Errorf("day_boundary must be %q or %q, got %q", DayBoundaryLocal, DayBoundaryUTC, c.DayBoundary)
	}

	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}

	return c.PomodoroSettings().Validate()
}

// Location returns the time zone used for calendar days.
func (c *Config) Location() *time.Location {
	if c.DayBoundary == DayBoundaryUTC {
		return time.UTC
	}

	return time.Local
}

// PomodoroSettings converts the configured minutes into timer settings.
func (c *Config) PomodoroSettings() pomodoro.Settings {
	return pomodoro.Settings{
		FocusMs:        (time.Duration(c.Pomodoro.FocusMinutes) * time.Minute).Milliseconds(),
		ShortBreakMs:   (time.Duration(c.Pomodoro.ShortBreakMinutes) * time.Minute).Milliseconds(),
		LongBreakMs:    (time.Duration(c.Pomodoro.LongBreakMinutes) * time.Minute).Milliseconds(),
		LongBreakEvery: c.Pomodoro.LongBreakEvery,
	}
}
