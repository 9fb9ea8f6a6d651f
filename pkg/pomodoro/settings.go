package pomodoro

import (
	"fmt"
	"time"
)

// Default durations.
const (
	DefaultFocus          = 25 * time.Minute
	DefaultShortBreak     = 5 * time.Minute
	DefaultLongBreak      = 15 * time.Minute
	DefaultLongBreakEvery = 4
)

// Settings are the user-editable timer durations plus the completed focus cycle counter.
type Settings struct {
	FocusMs         int64 `json:"focusMs"`
	ShortBreakMs    int64 `json:"shortBreakMs"`
	LongBreakMs     int64 `json:"longBreakMs"`
	LongBreakEvery  int   `json:"longBreakEvery"`
	CompletedCycles int   `json:"completedCycles"`
}

// DefaultSettings returns a 25/5/15 cycle with a long break every fourth focus.
func DefaultSettings() Settings {
	return Settings{
		FocusMs:        DefaultFocus.Milliseconds(),
		ShortBreakMs:   DefaultShortBreak.Milliseconds(),
		LongBreakMs:    DefaultLongBreak.Milliseconds(),
		LongBreakEvery: DefaultLongBreakEvery,
	}
}

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	switch {
	case s.FocusMs <= 0:
		return fmt.Errorf("focus duration must be positive, got %dms", s.FocusMs)
	case s.ShortBreakMs <= 0:
		return fmt.Errorf("short break duration must be positive, got %dms", s.ShortBreakMs)
	case s.LongBreakMs <= 0:
		return fmt.Errorf("long break duration must be positive, got %dms", s.LongBreakMs)
	case s.LongBreakEvery < 1:
		return fmt.Errorf("long break cadence must be at least 1, got %d", s.LongBreakEvery)
	case s.CompletedCycles < 0:
		return fmt.Errorf("completed cycles must not be negative, got %d", s.CompletedCycles)
	}

	return nil
}

// Sanitize replaces invalid fields with defaults so loaded settings are always usable.
func (s Settings) Sanitize() Settings {
	def := DefaultSettings()

	if s.FocusMs <= 0 {
		s.FocusMs = def.FocusMs
	}

	if s.ShortBreakMs <= 0 {
		s.ShortBreakMs = def.ShortBreakMs
	}

	if s.LongBreakMs <= 0 {
		s.LongBreakMs = def.LongBreakMs
	}

	if s.LongBreakEvery < 1 {
		s.LongBreakEvery = def.LongBreakEvery
	}

	if s.CompletedCycles < 0 {
		s.CompletedCycles = 0
	}

	return s
}
