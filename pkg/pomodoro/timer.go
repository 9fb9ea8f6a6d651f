// Package pomodoro implements the focus/break countdown that pauses task timers during breaks.
package pomodoro

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// State is the phase of the timer.
type State string

// Timer states. Only one countdown runs at a time.
const (
	StateIdle            State = "idle"
	StateFocusRunning    State = "focus_running"
	StateFocusDonePrompt State = "focus_done_prompt"
	StateBreakRunning    State = "break_running"
	StateBreakDonePrompt State = "break_done_prompt"
	// StateConfirmFocus waits for the user to confirm abandoning a running break for focus.
	StateConfirmFocus State = "confirm_focus"
)

// BreakKind selects the break duration.
type BreakKind string

// Break kinds.
const (
	BreakShort BreakKind = "short"
	BreakLong  BreakKind = "long"
)

// Signals receives the board-wide flags raised by the timer.
type Signals interface {
	SetBreakActive(active bool, now int64)
	SetSuppressAutoStart(suppress bool, now int64)
}

type noSignals struct{}

func (noSignals) SetBreakActive(bool, int64)       {}
func (noSignals) SetSuppressAutoStart(bool, int64) {}

// Timer is the focus/break state machine. It is not safe for concurrent use.
type Timer struct {
	settings       Settings
	state          State
	focusRemaining int64
	breakRemaining int64
	breakKind      BreakKind
	lastTick       int64
	signals        Signals
}

// View is a read-only snapshot for renderers.
type View struct {
	State              State
	BreakKind          BreakKind
	Remaining          int64
	CompletedCycles    int
	LongBreakAvailable bool
}

// New creates an idle timer. Invalid settings fall back to defaults field by field.
func New(settings Settings, signals Signals) *Timer {
	if signals == nil {
		signals = noSignals{}
	}

	settings = settings.Sanitize()

	return &Timer{
		settings:       settings,
		state:          StateIdle,
		focusRemaining: settings.FocusMs,
		breakRemaining: settings.ShortBreakMs,
		breakKind:      BreakShort,
		signals:        signals,
	}
}

// State returns the current phase.
func (t *Timer) State() State {
	return t.state
}

// Settings returns the current settings including the completed cycle counter.
func (t *Timer) Settings() Settings {
	return t.settings
}

// FocusRemaining returns the focus countdown in ms.
func (t *Timer) FocusRemaining() int64 {
	return t.focusRemaining
}

// BreakRemaining returns the break countdown in ms.
func (t *Timer) BreakRemaining() int64 {
	return t.breakRemaining
}

// BreakActive reports whether a break countdown is running.
func (t *Timer) BreakActive() bool {
	return t.breakRunning()
}

// LongBreakAvailable reports whether the completed cycles are a positive multiple of the cadence.
func (t *Timer) LongBreakAvailable() bool {
	return t.settings.CompletedCycles > 0 && t.settings.CompletedCycles%t.settings.LongBreakEvery == 0
}

// View returns a snapshot of the timer.
func (t *Timer) View() View {
	remaining := t.focusRemaining
	if t.breakRunning() || t.state == StateBreakDonePrompt {
		remaining = t.breakRemaining
	}

	return View{
		State:              t.state,
		BreakKind:          t.breakKind,
		Remaining:          remaining,
		CompletedCycles:    t.settings.CompletedCycles,
		LongBreakAvailable: t.LongBreakAvailable(),
	}
}

func (t *Timer) breakRunning() bool {
	return t.state == StateBreakRunning || t.state == StateConfirmFocus
}

func (t *Timer) setState(state State) {
	log.Debug().Str("from", string(t.state)).Str("to", string(state)).Msg("pomodoro state change")

	t.state = state
}

// Tick advances the running countdown by the time since the previous tick, floored at zero.
// It reports whether a countdown finished.
func (t *Timer) Tick(now int64) bool {
	delta := now - t.lastTick
	t.lastTick = now

	if delta < 0 {
		delta = 0
	}

	switch {
	case t.state == StateFocusRunning:
		t.focusRemaining -= delta
		if t.focusRemaining <= 0 {
			t.completeFocus()

			return true
		}
	case t.breakRunning():
		t.breakRemaining -= delta
		if t.breakRemaining <= 0 {
			t.completeBreak(now)

			return true
		}
	}

	return false
}

func (t *Timer) completeFocus() {
	t.focusRemaining = t.settings.FocusMs
	t.settings.CompletedCycles++
	t.setState(StateFocusDonePrompt)

	log.Info().Int("cycles", t.settings.CompletedCycles).Msg("focus completed")
}

func (t *Timer) completeBreak(now int64) {
	t.breakRemaining = t.settings.ShortBreakMs
	t.setState(StateBreakDonePrompt)

	// suppress must be raised before the break flag drops, or the runner would restart
	t.signals.SetSuppressAutoStart(true, now)
	t.signals.SetBreakActive(false, now)

	log.Info().Str("kind", string(t.breakKind)).Msg("break completed")
}

// StartFocus starts or resumes the focus countdown. During a break it only asks for
// confirmation; see ConfirmFocus.
func (t *Timer) StartFocus(now int64) bool {
	switch t.state {
	case StateBreakRunning:
		t.setState(StateConfirmFocus)

		return true
	case StateIdle, StateFocusDonePrompt, StateBreakDonePrompt:
		if t.state == StateBreakDonePrompt {
			t.signals.SetSuppressAutoStart(false, now)
		}

		t.startFocus(now)

		return true
	}

	return false
}

func (t *Timer) startFocus(now int64) {
	if t.focusRemaining <= 0 {
		t.focusRemaining = t.settings.FocusMs
	}

	t.lastTick = now
	t.setState(StateFocusRunning)
}

// ConfirmFocus ends the running break and starts focus.
func (t *Timer) ConfirmFocus(now int64) bool {
	if t.state != StateConfirmFocus {
		return false
	}

	t.breakRemaining = t.settings.ShortBreakMs
	t.startFocus(now)
	t.signals.SetBreakActive(false, now)

	return true
}

// CancelConfirm discards a pending switch to focus; the break keeps running.
func (t *Timer) CancelConfirm() bool {
	if t.state != StateConfirmFocus {
		return false
	}

	t.setState(StateBreakRunning)

	return true
}

// StopFocus pauses the focus countdown, keeping the remaining time.
func (t *Timer) StopFocus(now int64) bool {
	if t.state != StateFocusRunning {
		return false
	}

	t.Tick(now)

	if t.state == StateFocusRunning {
		t.setState(StateIdle)
	}

	return true
}

// ResetFocus stops focus if needed and restores the full focus duration.
func (t *Timer) ResetFocus() bool {
	switch t.state {
	case StateIdle, StateFocusRunning:
		t.focusRemaining = t.settings.FocusMs
		t.setState(StateIdle)

		return true
	}

	return false
}

// StartBreak starts a short or long break. Long breaks are only offered when available.
func (t *Timer) StartBreak(kind BreakKind, now int64) error {
	switch t.state {
	case StateIdle, StateFocusDonePrompt, StateBreakDonePrompt:
	default:
		return fmt.Errorf("cannot start a break while %s", t.state)
	}

	switch kind {
	case BreakShort:
		t.breakRemaining = t.settings.ShortBreakMs
	case BreakLong:
		if !t.LongBreakAvailable() {
			return fmt.Errorf("long break not available after %d cycles (every %d)",
				t.settings.CompletedCycles, t.settings.LongBreakEvery)
		}

		t.breakRemaining = t.settings.LongBreakMs
	default:
		return fmt.Errorf("unknown break kind %q", kind)
	}

	if t.state == StateBreakDonePrompt {
		t.signals.SetSuppressAutoStart(false, now)
	}

	t.breakKind = kind
	t.lastTick = now
	t.setState(StateBreakRunning)
	t.signals.SetBreakActive(true, now)

	return nil
}

// Defer declines the break offered after a focus cycle.
func (t *Timer) Defer() bool {
	if t.state != StateFocusDonePrompt {
		return false
	}

	t.setState(StateIdle)

	return true
}

// SkipBreak ends a running break early. Tasks may resume right away.
func (t *Timer) SkipBreak(now int64) bool {
	if !t.breakRunning() {
		return false
	}

	t.breakRemaining = t.settings.ShortBreakMs
	t.setState(StateIdle)
	t.signals.SetBreakActive(false, now)

	return true
}

// DismissBreakDone acknowledges the end of a break and lets tasks auto-start again.
func (t *Timer) DismissBreakDone(now int64) bool {
	if t.state != StateBreakDonePrompt {
		return false
	}

	t.setState(StateIdle)
	t.signals.SetSuppressAutoStart(false, now)

	return true
}

// UpdateSettings replaces the durations and cadence. The completed cycle counter is kept.
// A countdown that is not running picks up its new duration; a running one is left alone.
func (t *Timer) UpdateSettings(s Settings) error {
	s.CompletedCycles = t.settings.CompletedCycles

	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid pomodoro settings: %w", err)
	}

	prev := t.settings
	t.settings = s

	if s.FocusMs != prev.FocusMs && t.state != StateFocusRunning {
		t.focusRemaining = s.FocusMs
	}

	if (s.ShortBreakMs != prev.ShortBreakMs || s.LongBreakMs != prev.LongBreakMs) && !t.breakRunning() {
		t.breakRemaining = s.ShortBreakMs
	}

	return nil
}

// ResetCycles zeroes the completed focus cycle counter.
func (t *Timer) ResetCycles() {
	t.settings.CompletedCycles = 0
}
