package app

import (
	"github.com/matt-steen/focus-board/pkg/pomodoro"
	"github.com/rs/zerolog/log"
)

// StartFocus starts focus, or asks for confirmation while a break runs.
func (a *App) StartFocus() bool {
	return a.update(a.timer.StartFocus)
}

// ConfirmFocus ends the running break and starts focus.
func (a *App) ConfirmFocus() bool {
	return a.update(a.timer.ConfirmFocus)
}

// CancelConfirm closes the confirmation prompt without changing anything else.
func (a *App) CancelConfirm() bool {
	return a.update(func(int64) bool {
		return a.timer.CancelConfirm()
	})
}

// StopFocus pauses the focus countdown.
func (a *App) StopFocus() bool {
	return a.update(a.timer.StopFocus)
}

// ResetFocus restores the full focus duration.
func (a *App) ResetFocus() bool {
	return a.update(func(int64) bool {
		return a.timer.ResetFocus()
	})
}

// StartBreak starts a short or long break, stopping every task timer until it ends.
func (a *App) StartBreak(kind pomodoro.BreakKind) error {
	var err error

	a.update(func(now int64) bool {
		err = a.timer.StartBreak(kind, now)

		return err == nil
	})

	if err != nil {
		log.Debug().Err(err).Msg("break not started")
	}

	return err
}

// DeferBreak declines the break offered after a focus cycle.
func (a *App) DeferBreak() bool {
	return a.update(func(int64) bool {
		return a.timer.Defer()
	})
}

// SkipBreak ends a running break early.
func (a *App) SkipBreak() bool {
	return a.update(a.timer.SkipBreak)
}

// DismissBreakDone acknowledges the end of a break so tasks may auto-start again.
func (a *App) DismissBreakDone() bool {
	return a.update(a.timer.DismissBreakDone)
}

// UpdateSettings saves new timer durations and cadence.
func (a *App) UpdateSettings(settings pomodoro.Settings) error {
	var err error

	a.update(func(int64) bool {
		err = a.timer.UpdateSettings(settings)

		return err == nil
	})

	return err
}

// ResetCycles zeroes the completed focus cycle counter.
func (a *App) ResetCycles() {
	a.update(func(int64) bool {
		a.timer.ResetCycles()

		return true
	})
}
