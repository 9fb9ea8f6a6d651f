package app

import (
	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/matt-steen/focus-board/pkg/pomodoro"
)

// Snapshot is a consistent read-only view for renderers.
type Snapshot struct {
	Now          int64
	Columns      map[board.Status][]board.Task
	Templates    []board.Template
	Timer        pomodoro.View
	Settings     pomodoro.Settings
	TotalElapsed int64
	BreakActive  bool
	// ActiveID is the task ToggleRun applies to: the runner, else the first in-progress task.
	ActiveID string
	Dragging string
}

// Snapshot reads the current state under the lock.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()

	snap := Snapshot{
		Now:          now,
		Columns:      a.board.Groupings(),
		Templates:    a.board.Templates(),
		Timer:        a.timer.View(),
		Settings:     a.timer.Settings(),
		TotalElapsed: a.board.TotalElapsed(now, true),
		BreakActive:  a.board.Flags().BreakActive,
		Dragging:     a.dragging,
	}

	if active, ok := a.board.ActiveTask(); ok {
		snap.ActiveID = active.ID
	}

	return snap
}

// Task looks up a task by id.
func (a *App) Task(id string) (board.Task, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.board.Task(id)
}
