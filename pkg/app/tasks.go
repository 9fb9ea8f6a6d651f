package app

import (
	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/rs/zerolog/log"
)

// CreateTask adds a manual task to the front of the todo column.
func (a *App) CreateTask(title string) (board.Task, bool) {
	var task board.Task

	ok := a.update(func(now int64) bool {
		var created bool
		task, created = a.board.Create(title, board.OriginManual, now)

		return created
	})

	return task, ok
}

// Deletable reports whether interactive removal is allowed: only manual tasks still to do.
func Deletable(task board.Task) bool {
	return task.Status == board.StatusTodo && task.Origin == board.OriginManual
}

// DeleteTask removes a task on behalf of the user. Daily tasks and tasks that were started
// are refused; use RemoveTask to bypass the check.
func (a *App) DeleteTask(id string) bool {
	return a.update(func(now int64) bool {
		task, ok := a.board.Task(id)
		if !ok {
			return false
		}

		if !Deletable(task) {
			log.Debug().Str("task", id).Str("status", string(task.Status)).Msg("refusing to delete task")

			return false
		}

		return a.board.Remove(id, now)
	})
}

// RemoveTask removes a task unconditionally.
func (a *App) RemoveTask(id string) bool {
	return a.update(func(now int64) bool {
		return a.board.Remove(id, now)
	})
}

// SetStatus moves a task to status.
func (a *App) SetStatus(id string, status board.Status) bool {
	return a.update(func(now int64) bool {
		return a.board.UpdateStatus(id, status, now)
	})
}

// RenameTask changes a task title; daily tasks rename their template and siblings too.
func (a *App) RenameTask(id, title string) bool {
	return a.update(func(now int64) bool {
		return a.board.UpdateTitle(id, title, now)
	})
}

// ToggleRun pauses or resumes the active task.
func (a *App) ToggleRun(id string) bool {
	return a.update(func(now int64) bool {
		return a.board.ToggleRun(id, now)
	})
}

// AddSubTask appends a checklist entry to a task.
func (a *App) AddSubTask(taskID, title string) bool {
	return a.update(func(now int64) bool {
		_, ok := a.board.AddSubTask(taskID, title)

		return ok
	})
}

// ToggleSubTask flips a checklist entry.
func (a *App) ToggleSubTask(taskID, subID string) bool {
	return a.update(func(now int64) bool {
		return a.board.ToggleSubTask(taskID, subID)
	})
}

// RenameSubTask renames a checklist entry.
func (a *App) RenameSubTask(taskID, subID, title string) bool {
	return a.update(func(now int64) bool {
		return a.board.RenameSubTask(taskID, subID, title)
	})
}

// RemoveSubTask deletes a checklist entry.
func (a *App) RemoveSubTask(taskID, subID string) bool {
	return a.update(func(now int64) bool {
		return a.board.RemoveSubTask(taskID, subID)
	})
}

// AddTemplate creates a daily template.
func (a *App) AddTemplate(title string) (board.Template, bool) {
	var tmpl board.Template

	ok := a.update(func(now int64) bool {
		var created bool
		tmpl, created = a.board.AddTemplate(title, now)

		return created
	})

	return tmpl, ok
}

// RemoveTemplate deletes a daily template and every task created from it.
func (a *App) RemoveTemplate(id string) bool {
	return a.update(func(now int64) bool {
		return a.board.RemoveTemplate(id, now)
	})
}

// RenameTemplate renames a daily template and its tasks.
func (a *App) RenameTemplate(id, title string) bool {
	return a.update(func(now int64) bool {
		return a.board.RenameTemplate(id, title, now)
	})
}

// SeedIfNeeded materializes today's daily tasks if that has not happened yet.
func (a *App) SeedIfNeeded() int {
	var seeded int

	a.update(func(now int64) bool {
		seeded = a.board.SeedIfNeeded(now)

		return seeded > 0
	})

	return seeded
}
