package controller

import (
	"github.com/matt-steen/focus-board/pkg/app"
	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/matt-steen/focus-board/pkg/pomodoro"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

func (c *Controller) initEvents() {
	c.events = map[rune]KeyEvent{}

	c.initTaskEvents()
	c.initMoveEvents()
	c.initTimerEvents()

	c.events['q'] = KeyEvent{
		Description: "Exit",
		Action: func() {
			log.Info().Msg("terminating application")
			c.tui.Stop()
		},
	}
}

// withSelected runs fn for the task under the cursor, if any.
func (c *Controller) withSelected(fn func(board.Task)) func() {
	return func() {
		if task, ok := c.selectedTask(); ok {
			fn(task)
		}
	}
}

func (c *Controller) initTaskEvents() {
	c.events['n'] = KeyEvent{
		Description: "New",
		Action: func() {
			c.switchToForm("New task", "", func(title string) {
				c.app.CreateTask(title)
			})
		},
	}

	c.events['e'] = KeyEvent{
		Description: "Edit",
		Action: c.withSelected(func(task board.Task) {
			c.switchToForm("Edit task", task.Title, func(title string) {
				c.app.RenameTask(task.ID, title)
			})
		}),
	}

	c.events['x'] = KeyEvent{
		Description: "Delete",
		Action: c.withSelected(func(task board.Task) {
			if !c.app.DeleteTask(task.ID) {
				log.Debug().Str("task", task.ID).Msg("task cannot be deleted from the board")
			}
		}),
	}

	c.events['a'] = KeyEvent{
		Description: "Add checklist item",
		Action: c.withSelected(func(task board.Task) {
			c.switchToForm("Add checklist item", "", func(title string) {
				c.app.AddSubTask(task.ID, title)
			})
		}),
	}

	c.events['c'] = KeyEvent{
		Description: "Check next item",
		Action: c.withSelected(func(task board.Task) {
			for _, sub := range task.SubTasks {
				if !sub.Done {
					c.app.ToggleSubTask(task.ID, sub.ID)

					return
				}
			}
		}),
	}

	c.events['t'] = KeyEvent{
		Description: "New daily",
		Action: func() {
			c.switchToForm("New daily task", "", func(title string) {
				c.app.AddTemplate(title)
			})
		},
	}

	c.events['D'] = KeyEvent{
		Description: "Delete daily",
		Action: c.withSelected(func(task board.Task) {
			if task.Origin != board.OriginDaily {
				return
			}

			c.confirm("Delete this daily task and all of its instances?", func() {
				c.app.RemoveTemplate(task.OriginID)
			})
		}),
	}

	c.events['p'] = KeyEvent{
		Description: "Pause/resume",
		Action: c.withSelected(func(task board.Task) {
			c.app.ToggleRun(task.ID)
		}),
	}
}

func (c *Controller) getMoveAction(status board.Status) func() {
	return c.withSelected(func(task board.Task) {
		if !c.app.SetStatus(task.ID, status) {
			log.Warn().Str("task", task.ID).Msgf("could not move task to %s", status)
		}
	})
}

func (c *Controller) initMoveEvents() {
	c.events['1'] = KeyEvent{
		Description: "Move to To do",
		Action:      c.getMoveAction(board.StatusTodo),
	}

	c.events['2'] = KeyEvent{
		Description: "Move to In progress",
		Action:      c.getMoveAction(board.StatusInProgress),
	}

	c.events['3'] = KeyEvent{
		Description: "Move to Completed",
		Action:      c.getMoveAction(board.StatusCompleted),
	}

	c.events['g'] = KeyEvent{
		Description: "Grab/drop",
		Action:      c.grabOrDrop,
	}
}

// grabOrDrop picks up the selected card, or drops the held card on the selected card
// (or on the focused column when the cursor is on no other card).
func (c *Controller) grabOrDrop() {
	dragging := c.app.Dragging()

	if dragging == "" {
		if task, ok := c.selectedTask(); ok {
			c.app.DragStarted(task.ID)
			c.setColumnBorderColors(true)
			c.refresh()
		}

		return
	}

	target := app.ColumnTarget(board.Statuses()[c.focused])
	if task, ok := c.selectedTask(); ok && task.ID != dragging {
		target = app.TaskTarget(task.ID)
	}

	c.app.DragEnded(dragging, target)
	c.setColumnBorderColors(false)
	c.refresh()
}

func (c *Controller) cancelDrag() {
	if dragging := c.app.Dragging(); dragging != "" {
		c.app.DragEnded(dragging, app.Target{})
		c.setColumnBorderColors(false)
		c.refresh()
	}
}

func (c *Controller) initTimerEvents() {
	c.events['f'] = KeyEvent{
		Description: "Focus",
		Action:      func() { c.app.StartFocus() },
	}

	c.events['s'] = KeyEvent{
		Description: "Stop focus",
		Action:      func() { c.app.StopFocus() },
	}

	c.events['r'] = KeyEvent{
		Description: "Reset focus",
		Action:      func() { c.app.ResetFocus() },
	}

	c.events['b'] = KeyEvent{
		Description: "Short break",
		Action:      func() { c.startBreak(pomodoro.BreakShort) },
	}

	c.events['B'] = KeyEvent{
		Description: "Long break",
		Action:      func() { c.startBreak(pomodoro.BreakLong) },
	}

	c.events['k'] = KeyEvent{
		Description: "Skip break",
		Action:      func() { c.app.SkipBreak() },
	}

	c.events['S'] = KeyEvent{
		Description: "Settings",
		Action:      c.switchToSettings,
	}
}

// confirm asks a yes/no question and runs yes on confirmation.
func (c *Controller) confirm(text string, yes func()) {
	name := "confirm"

	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Delete", "Cancel"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			c.pages.RemovePage(name)
			c.focusColumn(c.focused)

			if buttonIndex == 0 {
				yes()
			}
		})

	c.pages.AddPage(name, modal, false, true)
	c.tui.SetFocus(modal)
}
