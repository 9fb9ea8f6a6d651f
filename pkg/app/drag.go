package app

import (
	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/rs/zerolog/log"
)

// Target is where a dragged card was dropped. The zero value means nowhere.
type Target struct {
	Column board.Status
	TaskID string
}

// ColumnTarget is a drop on a column.
func ColumnTarget(status board.Status) Target {
	return Target{Column: status}
}

// TaskTarget is a drop on another card.
func TaskTarget(id string) Target {
	return Target{TaskID: id}
}

// DragStarted records the card being dragged.
func (a *App) DragStarted(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.dragging = id
}

// Dragging returns the id of the card being dragged, "" if none.
func (a *App) Dragging() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.dragging
}

// DragEnded applies the drop of id on target. A drop on a card reorders and adopts that
// card's column; a drop on a column only changes status.
func (a *App) DragEnded(id string, target Target) bool {
	return a.update(func(now int64) bool {
		a.dragging = ""

		log.Debug().Str("task", id).Str("column", string(target.Column)).Str("onto", target.TaskID).Msg("drop")

		switch {
		case target.TaskID != "":
			return a.board.MoveOntoTask(id, target.TaskID, now)
		case target.Column != "":
			return a.board.MoveToColumn(id, target.Column, now)
		}

		return false
	})
}
