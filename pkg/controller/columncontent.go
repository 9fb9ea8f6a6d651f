package controller

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/focus-board/pkg/app"
	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/matt-steen/focus-board/pkg/timefmt"
	"github.com/rivo/tview"
)

const titleElapsedRatio = 3

// ColumnContent implements tview.TableContent, which tview.Table uses to update data.
type ColumnContent struct {
	tview.TableContentReadOnly
	status   board.Status
	tasks    []board.Task
	now      int64
	dragging string
}

func (s *ColumnContent) update(snap app.Snapshot) {
	s.tasks = snap.Columns[s.status]
	s.now = snap.Now
	s.dragging = snap.Dragging
}

// taskAt maps a table row to its task, adjusting for the header row.
func (s *ColumnContent) taskAt(row int) (board.Task, bool) {
	if idx := row - 1; idx >= 0 && idx < len(s.tasks) {
		return s.tasks[idx], true
	}

	return board.Task{}, false
}

// GetCell returns the cell at the given position or nil if no cell.
func (s *ColumnContent) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		switch col {
		case 0:
			return tview.NewTableCell("title").SetExpansion(titleElapsedRatio).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 1:
			return tview.NewTableCell("elapsed").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		case 2:
			return tview.NewTableCell("checklist").SetExpansion(1).
				SetTextColor(tcell.ColorYellow).SetSelectable(false)
		}
	}

	task, ok := s.taskAt(row)
	if !ok {
		return nil
	}

	switch col {
	case 0:
		return tview.NewTableCell(s.title(task)).SetExpansion(titleElapsedRatio).SetReference(task.ID)
	case 1:
		cell := tview.NewTableCell(timefmt.HHMMSS(task.Elapsed(s.now))).SetExpansion(1)
		if task.Running() {
			cell.SetTextColor(tcell.ColorGreen)
		}

		return cell
	case 2:
		return tview.NewTableCell(checklist(task)).SetExpansion(1)
	}

	return nil
}

func (s *ColumnContent) title(task board.Task) string {
	title := tview.Escape(task.Title)

	if task.Origin == board.OriginDaily {
		title = "[blue]↻[white] " + title
	}

	if task.Paused {
		title += " [orange](paused)"
	}

	if task.ID == s.dragging {
		title = "[black:yellow]" + title
	}

	return title
}

func checklist(task board.Task) string {
	if len(task.SubTasks) == 0 {
		return ""
	}

	done := 0

	for _, sub := range task.SubTasks {
		if sub.Done {
			done++
		}
	}

	return fmt.Sprintf("%d/%d", done, len(task.SubTasks))
}

// GetRowCount returns the number of rows in the table.
func (s *ColumnContent) GetRowCount() int {
	return len(s.tasks) + 1
}

// GetColumnCount returns the number of columns in the table.
func (s *ColumnContent) GetColumnCount() int {
	return 3
}
