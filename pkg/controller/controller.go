package controller

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/focus-board/pkg/app"
	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	boardPage    = "board"
	formPage     = "form"
	settingsPage = "settings"
	promptPage   = "prompt"
)

// Controller mediates between the app state and the view.
type Controller struct {
	app     *app.App
	tui     *tview.Application
	pages   *tview.Pages
	header  *tview.TextView
	footer  *tview.TextView
	columns map[board.Status]*tview.Table
	content map[board.Status]*ColumnContent
	focused int
	events  map[rune]KeyEvent

	todoForm   *tview.Form
	titleField *tview.InputField
	// formSave is called with the entered text when the form is saved.
	formSave func(string)

	settingsForm *tview.Form

	snapshot app.Snapshot
	// prompt is the timer state the visible prompt was opened for, "" if none.
	prompt string
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	Action      func()
}

// NewController creates a new Controller to run the app.
func NewController(a *app.App) *Controller {
	c := Controller{
		app:     a,
		tui:     tview.NewApplication(),
		pages:   tview.NewPages(),
		columns: map[board.Status]*tview.Table{},
		content: map[board.Status]*ColumnContent{},
	}

	c.initEvents()
	c.initPages()

	a.OnChange(func() {
		c.tui.QueueUpdateDraw(c.refresh)
	})

	return &c
}

// Go starts the app and blocks until it exits.
func (c *Controller) Go() error {
	c.refresh()
	c.focusColumn(0)

	return c.tui.SetRoot(c.pages, true).Run()
}

// Stop exits the event loop.
func (c *Controller) Stop() {
	c.tui.Stop()
}

func (c *Controller) initPages() {
	c.header = tview.NewTextView().SetDynamicColors(true)
	c.header.SetScrollable(false)

	c.footer = tview.NewTextView().SetDynamicColors(true)
	c.footer.SetText(c.shortcutHelp())

	columns := tview.NewFlex()
	for _, status := range board.Statuses() {
		columns.AddItem(c.getColumn(status), 0, 1, false)
	}

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(c.header, 2, 0, false).
		AddItem(columns, 0, 1, true).
		AddItem(c.footer, 2, 0, false)

	c.pages.AddPage(boardPage, layout, true, true)
	c.pages.AddPage(formPage, c.getFormGrid(), true, false)
	c.pages.AddPage(settingsPage, c.getSettingsGrid(), true, false)
}

// refresh reloads the snapshot into every view. It must run on the event loop.
func (c *Controller) refresh() {
	c.snapshot = c.app.Snapshot()

	for status, content := range c.content {
		content.update(c.snapshot)

		table := c.columns[status]
		if row, _ := table.GetSelection(); row >= table.GetRowCount() {
			table.Select(table.GetRowCount()-1, 0)
		}
	}

	c.header.SetText(c.headerText())
	c.showTimerPrompt()
}

// selectedTask returns the task under the cursor in the focused column.
func (c *Controller) selectedTask() (board.Task, bool) {
	status := board.Statuses()[c.focused]
	row, _ := c.columns[status].GetSelection()

	return c.content[status].taskAt(row)
}

func (c *Controller) focusColumn(idx int) {
	statuses := board.Statuses()
	if idx < 0 || idx >= len(statuses) {
		return
	}

	c.focused = idx

	for i, status := range statuses {
		c.columns[status].SetSelectable(i == idx, false)
	}

	c.tui.SetFocus(c.columns[statuses[idx]])

	log.Debug().Str("column", string(statuses[idx])).Msg("focus column")
}

func (c *Controller) handleKeys(evt *tcell.EventKey) *tcell.EventKey {
	switch evt.Key() {
	case tcell.KeyLeft:
		c.focusColumn(c.focused - 1)

		return nil
	case tcell.KeyRight:
		c.focusColumn(c.focused + 1)

		return nil
	case tcell.KeyEscape:
		c.cancelDrag()

		return nil
	case tcell.KeyRune:
		if k, ok := c.events[evt.Rune()]; ok {
			k.Action()

			return nil
		}
	}

	return evt
}
