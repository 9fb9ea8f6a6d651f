package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/matt-steen/focus-board/pkg/pomodoro"
	"github.com/matt-steen/focus-board/pkg/timefmt"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// breakDoneText is shown once a break ends. Answering either way lets the runner resume.
const breakDoneText = "Break is over. Your task resumes once you start focus or dismiss this."

func columnTitle(status board.Status) string {
	switch status {
	case board.StatusTodo:
		return "To do"
	case board.StatusInProgress:
		return "In progress"
	case board.StatusCompleted:
		return "Completed"
	}

	return string(status)
}

func (c *Controller) getColumn(status board.Status) *tview.Table {
	content := &ColumnContent{status: status}
	c.content[status] = content

	table := tview.NewTable().SetBorders(false)
	table.SetContent(content)
	table.SetSelectable(false, false)
	table.SetFixed(1, 0)
	table.SetBorder(true)
	table.SetTitle(columnTitle(status))
	table.SetInputCapture(c.handleKeys)
	table.Select(1, 0)

	c.columns[status] = table

	return table
}

// headerText shows the focus timer and the total tracked time.
func (c *Controller) headerText() string {
	snap := c.snapshot
	timer := snap.Timer

	mode := "focus"
	if timer.State == pomodoro.StateBreakRunning || timer.State == pomodoro.StateConfirmFocus ||
		timer.State == pomodoro.StateBreakDonePrompt {
		mode = string(timer.BreakKind) + " break"
	}

	var runner string

	for _, task := range snap.Columns[board.StatusInProgress] {
		if task.Running() {
			runner = tview.Escape(task.Title)

			break
		}
	}

	if runner == "" {
		runner = "-"
	}

	return fmt.Sprintf(
		"[yellow]%s %s[white] (%s, %d cycles)   [yellow]total[white] %s   [yellow]running[white] %s",
		mode,
		timefmt.MMSS(timer.Remaining),
		strings.ReplaceAll(string(timer.State), "_", " "),
		timer.CompletedCycles,
		timefmt.HHMMSS(snap.TotalElapsed),
		runner,
	)
}

// shortcutHelp lists the keyboard shortcuts sorted by key.
func (c *Controller) shortcutHelp() string {
	keys := make([]rune, 0, len(c.events))
	for key := range c.events {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	items := make([]string, 0, len(keys))
	for _, key := range keys {
		items = append(items, fmt.Sprintf("[orange]<%c>[white] %s", key, c.events[key].Description))
	}

	return strings.Join(items, "  ")
}

// showTimerPrompt opens the modal matching the timer state, or closes a stale one.
func (c *Controller) showTimerPrompt() {
	state := c.snapshot.Timer.State

	if string(state) == c.prompt {
		return
	}

	c.closePrompt()

	var (
		text    string
		buttons []string
		actions []func()
	)

	switch state {
	case pomodoro.StateFocusDonePrompt:
		text = "Focus cycle finished. Take a break?"
		buttons = append(buttons, "Short break")
		actions = append(actions, func() { c.startBreak(pomodoro.BreakShort) })

		if c.snapshot.Timer.LongBreakAvailable {
			buttons = append(buttons, "Long break")
			actions = append(actions, func() { c.startBreak(pomodoro.BreakLong) })
		}

		buttons = append(buttons, "Later")
		actions = append(actions, func() { c.app.DeferBreak() })
	case pomodoro.StateBreakDonePrompt:
		text = breakDoneText
		buttons = []string{"Start focus", "Dismiss"}
		actions = []func(){
			func() { c.app.StartFocus() },
			func() { c.app.DismissBreakDone() },
		}
	case pomodoro.StateConfirmFocus:
		text = "A break is running. Switch to focus now?"
		buttons = []string{"Switch to focus", "Keep break"}
		actions = []func(){
			func() { c.app.ConfirmFocus() },
			func() { c.app.CancelConfirm() },
		}
	default:
		return
	}

	c.prompt = string(state)

	modal := tview.NewModal().
		SetText(text).
		AddButtons(buttons).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			log.Debug().Str("button", buttonLabel).Msg("prompt answered")

			c.closePrompt()

			// escape closes the prompt with index -1
			if buttonIndex >= 0 && buttonIndex < len(actions) {
				actions[buttonIndex]()
			} else if state == pomodoro.StateConfirmFocus {
				c.app.CancelConfirm()
			}
		})

	c.pages.AddPage(promptPage, modal, false, true)
	c.tui.SetFocus(modal)
}

func (c *Controller) closePrompt() {
	if c.prompt == "" {
		return
	}

	c.prompt = ""
	c.pages.RemovePage(promptPage)
	c.focusColumn(c.focused)
}

func (c *Controller) startBreak(kind pomodoro.BreakKind) {
	if err := c.app.StartBreak(kind); err != nil {
		log.Warn().Err(err).Msg("error starting break")
	}
}

func (c *Controller) setColumnBorderColors(grabbing bool) {
	color := tcell.ColorWhite
	if grabbing {
		color = tcell.ColorYellow
	}

	for _, table := range c.columns {
		table.SetBorderColor(color)
	}
}
