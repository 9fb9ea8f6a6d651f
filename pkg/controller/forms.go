package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matt-steen/focus-board/pkg/pomodoro"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	titleMax   = 80
	minutesMax = 4
)

// switchToForm shows the single-field title form; save receives the entered text.
func (c *Controller) switchToForm(title, value string, save func(string)) {
	c.todoForm.SetTitle(title)
	c.titleField.SetText(value)
	c.formSave = save

	c.todoForm.SetFocus(0)

	c.pages.SwitchToPage(formPage)
	c.tui.SetFocus(c.todoForm)
}

func (c *Controller) switchToBoard() {
	c.pages.SwitchToPage(boardPage)
	c.focusColumn(c.focused)
}

func (c *Controller) getFormGrid() *tview.Grid {
	c.initForm()

	grid := tview.NewGrid().SetRows(0, 7, 0).SetColumns(0, 70, 0)
	grid.AddItem(c.todoForm, 1, 1, 1, 1, 0, 0, true)

	return grid
}

func (c *Controller) initForm() {
	c.todoForm = tview.NewForm().
		AddInputField("Title", "", titleMax, nil, nil)

	c.todoForm.SetBorder(true)

	c.titleField, _ = c.todoForm.GetFormItemByLabel("Title").(*tview.InputField)

	c.todoForm.AddButton("Save", func() {
		text := c.titleField.GetText()

		log.Debug().Msgf("saving form with title '%s'", text)

		if c.formSave != nil {
			c.formSave(text)
		}

		c.titleField.SetText("")
		c.switchToBoard()
	})

	c.todoForm.AddButton("Cancel", c.switchToBoard)
	c.todoForm.SetCancelFunc(c.switchToBoard)
}

func (c *Controller) getSettingsGrid() *tview.Grid {
	c.settingsForm = tview.NewForm()
	c.settingsForm.SetBorder(true)
	c.settingsForm.SetTitle("Focus timer")

	grid := tview.NewGrid().SetRows(0, 13, 0).SetColumns(0, 50, 0)
	grid.AddItem(c.settingsForm, 1, 1, 1, 1, 0, 0, true)

	return grid
}

func minutes(ms int64) string {
	return strconv.FormatInt(ms/time.Minute.Milliseconds(), 10)
}

// switchToSettings rebuilds the settings form from the current settings.
func (c *Controller) switchToSettings() {
	current := c.app.Snapshot().Settings

	c.settingsForm.Clear(true)
	c.settingsForm.
		AddInputField("Focus (min)", minutes(current.FocusMs), minutesMax, tview.InputFieldInteger, nil).
		AddInputField("Short break (min)", minutes(current.ShortBreakMs), minutesMax, tview.InputFieldInteger, nil).
		AddInputField("Long break (min)", minutes(current.LongBreakMs), minutesMax, tview.InputFieldInteger, nil).
		AddInputField("Long break every", strconv.Itoa(current.LongBreakEvery), minutesMax, tview.InputFieldInteger, nil)

	c.settingsForm.AddButton("Save", func() {
		settings, err := c.readSettings()
		if err == nil {
			err = c.app.UpdateSettings(settings)
		}

		if err != nil {
			log.Warn().Err(err).Msg("settings not saved")
			c.settingsForm.SetTitle(fmt.Sprintf("Focus timer [red](%s)", err))

			return
		}

		c.settingsForm.SetTitle("Focus timer")
		c.switchToBoard()
	})

	c.settingsForm.AddButton("Reset cycles", func() {
		c.app.ResetCycles()
		c.switchToBoard()
	})

	c.settingsForm.AddButton("Cancel", c.switchToBoard)
	c.settingsForm.SetCancelFunc(c.switchToBoard)
	c.settingsForm.SetButtonsAlign(tview.AlignCenter)
	c.settingsForm.SetFieldTextColor(tcell.ColorWhite)

	c.pages.SwitchToPage(settingsPage)
	c.tui.SetFocus(c.settingsForm)
}

func (c *Controller) readSettings() (pomodoro.Settings, error) {
	field := func(label string) (int, error) {
		input, _ := c.settingsForm.GetFormItemByLabel(label).(*tview.InputField)
		if input == nil {
			return 0, fmt.Errorf("missing field %s", label)
		}

		value, err := strconv.Atoi(input.GetText())
		if err != nil {
			return 0, fmt.Errorf("%s: %w", label, err)
		}

		return value, nil
	}

	toMs := func(mins int) int64 {
		return (time.Duration(mins) * time.Minute).Milliseconds()
	}

	focus, err := field("Focus (min)")
	if err != nil {
		return pomodoro.Settings{}, err
	}

	short, err := field("Short break (min)")
	if err != nil {
		return pomodoro.Settings{}, err
	}

	long, err := field("Long break (min)")
	if err != nil {
		return pomodoro.Settings{}, err
	}

	every, err := field("Long break every")
	if err != nil {
		return pomodoro.Settings{}, err
	}

	return pomodoro.Settings{
		FocusMs:        toMs(focus),
		ShortBreakMs:   toMs(short),
		LongBreakMs:    toMs(long),
		LongBreakEvery: every,
	}, nil
}
