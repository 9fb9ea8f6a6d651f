package board_test

import (
	"testing"
	"time"

	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day1 = board.Millis(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	day2 = board.Millis(time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC))
)

func countOrigin(b *board.Board, templateID string) int {
	n := 0

	for _, task := range b.Tasks() {
		if task.OriginID == templateID {
			n++
		}
	}

	return n
}

func TestDayKey(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	ts := board.Millis(time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC))
	assert.Equal("2024-03-10", board.DayKey(ts, time.UTC))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal("2024-03-11", board.DayKey(ts, tokyo))
}

func TestStretchScenario(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	b := newBoard()

	tmpl, ok := b.AddTemplate("Stretch", day1)
	require.True(t, ok)

	tasks := b.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal("Stretch", tasks[0].Title)
	assert.Equal(board.OriginDaily, tasks[0].Origin)
	assert.Equal(tmpl.ID, tasks[0].OriginID)
	assert.Equal(board.StatusTodo, tasks[0].Status)
	assert.Equal("2024-03-10", b.SeedMarker())

	assert.Equal(0, b.SeedIfNeeded(day1+1000))
	assert.Equal(1, countOrigin(b, tmpl.ID))
}

func TestSeedIfNeededNextDay(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	b := newBoard()
	manual := addTask(t, b, "manual")

	stretch, _ := b.AddTemplate("Stretch", day1)
	read, _ := b.AddTemplate("Read", day1)

	// read joined today's seeding on its own
	assert.Equal(1, countOrigin(b, stretch.ID))
	assert.Equal(1, countOrigin(b, read.ID))

	b.UpdateStatus(b.Tasks()[0].ID, board.StatusCompleted, day1)

	assert.Equal(2, b.SeedIfNeeded(day2))
	assert.Equal(0, b.SeedIfNeeded(day2))
	assert.Equal("2024-03-11", b.SeedMarker())

	tasks := b.Tasks()
	require.Len(t, tasks, 5)
	// new instances are prepended in template order
	assert.Equal(read.ID, tasks[0].OriginID)
	assert.Equal(stretch.ID, tasks[1].OriginID)
	assert.Equal(board.StatusTodo, tasks[0].Status)
	assert.Equal(manual.ID, tasks[4].ID)
}

func TestSeedIfNeededWithoutTemplates(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	b := newBoard()

	assert.Equal(0, b.SeedIfNeeded(day1))
	assert.Equal("", b.SeedMarker())
}

func TestAddTemplateRejectsBlank(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	b := newBoard()

	_, ok := b.AddTemplate(" \t ", day1)
	assert.False(ok)
	assert.Empty(b.Templates())
	assert.Empty(b.Tasks())
}

func TestRemoveTemplateCascades(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	b := newBoard()
	keep, _ := b.AddTemplate("Keep", day1)
	drop, _ := b.AddTemplate("Drop", day1)
	b.SeedIfNeeded(day2)

	for _, task := range b.Tasks() {
		if task.OriginID != drop.ID {
			continue
		}

		b.UpdateStatus(task.ID, board.StatusInProgress, day2)
		b.UpdateStatus(task.ID, board.StatusCompleted, day2+10)

		break
	}

	require.Equal(t, 2, countOrigin(b, drop.ID))
	assert.True(b.RemoveTemplate(drop.ID, day2))
	assert.False(b.RemoveTemplate(drop.ID, day2))

	assert.Equal(0, countOrigin(b, drop.ID))
	assert.Equal(2, countOrigin(b, keep.ID))
	require.Len(t, b.Templates(), 1)
	assert.Equal(keep.ID, b.Templates()[0].ID)
}

func TestUpdateTitlePropagatesToDailySiblings(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	b := newBoard()
	tmpl, _ := b.AddTemplate("Stretch", day1)
	other, _ := b.AddTemplate("Read", day1)
	b.SeedIfNeeded(day2)

	manual := addTask(t, b, "Stretch")

	var target string

	for _, task := range b.Tasks() {
		if task.OriginID == tmpl.ID {
			target = task.ID
		}
	}

	assert.True(b.UpdateTitle(target, "  Yoga ", day2))

	for _, task := range b.Tasks() {
		switch task.OriginID {
		case tmpl.ID:
			assert.Equal("Yoga", task.Title)
		case other.ID:
			assert.Equal("Read", task.Title)
		}
	}

	assert.Equal("Stretch", get(t, b, manual.ID).Title)

	for _, tpl := range b.Templates() {
		if tpl.ID == tmpl.ID {
			assert.Equal("Yoga", tpl.Title)
		}
	}

	assert.False(b.UpdateTitle(target, "   ", day2))
	assert.False(b.UpdateTitle("missing", "x", day2))
}

func TestRenameTemplate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	b := newBoard()
	tmpl, _ := b.AddTemplate("Stretch", day1)

	assert.True(b.RenameTemplate(tmpl.ID, "Walk", day1))
	assert.Equal("Walk", b.Templates()[0].Title)
	assert.Equal("Walk", b.Tasks()[0].Title)
	assert.False(b.RenameTemplate("missing", "Walk", day1))
	assert.False(b.RenameTemplate(tmpl.ID, "", day1))
}

func TestSubTasks(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	b := newBoard()
	task := addTask(t, b, "parent")

	first, ok := b.AddSubTask(task.ID, "first")
	require.True(t, ok)

	second, _ := b.AddSubTask(task.ID, "second")
	third, _ := b.AddSubTask(task.ID, "third")

	_, ok = b.AddSubTask(task.ID, " ")
	assert.False(ok)

	_, ok = b.AddSubTask("missing", "x")
	assert.False(ok)

	assert.True(b.ToggleSubTask(task.ID, second.ID))
	assert.True(b.RenameSubTask(task.ID, third.ID, "last"))
	assert.False(b.RenameSubTask(task.ID, third.ID, ""))
	assert.True(b.RemoveSubTask(task.ID, first.ID))
	assert.False(b.RemoveSubTask(task.ID, first.ID))
	assert.False(b.ToggleSubTask(task.ID, "missing"))

	subs := get(t, b, task.ID).SubTasks
	require.Len(t, subs, 2)
	assert.Equal("second", subs[0].Title)
	assert.True(subs[0].Done)
	assert.Equal("last", subs[1].Title)
	assert.False(subs[1].Done)
}
