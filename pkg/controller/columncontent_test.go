package controller

import (
	"testing"

	"github.com/matt-steen/focus-board/pkg/app"
	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/stretchr/testify/assert"
)

func started(ms int64) *int64 {
	return &ms
}

func newContent() *ColumnContent {
	content := &ColumnContent{status: board.StatusInProgress}
	content.update(app.Snapshot{
		Now: 90_000,
		Columns: map[board.Status][]board.Task{
			board.StatusInProgress: {
				{
					ID: "a", Title: "write [report]", Status: board.StatusInProgress,
					StartedAt: started(60_000), AccumulatedMs: 3_600_000,
					SubTasks: []board.SubTask{{ID: "s1", Done: true}, {ID: "s2"}},
				},
				{
					ID: "b", Title: "stretch", Status: board.StatusInProgress,
					Origin: board.OriginDaily, OriginID: "tpl", Paused: true, SubTasks: []board.SubTask{},
				},
			},
		},
		ActiveID: "b",
		Dragging: "a",
	})

	return content
}

func TestColumnContentRows(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	content := newContent()

	assert.Equal(3, content.GetRowCount())
	assert.Equal(3, content.GetColumnCount())
	assert.Equal("title", content.GetCell(0, 0).Text)
	assert.Nil(content.GetCell(3, 0))

	task, ok := content.taskAt(1)
	assert.True(ok)
	assert.Equal("a", task.ID)

	_, ok = content.taskAt(0)
	assert.False(ok)
}

func TestColumnContentCells(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	content := newContent()

	assert.Equal("01:00:30", content.GetCell(1, 1).Text)
	assert.Equal("1/2", content.GetCell(1, 2).Text)
	assert.Equal("a", content.GetCell(1, 0).GetReference())
	assert.Contains(content.GetCell(1, 0).Text, "[black:yellow]")
	assert.Contains(content.GetCell(1, 0).Text, "write [report[]")

	assert.Equal("00:00:00", content.GetCell(2, 1).Text)
	assert.Equal("", content.GetCell(2, 2).Text)
	assert.Contains(content.GetCell(2, 0).Text, "↻")
	assert.Contains(content.GetCell(2, 0).Text, "(paused)")
}

func TestColumnContentEmpty(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	content := &ColumnContent{status: board.StatusTodo}
	content.update(app.Snapshot{})

	assert.Equal(1, content.GetRowCount())
	assert.Nil(content.GetCell(1, 0))
}

func TestColumnContentMarksPausedCardAheadOfRunner(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	content := &ColumnContent{status: board.StatusInProgress}
	content.update(app.Snapshot{
		Now: 5_000,
		Columns: map[board.Status][]board.Task{
			board.StatusInProgress: {
				{ID: "paused", Title: "paused", Status: board.StatusInProgress, Paused: true},
				{ID: "runner", Title: "runner", Status: board.StatusInProgress, StartedAt: started(3_000)},
			},
		},
		ActiveID: "runner",
	})

	assert.Contains(content.GetCell(1, 0).Text, "(paused)")
	assert.NotContains(content.GetCell(2, 0).Text, "(paused)")
}
