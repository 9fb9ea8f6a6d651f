package board_test

import (
	"testing"

	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/stretchr/testify/assert"
)

func ms(v int64) *int64 {
	return &v
}

func TestTransitionIntoInProgress(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	task := board.Task{ID: "a", Title: "a", Status: board.StatusTodo, AccumulatedMs: 300}

	next := board.Transition(task, board.StatusInProgress, 1000)
	assert.Equal(board.StatusInProgress, next.Status)
	assert.Equal(int64(1000), *next.StartedAt)
	assert.Equal(int64(300), next.AccumulatedMs)

	// input untouched
	assert.Equal(board.StatusTodo, task.Status)
	assert.Nil(task.StartedAt)
}

func TestTransitionFoldsOnLeavingInProgress(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	task := board.Task{ID: "a", Status: board.StatusInProgress, StartedAt: ms(1000), AccumulatedMs: 500}

	for _, target := range []board.Status{board.StatusTodo, board.StatusCompleted} {
		next := board.Transition(task, target, 5000)
		assert.Equal(target, next.Status)
		assert.Nil(next.StartedAt)
		assert.Equal(int64(4500), next.AccumulatedMs)
	}
}

func TestTransitionLeavingInProgressWithoutStart(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	task := board.Task{ID: "a", Status: board.StatusInProgress, Paused: true, AccumulatedMs: 700}

	next := board.Transition(task, board.StatusCompleted, 9000)
	assert.Nil(next.StartedAt)
	assert.Equal(int64(700), next.AccumulatedMs)
}

func TestTransitionSameStatusIdempotent(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	todo := board.Task{ID: "a", Status: board.StatusTodo, AccumulatedMs: 10}
	assert.Equal(todo, board.Transition(todo, board.StatusTodo, 5000))

	done := board.Task{ID: "b", Status: board.StatusCompleted, AccumulatedMs: 10}
	assert.Equal(done, board.Transition(done, board.StatusCompleted, 5000))

	running := board.Task{ID: "c", Status: board.StatusInProgress, StartedAt: ms(1000)}
	next := board.Transition(running, board.StatusInProgress, 5000)
	assert.Equal(int64(1000), *next.StartedAt)

	queued := board.Task{ID: "d", Status: board.StatusInProgress}
	next = board.Transition(queued, board.StatusInProgress, 5000)
	assert.Equal(int64(5000), *next.StartedAt)
	assert.Equal(int64(0), next.AccumulatedMs)
}

func TestTransitionBetweenIdleStatuses(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	task := board.Task{ID: "a", Status: board.StatusTodo, AccumulatedMs: 42}

	next := board.Transition(task, board.StatusCompleted, 5000)
	assert.Equal(board.StatusCompleted, next.Status)
	assert.Nil(next.StartedAt)
	assert.Equal(int64(42), next.AccumulatedMs)
}

func TestTransitionClockSkewNeverDecreases(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	task := board.Task{ID: "a", Status: board.StatusInProgress, StartedAt: ms(5000), AccumulatedMs: 100}

	next := board.Transition(task, board.StatusTodo, 1000)
	assert.Equal(int64(100), next.AccumulatedMs)
}

func TestEnforceRunnerKeepsFirstUnpaused(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	tasks := []board.Task{
		{ID: "paused", Status: board.StatusInProgress, Paused: true},
		{ID: "b", Status: board.StatusInProgress},
		{ID: "c", Status: board.StatusInProgress, StartedAt: ms(1000), AccumulatedMs: 5},
		{ID: "todo", Status: board.StatusTodo},
	}

	next := board.EnforceRunner(tasks, 3000, board.Flags{})

	assert.Nil(next[0].StartedAt)
	assert.Equal(int64(3000), *next[1].StartedAt)
	assert.Nil(next[2].StartedAt)
	assert.Equal(int64(2005), next[2].AccumulatedMs)
	assert.Nil(next[3].StartedAt)
}

func TestEnforceRunnerBreakActive(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	tasks := []board.Task{
		{ID: "a", Status: board.StatusInProgress, StartedAt: ms(1000)},
		{ID: "b", Status: board.StatusInProgress},
	}

	next := board.EnforceRunner(tasks, 4000, board.Flags{BreakActive: true})

	assert.Nil(next[0].StartedAt)
	assert.Equal(int64(3000), next[0].AccumulatedMs)
	assert.False(next[0].Paused)
	assert.Nil(next[1].StartedAt)
}

func TestEnforceRunnerSuppressAutoStart(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	tasks := []board.Task{
		{ID: "a", Status: board.StatusInProgress},
		{ID: "b", Status: board.StatusInProgress, StartedAt: ms(1000)},
	}

	next := board.EnforceRunner(tasks, 4000, board.Flags{SuppressAutoStart: true})

	// the runner is not started, but the non-runner is still stopped
	assert.Nil(next[0].StartedAt)
	assert.Nil(next[1].StartedAt)
	assert.Equal(int64(3000), next[1].AccumulatedMs)

	// an already running runner keeps running
	running := []board.Task{{ID: "a", Status: board.StatusInProgress, StartedAt: ms(1000)}}
	next = board.EnforceRunner(running, 4000, board.Flags{SuppressAutoStart: true})
	assert.Equal(int64(1000), *next[0].StartedAt)
}
