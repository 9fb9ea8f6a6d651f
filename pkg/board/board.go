package board

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Board owns the ordered task collection, the daily templates and the seed marker.
// Every mutating method restores the runner invariant before returning.
// A Board is not safe for concurrent use; callers serialize access.
type Board struct {
	tasks      []Task
	templates  []Template
	seedMarker string
	flags      Flags
	loc        *time.Location
	newID      func() string
}

// Option configures a Board.
type Option func(*Board)

// WithLocation sets the location used to compute calendar days for seeding.
func WithLocation(loc *time.Location) Option {
	return func(b *Board) {
		b.loc = loc
	}
}

// WithIDGenerator replaces the uuid generator, mostly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(b *Board) {
		b.newID = gen
	}
}

// New creates a Board from previously persisted state. nil slices are treated as empty.
func New(tasks []Task, templates []Template, seedMarker string, opts ...Option) *Board {
	b := &Board{
		tasks:      []Task{},
		templates:  []Template{},
		seedMarker: seedMarker,
		loc:        time.Local,
		newID:      func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(b)
	}

	for _, task := range tasks {
		b.tasks = append(b.tasks, normalize(task))
	}

	b.templates = append(b.templates, templates...)

	return b
}

// normalize repairs fields a hand-edited or older blob may have left invalid.
func normalize(task Task) Task {
	task = task.clone()

	if !task.Status.Valid() {
		task.Status = StatusTodo
	}

	if task.Origin != OriginDaily {
		task.Origin = OriginManual
		task.OriginID = ""
	}

	if task.AccumulatedMs < 0 {
		task.AccumulatedMs = 0
	}

	if task.SubTasks == nil {
		task.SubTasks = []SubTask{}
	}

	return task
}

// Tasks returns a copy of the collection in order.
func (b *Board) Tasks() []Task {
	out := make([]Task, len(b.tasks))
	for i, task := range b.tasks {
		out[i] = task.clone()
	}

	return out
}

// Task looks up a task by id.
func (b *Board) Task(id string) (Task, bool) {
	idx := b.indexOf(id)
	if idx < 0 {
		return Task{}, false
	}

	return b.tasks[idx].clone(), true
}

// Flags returns the current board-wide flags.
func (b *Board) Flags() Flags {
	return b.flags
}

func (b *Board) indexOf(id string) int {
	for i, task := range b.tasks {
		if task.ID == id {
			return i
		}
	}

	return -1
}

// commit replaces the collection and restores the runner invariant.
func (b *Board) commit(tasks []Task, now int64) {
	b.tasks = EnforceRunner(tasks, now, b.flags)
}

// Enforce re-runs the runner invariant without any other change, e.g. after loading.
func (b *Board) Enforce(now int64) {
	b.commit(b.tasks, now)
}

// SetBreakActive raises or lowers the break flag. While raised every task timer is stopped.
func (b *Board) SetBreakActive(active bool, now int64) {
	b.flags.BreakActive = active
	b.commit(b.tasks, now)
}

// SetSuppressAutoStart raises or lowers the flag that keeps the runner from auto-starting.
func (b *Board) SetSuppressAutoStart(suppress bool, now int64) {
	b.flags.SuppressAutoStart = suppress
	b.commit(b.tasks, now)
}

// Create adds a new todo task at the front of the collection. Blank titles are ignored.
func (b *Board) Create(title string, origin Origin, now int64) (Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}

	if origin != OriginDaily {
		origin = OriginManual
	}

	task := b.newTask(title, origin, "")

	b.commit(append([]Task{task}, b.tasks...), now)

	log.Debug().Str("task", task.ID).Msgf("created task '%s'", title)

	return task, true
}

func (b *Board) newTask(title string, origin Origin, originID string) Task {
	return Task{
		ID:       b.newID(),
		Title:    title,
		Status:   StatusTodo,
		Origin:   origin,
		OriginID: originID,
		SubTasks: []SubTask{},
	}
}

// Remove deletes the task with the given id. It performs no status or origin check.
func (b *Board) Remove(id string, now int64) bool {
	idx := b.indexOf(id)
	if idx < 0 {
		return false
	}

	tasks := make([]Task, 0, len(b.tasks)-1)
	tasks = append(tasks, b.tasks[:idx]...)
	tasks = append(tasks, b.tasks[idx+1:]...)

	b.commit(tasks, now)

	return true
}

// UpdateStatus moves a task to status through Transition. Entering in progress clears Paused.
func (b *Board) UpdateStatus(id string, status Status, now int64) bool {
	idx := b.indexOf(id)
	if idx < 0 || !status.Valid() {
		return false
	}

	tasks := b.Tasks()
	tasks[idx] = transitionAndUnpause(tasks[idx], status, now)

	b.commit(tasks, now)

	return true
}

func transitionAndUnpause(task Task, status Status, now int64) Task {
	next := Transition(task, status, now)
	if next.Status == StatusInProgress {
		next.Paused = false
	}

	return next
}

// UpdateTitle renames a task. Daily tasks propagate the title to their template and siblings.
func (b *Board) UpdateTitle(id, title string, now int64) bool {
	title = strings.TrimSpace(title)

	idx := b.indexOf(id)
	if idx < 0 || title == "" {
		return false
	}

	task := b.tasks[idx]
	if task.Origin == OriginDaily && task.OriginID != "" {
		b.renameDaily(task.OriginID, title)
	}

	b.tasks[idx].Title = title
	b.commit(b.tasks, now)

	return true
}

// MoveToColumn handles a drop on a column. It is a no-op when the task is already there.
func (b *Board) MoveToColumn(id string, status Status, now int64) bool {
	task, ok := b.Task(id)
	if !ok || task.Status == status {
		return false
	}

	return b.UpdateStatus(id, status, now)
}

// MoveOntoTask handles a drop on another card: the dragged task takes the target's status and
// is reinserted immediately before it.
func (b *Board) MoveOntoTask(id, targetID string, now int64) bool {
	from := b.indexOf(id)
	if from < 0 || id == targetID {
		return false
	}

	status := b.tasks[from].Status
	if target := b.indexOf(targetID); target >= 0 {
		status = b.tasks[target].Status
	}

	tasks := b.Tasks()
	moved := transitionAndUnpause(tasks[from], status, now)
	tasks = append(tasks[:from], tasks[from+1:]...)

	at := 0

	for i, task := range tasks {
		if task.ID == targetID {
			at = i

			break
		}
	}

	tasks = append(tasks[:at], append([]Task{moved}, tasks[at:]...)...)

	b.commit(tasks, now)

	return true
}

// ActiveTask returns the task ToggleRun applies to: the runner when there is one,
// otherwise the first in-progress task in collection order.
func (b *Board) ActiveTask() (Task, bool) {
	if runner, ok := b.Runner(); ok {
		return runner, true
	}

	for _, task := range b.tasks {
		if task.Status == StatusInProgress {
			return task.clone(), true
		}
	}

	return Task{}, false
}

// Runner returns the task currently accruing time, if any.
func (b *Board) Runner() (Task, bool) {
	for _, task := range b.tasks {
		if task.Running() {
			return task.clone(), true
		}
	}

	return Task{}, false
}

// ToggleRun pauses or resumes the active task. Other ids are ignored.
func (b *Board) ToggleRun(id string, now int64) bool {
	active, ok := b.ActiveTask()
	if !ok || active.ID != id {
		return false
	}

	tasks := b.Tasks()
	idx := b.indexOf(id)
	task := &tasks[idx]

	if task.Paused || task.StartedAt == nil {
		task.Paused = false
		task.StartedAt = int64Ptr(now)
	} else {
		fold(task, now)
		task.Paused = true
	}

	b.commit(tasks, now)

	return true
}

// Groupings partitions the collection by status. The todo column lists daily tasks first;
// otherwise collection order is kept.
func (b *Board) Groupings() map[Status][]Task {
	groups := map[Status][]Task{}
	for _, status := range Statuses() {
		groups[status] = []Task{}
	}

	var daily, manual []Task

	for _, task := range b.tasks {
		if task.Status != StatusTodo {
			groups[task.Status] = append(groups[task.Status], task.clone())

			continue
		}

		if task.Origin == OriginDaily {
			daily = append(daily, task.clone())
		} else {
			manual = append(manual, task.clone())
		}
	}

	groups[StatusTodo] = append(append(groups[StatusTodo], daily...), manual...)

	return groups
}

// TotalElapsed sums the elapsed time of every task. When excludeIfBreakActive is set and a
// break is active, running portions are left out.
func (b *Board) TotalElapsed(now int64, excludeIfBreakActive bool) int64 {
	exclude := excludeIfBreakActive && b.flags.BreakActive

	var total int64

	for _, task := range b.tasks {
		if exclude || !task.Running() {
			total += task.AccumulatedMs

			continue
		}

		total += task.Elapsed(now)
	}

	return total
}
