package board

import "time"

// Status is the column a Task lives in.
type Status string

// These constants refer to the statuses supported by the app.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists the columns in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted}
}

// Valid reports whether s is one of the supported statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}

	return false
}

// Origin records where a Task came from.
type Origin string

// Task origins.
const (
	OriginManual Origin = "manual"
	OriginDaily  Origin = "daily"
)

// Task is a unit of work on the board.
type Task struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status Status `json:"status"`
	Origin Origin `json:"origin"`
	// OriginID references a Template when Origin is daily. The template may be gone.
	OriginID string `json:"originId,omitempty"`
	// StartedAt is the ms timestamp the current run began, nil when the task is not accruing.
	StartedAt     *int64    `json:"startedAt"`
	AccumulatedMs int64     `json:"accumulatedMs"`
	Paused        bool      `json:"paused"`
	SubTasks      []SubTask `json:"subtasks"`
}

// SubTask is a checklist entry owned by a Task.
type SubTask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Template is a recurring task definition that is materialized once per day.
type Template struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Running reports whether the task is currently accruing time.
func (t Task) Running() bool {
	return t.Status == StatusInProgress && !t.Paused && t.StartedAt != nil
}

// Elapsed returns the accumulated time plus the current run, if any.
func (t Task) Elapsed(now int64) int64 {
	if t.StartedAt == nil {
		return t.AccumulatedMs
	}

	return t.AccumulatedMs + nonNegative(now-*t.StartedAt)
}

// clone returns a copy that shares no mutable state with t.
func (t Task) clone() Task {
	if t.StartedAt != nil {
		started := *t.StartedAt
		t.StartedAt = &started
	}

	if t.SubTasks != nil {
		subs := make([]SubTask, len(t.SubTasks))
		copy(subs, t.SubTasks)
		t.SubTasks = subs
	}

	return t
}

// Millis converts a wall-clock time into the ms timestamps used throughout the board.
func Millis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

// DayKey returns the YYYY-MM-DD calendar day of the ms timestamp now in loc.
func DayKey(now int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	return time.Unix(0, now*int64(time.Millisecond)).In(loc).Format("2006-01-02")
}

func nonNegative(ms int64) int64 {
	if ms < 0 {
		return 0
	}

	return ms
}

func int64Ptr(v int64) *int64 {
	return &v
}
