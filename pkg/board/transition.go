package board

// Transition maps a task, a target status and a timestamp to the task's next snapshot.
// It never mutates its input and is the only place where run time is folded into
// AccumulatedMs. Callers are responsible for clearing Paused when the result is in progress.
func Transition(task Task, target Status, now int64) Task {
	next := task.clone()

	if next.AccumulatedMs < 0 {
		next.AccumulatedMs = 0
	}

	switch {
	case target == task.Status:
		// re-entering in progress must not restart a running clock
		if target == StatusInProgress && next.StartedAt == nil {
			next.StartedAt = int64Ptr(now)
		}
	case task.Status == StatusInProgress:
		fold(&next, now)
	case target == StatusInProgress:
		next.StartedAt = int64Ptr(now)
	}

	next.Status = target

	return next
}

// fold commits the current run into AccumulatedMs and clears StartedAt.
func fold(task *Task, now int64) {
	if task.StartedAt != nil {
		task.AccumulatedMs += nonNegative(now - *task.StartedAt)
	}

	task.StartedAt = nil
}
