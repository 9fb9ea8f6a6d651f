package board

// Flags are the board-wide switches raised by the focus timer.
type Flags struct {
	// BreakActive stops every task timer for the duration of a break.
	BreakActive bool
	// SuppressAutoStart keeps the runner from being started automatically. Stopping still applies.
	SuppressAutoStart bool
}

// EnforceRunner restores the single-runner invariant over tasks and returns the new collection.
//
// The first unpaused in-progress task in collection order is the runner; it is started if it
// has no StartedAt (unless auto-start is suppressed). Every other in-progress task that is
// accruing time is folded. While a break is active every running task is folded.
func EnforceRunner(tasks []Task, now int64, flags Flags) []Task {
	next := make([]Task, len(tasks))

	runnerFound := false

	for i, task := range tasks {
		task = task.clone()

		switch {
		case flags.BreakActive:
			if task.StartedAt != nil {
				fold(&task, now)
			}
		case task.Status != StatusInProgress:
		case !task.Paused && !runnerFound:
			runnerFound = true

			if task.StartedAt == nil && !flags.SuppressAutoStart {
				task.StartedAt = int64Ptr(now)
			}
		case task.StartedAt != nil:
			fold(&task, now)
		}

		next[i] = task
	}

	return next
}
