package board

import "strings"

// AddSubTask appends a checklist entry to a task.
func (b *Board) AddSubTask(taskID, title string) (SubTask, bool) {
	title = strings.TrimSpace(title)

	idx := b.indexOf(taskID)
	if idx < 0 || title == "" {
		return SubTask{}, false
	}

	sub := SubTask{ID: b.newID(), Title: title}
	b.tasks[idx].SubTasks = append(b.tasks[idx].SubTasks, sub)

	return sub, true
}

// ToggleSubTask flips the done flag of a checklist entry.
func (b *Board) ToggleSubTask(taskID, subID string) bool {
	return b.withSubTask(taskID, subID, func(sub *SubTask) {
		sub.Done = !sub.Done
	})
}

// RenameSubTask changes the title of a checklist entry. Blank titles are ignored.
func (b *Board) RenameSubTask(taskID, subID, title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}

	return b.withSubTask(taskID, subID, func(sub *SubTask) {
		sub.Title = title
	})
}

// RemoveSubTask deletes a checklist entry, keeping the order of the rest.
func (b *Board) RemoveSubTask(taskID, subID string) bool {
	idx := b.indexOf(taskID)
	if idx < 0 {
		return false
	}

	subs := b.tasks[idx].SubTasks
	for i, sub := range subs {
		if sub.ID == subID {
			kept := make([]SubTask, 0, len(subs)-1)
			kept = append(kept, subs[:i]...)
			b.tasks[idx].SubTasks = append(kept, subs[i+1:]...)

			return true
		}
	}

	return false
}

func (b *Board) withSubTask(taskID, subID string, update func(*SubTask)) bool {
	idx := b.indexOf(taskID)
	if idx < 0 {
		return false
	}

	for i := range b.tasks[idx].SubTasks {
		if b.tasks[idx].SubTasks[i].ID == subID {
			update(&b.tasks[idx].SubTasks[i])

			return true
		}
	}

	return false
}
