package domain

// IndexOf returns the position of the task with the given id, or -1.
func IndexOf(tasks []Task, id int64) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// MoveTask moves the task activeID to the position currently held by overID,
// shifting the tasks in between, and returns the new slice. It reports false
// and returns tasks unchanged when the ids are equal or either is unknown.
func MoveTask(tasks []Task, activeID, overID int64) ([]Task, bool) {
	if activeID == overID {
		return tasks, false
	}
	from := IndexOf(tasks, activeID)
	to := IndexOf(tasks, overID)
	if from < 0 || to < 0 {
		return tasks, false
	}

	moved := make([]Task, 0, len(tasks))
	moved = append(moved, tasks[:from]...)
	moved = append(moved, tasks[from+1:]...)

	item := tasks[from]
	moved = append(moved[:to], append([]Task{item}, moved[to:]...)...)
	return moved, true
}

// TaskIDs returns the ids of tasks in order.
func TaskIDs(tasks []Task) []int64 {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
