package domain

// StatusFilter selects tasks by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// FilterAll disables the priority or category criterion of a Filter.
const FilterAll = "all"

// Filter combines the status, priority and category criteria of the list
// view. Empty criteria match everything.
type Filter struct {
	Status   StatusFilter
	Priority string
	Category string
}

// Matches reports whether t passes every criterion.
func (f Filter) Matches(t Task) bool {
	switch f.Status {
	case StatusActive:
		if t.Completed {
			return false
		}
	case StatusCompleted:
		if !t.Completed {
			return false
		}
	}
	if f.Priority != "" && f.Priority != FilterAll && string(t.Priority) != f.Priority {
		return false
	}
	if f.Category != "" && f.Category != FilterAll && t.Category != f.Category {
		return false
	}
	return true
}

// FilterTasks returns the tasks that match f, preserving order.
func FilterTasks(tasks []Task, f Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the distinct non-empty categories in first-seen order.
func Categories(tasks []Task) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tasks {
		if t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// Remaining counts the tasks that are not completed.
func Remaining(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}
