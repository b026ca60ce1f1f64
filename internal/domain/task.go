package domain

import "strings"

// DueSoonDays is how far ahead an open task's due date counts as "due soon".
const DueSoonDays = 3

// Task is one to-do item. JSON tags describe the wire shape returned by the
// HTTP API.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Priority  Priority  `json:"priority"`
	DueDate   *Date     `json:"due_date"`
	Category  string    `json:"category"`
	SortOrder int64     `json:"sort_order"`
	CreatedAt Timestamp `json:"created_at"`
}

// IsOverdue reports whether an open task's due date has passed.
func (t Task) IsOverdue(today Date) bool {
	return t.DueDate != nil && !t.Completed && t.DueDate.Before(today)
}

// IsDueSoon reports whether an open task that is not overdue falls due within
// DueSoonDays of today.
func (t Task) IsDueSoon(today Date) bool {
	if t.DueDate == nil || t.Completed || t.IsOverdue(today) {
		return false
	}
	return !t.DueDate.After(today.AddDays(DueSoonDays))
}

// Apply returns a copy of t with every field set in patch overwritten. Text is
// trimmed; callers validate the result.
func (t Task) Apply(patch TaskPatch) Task {
	updated := t
	if text, ok := patch.Text.Get(); ok {
		updated.Text = strings.TrimSpace(text)
	}
	if completed, ok := patch.Completed.Get(); ok {
		updated.Completed = completed
	}
	if priority, ok := patch.Priority.Get(); ok {
		updated.Priority = priority
	}
	if due, ok := patch.DueDate.Get(); ok {
		updated.DueDate = NormalizeDate(due)
	}
	if category, ok := patch.Category.Get(); ok {
		updated.Category = category
	}
	return updated
}

func (t Task) String() string {
	return t.Text
}
