package domain

import "github.com/bytedance/sonic"

// TaskDraft is the input of a create operation. Priority and Category fall
// back to their defaults when empty.
type TaskDraft struct {
	Text     string   `json:"text"`
	Priority Priority `json:"priority,omitempty"`
	DueDate  *Date    `json:"dueDate"`
	Category string   `json:"category"`
}

// TaskPatch is the input of an update operation. Only set fields change.
type TaskPatch struct {
	Text      Optional[string]   `json:"text"`
	Completed Optional[bool]     `json:"completed"`
	Priority  Optional[Priority] `json:"priority"`
	DueDate   Optional[*Date]    `json:"dueDate"`
	Category  Optional[string]   `json:"category"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return !p.Text.IsSet() && !p.Completed.IsSet() && !p.Priority.IsSet() &&
		!p.DueDate.IsSet() && !p.Category.IsSet()
}

// MarshalJSON emits only the set fields so the receiver can tell "clear" from
// "leave unchanged".
func (p TaskPatch) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{}, 5)
	if v, ok := p.Text.Get(); ok {
		fields["text"] = v
	}
	if v, ok := p.Completed.Get(); ok {
		fields["completed"] = v
	}
	if v, ok := p.Priority.Get(); ok {
		fields["priority"] = v
	}
	if v, ok := p.DueDate.Get(); ok {
		fields["dueDate"] = NormalizeDate(v)
	}
	if v, ok := p.Category.Get(); ok {
		fields["category"] = v
	}
	return sonic.Marshal(fields)
}
