package domain

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t *testing.T, s string) *Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestTask_MarshalJSON(t *testing.T) {
	task := Task{
		ID:        7,
		Text:      "Buy milk",
		Completed: true,
		Priority:  PriorityHigh,
		DueDate:   datePtr(t, "2026-10-20"),
		Category:  "home",
		SortOrder: 3,
		CreatedAt: Timestamp{Time: time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)},
	}

	payload, err := sonic.Marshal(task)
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, sonic.Unmarshal(payload, &wire))
	assert.Equal(t, float64(7), wire["id"])
	assert.Equal(t, "Buy milk", wire["text"])
	assert.Equal(t, true, wire["completed"])
	assert.Equal(t, "high", wire["priority"])
	assert.Equal(t, "2026-10-20", wire["due_date"])
	assert.Equal(t, "home", wire["category"])
	assert.Equal(t, float64(3), wire["sort_order"])
	assert.Equal(t, "2026-10-15 09:30:00", wire["created_at"])
}

func TestTask_MarshalJSON_NoDueDate(t *testing.T) {
	payload, err := sonic.Marshal(Task{ID: 1, Text: "x", Priority: PriorityLow})
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"due_date":null`)
}

func TestTask_UnmarshalJSON(t *testing.T) {
	payload := `{"id":2,"text":"Call","completed":false,"priority":"low","due_date":null,"category":"","sort_order":0,"created_at":"2026-01-02 03:04:05"}`

	var task Task
	require.NoError(t, sonic.UnmarshalString(payload, &task))
	assert.Equal(t, int64(2), task.ID)
	assert.Equal(t, PriorityLow, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), task.CreatedAt.Time)
}

func TestTask_Apply(t *testing.T) {
	original := Task{
		ID:        1,
		Text:      "Original",
		Completed: true,
		Priority:  PriorityHigh,
		DueDate:   datePtr(t, "2026-01-01"),
		Category:  "work",
		SortOrder: 4,
	}

	tests := []struct {
		name     string
		patch    TaskPatch
		expected func() Task
	}{
		{
			name:     "empty patch changes nothing",
			patch:    TaskPatch{},
			expected: func() Task { return original },
		},
		{
			name:  "text is trimmed",
			patch: TaskPatch{Text: Some("  Renamed  ")},
			expected: func() Task {
				e := original
				e.Text = "Renamed"
				return e
			},
		},
		{
			name:  "falsy values overwrite",
			patch: TaskPatch{Completed: Some(false), DueDate: Some[*Date](nil), Category: Some("")},
			expected: func() Task {
				e := original
				e.Completed = false
				e.DueDate = nil
				e.Category = ""
				return e
			},
		},
		{
			name:  "zero date clears the due date",
			patch: TaskPatch{DueDate: Some(&Date{})},
			expected: func() Task {
				e := original
				e.DueDate = nil
				return e
			},
		},
		{
			name:  "priority only",
			patch: TaskPatch{Priority: Some(PriorityLow)},
			expected: func() Task {
				e := original
				e.Priority = PriorityLow
				return e
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected(), original.Apply(tt.patch))
		})
	}
}

func TestTask_DueState(t *testing.T) {
	today := Date{Year: 2026, Month: time.October, Day: 15}

	tests := []struct {
		name    string
		task    Task
		overdue bool
		dueSoon bool
	}{
		{"no due date", Task{}, false, false},
		{"yesterday", Task{DueDate: &Date{2026, time.October, 14}}, true, false},
		{"yesterday but completed", Task{DueDate: &Date{2026, time.October, 14}, Completed: true}, false, false},
		{"today", Task{DueDate: &Date{2026, time.October, 15}}, false, true},
		{"in three days", Task{DueDate: &Date{2026, time.October, 18}}, false, true},
		{"in four days", Task{DueDate: &Date{2026, time.October, 19}}, false, false},
		{"soon but completed", Task{DueDate: &Date{2026, time.October, 16}, Completed: true}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, tt.task.IsOverdue(today))
			assert.Equal(t, tt.dueSoon, tt.task.IsDueSoon(today))
		})
	}
}

func TestParsePriority(t *testing.T) {
	p, ok := ParsePriority(" HIGH ")
	assert.True(t, ok)
	assert.Equal(t, PriorityHigh, p)

	_, ok = ParsePriority("urgent")
	assert.False(t, ok)

	assert.False(t, Priority("").IsValid())
	assert.Equal(t, []Priority{PriorityHigh, PriorityMedium, PriorityLow}, Priorities())
}
