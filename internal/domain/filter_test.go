package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Text: "a", Priority: PriorityHigh, Category: "work"},
		{ID: 2, Text: "b", Priority: PriorityMedium, Category: "home", Completed: true},
		{ID: 3, Text: "c", Priority: PriorityLow, Category: ""},
		{ID: 4, Text: "d", Priority: PriorityHigh, Category: "work", Completed: true},
	}
}

func TestFilterTasks(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []int64
	}{
		{"zero filter matches all", Filter{}, []int64{1, 2, 3, 4}},
		{"all", Filter{Status: StatusAll, Priority: FilterAll, Category: FilterAll}, []int64{1, 2, 3, 4}},
		{"active", Filter{Status: StatusActive}, []int64{1, 3}},
		{"completed", Filter{Status: StatusCompleted}, []int64{2, 4}},
		{"high priority", Filter{Priority: "high"}, []int64{1, 4}},
		{"work category", Filter{Category: "work"}, []int64{1, 4}},
		{"active work high", Filter{Status: StatusActive, Priority: "high", Category: "work"}, []int64{1}},
		{"no match", Filter{Category: "garden"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TaskIDs(FilterTasks(sampleTasks(), tt.filter)))
		})
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"work", "home"}, Categories(sampleTasks()))
	assert.Empty(t, Categories(nil))
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 2, Remaining(sampleTasks()))
	assert.Equal(t, 0, Remaining(nil))
}
