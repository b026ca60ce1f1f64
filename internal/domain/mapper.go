package domain

import (
	"todo-list/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database row.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	row := sqlite.Task{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		Priority:  string(task.Priority),
		Category:  task.Category,
		SortOrder: task.SortOrder,
		CreatedAt: task.CreatedAt.Time,
	}
	if due := NormalizeDate(task.DueDate); due != nil {
		s := due.String()
		row.DueDate = &s
	}
	return row
}

// FromDatabase converts a database row to a domain Task. A stored due date
// that is not a YYYY-MM-DD string is dropped.
func (m *TaskMapper) FromDatabase(row sqlite.Task) Task {
	task := Task{
		ID:        row.ID,
		Text:      row.Text,
		Completed: row.Completed,
		Priority:  Priority(row.Priority),
		Category:  row.Category,
		SortOrder: row.SortOrder,
		CreatedAt: Timestamp{Time: row.CreatedAt},
	}
	if row.DueDate != nil {
		if due, err := ParseDate(*row.DueDate); err == nil {
			task.DueDate = &due
		}
	}
	return task
}

// FromDatabaseSlice converts database rows to domain Tasks, keeping order.
func (m *TaskMapper) FromDatabaseSlice(rows []*sqlite.Task) []Task {
	tasks := make([]Task, len(rows))
	for i, row := range rows {
		tasks[i] = m.FromDatabase(*row)
	}
	return tasks
}

// Mapper groups the model mappers.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
