package sqlite

import "time"

// Task is a row of the todos table
type Task struct {
	ID        int64
	Text      string
	Completed bool
	Priority  string
	DueDate   *string
	Category  string
	SortOrder int64
	CreatedAt time.Time
}
