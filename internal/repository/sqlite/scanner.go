package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// taskColumns is the column list ScanTask expects, in order
const taskColumns = `id, text, completed, priority, due_date, category, sort_order, created_at`

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var dueDate sql.NullString
	var createdAt string

	err := scanner.Scan(
		&task.ID,
		&task.Text,
		&task.Completed,
		&task.Priority,
		&dueDate,
		&task.Category,
		&task.SortOrder,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid && dueDate.String != "" {
		due := dueDate.String
		task.DueDate = &due
	}

	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanIDs scans a single-column list of ids
func ScanIDs(rows Rows) ([]*int64, error) {
	ids := make([]*int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, &id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
