package sqlite

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}

	if len(dest) != len(ts.data) {
		return errors.New("mismatch in number of destinations")
	}

	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = ts.data[i].(int64)
		case *bool:
			*v = ts.data[i].(bool)
		case *sql.NullString:
			*v = ts.data[i].(sql.NullString)
		case *string:
			*v = ts.data[i].(string)
		}
	}

	return nil
}

// TestRows feeds a fixed set of scanners through the Rows interface
type TestRows struct {
	rows []*TestScanner
	pos  int
	err  error
}

func (tr *TestRows) Next() bool {
	if tr.pos >= len(tr.rows) {
		return false
	}
	tr.pos++
	return true
}

func (tr *TestRows) Scan(dest ...interface{}) error {
	return tr.rows[tr.pos-1].Scan(dest...)
}

func (tr *TestRows) Err() error {
	return tr.err
}

func taskRow(id int64, due sql.NullString, createdAt string) *TestScanner {
	return &TestScanner{data: []interface{}{
		id, "Buy milk", true, "high", due, "home", int64(3), createdAt,
	}}
}

func TestScanTask(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expectDue   *string
		expectError bool
	}{
		{
			name:      "With due date",
			scanner:   taskRow(1, sql.NullString{String: "2025-02-03", Valid: true}, "2025-01-15 10:00:00"),
			expectDue: func() *string { s := "2025-02-03"; return &s }(),
		},
		{
			name:    "Null due date",
			scanner: taskRow(2, sql.NullString{}, "2025-01-15 10:00:00"),
		},
		{
			name:    "Empty due date treated as absent",
			scanner: taskRow(3, sql.NullString{String: "", Valid: true}, "2025-01-15 10:00:00"),
		},
		{
			name:        "Bad timestamp",
			scanner:     taskRow(4, sql.NullString{}, "yesterday"),
			expectError: true,
		},
		{
			name:        "Scan error",
			scanner:     &TestScanner{err: errors.New("scan failed")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := ScanTask(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Buy milk", task.Text)
			assert.True(t, task.Completed)
			assert.Equal(t, "high", task.Priority)
			assert.Equal(t, "home", task.Category)
			assert.Equal(t, int64(3), task.SortOrder)
			assert.Equal(t, time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC), task.CreatedAt)
			assert.Equal(t, tt.expectDue, task.DueDate)
		})
	}
}

func TestScanTasks(t *testing.T) {
	rows := &TestRows{rows: []*TestScanner{
		taskRow(1, sql.NullString{}, "2025-01-15 10:00:00"),
		taskRow(2, sql.NullString{}, "2025-01-15 10:00:01"),
	}}

	tasks, err := ScanTasks(rows)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, int64(2), tasks[1].ID)

	empty, err := ScanTasks(&TestRows{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = ScanTasks(&TestRows{err: errors.New("cursor failed")})
	assert.Error(t, err)
}
