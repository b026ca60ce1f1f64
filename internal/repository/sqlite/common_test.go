package sqlite

import (
	"context"
	"database/sql"
	goerrors "errors"
	"testing"

	"todo-list/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	insertErr    error
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, mr.insertErr
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	originalErr := goerrors.New("database connection failed")
	result := HandleDatabaseError("test operation", originalErr)

	assert.NotNil(t, result)
	assert.Contains(t, result.Error(), "test operation")
	assert.Contains(t, result.Error(), "database connection failed")
	assert.True(t, errors.IsErrorType(result, errors.ErrorTypeDatabase))
}

func TestHandleDatabaseError_Deadline(t *testing.T) {
	result := HandleDatabaseError("list tasks", context.DeadlineExceeded)
	assert.True(t, errors.IsErrorType(result, errors.ErrorTypeTimeout))
}

func TestHandleNoRowsError(t *testing.T) {
	notFound := HandleNoRowsError(sql.ErrNoRows, "task", "7")
	assert.True(t, errors.IsErrorType(notFound, errors.ErrorTypeNotFound))
	assert.Contains(t, notFound.Error(), "task not found: 7")

	other := goerrors.New("boom")
	assert.Equal(t, other, HandleNoRowsError(other, "task", "7"))
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name         string
		result       sql.Result
		expectedType errors.ErrorType
		expectError  bool
	}{
		{"One row", &MockResult{rowsAffected: 1}, 0, false},
		{"Zero rows", &MockResult{rowsAffected: 0}, errors.ErrorTypeNotFound, true},
		{"Driver error", &MockResult{rowsErr: goerrors.New("unsupported")}, errors.ErrorTypeDatabase, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "task", "1")
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, tt.expectedType), "got %v", err)
		})
	}
}

func TestQueryHelpers_WithTransaction(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	tx, err := repo.db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	id, err := ExecuteWithLastInsertID(ctx, tx, `INSERT INTO todos (text) VALUES (?)`, "inside tx")
	require.NoError(t, err)

	task, err := QuerySingle(ctx, tx, `SELECT `+taskColumns+` FROM todos WHERE id = ?`, ScanTask, "task", "x", id)
	require.NoError(t, err)
	assert.Equal(t, "inside tx", task.Text)
	assert.Equal(t, "medium", task.Priority)

	err = ExecuteWithRowsAffected(ctx, tx, `DELETE FROM todos WHERE id = ?`, "task", "999", 999)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	tasks, err := QueryMultiple(ctx, tx, `SELECT `+taskColumns+` FROM todos`, ScanTasks, "tasks")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}
