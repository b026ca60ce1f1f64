package services

import (
	"context"

	"todo-list/internal/domain"
)

// TaskService defines the task operations exposed to the HTTP layer
type TaskService interface {
	// ListTasks returns every task in display order
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// GetTask returns a single task or a not-found error
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask validates draft and appends it to the end of the list
	CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)

	// UpdateTask applies the set fields of patch and returns the stored task
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task permanently
	DeleteTask(ctx context.Context, id int64) error

	// ReorderTasks sets the display order to the order of orderedIDs
	ReorderTasks(ctx context.Context, orderedIDs []int64) error
}
