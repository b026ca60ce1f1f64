package services

import (
	"context"
	"strings"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a TaskService with default validation limits
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// NewTaskServiceWithConfig creates a TaskService using the configured
// validation limits and reorder mode
func NewTaskServiceWithConfig(repo sqlite.Repository, cfg *config.ValidationConfig) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// invalid wraps a field-level validation failure into an AppError whose
// message is safe to show to API callers
func invalid(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return errors.NewValidationError(err.Error(), err)
}

// ListTasks returns all tasks ordered by sort order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateID(id); err != nil {
		return nil, invalid(err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// CreateTask creates a task at the end of the list
func (t *taskServiceImpl) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if err := t.taskValidator.ValidateDraft(draft); err != nil {
		return nil, invalid(err)
	}

	priority := draft.Priority
	if priority == "" {
		priority = domain.DefaultPriority
	}

	task := domain.Task{
		Text:     strings.TrimSpace(draft.Text),
		Priority: priority,
		DueDate:  domain.NormalizeDate(draft.DueDate),
		Category: strings.TrimSpace(draft.Category),
	}

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := t.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// UpdateTask merges patch into the stored task. Unset fields keep their
// current values; set fields may clear a value.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if err := t.taskValidator.ValidatePatch(id, patch); err != nil {
		return nil, invalid(err)
	}

	current, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return current, nil
	}

	updated := current.Apply(patch)
	updated.Category = strings.TrimSpace(updated.Category)

	dbTask := t.mapper.Task.ToDatabase(updated)
	if err := t.repo.UpdateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	return t.GetTask(ctx, id)
}

// DeleteTask removes a task by ID
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateID(id); err != nil {
		return invalid(err)
	}

	return t.repo.DeleteTask(ctx, id)
}

// ReorderTasks rewrites sort orders to match orderedIDs. Unknown ids are
// ignored unless strict reordering is enabled, in which case the list must
// name every stored task exactly once.
func (t *taskServiceImpl) ReorderTasks(ctx context.Context, orderedIDs []int64) error {
	if t.taskValidator.StrictReorder() {
		stored, err := t.repo.TaskIDs(ctx)
		if err != nil {
			return err
		}
		if err := t.taskValidator.ValidateOrderedIDs(orderedIDs, stored); err != nil {
			return invalid(err)
		}
	}

	return t.repo.ReorderTasks(ctx, orderedIDs)
}
