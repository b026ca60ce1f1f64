package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"todo-list/internal/domain"
)

// API is the subset of Client the Board depends on
type API interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	UpdateTask(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ReorderTasks(ctx context.Context, orderedIDs []int64) error
}

// Board keeps a local copy of the task list in sync with the server.
// Failed writes leave the local list unchanged, except Move which reloads
// the server's order.
type Board struct {
	api    API
	logger *log.Logger

	mu    sync.RWMutex
	tasks []domain.Task
}

// NewBoard creates an empty board; call Load to fetch the list.
func NewBoard(api API, logger *log.Logger) *Board {
	return &Board{api: api, logger: logger, tasks: []domain.Task{}}
}

// Load replaces the local list with the server's.
func (b *Board) Load(ctx context.Context) error {
	tasks, err := b.api.ListTasks(ctx)
	if err != nil {
		b.logger.WithError(err).Error("load tasks")
		return err
	}

	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()
	return nil
}

// Tasks returns a copy of the local list in display order.
func (b *Board) Tasks() []domain.Task {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]domain.Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Add creates a task and appends it. Blank text is ignored without a
// request and yields a nil task.
func (b *Board) Add(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if strings.TrimSpace(draft.Text) == "" {
		return nil, nil
	}

	task, err := b.api.CreateTask(ctx, draft)
	if err != nil {
		b.logger.WithError(err).Error("add task")
		return nil, err
	}

	b.mu.Lock()
	b.tasks = append(b.tasks, *task)
	b.mu.Unlock()
	return task, nil
}

// Toggle flips the completed flag of a task.
func (b *Board) Toggle(ctx context.Context, id int64) (*domain.Task, error) {
	current, ok := b.find(id)
	if !ok {
		return nil, fmt.Errorf("task %d is not on the board", id)
	}

	return b.Edit(ctx, id, domain.TaskPatch{Completed: domain.Some(!current.Completed)})
}

// Edit sends patch and replaces the task with the server's record. A patch
// that sets blank text is ignored without a request.
func (b *Board) Edit(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if text, ok := patch.Text.Get(); ok && strings.TrimSpace(text) == "" {
		current, _ := b.find(id)
		return current, nil
	}

	task, err := b.api.UpdateTask(ctx, id, patch)
	if err != nil {
		b.logger.WithError(err).WithField("task_id", id).Error("update task")
		return nil, err
	}

	b.mu.Lock()
	if i := domain.IndexOf(b.tasks, id); i >= 0 {
		b.tasks[i] = *task
	}
	b.mu.Unlock()
	return task, nil
}

// Remove deletes a task and drops it from the local list.
func (b *Board) Remove(ctx context.Context, id int64) error {
	if err := b.api.DeleteTask(ctx, id); err != nil {
		b.logger.WithError(err).WithField("task_id", id).Error("delete task")
		return err
	}

	b.mu.Lock()
	if i := domain.IndexOf(b.tasks, id); i >= 0 {
		b.tasks = append(b.tasks[:i:i], b.tasks[i+1:]...)
	}
	b.mu.Unlock()
	return nil
}

// Move places activeID where overID currently sits. The local list changes
// immediately; if the server rejects the new order the list is reloaded.
func (b *Board) Move(ctx context.Context, activeID, overID int64) error {
	b.mu.Lock()
	moved, ok := domain.MoveTask(b.tasks, activeID, overID)
	if !ok {
		b.mu.Unlock()
		return nil
	}
	b.tasks = moved
	ids := domain.TaskIDs(moved)
	b.mu.Unlock()

	if err := b.api.ReorderTasks(ctx, ids); err != nil {
		b.logger.WithError(err).Error("reorder tasks, reloading")
		if loadErr := b.Load(ctx); loadErr != nil {
			return fmt.Errorf("reorder: %w (reload failed: %v)", err, loadErr)
		}
		return err
	}
	return nil
}

// Filtered returns the tasks matching f in display order.
func (b *Board) Filtered(f domain.Filter) []domain.Task {
	return domain.FilterTasks(b.Tasks(), f)
}

// Categories returns the distinct non-empty categories in list order.
func (b *Board) Categories() []string {
	return domain.Categories(b.Tasks())
}

// Remaining counts the tasks not yet completed.
func (b *Board) Remaining() int {
	return domain.Remaining(b.Tasks())
}

func (b *Board) find(id int64) (*domain.Task, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i := domain.IndexOf(b.tasks, id)
	if i < 0 {
		return nil, false
	}
	task := b.tasks[i]
	return &task, true
}
