package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for task storage
type Repository interface {
	// Read operations
	ListTasks(ctx context.Context) ([]*Task, error)
	GetTask(ctx context.Context, id int64) (*Task, error)
	TaskIDs(ctx context.Context) ([]int64, error)

	// Write operations
	CreateTask(ctx context.Context, task *Task) error
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error
	ReorderTasks(ctx context.Context, orderedIDs []int64) error

	// Utility
	Ping(ctx context.Context) error
	Close() error
}

// Options tunes per-operation deadlines. Zero values disable the deadline.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite repository instance without deadlines
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens dbPath, applies pragmas and runs pending migrations.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// One connection: SQLite serialises writers and every :memory: connection
	// is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable WAL", err)
	}

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ping checks that the database is reachable
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		return HandleDatabaseError("ping", err)
	}
	return nil
}

// ListTasks retrieves all tasks in display order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM todos ORDER BY sort_order ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM todos WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// TaskIDs retrieves every stored task id
func (r *SQLiteRepository) TaskIDs(ctx context.Context) ([]int64, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := QueryMultiple(ctx, r.db, `SELECT id FROM todos ORDER BY id ASC`, ScanIDs, "task ids")
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(rows))
	for i, id := range rows {
		ids[i] = *id
	}
	return ids, nil
}

// CreateTask inserts task at the end of the list. ID, SortOrder and
// CreatedAt are filled in from the stored row.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `
	INSERT INTO todos (text, completed, priority, due_date, category, sort_order)
	SELECT ?, ?, ?, ?, ?, COALESCE(MAX(sort_order), -1) + 1 FROM todos`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Text, boolToInt(task.Completed), task.Priority, FormatDueDateForDB(task.DueDate), task.Category)
	if err != nil {
		return err
	}

	stored, err := QuerySingle(ctx, r.db, `SELECT `+taskColumns+` FROM todos WHERE id = ?`,
		ScanTask, "task", fmt.Sprintf("%d", id), id)
	if err != nil {
		return err
	}

	*task = *stored
	return nil
}

// UpdateTask overwrites the mutable columns of an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `
	UPDATE todos
	SET text = ?, completed = ?, priority = ?, due_date = ?, category = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Text, boolToInt(task.Completed), task.Priority, FormatDueDateForDB(task.DueDate), task.Category, task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `DELETE FROM todos WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// ReorderTasks sets each listed task's sort_order to its index in
// orderedIDs. Unknown ids are ignored. Nothing is written if any update fails.
func (r *SQLiteRepository) ReorderTasks(ctx context.Context, orderedIDs []int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin reorder", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `UPDATE todos SET sort_order = ? WHERE id = ?`)
	if err != nil {
		return HandleDatabaseError("prepare reorder", err)
	}
	defer stmt.Close()

	for position, id := range orderedIDs {
		if _, err := stmt.ExecContext(ctx, position, id); err != nil {
			return errors.NewDatabaseError(fmt.Sprintf("reorder task %d", id), err).
				WithField("task_id", id).
				WithField("position", position)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit reorder", err)
	}
	return nil
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.opts.QueryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(ctx, r.opts.WriteTimeout)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
