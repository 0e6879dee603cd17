package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"tasks-api/internal/domain"
	apperrors "tasks-api/internal/errors"
	"tasks-api/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database
const MemoryDSN = ":memory:"

const taskColumns = `seq, id, name, completed`

// SQLiteRepository implements repository.TaskRepository
type SQLiteRepository struct {
	db *sql.DB
}

// New opens the database at dsn and applies migrations.
// The pool is limited to one connection so every query sees the same
// in-memory database.
func New(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperrors.NewDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// List retrieves all tasks in insertion order
func (r *SQLiteRepository) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq ASC`
	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, toDomain(row))
	}
	return tasks, nil
}

// FindByID retrieves the first task with the given id
func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? ORDER BY seq ASC LIMIT 1`
	row, err := QuerySingle(ctx, r.db, query, ScanTask, "task", strconv.FormatInt(id, 10), id)
	if err != nil {
		return nil, err
	}
	return toDomain(row), nil
}

// Append inserts a task and records its id in the counter table
func (r *SQLiteRepository) Append(ctx context.Context, task *domain.Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin append", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tasks (id, name, completed) VALUES (?, ?, ?)`,
		task.ID, task.Name, task.Completed,
	); err != nil {
		return HandleDatabaseError("insert task", err)
	}

	if _, err := tx.ExecContext(ctx, `
	INSERT INTO task_counter (name, max_id) VALUES ('tasks', ?)
	ON CONFLICT(name) DO UPDATE SET max_id = MAX(max_id, excluded.max_id)`,
		task.ID,
	); err != nil {
		return HandleDatabaseError("update task counter", err)
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit append", err)
	}
	return nil
}

// Update overwrites name and completed of the first task with task.ID
func (r *SQLiteRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
	UPDATE tasks
	SET name = ?, completed = ?
	WHERE seq = (SELECT seq FROM tasks WHERE id = ? ORDER BY seq ASC LIMIT 1)`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", strconv.FormatInt(task.ID, 10), task.Name, task.Completed, task.ID)
}

// RemoveByID deletes the first task with the given id and returns it
func (r *SQLiteRepository) RemoveByID(ctx context.Context, id int64) (*domain.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, HandleDatabaseError("begin remove", err)
	}
	defer tx.Rollback()

	row, err := ScanTask(tx.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? ORDER BY seq ASC LIMIT 1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("task", strconv.FormatInt(id, 10))
		}
		return nil, HandleDatabaseError("scan task", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE seq = ?`, row.Seq); err != nil {
		return nil, HandleDatabaseError("delete task", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, HandleDatabaseError("commit remove", err)
	}
	return toDomain(row), nil
}

// Count returns the number of stored tasks
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return n, nil
}

// MaxID returns the highest id appended so far, including removed tasks
func (r *SQLiteRepository) MaxID(ctx context.Context) (int64, error) {
	var maxID int64
	err := r.db.QueryRowContext(ctx, `SELECT max_id FROM task_counter WHERE name = 'tasks'`).Scan(&maxID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, HandleDatabaseError("read task counter", err)
	}
	return maxID, nil
}

func toDomain(row *Task) *domain.Task {
	task := domain.NewTask(row.ID, row.Name, row.Completed)
	return &task
}
