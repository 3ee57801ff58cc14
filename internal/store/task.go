package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/taskapi/taskapi/internal/domain"
)

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	store *Store
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

// Create inserts a new task.
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := r.store.rebind(`
		INSERT INTO tasks (id, title, completed, created_at)
		VALUES (?, ?, ?, ?)
	`)
	_, err := r.store.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Completed,
		task.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

// GetByID retrieves a task by its ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := r.store.rebind(`
		SELECT id, title, completed, created_at
		FROM tasks WHERE id = ?
	`)
	return scanTask(r.store.db.QueryRowContext(ctx, query, id))
}

// List retrieves all tasks in insertion order.
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, title, completed, created_at
		FROM tasks
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// SetCompleted sets the completed flag of a task and returns the updated task.
func (r *TaskRepository) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Task, error) {
	query := r.store.rebind("UPDATE tasks SET completed = ? WHERE id = ?")
	result, err := r.store.db.ExecContext(ctx, query, completed, id)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete deletes a task by ID.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	query := r.store.rebind("DELETE FROM tasks WHERE id = ?")
	result, err := r.store.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row scanner) (*domain.Task, error) {
	var task domain.Task
	var createdAt string

	if err := row.Scan(&task.ID, &task.Title, &task.Completed, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	task.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

	return &task, nil
}
