package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/taskhub-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (id, description, user_id, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, description, user_id, created_at`

	var savedTask model.Task
	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.Description, task.UserID, task.CreatedAt,
	).Scan(
		&savedTask.ID, &savedTask.Description, &savedTask.UserID, &savedTask.CreatedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return savedTask, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	var task model.Task
	query := `SELECT id, description, user_id, created_at
			  FROM tasks WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.Description, &task.UserID, &task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

// GetByUserID returns the user's tasks ordered by identifier. Identifiers are
// random, so the order is stable but carries no arrival semantics.
func (r *TaskRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	query := `SELECT id, description, user_id, created_at
			  FROM tasks WHERE user_id = $1
			  ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by user id: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(&task.ID, &task.Description, &task.UserID, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) UpdateDescription(ctx context.Context, id uuid.UUID, description string) error {
	query := `UPDATE tasks SET description = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, description, id)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tasks WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}
