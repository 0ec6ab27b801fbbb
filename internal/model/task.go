package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (Task, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Task, error)
	UpdateDescription(ctx context.Context, id uuid.UUID, description string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Task represents a unit of work owned by a user.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Persisted reports whether the task currently has a stored row behind it.
// Delete clears the identifier, so a deleted task fails this check.
func (t *Task) Persisted() bool {
	return t.ID != uuid.Nil
}

// CreateTaskParams contains parameters to create a task.
type CreateTaskParams struct {
	Description string
	UserID      uuid.UUID
}
