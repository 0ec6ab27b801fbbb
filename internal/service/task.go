package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/taskhub-server/internal/logger"
	"github.com/dtroode/taskhub-server/internal/model"
)

// Task implements task CRUD with the owning-user existence check.
type Task struct {
	taskStore model.TaskStore
	userStore model.UserStore
	logger    *logger.Logger
}

// NewTask creates a new Task service.
func NewTask(
	taskStore model.TaskStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Task {
	return &Task{
		taskStore: taskStore,
		userStore: userStore,
		logger:    logger,
	}
}

// Create persists a new task after confirming the owning user exists. The
// reference is only checked here, not on later mutations.
func (s *Task) Create(ctx context.Context, params model.CreateTaskParams) (model.Task, error) {
	if params.Description == "" {
		return model.Task{}, model.NewValidationError("description", "must be provided")
	}

	_, err := s.userStore.GetByID(ctx, params.UserID)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Task service: owning user does not exist",
			"user_id", params.UserID)
		return model.Task{}, fmt.Errorf("user %s: %w", params.UserID, model.ErrNotFound)
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	task := model.Task{
		ID:          uuid.New(),
		Description: params.Description,
		UserID:      params.UserID,
		CreatedAt:   time.Now(),
	}

	savedTask, err := s.taskStore.Create(ctx, task)
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", params.UserID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("Task service: task created",
		"task_id", savedTask.ID,
		"user_id", savedTask.UserID)

	return savedTask, nil
}

// GetByID returns the task with the given identifier.
func (s *Task) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

// GetByUser returns all tasks owned by the user, ordered by identifier.
func (s *Task) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	tasks, err := s.taskStore.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by user id: %w", err)
	}

	return tasks, nil
}

// Update persists a new description for the task.
func (s *Task) Update(ctx context.Context, task *model.Task, description string) error {
	if !task.Persisted() {
		return model.ErrNotPersisted
	}
	if description == "" {
		return model.NewValidationError("description", "must be provided")
	}

	if err := s.taskStore.UpdateDescription(ctx, task.ID, description); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	task.Description = description
	return nil
}

// Delete removes the task row and clears the in-memory identifier so the
// object cannot be mutated or deleted again.
func (s *Task) Delete(ctx context.Context, task *model.Task) error {
	if !task.Persisted() {
		return model.ErrNotPersisted
	}

	if err := s.taskStore.Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted",
		"task_id", task.ID)

	task.ID = uuid.Nil
	return nil
}
