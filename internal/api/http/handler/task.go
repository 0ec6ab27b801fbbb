package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/taskhub-server/internal/logger"
	"github.com/dtroode/taskhub-server/internal/model"
)

// TaskService defines task CRUD operations.
type TaskService interface {
	Create(ctx context.Context, params model.CreateTaskParams) (model.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Task, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task, description string) error
	Delete(ctx context.Context, task *model.Task) error
}

// Task handles HTTP endpoints for tasks.
type Task struct {
	taskService TaskService
	logger      *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, logger *logger.Logger) *Task {
	return &Task{
		taskService: taskService,
		logger:      logger,
	}
}

type createTaskRequest struct {
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

type updateTaskRequest struct {
	Description string `json:"description"`
}

// Create persists a new task for an existing user.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Description == "" || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "description and userId must be provided")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	task, err := h.taskService.Create(r.Context(), model.CreateTaskParams{
		Description: req.Description,
		UserID:      userID,
	})
	if err != nil {
		h.logger.Debug("Task handler: creation failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// Get returns a task by identifier.
func (h *Task) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// ListByUser returns all tasks owned by the given user, ordered by identifier.
func (h *Task) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	tasks, err := h.taskService.GetByUser(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// Update replaces a task's description.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Description == "" {
		writeError(w, http.StatusBadRequest, "description must be provided")
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.taskService.Update(r.Context(), &task, req.Description); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// Delete removes a task.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.taskService.Delete(r.Context(), &task); err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "task deleted"})
}
