package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/taskhub-server/internal/logger"
	"github.com/dtroode/taskhub-server/internal/model"
)

// UserService defines user registration, lookup and authentication operations.
type UserService interface {
	Register(ctx context.Context, params model.RegisterUserParams) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	Authenticate(ctx context.Context, username, password string) (model.User, error)
}

// User handles HTTP endpoints for users and authentication.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Create registers a new user.
func (h *User) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "username, password and name must be provided")
		return
	}

	user, err := h.userService.Register(r.Context(), model.RegisterUserParams{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.logger.Debug("User handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Get returns a user by identifier.
func (h *User) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetByUsername returns a user by username.
func (h *User) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		writeError(w, http.StatusBadRequest, "username must be provided")
		return
	}

	user, err := h.userService.GetByUsername(r.Context(), username)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Login verifies a username/password pair. No session token is issued;
// the endpoint only confirms the credentials and echoes the user.
func (h *User) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password must be provided")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
