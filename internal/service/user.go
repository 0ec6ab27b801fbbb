package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/taskhub-server/internal/credential"
	"github.com/dtroode/taskhub-server/internal/logger"
	"github.com/dtroode/taskhub-server/internal/model"
)

// User implements registration, lookup and credential verification.
type User struct {
	userStore   model.UserStore
	credentials *credential.Manager
	logger      *logger.Logger
}

// NewUser creates a new User service.
func NewUser(
	userStore model.UserStore,
	credentials *credential.Manager,
	logger *logger.Logger,
) *User {
	return &User{
		userStore:   userStore,
		credentials: credentials,
		logger:      logger,
	}
}

// Register validates the parameters, hashes the password and persists the
// user. Username uniqueness is enforced by the storage constraint: a
// conflicting insert surfaces as model.ErrConflict, there is no
// check-then-insert round trip to race against.
func (s *User) Register(ctx context.Context, params model.RegisterUserParams) (model.User, error) {
	s.logger.Debug("User service: starting registration",
		"username", params.Username)

	if err := validateRegisterParams(params); err != nil {
		return model.User{}, err
	}

	user := model.User{
		ID:        uuid.New(),
		Username:  params.Username,
		Name:      params.Name,
		CreatedAt: time.Now(),
	}

	if err := s.credentials.SetPassword(&user, params.Password); err != nil {
		return model.User{}, err
	}

	savedUser, err := s.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrConflict) {
		s.logger.Info("User service: username already taken",
			"username", params.Username)
		return model.User{}, fmt.Errorf("username %q: %w", params.Username, model.ErrConflict)
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: registration completed",
		"username", savedUser.Username,
		"user_id", savedUser.ID)

	return savedUser, nil
}

// GetByID returns the user with the given identifier.
func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// GetByUsername returns the user with the given username.
func (s *User) GetByUsername(ctx context.Context, username string) (model.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

// Authenticate verifies the username/password pair. Unknown usernames and
// wrong passwords both map to model.ErrInvalidCredentials so the response
// does not reveal which of the two failed.
func (s *User) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error("User service: failed to get user for authentication",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !s.credentials.CheckPassword(&user, password) {
		s.logger.Info("User service: password mismatch",
			"username", username)
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

func validateRegisterParams(params model.RegisterUserParams) error {
	switch {
	case params.Username == "":
		return model.NewValidationError("username", "must be provided")
	case len(params.Username) > model.MaxUsernameLength:
		return model.NewValidationError("username", fmt.Sprintf("must be at most %d characters long", model.MaxUsernameLength))
	case params.Name == "":
		return model.NewValidationError("name", "must be provided")
	case len(params.Name) > model.MaxNameLength:
		return model.NewValidationError("name", fmt.Sprintf("must be at most %d characters long", model.MaxNameLength))
	}
	return nil
}
