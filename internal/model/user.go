package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Username and name length bounds enforced at registration.
const (
	MaxUsernameLength = 64
	MaxNameLength     = 255
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a registered account. PasswordHash is never serialized;
// external representations are built from ID, Username and Name only.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterUserParams contains parameters to register a user.
type RegisterUserParams struct {
	Username string
	Password string
	Name     string
}
