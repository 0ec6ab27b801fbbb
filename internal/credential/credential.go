// Package credential owns password hashing and verification. Hashes are
// produced by bcrypt, which embeds a per-call random salt and an adaptive
// work factor, so identical passwords never share a stored hash.
package credential

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/taskhub-server/internal/model"
)

const (
	// MinPasswordLength is the shortest plaintext accepted by SetPassword.
	MinPasswordLength = 6
	// MaxPasswordLength is the longest plaintext accepted by SetPassword,
	// in bytes. bcrypt ignores or rejects input beyond 72 bytes, so longer
	// plaintexts are refused rather than silently truncated.
	MaxPasswordLength = 72
)

// Manager hashes and verifies user passwords.
type Manager struct {
	cost int
}

// NewManager creates a Manager with the given bcrypt cost. Costs outside
// bcrypt's supported range fall back to the library default.
func NewManager(cost int) *Manager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Manager{cost: cost}
}

// SetPassword replaces the user's stored hash with a freshly salted hash of
// plaintext. It fails validation for plaintexts shorter than
// MinPasswordLength or longer than MaxPasswordLength bytes and leaves any
// prior hash untouched on failure.
func (m *Manager) SetPassword(u *model.User, plaintext string) error {
	if len(plaintext) < MinPasswordLength {
		return model.NewValidationError("password", fmt.Sprintf("must be at least %d characters long", MinPasswordLength))
	}
	if len(plaintext) > MaxPasswordLength {
		return model.NewValidationError("password", fmt.Sprintf("must be at most %d bytes long", MaxPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), m.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether plaintext matches the user's stored hash.
// It returns false when no hash is set. The underlying bcrypt comparison is
// constant-time with respect to the position of a mismatch.
func (m *Manager) CheckPassword(u *model.User, plaintext string) bool {
	if len(u.PasswordHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(plaintext)) == nil
}
