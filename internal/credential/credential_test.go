package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/taskhub-server/internal/model"
)

func TestManager_SetPassword(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
		wantErr   bool
	}{
		{
			name:      "accepts password at minimum length",
			plaintext: "secret",
			wantErr:   false,
		},
		{
			name:      "accepts long password",
			plaintext: "a much longer passphrase with spaces",
			wantErr:   false,
		},
		{
			name:      "accepts password at maximum length",
			plaintext: strings.Repeat("a", MaxPasswordLength),
			wantErr:   false,
		},
		{
			name:      "rejects password below minimum length",
			plaintext: "short",
			wantErr:   true,
		},
		{
			name:      "rejects password above maximum length",
			plaintext: strings.Repeat("a", MaxPasswordLength+1),
			wantErr:   true,
		},
		{
			name:      "rejects empty password",
			plaintext: "",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(bcrypt.MinCost)
			u := &model.User{}

			err := m.SetPassword(u, tt.plaintext)
			if tt.wantErr {
				var validationErr *model.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Empty(t, u.PasswordHash)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, u.PasswordHash)
			assert.NotContains(t, string(u.PasswordHash), tt.plaintext)
			assert.True(t, m.CheckPassword(u, tt.plaintext))
		})
	}
}

func TestManager_SetPassword_KeepsPriorHashOnFailure(t *testing.T) {
	m := NewManager(bcrypt.MinCost)
	u := &model.User{}

	require.NoError(t, m.SetPassword(u, "original-password"))
	prior := u.PasswordHash

	err := m.SetPassword(u, "tiny")
	require.Error(t, err)
	assert.Equal(t, prior, u.PasswordHash)
	assert.True(t, m.CheckPassword(u, "original-password"))
}

func TestManager_SetPassword_SaltsEveryHash(t *testing.T) {
	m := NewManager(bcrypt.MinCost)
	first := &model.User{}
	second := &model.User{}

	require.NoError(t, m.SetPassword(first, "same-password"))
	require.NoError(t, m.SetPassword(second, "same-password"))

	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)
	assert.True(t, m.CheckPassword(first, "same-password"))
	assert.True(t, m.CheckPassword(second, "same-password"))
}

func TestManager_CheckPassword(t *testing.T) {
	m := NewManager(bcrypt.MinCost)
	u := &model.User{}
	require.NoError(t, m.SetPassword(u, "secretpw"))

	tests := []struct {
		name      string
		user      *model.User
		plaintext string
		want      bool
	}{
		{
			name:      "matching password",
			user:      u,
			plaintext: "secretpw",
			want:      true,
		},
		{
			name:      "wrong password",
			user:      u,
			plaintext: "wrongpw",
			want:      false,
		},
		{
			name:      "no hash set",
			user:      &model.User{},
			plaintext: "secretpw",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.CheckPassword(tt.user, tt.plaintext))
		})
	}
}

func TestNewManager_CostOutOfRange(t *testing.T) {
	m := NewManager(bcrypt.MaxCost + 1)
	u := &model.User{}

	require.NoError(t, m.SetPassword(u, "secretpw"))
	cost, err := bcrypt.Cost(u.PasswordHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
