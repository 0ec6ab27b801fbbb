package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/taskhub-server/internal/model"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &Connection{DB: db}, mock
}

func userColumns() []string {
	return []string{"id", "username", "password_hash", "name", "created_at"}
}

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserRepository_Create(t *testing.T) {
	user := model.User{
		ID:           uuid.New(),
		Username:     "alice",
		Name:         "Alice A",
		PasswordHash: []byte("$2a$10$hash"),
		CreatedAt:    time.Now(),
	}

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "successful creation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs(user.ID, user.Username, user.PasswordHash, user.Name, user.CreatedAt).
					WillReturnRows(sqlmock.NewRows(userColumns()).
						AddRow(user.ID.String(), user.Username, user.PasswordHash, user.Name, user.CreatedAt))
			},
			wantErr: nil,
		},
		{
			name: "duplicate username",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs(user.ID, user.Username, user.PasswordHash, user.Name, user.CreatedAt).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs(user.ID, user.Username, user.PasswordHash, user.Name, user.CreatedAt).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			repo := NewUserRepository(conn)
			saved, err := repo.Create(context.Background(), user)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.ID, saved.ID)
				assert.Equal(t, user.Username, saved.Username)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "user found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(userColumns()).
						AddRow(id.String(), "alice", []byte("hash"), "Alice A", time.Now()))
			},
			wantErr: nil,
		},
		{
			name: "user not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
					WithArgs(id).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			repo := NewUserRepository(conn)
			user, err := repo.GetByID(context.Background(), id)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, user.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		username string
		setup    func(sqlmock.Sqlmock)
		wantErr  error
	}{
		{
			name:     "user found",
			username: "alice",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE username`).
					WithArgs("alice").
					WillReturnRows(sqlmock.NewRows(userColumns()).
						AddRow(id.String(), "alice", []byte("hash"), "Alice A", time.Now()))
			},
			wantErr: nil,
		},
		{
			name:     "user not found",
			username: "nobody",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE username`).
					WithArgs("nobody").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			repo := NewUserRepository(conn)
			user, err := repo.GetByUsername(context.Background(), tt.username)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "successful delete",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id`).
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantErr: nil,
		},
		{
			name: "user not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM users WHERE id`).
					WithArgs(id).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			repo := NewUserRepository(conn)
			err := repo.Delete(context.Background(), id)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
