// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/craft-catalog/internal/logger"
	"github.com/MKhiriev/craft-catalog/migrations"
	"github.com/MKhiriev/craft-catalog/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return newDB(db, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		rows.AddRow(u.UserID, u.Name, u.Email, u.Password, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now().UTC().Truncate(time.Second)
	user := models.User{Name: "John", Email: "john@test.com", Password: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.Password).
		WillReturnRows(userRows(models.User{
			UserID: 1, Name: user.Name, Email: user.Email, Password: user.Password, CreatedAt: now, UpdatedAt: now,
		}))

	created, err := repo.CreateUser(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Email, created.Email)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_EmailTaken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "users_email_key"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@test.com"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_NotNullViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.NotNullViolation))

	_, err := repo.CreateUser(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@test.com"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByEmail(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM users WHERE email = \\$1").
					WithArgs("test@test.com").
					WillReturnRows(userRows(models.User{UserID: 3, Email: "test@test.com", Password: "hash"}))
			},
			wantID: 3,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM users").
					WithArgs("test@test.com").
					WillReturnRows(userRows())
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM users").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			user, err := repo.FindUserByEmail(context.Background(), "test@test.com")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.UserID)
			assert.Equal(t, "hash", user.Password)
		})
	}
}

func TestFindUserByID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .* FROM users WHERE user_id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(userRows(models.User{UserID: 5, Name: "Eve"}))

	user, err := repo.FindUserByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "Eve", user.Name)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .* FROM users").
		WillReturnRows(userRows())

	_, err := repo.FindUserByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	name := "New Name"
	email := "taken@test.com"

	t.Run("empty update is a no-op", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		affected, err := repo.UpdateUser(context.Background(), models.UserUpdate{UserID: 1})

		require.NoError(t, err)
		assert.Zero(t, affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("updates provided fields", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectExec("UPDATE users SET updated_at = CURRENT_TIMESTAMP, name = \\$1 WHERE user_id = \\$2").
			WithArgs(name, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.UpdateUser(context.Background(), models.UserUpdate{UserID: 1, Name: &name})

		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("email taken", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectExec("UPDATE users").
			WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "users_email_key"))

		_, err := repo.UpdateUser(context.Background(), models.UserUpdate{UserID: 1, Email: &email})

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})
}
