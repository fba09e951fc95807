package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"stayhaven/internal/models"
)

func userColumns() []string {
	return []string{
		"user_id", "email", "password_hash", "role",
		"refresh_token", "refresh_token_expiry_time",
	}
}

func TestUserRepository_CreateUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	email := "admin@stayhaven.test"
	password := "password123"
	role := "admin"

	t.Run("generates id and hashes password", func(t *testing.T) {
		user := &models.User{
			Email:                  email,
			Role:                   role,
			RefreshToken:           "refresh_token",
			RefreshTokenExpiryTime: time.Time{},
		}

		mock.ExpectExec(`
			INSERT INTO users (user_id, email, password_hash, role, refresh_token, refresh_token_expiry_time)
			VALUES (?, ?, ?, ?, ?, ?)
		`).
			WithArgs(
				sqlmock.AnyArg(), // user_id assigned by the repository
				email,
				sqlmock.AnyArg(), // password_hash
				role,
				"refresh_token",
				time.Time{},
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateUser(ctx, user, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.NotEqual(t, password, user.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		user := &models.User{
			Email:                  email,
			Role:                   role,
			RefreshToken:           "refresh_token",
			RefreshTokenExpiryTime: time.Time{},
		}

		mock.ExpectExec(`
			INSERT INTO users (user_id, email, password_hash, role, refresh_token, refresh_token_expiry_time)
			VALUES (?, ?, ?, ?, ?, ?)
		`).
			WithArgs(
				sqlmock.AnyArg(),
				email,
				sqlmock.AnyArg(),
				role,
				"refresh_token",
				time.Time{},
			).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		err := repo.CreateUser(ctx, user, password)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create user")
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(userID, "admin@stayhaven.test", "hashed", "admin", "", time.Time{})

		mock.ExpectQuery(`SELECT * FROM users WHERE user_id = $1`).
			WithArgs(userID).
			WillReturnRows(rows)

		user, err := repo.GetUserByID(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "admin@stayhaven.test", user.Email)
		assert.Equal(t, "admin", user.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE user_id = $1`).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, userID)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE user_id = $1`).
			WithArgs(userID).
			WillReturnError(errors.New("connection failed"))

		user, err := repo.GetUserByID(ctx, userID)

		assert.Nil(t, user)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	email := "admin@stayhaven.test"
	password := "correct_password"

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(uuid.New().String(), email, string(hashedPassword), "admin", "", time.Time{})

		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs(email).
			WillReturnRows(rows)

		user, err := repo.VerifyPassword(ctx, email, password)

		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(uuid.New().String(), email, string(hashedPassword), "admin", "", time.Time{})

		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs(email).
			WillReturnRows(rows)

		user, err := repo.VerifyPassword(ctx, email, "wrong_password")

		assert.Nil(t, user)
		assert.EqualError(t, err, "invalid password")
	})

	t.Run("unknown email", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs(email).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.VerifyPassword(ctx, email, password)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepository_UpdateRefreshToken(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()
	refreshToken := "new_refresh_token"
	expiryTime := time.Now().Add(168 * time.Hour)

	mock.ExpectExec(`
			UPDATE users
			SET refresh_token = $1, refresh_token_expiry_time = $2
			WHERE user_id = $3
		`).
		WithArgs(refreshToken, expiryTime, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateRefreshToken(ctx, userID, refreshToken, expiryTime)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByRefreshToken(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	refreshToken := "valid_refresh_token"

	t.Run("valid token", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(
				uuid.New().String(),
				"admin@stayhaven.test",
				"hashed",
				"admin",
				refreshToken,
				time.Now().Add(time.Hour),
			)

		mock.ExpectQuery(`
			SELECT * FROM users
			WHERE refresh_token = $1
			AND refresh_token_expiry_time > CURRENT_TIMESTAMP
		`).
			WithArgs(refreshToken).
			WillReturnRows(rows)

		user, err := repo.GetUserByRefreshToken(ctx, refreshToken)

		require.NoError(t, err)
		assert.Equal(t, refreshToken, user.RefreshToken)
	})

	t.Run("expired or unknown token", func(t *testing.T) {
		mock.ExpectQuery(`
			SELECT * FROM users
			WHERE refresh_token = $1
			AND refresh_token_expiry_time > CURRENT_TIMESTAMP
		`).
			WithArgs("expired_token").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByRefreshToken(ctx, "expired_token")

		assert.Nil(t, user)
		assert.EqualError(t, err, "invalid or expired refresh token")
	})
}
