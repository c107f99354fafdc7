package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/bookreview-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	query := `SELECT id, username, email, password_hash, refresh_token, refresh_token_expires_at, created_at, updated_at
			  FROM users WHERE username = $1`

	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.RefreshToken, &user.RefreshTokenExpiresAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, username, email, password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, username, email, password_hash, refresh_token, refresh_token_expires_at, created_at, updated_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt,
	).Scan(
		&savedUser.ID, &savedUser.Username, &savedUser.Email, &savedUser.PasswordHash,
		&savedUser.RefreshToken, &savedUser.RefreshTokenExpiresAt,
		&savedUser.CreatedAt, &savedUser.UpdatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

// UpdateRefreshToken overwrites the refresh-token slot in a single UPDATE.
// The overwrite is the whole point: a new login ends any previous session
// for the account.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, username string, token string, expiresAt time.Time) error {
	const query = `
        UPDATE users SET refresh_token = $2, refresh_token_expires_at = $3, updated_at = NOW()
        WHERE username = $1
    `
	ct, err := r.db.Exec(ctx, query, username, token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, username string) error {
	const query = `
        UPDATE users SET refresh_token = NULL, refresh_token_expires_at = NULL, updated_at = NOW()
        WHERE username = $1
    `
	ct, err := r.db.Exec(ctx, query, username)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
