package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for user accounts.
// Refresh-slot mutations must be applied as single atomic updates;
// concurrent writers for the same account race with last-write-wins
// semantics.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateRefreshToken(ctx context.Context, username string, token string, expiresAt time.Time) error
	ClearRefreshToken(ctx context.Context, username string) error
}

// User represents a stored account with its credential material and
// refresh-token slot. At most one refresh token is outstanding per user:
// login overwrites the slot and revoke clears it (single-session model,
// no multi-device sessions). A nil RefreshToken means no active session.
type User struct {
	ID                    uuid.UUID
	Username              string
	Email                 string
	PasswordHash          string
	RefreshToken          *string
	RefreshTokenExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
