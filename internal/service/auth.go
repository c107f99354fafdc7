package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/bookreview-server/internal/logger"
	"github.com/dtroode/bookreview-server/internal/model"
)

// Auth orchestrates login, refresh and revoke flows. It owns the token
// policy: which claims go into an access token, the refresh-token lifetime,
// and the single-slot overwrite semantics on the account.
type Auth struct {
	userStore  model.UserStore
	tokens     model.TokenManager
	hasher     model.PasswordHasher
	refreshTTL time.Duration
	dummyHash  string
	logger     *logger.Logger
}

// NewAuth creates the auth service. Token lifetimes and the signing key
// live in the token manager and config; nothing here reads ambient state.
func NewAuth(
	userStore model.UserStore,
	tokens model.TokenManager,
	hasher model.PasswordHasher,
	refreshTTL time.Duration,
	logger *logger.Logger,
) *Auth {
	// Hashed throwaway secret, verified on logins for unknown usernames so
	// the response time does not depend on account existence.
	dummyHash, err := hasher.Hash(uuid.NewString())
	if err != nil {
		logger.Error("Auth service: failed to prepare dummy hash", "error", err.Error())
	}

	return &Auth{
		userStore:  userStore,
		tokens:     tokens,
		hasher:     hasher,
		refreshTTL: refreshTTL,
		dummyHash:  dummyHash,
		logger:     logger,
	}
}

// Register creates a new account. The username must be unused; the
// password is stored only as an argon2id hash.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) error {
	a.logger.Debug("Auth service: registering user", "username", params.Username)

	_, err := a.userStore.GetByUsername(ctx, params.Username)
	if err == nil {
		a.logger.Info("Auth service: username already taken", "username", params.Username)
		return model.ErrUsernameTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "username", params.Username)

	return nil
}

// Login verifies the credentials and starts a session. An unknown username
// and a wrong password both return ErrInvalidCredentials; the caller cannot
// enumerate accounts from the response. On success the refresh-token slot
// is overwritten, ending any previous session for the account.
func (a *Auth) Login(ctx context.Context, username, password string) (model.Session, error) {
	a.logger.Debug("Auth service: login attempt", "username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		_, _ = a.hasher.Verify(password, a.dummyHash)
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		return model.Session{}, model.ErrInvalidCredentials
	}

	session, err := a.issueSession(ctx, user.Username)
	if err != nil {
		return model.Session{}, err
	}

	a.logger.Info("Auth service: login succeeded", "username", username)

	return session, nil
}

// Refresh exchanges an expired-but-authentic access token plus the stored
// refresh token for a fresh access token. The access token signature is
// verified with the expiry check disabled; that narrow exception exists
// only here. The refresh token is NOT rotated: the presented value stays
// valid until its own expiry or the next login, and is echoed back.
func (a *Auth) Refresh(ctx context.Context, accessToken, refreshToken string) (model.Session, error) {
	a.logger.Debug("Auth service: refresh attempt")

	subject, err := a.tokens.ParseAccessToken(accessToken, false)
	if err != nil || subject == "" {
		a.logger.Debug("Auth service: refresh rejected, bad access token")
		return model.Session{}, model.ErrInvalidCredentials
	}

	user, err := a.userStore.GetByUsername(ctx, subject)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := validateRefreshSlot(user, refreshToken, time.Now()); err != nil {
		a.logger.Debug("Auth service: refresh rejected", "username", subject)
		return model.Session{}, model.ErrInvalidCredentials
	}

	access, expiresAt, err := a.tokens.GenerateAccessToken(subject)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	a.logger.Info("Auth service: refresh succeeded", "username", subject)

	return model.Session{
		AccessToken:  access,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
	}, nil
}

// Revoke clears the caller's refresh-token slot. Access tokens already
// issued stay valid until they expire; revocation only blocks future
// refresh operations.
func (a *Auth) Revoke(ctx context.Context, username string) error {
	a.logger.Debug("Auth service: revoke", "username", username)

	_, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := a.userStore.ClearRefreshToken(ctx, username); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	a.logger.Info("Auth service: session revoked", "username", username)

	return nil
}

func (a *Auth) issueSession(ctx context.Context, username string) (model.Session, error) {
	access, expiresAt, err := a.tokens.GenerateAccessToken(username)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := a.tokens.GenerateRefreshToken()
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := a.userStore.UpdateRefreshToken(ctx, username, refresh, time.Now().Add(a.refreshTTL)); err != nil {
		return model.Session{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return model.Session{
		AccessToken:  access,
		ExpiresAt:    expiresAt,
		RefreshToken: refresh,
	}, nil
}

func validateRefreshSlot(user model.User, presented string, now time.Time) error {
	if user.RefreshToken == nil || user.RefreshTokenExpiresAt == nil {
		return model.ErrRefreshTokenMismatch
	}
	if subtle.ConstantTimeCompare([]byte(*user.RefreshToken), []byte(presented)) != 1 {
		return model.ErrRefreshTokenMismatch
	}
	if now.After(*user.RefreshTokenExpiresAt) {
		return model.ErrRefreshTokenExpired
	}
	return nil
}
