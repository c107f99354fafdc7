package model

import "time"

// TokenManager issues and validates signed access tokens and generates
// opaque refresh tokens.
type TokenManager interface {
	GenerateAccessToken(username string) (token string, expiresAt time.Time, err error)
	// ParseAccessToken verifies the token signature and returns the subject
	// claim. checkExpiry=false skips only the expiry check while still
	// verifying the signature; it exists for the refresh flow and must not
	// be used on protected routes.
	ParseAccessToken(token string, checkExpiry bool) (subject string, err error)
	GenerateRefreshToken() (string, error)
}
