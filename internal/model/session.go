package model

import "time"

// Session is the result of a successful login or refresh: a signed access
// token with its expiry and the opaque refresh token correlated with the
// account server-side.
type Session struct {
	AccessToken  string
	ExpiresAt    time.Time
	RefreshToken string
}

// RegisterParams carries the fields required to create an account.
type RegisterParams struct {
	Username string
	Password string
	Email    string
}
