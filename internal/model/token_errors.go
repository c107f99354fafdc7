package model

import "errors"

var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
	ErrRefreshTokenMismatch  = errors.New("refresh token mismatch")
	ErrRefreshTokenExpired   = errors.New("refresh token expired")
)
