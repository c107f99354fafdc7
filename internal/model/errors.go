package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken is returned on registration with an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers every authentication failure. Callers must
	// not be able to tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidReview is returned when review fields fail validation.
	ErrInvalidReview = errors.New("invalid review")
)
