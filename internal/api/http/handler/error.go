package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/bookreview-server/internal/api/http/response"
	"github.com/dtroode/bookreview-server/internal/model"
)

// handleError maps service errors to HTTP statuses. Every unauthorized
// cause collapses into the same 401 body, and 500 responses stay generic:
// the underlying error is logged by the handler, never echoed.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrTokenMalformed),
		errors.Is(err, model.ErrTokenSignatureInvalid),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrRefreshTokenMismatch),
		errors.Is(err, model.ErrRefreshTokenExpired):
		response.Error(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, model.ErrUsernameTaken):
		response.Error(w, http.StatusConflict, "user already exists")
	case errors.Is(err, model.ErrInvalidReview):
		response.Error(w, http.StatusUnprocessableEntity, "invalid review")
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, http.StatusNotFound, "not found")
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Auth) handleError(w http.ResponseWriter, err error) {
	handleError(w, err)
}

func (h *Review) handleError(w http.ResponseWriter, err error) {
	handleError(w, err)
}
