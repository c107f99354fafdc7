package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dtroode/bookreview-server/internal/api/http/response"
	"github.com/dtroode/bookreview-server/internal/logger"
	"github.com/dtroode/bookreview-server/internal/model"
)

// AuthService defines registration and session operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) error
	Login(ctx context.Context, username, password string) (model.Session, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (model.Session, error)
	Revoke(ctx context.Context, username string) error
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type sessionResponse struct {
	JWTToken     string    `json:"jwtToken"`
	Expiration   time.Time `json:"expiration"`
	RefreshToken string    `json:"refreshToken"`
}

// Register creates a new user account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Auth handler: processing register request")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		response.Error(w, http.StatusBadRequest, "username, password and email are required")
		return
	}

	err := h.authService.Register(r.Context(), model.RegisterParams{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		h.logger.Error("Auth handler: register failed",
			"username", req.Username,
			"error", err.Error())
		h.handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: register completed", "username", req.Username)

	response.Text(w, http.StatusOK, "user successfully created")
}

// Login verifies credentials and returns a new session.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Auth handler: processing login request")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	session, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		h.handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed", "username", req.Username)

	response.JSON(w, http.StatusOK, sessionResponse{
		JWTToken:     session.AccessToken,
		Expiration:   session.ExpiresAt,
		RefreshToken: session.RefreshToken,
	})
}

// Refresh exchanges an access/refresh token pair for a new access token.
func (h *Auth) Refresh(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Auth handler: processing refresh request")

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AccessToken == "" || req.RefreshToken == "" {
		response.Error(w, http.StatusBadRequest, "accessToken and refreshToken are required")
		return
	}

	session, err := h.authService.Refresh(r.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: refresh failed", "error", err.Error())
		h.handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: refresh completed")

	response.JSON(w, http.StatusOK, sessionResponse{
		JWTToken:     session.AccessToken,
		Expiration:   session.ExpiresAt,
		RefreshToken: session.RefreshToken,
	})
}

// Revoke clears the caller's refresh-token slot. It runs behind the auth
// middleware, so the identity comes from the request context.
func (h *Auth) Revoke(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Auth handler: processing revoke request")

	username, ok := h.contextManager.GetUsernameFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.authService.Revoke(r.Context(), username); err != nil {
		h.logger.Error("Auth handler: revoke failed",
			"username", username,
			"error", err.Error())
		h.handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: revoke completed", "username", username)

	w.WriteHeader(http.StatusOK)
}
