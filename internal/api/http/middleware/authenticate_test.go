package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/bookreview-server/internal/api/http/httpctx"
	"github.com/dtroode/bookreview-server/internal/api/http/middleware"
	"github.com/dtroode/bookreview-server/internal/mocks"
	"github.com/dtroode/bookreview-server/internal/model"
	"github.com/dtroode/bookreview-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		authorization  string
		setupTokens    func(*mocks.TokenManager)
		wantStatus     int
		wantUsername   string
		wantNextCalled bool
	}{
		{
			name:          "valid token",
			authorization: "Bearer valid-token",
			setupTokens: func(m *mocks.TokenManager) {
				m.On("ParseAccessToken", "valid-token", true).Return("alice", nil)
			},
			wantStatus:     http.StatusOK,
			wantUsername:   "alice",
			wantNextCalled: true,
		},
		{
			name:          "missing header",
			authorization: "",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "wrong scheme",
			authorization: "Basic dXNlcjpwdw==",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "empty bearer token",
			authorization: "Bearer ",
			wantStatus:    http.StatusUnauthorized,
		},
		{
			name:          "expired token",
			authorization: "Bearer expired-token",
			setupTokens: func(m *mocks.TokenManager) {
				m.On("ParseAccessToken", "expired-token", true).Return("", model.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "tampered token",
			authorization: "Bearer tampered-token",
			setupTokens: func(m *mocks.TokenManager) {
				m.On("ParseAccessToken", "tampered-token", true).Return("", model.ErrTokenSignatureInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:          "empty subject",
			authorization: "Bearer odd-token",
			setupTokens: func(m *mocks.TokenManager) {
				m.On("ParseAccessToken", "odd-token", true).Return("", nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := mocks.NewTokenManager(t)
			if tt.setupTokens != nil {
				tt.setupTokens(tokens)
			}

			contextManager := httpctx.NewManager()
			authenticate := middleware.NewAuthenticate(tokens, contextManager, testutil.MakeNoopLogger())

			nextCalled := false
			var gotUsername string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotUsername, _ = contextManager.GetUsernameFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/BookReviews", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			authenticate.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantNextCalled {
				assert.Equal(t, tt.wantUsername, gotUsername)
			} else {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
			}
		})
	}
}
