package middleware

import (
	"net/http"
	"strings"

	"github.com/dtroode/bookreview-server/internal/api/http/response"
	"github.com/dtroode/bookreview-server/internal/logger"
	"github.com/dtroode/bookreview-server/internal/model"
)

// TokenParser verifies presented access tokens and resolves the subject.
type TokenParser interface {
	ParseAccessToken(token string, checkExpiry bool) (string, error)
}

// Authenticate validates bearer tokens and injects the caller username
// into the request context. It fails closed: missing, malformed, tampered
// and expired tokens are all rejected with the same 401.
type Authenticate struct {
	tokens         TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle wraps a protected handler. Expiry checking is always on here;
// the signature-only mode belongs to the refresh flow exclusively.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			response.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		username, err := m.tokens.ParseAccessToken(tokenString, true)
		if err != nil || username == "" {
			m.logger.Debug("Authenticate middleware: rejected token", "path", r.URL.Path)
			response.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := m.contextManager.SetUsernameToContext(r.Context(), username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
