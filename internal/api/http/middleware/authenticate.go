package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook-server/internal/api/http/response"
	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/model"
)

const bearerPrefix = "Bearer "

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	Authenticate(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects user ID into context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handler rejects requests without a valid bearer token with 401 and passes
// the rest on with the user ID in their context.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Text(w, http.StatusUnauthorized, "No token provided")
			return
		}

		userID, err := m.tokenService.Authenticate(r.Context(), strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil || userID == uuid.Nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err)
			if errors.Is(err, model.ErrMalformedClaims) || (err == nil && userID == uuid.Nil) {
				response.Text(w, http.StatusUnauthorized, "Invalid token payload")
				return
			}
			response.Text(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	})
}
