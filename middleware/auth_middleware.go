package middleware

import (
	"net/http"
	"strings"

	"github.com/upb/course-registry/auth"
	"go.uber.org/zap"
)

// TokenValidator validates a signed token and returns the identity it carries.
type TokenValidator interface {
	Validate(token string) (*auth.Identity, error)
}

// AuthMiddleware resolves the caller's identity from the Authorization header.
type AuthMiddleware struct {
	validator TokenValidator
	logger    *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(validator TokenValidator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		logger:    logger,
	}
}

// Authenticate attaches the caller's identity to the request context when a
// valid bearer token is present. A missing, malformed or expired token never
// short-circuits the request: the handler proceeds without an identity and
// the service-layer guards decide whether the operation needs one. This keeps
// public routes and protected routes behind the same middleware chain.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := m.validator.Validate(token)
		if err != nil {
			m.logger.Debug("token rejected, proceeding unauthenticated",
				zap.String("request_id", GetRequestIDFromContext(r.Context())),
				zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		ctx := auth.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken extracts the Bearer token from the Authorization header
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
