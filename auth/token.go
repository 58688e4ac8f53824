package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/upb/course-registry/models"
)

var (
	// ErrInvalidToken is returned when the token is malformed, carries a bad
	// signature, or was signed with an unexpected algorithm
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when the token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrWeakSecret is returned at construction when the signing secret is too
	// short. A short secret is a deployment error, not a per-request condition.
	ErrWeakSecret = errors.New("signing secret must be at least 32 bytes")
)

// MinSecretLen is the minimum accepted length of the HMAC signing secret.
const MinSecretLen = 32

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = time.Hour

// Claims is the signed claim set carried by issued tokens: subject
// (username), role, issued-at and expiry. Claims are readable by anyone
// holding the token; nothing secret goes in here.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenService issues and validates self-contained identity tokens signed
// with an HMAC shared secret. Validation needs no server-side state: every
// claim required to rebuild the identity travels inside the token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService. The secret must carry at least
// MinSecretLen bytes; ttl falls back to DefaultTTL when zero.
func NewTokenService(secret []byte, ttl time.Duration) (*TokenService, error) {
	if len(secret) < MinSecretLen {
		return nil, ErrWeakSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock overrides the time source. Test hook.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// ExpiresInSeconds returns the configured token lifetime in whole seconds,
// as reported to clients in the login response.
func (s *TokenService) ExpiresInSeconds() int64 {
	return int64(s.ttl / time.Second)
}

// Issue signs a token for the given identity. The same identity signed with
// the same secret always verifies; altering any byte of the encoded claims
// or signature makes verification fail.
func (s *TokenService) Issue(identity Identity) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: string(identity.Role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry of a token string and decodes
// it into an Identity. Callers that serve both public and protected routes
// should treat any error as "no identity" and let the authorization guard
// decide whether that matters.
func (s *TokenService) Validate(tokenString string) (*Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	role := models.Role(claims.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return &Identity{
		Subject: claims.Subject,
		Role:    role,
	}, nil
}
