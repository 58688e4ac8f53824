package services

import (
	"context"
	"errors"

	"github.com/upb/course-registry/auth"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/repositories"
	"go.uber.org/zap"
)

// UserService handles account registration and credential verification
type UserService struct {
	users  repositories.UserRepository
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewUserService creates a new UserService instance
func NewUserService(users repositories.UserRepository, tokens *auth.TokenService, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// LoginResult carries the issued token back to the handler
type LoginResult struct {
	Token     string
	TokenType string
	ExpiresIn int64
	User      *models.User
}

// Register creates a new account with the given role. The username pre-check
// and the users.username UNIQUE constraint both map onto the same conflict
// error, so a lost race still answers with ErrDuplicateUsername.
func (s *UserService) Register(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, WrapInternal("failed to check username", err)
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, WrapInternal("failed to hash password", err)
	}

	user := models.NewUser(username, hash, role)
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, WrapInternal("failed to create user", err)
	}

	s.logger.Info("user registered",
		zap.String("username", username),
		zap.String("role", string(role)))
	return user, nil
}

// Login verifies the submitted credentials and issues a signed token. The
// unknown-user and wrong-password paths both answer ErrInvalidCredentials
// and both cost one bcrypt comparison.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			auth.CheckDummyPassword(password)
			return nil, ErrInvalidCredentials
		}
		return nil, WrapInternal("failed to load user", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		s.logger.Warn("login failed", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Identity{
		Subject: user.Username,
		Role:    user.Role,
	})
	if err != nil {
		return nil, WrapInternal("failed to issue token", err)
	}

	s.logger.Info("user logged in",
		zap.String("username", username),
		zap.String("role", string(user.Role)))

	return &LoginResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.tokens.ExpiresInSeconds(),
		User:      user,
	}, nil
}

// CurrentUser loads the account behind the request identity. The token only
// carries (subject, role); anything heavier comes from the store each call.
func (s *UserService) CurrentUser(ctx context.Context) (*models.User, error) {
	identity, err := RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// token subject no longer resolves to an account
			return nil, ErrUnauthenticated
		}
		return nil, WrapInternal("failed to load user", err)
	}

	return user, nil
}

// requireUserWithRole resolves the request identity to a stored account and
// enforces the role gate. Shared by the course and registration services.
func requireUserWithRole(ctx context.Context, users repositories.UserRepository, role models.Role) (*models.User, error) {
	identity, err := RequireRole(ctx, role)
	if err != nil {
		return nil, err
	}

	user, err := users.GetByUsername(ctx, identity.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, WrapInternal("failed to load user", err)
	}
	return user, nil
}
