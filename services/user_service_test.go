package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/upb/course-registry/auth"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/repositories"
	"go.uber.org/zap"
)

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates teacher account", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, newTestTokenService(t), zap.NewNop())

		mockUsers.On("ExistsByUsername", ctx, "alice").Return(false, nil)
		mockUsers.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)

		user, err := service.Register(ctx, "alice", "pw1", models.RoleTeacher)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, models.RoleTeacher, user.Role)
		assert.NotEqual(t, "pw1", user.PasswordHash)
		assert.True(t, auth.CheckPassword(user.PasswordHash, "pw1"))
		mockUsers.AssertExpectations(t)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, newTestTokenService(t), zap.NewNop())

		_, err := service.Register(ctx, "alice", "pw1", models.Role("ADMIN"))
		assert.ErrorIs(t, err, ErrInvalidRole)
		mockUsers.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate username from pre-check", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, newTestTokenService(t), zap.NewNop())

		mockUsers.On("ExistsByUsername", ctx, "alice").Return(true, nil)

		_, err := service.Register(ctx, "alice", "pw1", models.RoleTeacher)
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})

	t.Run("duplicate username from write-time constraint", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, newTestTokenService(t), zap.NewNop())

		mockUsers.On("ExistsByUsername", ctx, "alice").Return(false, nil)
		mockUsers.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicate)

		_, err := service.Register(ctx, "alice", "pw1", models.RoleTeacher)
		assert.ErrorIs(t, err, ErrDuplicateUsername)
	})
}

func TestUserServiceLogin(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokenService(t)

	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)
	alice := models.NewUser("alice", hash, models.RoleTeacher)

	t.Run("valid credentials issue a decodable token", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, tokens, zap.NewNop())

		mockUsers.On("GetByUsername", ctx, "alice").Return(alice, nil)

		result, err := service.Login(ctx, "alice", "pw1")
		require.NoError(t, err)
		assert.Equal(t, "Bearer", result.TokenType)
		assert.Equal(t, int64(3600), result.ExpiresIn)

		identity, err := tokens.Validate(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "alice", identity.Subject)
		assert.Equal(t, models.RoleTeacher, identity.Role)
	})

	t.Run("wrong password fails with invalid credentials", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, tokens, zap.NewNop())

		mockUsers.On("GetByUsername", ctx, "alice").Return(alice, nil)

		_, err := service.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user fails with the same error as wrong password", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, tokens, zap.NewNop())

		mockUsers.On("GetByUsername", ctx, "ghost").Return(nil, repositories.ErrNotFound)

		_, err := service.Login(ctx, "ghost", "pw1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserServiceCurrentUser(t *testing.T) {
	t.Run("resolves the identity subject", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, newTestTokenService(t), zap.NewNop())

		alice := models.NewUser("alice", "hash", models.RoleTeacher)
		ctx := ctxWithIdentity("alice", models.RoleTeacher)
		mockUsers.On("GetByUsername", ctx, "alice").Return(alice, nil)

		user, err := service.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
	})

	t.Run("anonymous fails unauthenticated", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, newTestTokenService(t), zap.NewNop())

		_, err := service.CurrentUser(context.Background())
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("stale subject fails unauthenticated", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		service := NewUserService(mockUsers, newTestTokenService(t), zap.NewNop())

		ctx := ctxWithIdentity("deleted-user", models.RoleStudent)
		mockUsers.On("GetByUsername", ctx, "deleted-user").Return(nil, repositories.ErrNotFound)

		_, err := service.CurrentUser(ctx)
		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
