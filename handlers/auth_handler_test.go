package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/services"
	"go.uber.org/zap"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleRegister(t *testing.T) {
	t.Run("creates account", func(t *testing.T) {
		mockUsers := new(MockAuthService)
		handler := NewAuthHandler(mockUsers, zap.NewNop())

		user := models.NewUser("alice", "hash", models.RoleTeacher)
		mockUsers.On("Register", mock.Anything, "alice", "secret1", models.RoleTeacher).Return(user, nil)

		rec := postJSON(t, handler.HandleRegister, "/api/v1/auth/register", RegisterRequest{
			Username: "alice",
			Password: "secret1",
			Role:     "TEACHER",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("rejects short password before the service is called", func(t *testing.T) {
		mockUsers := new(MockAuthService)
		handler := NewAuthHandler(mockUsers, zap.NewNop())

		rec := postJSON(t, handler.HandleRegister, "/api/v1/auth/register", RegisterRequest{
			Username: "alice",
			Password: "abc",
			Role:     "TEACHER",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsers.AssertNotCalled(t, "Register")
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		mockUsers := new(MockAuthService)
		handler := NewAuthHandler(mockUsers, zap.NewNop())

		rec := postJSON(t, handler.HandleRegister, "/api/v1/auth/register", RegisterRequest{
			Username: "mallory",
			Password: "secret1",
			Role:     "ADMIN",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsers.AssertNotCalled(t, "Register")
	})

	t.Run("duplicate username maps to conflict", func(t *testing.T) {
		mockUsers := new(MockAuthService)
		handler := NewAuthHandler(mockUsers, zap.NewNop())

		mockUsers.On("Register", mock.Anything, "alice", "secret1", models.RoleStudent).
			Return(nil, services.ErrDuplicateUsername)

		rec := postJSON(t, handler.HandleRegister, "/api/v1/auth/register", RegisterRequest{
			Username: "alice",
			Password: "secret1",
			Role:     "STUDENT",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockUsers := new(MockAuthService)
		handler := NewAuthHandler(mockUsers, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.HandleRegister(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	t.Run("returns bearer token", func(t *testing.T) {
		mockUsers := new(MockAuthService)
		handler := NewAuthHandler(mockUsers, zap.NewNop())

		user := models.NewUser("alice", "hash", models.RoleTeacher)
		mockUsers.On("Login", mock.Anything, "alice", "secret1").Return(&services.LoginResult{
			Token:     "signed-token",
			TokenType: "Bearer",
			ExpiresIn: 3600,
			User:      user,
		}, nil)

		rec := postJSON(t, handler.HandleLogin, "/api/v1/auth/login", LoginRequest{
			Username: "alice",
			Password: "secret1",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data LoginResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Data.AccessToken)
		assert.Equal(t, "Bearer", resp.Data.TokenType)
		assert.Equal(t, int64(3600), resp.Data.ExpiresIn)
	})

	t.Run("bad credentials map to unauthorized", func(t *testing.T) {
		mockUsers := new(MockAuthService)
		handler := NewAuthHandler(mockUsers, zap.NewNop())

		mockUsers.On("Login", mock.Anything, "alice", "wrong").
			Return(nil, services.ErrInvalidCredentials)

		rec := postJSON(t, handler.HandleLogin, "/api/v1/auth/login", LoginRequest{
			Username: "alice",
			Password: "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user gets the same unauthorized response", func(t *testing.T) {
		mockUsers := new(MockAuthService)
		handler := NewAuthHandler(mockUsers, zap.NewNop())

		mockUsers.On("Login", mock.Anything, "ghost", "secret1").
			Return(nil, services.ErrInvalidCredentials)

		rec := postJSON(t, handler.HandleLogin, "/api/v1/auth/login", LoginRequest{
			Username: "ghost",
			Password: "secret1",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
