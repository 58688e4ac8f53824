package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/services"
	"go.uber.org/zap"
)

func TestHandleMe(t *testing.T) {
	t.Run("returns the caller's account", func(t *testing.T) {
		mockUsers := new(MockAccountResolver)
		handler := NewUserHandler(mockUsers, zap.NewNop())

		user := models.NewUser("alice", "hash", models.RoleTeacher)
		mockUsers.On("CurrentUser", mock.Anything).Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		rec := httptest.NewRecorder()
		handler.HandleMe(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
		assert.Contains(t, rec.Body.String(), `"role":"TEACHER"`)
	})

	t.Run("anonymous gets unauthorized", func(t *testing.T) {
		mockUsers := new(MockAccountResolver)
		handler := NewUserHandler(mockUsers, zap.NewNop())

		mockUsers.On("CurrentUser", mock.Anything).Return(nil, services.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		rec := httptest.NewRecorder()
		handler.HandleMe(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
