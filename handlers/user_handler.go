package handlers

import (
	"context"
	"net/http"

	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/utils"
	"go.uber.org/zap"
)

// Accountresolver defines the lookup the user handler needs
type AccountResolver interface {
	CurrentUser(ctx context.Context) (*models.User, error)
}

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	users  AccountResolver
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users AccountResolver, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

// HandleMe handles GET /users/me
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.CurrentUser(r.Context())
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, userToResponse(user))
}
