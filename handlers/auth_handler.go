package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/upb/course-registry/middleware"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/services"
	"github.com/upb/course-registry/utils"
	"go.uber.org/zap"
)

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=6,max=64"`
	Role     string `json:"role" validate:"required,oneof=TEACHER STUDENT"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token. Clients send it back as
// "Authorization: Bearer <access_token>".
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthService defines the account operations the auth handler needs
type AuthService interface {
	Register(ctx context.Context, username, password string, role models.Role) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.LoginResult, error)
}

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	users  AuthService
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		users:  users,
		logger: logger,
	}
}

// HandleRegister handles POST /auth/register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestIDFromContext(ctx)

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		h.logger.Warn("request validation failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		HandleValidationError(w, err, h.logger)
		return
	}

	user, err := h.users.Register(ctx, req.Username, req.Password, models.Role(req.Role))
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("account registered",
		zap.String("request_id", requestID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	_ = utils.WriteCreated(w, userToResponse(user))
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestIDFromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	result, err := h.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("login succeeded",
		zap.String("request_id", requestID),
		zap.String("username", result.User.Username))

	_ = utils.WriteOK(w, LoginResponse{
		AccessToken: result.Token,
		TokenType:   result.TokenType,
		ExpiresIn:   result.ExpiresIn,
	})
}

// userToResponse converts a User model to a UserResponse
func userToResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     string(u.Role),
	}
}
