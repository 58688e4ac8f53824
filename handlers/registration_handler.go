package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/upb/course-registry/middleware"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/utils"
	"go.uber.org/zap"
)

// EnrollRequest represents a request to enroll in a course
type EnrollRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

// RegistrationResponse represents a registration in API responses
type RegistrationResponse struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	CourseID  uuid.UUID `json:"course_id"`
	CreatedAt string    `json:"created_at"`
}

// RegistrationService defines the enrollment operations the handler needs
type RegistrationService interface {
	Enroll(ctx context.Context, courseID uuid.UUID) (*models.Registration, error)
	Drop(ctx context.Context, courseID uuid.UUID) error
	ListMine(ctx context.Context) ([]*models.Registration, error)
	Roster(ctx context.Context, courseID uuid.UUID) ([]*models.Registration, error)
}

// RegistrationHandler handles enrollment HTTP requests
type RegistrationHandler struct {
	registrations RegistrationService
	logger        *zap.Logger
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registrations RegistrationService, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrations: registrations,
		logger:        logger,
	}
}

// HandleEnroll handles POST /registrations
func (h *RegistrationHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestIDFromContext(ctx)

	var req EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if req.CourseID == uuid.Nil {
		_ = utils.WriteBadRequest(w, "course_id is required", nil)
		return
	}

	registration, err := h.registrations.Enroll(ctx, req.CourseID)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("enrollment created",
		zap.String("request_id", requestID),
		zap.String("registration_id", registration.ID.String()))

	_ = utils.WriteCreated(w, registrationToResponse(registration))
}

// HandleDrop handles DELETE /registrations/{courseID}
func (h *RegistrationHandler) HandleDrop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestIDFromContext(ctx)

	courseID, err := utils.ParseUUID(chi.URLParam(r, "courseID"))
	if err != nil {
		_ = utils.WriteBadRequest(w, "Invalid course ID format", nil)
		return
	}

	if err := h.registrations.Drop(ctx, courseID); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("enrollment dropped",
		zap.String("request_id", requestID),
		zap.String("course_id", courseID.String()))

	utils.WriteNoContent(w)
}

// HandleListMine handles GET /registrations/mine
func (h *RegistrationHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.registrations.ListMine(r.Context())
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, registrationsToResponse(registrations))
}

// HandleRoster handles GET /courses/{id}/students
func (h *RegistrationHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	courseID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteBadRequest(w, "Invalid course ID format", nil)
		return
	}

	registrations, err := h.registrations.Roster(r.Context(), courseID)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, registrationsToResponse(registrations))
}

// registrationToResponse converts a Registration model to a RegistrationResponse
func registrationToResponse(reg *models.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:        reg.ID,
		StudentID: reg.StudentID,
		CourseID:  reg.CourseID,
		CreatedAt: reg.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func registrationsToResponse(registrations []*models.Registration) []RegistrationResponse {
	responses := make([]RegistrationResponse, len(registrations))
	for i, reg := range registrations {
		responses[i] = registrationToResponse(reg)
	}
	return responses
}
