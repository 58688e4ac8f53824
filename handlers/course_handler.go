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

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	CourseNo   string `json:"course_no" validate:"required,max=32"`
	CourseName string `json:"course_name" validate:"required,max=120"`
}

// UpdateCourseRequest represents a request to update a course
type UpdateCourseRequest struct {
	CourseNo   string `json:"course_no" validate:"required,max=32"`
	CourseName string `json:"course_name" validate:"required,max=120"`
}

// CourseResponse represents a course in API responses
type CourseResponse struct {
	ID         uuid.UUID `json:"id"`
	CourseNo   string    `json:"course_no"`
	CourseName string    `json:"course_name"`
	TeacherID  uuid.UUID `json:"teacher_id"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// CourseService defines the catalog operations the course handler needs
type CourseService interface {
	ListAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, courseID uuid.UUID) (*models.Course, error)
	ListMine(ctx context.Context) ([]*models.Course, error)
	Create(ctx context.Context, courseNo, courseName string) (*models.Course, error)
	Update(ctx context.Context, courseID uuid.UUID, courseNo, courseName string) (*models.Course, error)
	Delete(ctx context.Context, courseID uuid.UUID) error
}

// CourseHandler handles course catalog HTTP requests
type CourseHandler struct {
	courses CourseService
	logger  *zap.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courses CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		courses: courses,
		logger:  logger,
	}
}

// HandleList handles GET /courses
func (h *CourseHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListAll(r.Context())
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, coursesToResponse(courses))
}

// HandleGet handles GET /courses/{id}
func (h *CourseHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	courseID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteBadRequest(w, "Invalid course ID format", nil)
		return
	}

	course, err := h.courses.GetByID(r.Context(), courseID)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, courseToResponse(course))
}

// HandleListMine handles GET /courses/mine
func (h *CourseHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListMine(r.Context())
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, coursesToResponse(courses))
}

// HandleCreate handles POST /courses
func (h *CourseHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestIDFromContext(ctx)

	var req CreateCourseRequest
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

	course, err := h.courses.Create(ctx, req.CourseNo, req.CourseName)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("course created",
		zap.String("request_id", requestID),
		zap.String("course_id", course.ID.String()),
		zap.String("course_no", course.CourseNo))

	_ = utils.WriteCreated(w, courseToResponse(course))
}

// HandleUpdate handles PUT /courses/{id}
func (h *CourseHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestIDFromContext(ctx)

	courseID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteBadRequest(w, "Invalid course ID format", nil)
		return
	}

	var req UpdateCourseRequest
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

	course, err := h.courses.Update(ctx, courseID, req.CourseNo, req.CourseName)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("course updated",
		zap.String("request_id", requestID),
		zap.String("course_id", course.ID.String()))

	_ = utils.WriteOK(w, courseToResponse(course))
}

// HandleDelete handles DELETE /courses/{id}
func (h *CourseHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestIDFromContext(ctx)

	courseID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteBadRequest(w, "Invalid course ID format", nil)
		return
	}

	if err := h.courses.Delete(ctx, courseID); err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("course deleted",
		zap.String("request_id", requestID),
		zap.String("course_id", courseID.String()))

	utils.WriteNoContent(w)
}

// courseToResponse converts a Course model to a CourseResponse
func courseToResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:         c.ID,
		CourseNo:   c.CourseNo,
		CourseName: c.CourseName,
		TeacherID:  c.TeacherID,
		CreatedAt:  c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:  c.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func coursesToResponse(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, len(courses))
	for i, c := range courses {
		responses[i] = courseToResponse(c)
	}
	return responses
}
