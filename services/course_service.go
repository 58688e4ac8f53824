package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/repositories"
	"go.uber.org/zap"
)

// CourseService handles course management. Every mutating operation runs the
// role gate first, then loads the target, then the ownership gate: a missing
// course reports not-found before a foreign course reports not-owner.
type CourseService struct {
	courses repositories.CourseRepository
	users   repositories.UserRepository
	logger  *zap.Logger
}

// NewCourseService creates a new CourseService instance
func NewCourseService(courses repositories.CourseRepository, users repositories.UserRepository, logger *zap.Logger) *CourseService {
	return &CourseService{
		courses: courses,
		users:   users,
		logger:  logger,
	}
}

// ListAll returns every course. Public, no identity required.
func (s *CourseService) ListAll(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, WrapInternal("failed to list courses", err)
	}
	return courses, nil
}

// GetByID returns one course. Public, no identity required.
func (s *CourseService) GetByID(ctx context.Context, courseID uuid.UUID) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, WrapInternal("failed to load course", err)
	}
	return course, nil
}

// ListMine returns the calling teacher's courses
func (s *CourseService) ListMine(ctx context.Context) ([]*models.Course, error) {
	teacher, err := requireUserWithRole(ctx, s.users, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.GetByTeacherID(ctx, teacher.ID)
	if err != nil {
		return nil, WrapInternal("failed to list teacher courses", err)
	}
	return courses, nil
}

// Create creates a course owned by the calling teacher. Duplicate course
// numbers conflict whether caught by the pre-check or by the write-time
// constraint.
func (s *CourseService) Create(ctx context.Context, courseNo, courseName string) (*models.Course, error) {
	teacher, err := requireUserWithRole(ctx, s.users, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	if _, err := s.courses.GetByCourseNo(ctx, courseNo); err == nil {
		return nil, ErrDuplicateCourseNo
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, WrapInternal("failed to check course number", err)
	}

	course := models.NewCourse(courseNo, courseName, teacher.ID)
	if err := s.courses.Create(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateCourseNo
		}
		return nil, WrapInternal("failed to create course", err)
	}

	s.logger.Info("course created",
		zap.String("course_no", courseNo),
		zap.String("teacher", teacher.Username))
	return course, nil
}

// Update renames or renumbers a course owned by the calling teacher.
// Renumbering re-checks uniqueness only when the number actually changes.
func (s *CourseService) Update(ctx context.Context, courseID uuid.UUID, courseNo, courseName string) (*models.Course, error) {
	teacher, err := requireUserWithRole(ctx, s.users, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	course, err := s.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := RequireOwner(course, teacher); err != nil {
		return nil, err
	}

	if course.CourseNo != courseNo {
		if _, err := s.courses.GetByCourseNo(ctx, courseNo); err == nil {
			return nil, ErrDuplicateCourseNo
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return nil, WrapInternal("failed to check course number", err)
		}
	}

	course.CourseNo = courseNo
	course.CourseName = courseName
	course.UpdatedAt = time.Now()

	if err := s.courses.Update(ctx, course); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, ErrDuplicateCourseNo
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrCourseNotFound
		default:
			return nil, WrapInternal("failed to update course", err)
		}
	}

	s.logger.Info("course updated",
		zap.String("course_id", courseID.String()),
		zap.String("teacher", teacher.Username))
	return course, nil
}

// Delete removes a course owned by the calling teacher; its registrations
// cascade at the schema level.
func (s *CourseService) Delete(ctx context.Context, courseID uuid.UUID) error {
	teacher, err := requireUserWithRole(ctx, s.users, models.RoleTeacher)
	if err != nil {
		return err
	}

	course, err := s.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if err := RequireOwner(course, teacher); err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, courseID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCourseNotFound
		}
		return WrapInternal("failed to delete course", err)
	}

	s.logger.Info("course deleted",
		zap.String("course_id", courseID.String()),
		zap.String("teacher", teacher.Username))
	return nil
}
