package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/repositories"
	"go.uber.org/zap"
)

// RegistrationService handles course enrollment for students and roster
// access for teachers.
type RegistrationService struct {
	registrations repositories.RegistrationRepository
	courses       repositories.CourseRepository
	users         repositories.UserRepository
	logger        *zap.Logger
}

// NewRegistrationService creates a new RegistrationService instance
func NewRegistrationService(
	registrations repositories.RegistrationRepository,
	courses repositories.CourseRepository,
	users repositories.UserRepository,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		courses:       courses,
		users:         users,
		logger:        logger,
	}
}

// Enroll registers the calling student for a course. Two concurrent enrolls
// can both pass the absence check; the UNIQUE(student_id, course_id)
// constraint decides the race and the loser gets the same conflict a
// pre-check would have produced.
func (s *RegistrationService) Enroll(ctx context.Context, courseID uuid.UUID) (*models.Registration, error) {
	student, err := requireUserWithRole(ctx, s.users, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, WrapInternal("failed to load course", err)
	}

	if _, err := s.registrations.GetByStudentAndCourse(ctx, student.ID, courseID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, WrapInternal("failed to check registration", err)
	}

	registration := models.NewRegistration(student.ID, courseID)
	if err := s.registrations.Create(ctx, registration); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrAlreadyRegistered
		}
		return nil, WrapInternal("failed to create registration", err)
	}

	s.logger.Info("student enrolled",
		zap.String("student", student.Username),
		zap.String("course_id", courseID.String()))
	return registration, nil
}

// Drop removes the calling student's registration for a course
func (s *RegistrationService) Drop(ctx context.Context, courseID uuid.UUID) error {
	student, err := requireUserWithRole(ctx, s.users, models.RoleStudent)
	if err != nil {
		return err
	}

	registration, err := s.registrations.GetByStudentAndCourse(ctx, student.ID, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRegistrationNotFound
		}
		return WrapInternal("failed to load registration", err)
	}

	if err := s.registrations.Delete(ctx, registration.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRegistrationNotFound
		}
		return WrapInternal("failed to delete registration", err)
	}

	s.logger.Info("student dropped course",
		zap.String("student", student.Username),
		zap.String("course_id", courseID.String()))
	return nil
}

// ListMine returns the calling student's registrations
func (s *RegistrationService) ListMine(ctx context.Context) ([]*models.Registration, error) {
	student, err := requireUserWithRole(ctx, s.users, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	registrations, err := s.registrations.GetByStudentID(ctx, student.ID)
	if err != nil {
		return nil, WrapInternal("failed to list registrations", err)
	}
	return registrations, nil
}

// Roster returns the registrations for a course owned by the calling
// teacher. Existence is checked before ownership.
func (s *RegistrationService) Roster(ctx context.Context, courseID uuid.UUID) ([]*models.Registration, error) {
	teacher, err := requireUserWithRole(ctx, s.users, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, WrapInternal("failed to load course", err)
	}
	if err := RequireOwner(course, teacher); err != nil {
		return nil, err
	}

	registrations, err := s.registrations.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, WrapInternal("failed to list course registrations", err)
	}
	return registrations, nil
}
