package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/upb/course-registry/models"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockCourseRepository is a mock implementation of repositories.CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	args := m.Called(ctx, id)
	if course := args.Get(0); course != nil {
		return course.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) GetByCourseNo(ctx context.Context, courseNo string) (*models.Course, error) {
	args := m.Called(ctx, courseNo)
	if course := args.Get(0); course != nil {
		return course.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	if courses := args.Get(0); courses != nil {
		return courses.([]*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) GetByTeacherID(ctx context.Context, teacherID uuid.UUID) ([]*models.Course, error) {
	args := m.Called(ctx, teacherID)
	if courses := args.Get(0); courses != nil {
		return courses.([]*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRegistrationRepository is a mock implementation of repositories.RegistrationRepository
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockRegistrationRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID uuid.UUID) (*models.Registration, error) {
	args := m.Called(ctx, studentID, courseID)
	if registration := args.Get(0); registration != nil {
		return registration.(*models.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationRepository) GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]*models.Registration, error) {
	args := m.Called(ctx, studentID)
	if registrations := args.Get(0); registrations != nil {
		return registrations.([]*models.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationRepository) GetByCourseID(ctx context.Context, courseID uuid.UUID) ([]*models.Registration, error) {
	args := m.Called(ctx, courseID)
	if registrations := args.Get(0); registrations != nil {
		return registrations.([]*models.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRegistrationRepository) CountByCourseID(ctx context.Context, courseID uuid.UUID) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}
