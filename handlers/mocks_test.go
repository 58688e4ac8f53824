package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/services"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	args := m.Called(ctx, username, password, role)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*services.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if result := args.Get(0); result != nil {
		return result.(*services.LoginResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAccountResolver struct {
	mock.Mock
}

func (m *MockAccountResolver) CurrentUser(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) ListAll(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	if courses := args.Get(0); courses != nil {
		return courses.([]*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseService) GetByID(ctx context.Context, courseID uuid.UUID) (*models.Course, error) {
	args := m.Called(ctx, courseID)
	if course := args.Get(0); course != nil {
		return course.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseService) ListMine(ctx context.Context) ([]*models.Course, error) {
	args := m.Called(ctx)
	if courses := args.Get(0); courses != nil {
		return courses.([]*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseService) Create(ctx context.Context, courseNo, courseName string) (*models.Course, error) {
	args := m.Called(ctx, courseNo, courseName)
	if course := args.Get(0); course != nil {
		return course.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseService) Update(ctx context.Context, courseID uuid.UUID, courseNo, courseName string) (*models.Course, error) {
	args := m.Called(ctx, courseID, courseNo, courseName)
	if course := args.Get(0); course != nil {
		return course.(*models.Course), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseService) Delete(ctx context.Context, courseID uuid.UUID) error {
	args := m.Called(ctx, courseID)
	return args.Error(0)
}

type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Enroll(ctx context.Context, courseID uuid.UUID) (*models.Registration, error) {
	args := m.Called(ctx, courseID)
	if registration := args.Get(0); registration != nil {
		return registration.(*models.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) Drop(ctx context.Context, courseID uuid.UUID) error {
	args := m.Called(ctx, courseID)
	return args.Error(0)
}

func (m *MockRegistrationService) ListMine(ctx context.Context) ([]*models.Registration, error) {
	args := m.Called(ctx)
	if registrations := args.Get(0); registrations != nil {
		return registrations.([]*models.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRegistrationService) Roster(ctx context.Context, courseID uuid.UUID) ([]*models.Registration, error) {
	args := m.Called(ctx, courseID)
	if registrations := args.Get(0); registrations != nil {
		return registrations.([]*models.Registration), args.Error(1)
	}
	return nil, args.Error(1)
}
