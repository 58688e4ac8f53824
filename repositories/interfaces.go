package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/upb/course-registry/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert or update violates a uniqueness
	// constraint. The postgres implementation maps write-time constraint
	// violations (pq code 23505) onto this error, so a lost race during a
	// concurrent insert surfaces exactly like a failed pre-check.
	ErrDuplicate = errors.New("duplicate record")
)

// TransactionManager manages database transactions
type TransactionManager interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) (Transaction, error)

	// InTransaction executes a function within a transaction
	// Automatically commits if function succeeds, rolls back on error
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx Transaction) error) error
}

// Transaction represents a database transaction
type Transaction interface {
	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Context returns the transaction context
	Context() context.Context
}

// UserRepository handles account data operations
type UserRepository interface {
	// Create inserts a new account; returns ErrDuplicate on username reuse
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByUsername retrieves an account by username
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// ExistsByUsername reports whether an account with the username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// CourseRepository handles course data operations
type CourseRepository interface {
	// Create inserts a new course; returns ErrDuplicate on course number reuse
	Create(ctx context.Context, course *models.Course) error

	// GetByID retrieves a course by ID
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)

	// GetByCourseNo retrieves a course by its number
	GetByCourseNo(ctx context.Context, courseNo string) (*models.Course, error)

	// GetAll retrieves every course ordered by course number
	GetAll(ctx context.Context) ([]*models.Course, error)

	// GetByTeacherID retrieves the courses owned by a teacher
	GetByTeacherID(ctx context.Context, teacherID uuid.UUID) ([]*models.Course, error)

	// Update updates a course's number and name; returns ErrDuplicate on
	// course number reuse and ErrNotFound when the course is gone
	Update(ctx context.Context, course *models.Course) error

	// Delete removes a course and, via cascade, its registrations
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegistrationRepository handles registration data operations
type RegistrationRepository interface {
	// Create inserts a new registration; returns ErrDuplicate when the
	// student is already registered for the course
	Create(ctx context.Context, registration *models.Registration) error

	// GetByStudentAndCourse retrieves a single registration link
	GetByStudentAndCourse(ctx context.Context, studentID, courseID uuid.UUID) (*models.Registration, error)

	// GetByStudentID retrieves all registrations of a student
	GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]*models.Registration, error)

	// GetByCourseID retrieves all registrations for a course
	GetByCourseID(ctx context.Context, courseID uuid.UUID) ([]*models.Registration, error)

	// Delete removes a registration by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCourseID returns the number of registrations for a course
	CountByCourseID(ctx context.Context, courseID uuid.UUID) (int, error)
}

// Repositories bundles all repository implementations
type Repositories struct {
	Users         UserRepository
	Courses       CourseRepository
	Registrations RegistrationRepository
}
