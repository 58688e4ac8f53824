package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/repositories"
	"go.uber.org/zap"
)

// RegistrationRepository implements the repositories.RegistrationRepository interface
type RegistrationRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *DB, logger *zap.Logger) repositories.RegistrationRepository {
	return &RegistrationRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new registration. The UNIQUE(student_id, course_id)
// constraint makes concurrent duplicate enrollments fail here with
// repositories.ErrDuplicate rather than producing a second link.
func (r *RegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	query := `
		INSERT INTO registrations (id, student_id, course_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	executor := GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		registration.ID,
		registration.StudentID,
		registration.CourseID,
		registration.CreatedAt,
	)

	if err != nil {
		return translateError("create registration", err)
	}

	r.logger.Debug("registration created",
		zap.String("id", registration.ID.String()),
		zap.String("student_id", registration.StudentID.String()),
		zap.String("course_id", registration.CourseID.String()))
	return nil
}

// GetByStudentAndCourse retrieves a single registration link
func (r *RegistrationRepository) GetByStudentAndCourse(ctx context.Context, studentID, courseID uuid.UUID) (*models.Registration, error) {
	query := `
		SELECT id, student_id, course_id, created_at
		FROM registrations
		WHERE student_id = $1 AND course_id = $2
	`

	executor := GetExecutor(ctx, r.db)
	registration := &models.Registration{}

	err := executor.QueryRowContext(ctx, query, studentID, courseID).Scan(
		&registration.ID,
		&registration.StudentID,
		&registration.CourseID,
		&registration.CreatedAt,
	)

	if err != nil {
		return nil, translateError("get registration", err)
	}

	return registration, nil
}

// GetByStudentID retrieves all registrations of a student
func (r *RegistrationRepository) GetByStudentID(ctx context.Context, studentID uuid.UUID) ([]*models.Registration, error) {
	query := `
		SELECT id, student_id, course_id, created_at
		FROM registrations
		WHERE student_id = $1
		ORDER BY created_at
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, translateError("list student registrations", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		registration := &models.Registration{}
		err := rows.Scan(
			&registration.ID,
			&registration.StudentID,
			&registration.CourseID,
			&registration.CreatedAt,
		)
		if err != nil {
			return nil, translateError("scan registration", err)
		}
		registrations = append(registrations, registration)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("iterate registrations", err)
	}

	return registrations, nil
}

// GetByCourseID retrieves all registrations for a course
func (r *RegistrationRepository) GetByCourseID(ctx context.Context, courseID uuid.UUID) ([]*models.Registration, error) {
	query := `
		SELECT id, student_id, course_id, created_at
		FROM registrations
		WHERE course_id = $1
		ORDER BY created_at
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, translateError("list course registrations", err)
	}
	defer rows.Close()

	var registrations []*models.Registration
	for rows.Next() {
		registration := &models.Registration{}
		err := rows.Scan(
			&registration.ID,
			&registration.StudentID,
			&registration.CourseID,
			&registration.CreatedAt,
		)
		if err != nil {
			return nil, translateError("scan registration", err)
		}
		registrations = append(registrations, registration)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("iterate registrations", err)
	}

	return registrations, nil
}

// Delete removes a registration by ID
func (r *RegistrationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM registrations WHERE id = $1`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return translateError("delete registration", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return translateError("delete registration", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("registration deleted", zap.String("id", id.String()))
	return nil
}

// CountByCourseID returns the number of registrations for a course
func (r *RegistrationRepository) CountByCourseID(ctx context.Context, courseID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE course_id = $1`

	executor := GetExecutor(ctx, r.db)
	var count int
	if err := executor.QueryRowContext(ctx, query, courseID).Scan(&count); err != nil {
		return 0, translateError("count registrations", err)
	}

	return count, nil
}
