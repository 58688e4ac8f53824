package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/upb/course-registry/models"
	"github.com/upb/course-registry/repositories"
	"go.uber.org/zap"
)

// CourseRepository implements the repositories.CourseRepository interface
type CourseRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *DB, logger *zap.Logger) repositories.CourseRepository {
	return &CourseRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (id, course_no, course_name, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	executor := GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		course.ID,
		course.CourseNo,
		course.CourseName,
		course.TeacherID,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		return translateError("create course", err)
	}

	r.logger.Debug("course created",
		zap.String("id", course.ID.String()),
		zap.String("course_no", course.CourseNo))
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `
		SELECT id, course_no, course_name, teacher_id, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	executor := GetExecutor(ctx, r.db)
	course := &models.Course{}

	err := executor.QueryRowContext(ctx, query, id).Scan(
		&course.ID,
		&course.CourseNo,
		&course.CourseName,
		&course.TeacherID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		return nil, translateError("get course", err)
	}

	return course, nil
}

// GetByCourseNo retrieves a course by its number
func (r *CourseRepository) GetByCourseNo(ctx context.Context, courseNo string) (*models.Course, error) {
	query := `
		SELECT id, course_no, course_name, teacher_id, created_at, updated_at
		FROM courses
		WHERE course_no = $1
	`

	executor := GetExecutor(ctx, r.db)
	course := &models.Course{}

	err := executor.QueryRowContext(ctx, query, courseNo).Scan(
		&course.ID,
		&course.CourseNo,
		&course.CourseName,
		&course.TeacherID,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		return nil, translateError("get course by number", err)
	}

	return course, nil
}

// GetAll retrieves every course ordered by course number
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, course_no, course_name, teacher_id, created_at, updated_at
		FROM courses
		ORDER BY course_no
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, translateError("list courses", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetByTeacherID retrieves the courses owned by a teacher
func (r *CourseRepository) GetByTeacherID(ctx context.Context, teacherID uuid.UUID) ([]*models.Course, error) {
	query := `
		SELECT id, course_no, course_name, teacher_id, created_at, updated_at
		FROM courses
		WHERE teacher_id = $1
		ORDER BY course_no
	`

	executor := GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, teacherID)
	if err != nil {
		return nil, translateError("list teacher courses", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Update updates a course's number and name. TeacherID is deliberately not
// part of the statement: ownership is immutable after creation.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET course_no = $2,
		    course_name = $3,
		    updated_at = $4
		WHERE id = $1
	`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query,
		course.ID,
		course.CourseNo,
		course.CourseName,
		course.UpdatedAt,
	)

	if err != nil {
		return translateError("update course", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return translateError("update course", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("course updated", zap.String("id", course.ID.String()))
	return nil
}

// Delete removes a course; registrations cascade at the schema level
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM courses WHERE id = $1`

	executor := GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return translateError("delete course", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return translateError("delete course", err)
	}
	if rowsAffected == 0 {
		return repositories.ErrNotFound
	}

	r.logger.Debug("course deleted", zap.String("id", id.String()))
	return nil
}

// scanCourses reads course rows into a slice
func scanCourses(rows *sql.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		err := rows.Scan(
			&course.ID,
			&course.CourseNo,
			&course.CourseName,
			&course.TeacherID,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			return nil, translateError("scan course", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, translateError("iterate courses", err)
	}

	return courses, nil
}
