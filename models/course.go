package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a catalog entry owned by exactly one teacher.
// The owning teacher is set at creation and never reassigned.
type Course struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CourseNo   string    `json:"course_no" db:"course_no"`
	CourseName string    `json:"course_name" db:"course_name"`
	TeacherID  uuid.UUID `json:"teacher_id" db:"teacher_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Course model
func (Course) TableName() string {
	return "courses"
}

// NewCourse creates a new Course instance owned by the given teacher
func NewCourse(courseNo, courseName string, teacherID uuid.UUID) *Course {
	now := time.Now()
	return &Course{
		ID:         uuid.New(),
		CourseNo:   courseNo,
		CourseName: courseName,
		TeacherID:  teacherID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsOwnedBy returns true if the course belongs to the given teacher
func (c *Course) IsOwnedBy(teacherID uuid.UUID) bool {
	return c.TeacherID == teacherID
}
