package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration links one student to one course. The pair is unique:
// the database enforces UNIQUE(student_id, course_id) so concurrent
// enrollments cannot produce duplicates.
type Registration struct {
	ID        uuid.UUID `json:"id" db:"id"`
	StudentID uuid.UUID `json:"student_id" db:"student_id"`
	CourseID  uuid.UUID `json:"course_id" db:"course_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the Registration model
func (Registration) TableName() string {
	return "registrations"
}

// NewRegistration creates a new Registration instance
func NewRegistration(studentID, courseID uuid.UUID) *Registration {
	return &Registration{
		ID:        uuid.New(),
		StudentID: studentID,
		CourseID:  courseID,
		CreatedAt: time.Now(),
	}
}
