package models

import "time"

// Course represents a course taught by an instructor.
type Course struct {
	ID           int64        `json:"id" db:"id"`
	CourseCode   string       `json:"courseCode" db:"course_code" example:"CS101"`
	Title        string       `json:"title" db:"title" example:"Introduction to Computer Science"`
	Description  *string      `json:"description,omitempty" db:"description"` // Nullable
	Credits      int          `json:"credits" db:"credits" example:"3"`
	InstructorID int64        `json:"instructorId" db:"instructor_id"`
	MaxStudents  int          `json:"maxStudents" db:"max_students" example:"30"`
	Status       CourseStatus `json:"status" db:"status" example:"active"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`

	// EnrolledCount is a read-time projection of active enrollments, never stored.
	EnrolledCount int64 `json:"enrolledCount" db:"-"`

	// Relations (populated when needed)
	Instructor *Instructor `json:"instructor,omitempty"`
}
