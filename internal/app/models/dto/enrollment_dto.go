package dto

import (
	"time"

	"github.com/izeinnn/university-management-system/internal/app/models"
)

// CreateEnrollmentRequest represents the payload for enrolling a student in a course
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"student_id" binding:"required"`
	CourseID  int64 `json:"course_id" binding:"required"`
}

// UpdateEnrollmentRequest represents a partial enrollment update.
// Only non-nil fields are applied.
type UpdateEnrollmentRequest struct {
	Status *models.EnrollmentStatus `json:"status"`
	Grade  *string                  `json:"grade"`
}

// IsEmpty reports whether the update carries no fields.
func (r *UpdateEnrollmentRequest) IsEmpty() bool {
	return r.Status == nil && r.Grade == nil
}

// EnrollmentFilter narrows enrollment list queries.
type EnrollmentFilter struct {
	StudentID *int64
	CourseID  *int64
}

// EnrollmentResponse represents an enrollment in API responses
type EnrollmentResponse struct {
	ID             int64                   `json:"id"`
	StudentID      int64                   `json:"student_id"`
	CourseID       int64                   `json:"course_id"`
	EnrollmentDate time.Time               `json:"enrollment_date"`
	Status         models.EnrollmentStatus `json:"status"`
	Grade          *string                 `json:"grade,omitempty"`
}

// NewEnrollmentResponse builds an EnrollmentResponse from an enrollment model.
func NewEnrollmentResponse(enrollment *models.Enrollment) *EnrollmentResponse {
	if enrollment == nil {
		return nil
	}
	return &EnrollmentResponse{
		ID:             enrollment.ID,
		StudentID:      enrollment.StudentID,
		CourseID:       enrollment.CourseID,
		EnrollmentDate: enrollment.EnrollmentDate,
		Status:         enrollment.Status,
		Grade:          enrollment.Grade,
	}
}

// NewEnrollmentListResponse builds a list of enrollment responses.
func NewEnrollmentListResponse(enrollments []*models.Enrollment) []*EnrollmentResponse {
	responses := make([]*EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, NewEnrollmentResponse(enrollment))
	}
	return responses
}
