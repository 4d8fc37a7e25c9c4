package dto

import (
	"time"

	"github.com/izeinnn/university-management-system/internal/app/models"
)

// CreateStudentRequest represents the payload for creating a student profile
type CreateStudentRequest struct {
	UserID           int64          `json:"user_id" binding:"required"`
	StudentID        string         `json:"student_id" binding:"required"`
	DateOfBirth      *time.Time     `json:"date_of_birth"`
	Gender           *models.Gender `json:"gender"`
	Address          *string        `json:"address"`
	EmergencyContact *string        `json:"emergency_contact"`
}

// UpdateStudentRequest represents a partial student update.
// Only non-nil fields are applied.
type UpdateStudentRequest struct {
	DateOfBirth      *time.Time     `json:"date_of_birth"`
	Gender           *models.Gender `json:"gender"`
	Address          *string        `json:"address"`
	EmergencyContact *string        `json:"emergency_contact"`
}

// IsEmpty reports whether the update carries no fields.
func (r *UpdateStudentRequest) IsEmpty() bool {
	return r.DateOfBirth == nil && r.Gender == nil && r.Address == nil && r.EmergencyContact == nil
}

// StudentResponse represents a student profile in API responses
type StudentResponse struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	StudentID        string         `json:"student_id"`
	DateOfBirth      *time.Time     `json:"date_of_birth,omitempty"`
	Gender           *models.Gender `json:"gender,omitempty"`
	Address          *string        `json:"address,omitempty"`
	EmergencyContact *string        `json:"emergency_contact,omitempty"`
	EnrollmentDate   time.Time      `json:"enrollment_date"`
}

// NewStudentResponse builds a StudentResponse from a student model.
func NewStudentResponse(student *models.Student) *StudentResponse {
	if student == nil {
		return nil
	}
	return &StudentResponse{
		ID:               student.ID,
		UserID:           student.UserID,
		StudentID:        student.StudentID,
		DateOfBirth:      student.DateOfBirth,
		Gender:           student.Gender,
		Address:          student.Address,
		EmergencyContact: student.EmergencyContact,
		EnrollmentDate:   student.EnrollmentDate,
	}
}

// NewStudentListResponse builds a list of student responses.
func NewStudentListResponse(students []*models.Student) []*StudentResponse {
	responses := make([]*StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}
	return responses
}
