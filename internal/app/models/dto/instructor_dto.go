package dto

import (
	"time"

	"github.com/izeinnn/university-management-system/internal/app/models"
)

// CreateInstructorRequest represents the payload for creating an instructor profile
type CreateInstructorRequest struct {
	UserID         int64    `json:"user_id" binding:"required"`
	EmployeeID     string   `json:"employee_id" binding:"required"`
	Department     string   `json:"department" binding:"required"`
	Salary         *float64 `json:"salary"`
	OfficeLocation *string  `json:"office_location"`
}

// UpdateInstructorRequest represents a partial instructor update.
// Only non-nil fields are applied.
type UpdateInstructorRequest struct {
	Department     *string  `json:"department"`
	Salary         *float64 `json:"salary"`
	OfficeLocation *string  `json:"office_location"`
}

// IsEmpty reports whether the update carries no fields.
func (r *UpdateInstructorRequest) IsEmpty() bool {
	return r.Department == nil && r.Salary == nil && r.OfficeLocation == nil
}

// InstructorResponse represents an instructor profile in API responses
type InstructorResponse struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	EmployeeID     string    `json:"employee_id"`
	Department     string    `json:"department"`
	HireDate       time.Time `json:"hire_date"`
	Salary         *float64  `json:"salary,omitempty"`
	OfficeLocation *string   `json:"office_location,omitempty"`
}

// NewInstructorResponse builds an InstructorResponse from an instructor model.
func NewInstructorResponse(instructor *models.Instructor) *InstructorResponse {
	if instructor == nil {
		return nil
	}
	return &InstructorResponse{
		ID:             instructor.ID,
		UserID:         instructor.UserID,
		EmployeeID:     instructor.EmployeeID,
		Department:     instructor.Department,
		HireDate:       instructor.HireDate,
		Salary:         instructor.Salary,
		OfficeLocation: instructor.OfficeLocation,
	}
}

// NewInstructorListResponse builds a list of instructor responses.
func NewInstructorListResponse(instructors []*models.Instructor) []*InstructorResponse {
	responses := make([]*InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		responses = append(responses, NewInstructorResponse(instructor))
	}
	return responses
}
