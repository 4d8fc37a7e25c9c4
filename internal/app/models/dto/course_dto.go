package dto

import (
	"time"

	"github.com/izeinnn/university-management-system/internal/app/models"
)

// CreateCourseRequest represents the payload for creating a course
type CreateCourseRequest struct {
	CourseCode   string               `json:"course_code" binding:"required"`
	Title        string               `json:"title" binding:"required"`
	Description  *string              `json:"description"`
	Credits      int                  `json:"credits" binding:"required,min=1"`
	InstructorID int64                `json:"instructor_id" binding:"required"`
	MaxStudents  int                  `json:"max_students"`
	Status       *models.CourseStatus `json:"status"`
}

// UpdateCourseRequest represents a partial course update.
// Only non-nil fields are applied.
type UpdateCourseRequest struct {
	Title        *string              `json:"title"`
	Description  *string              `json:"description"`
	Credits      *int                 `json:"credits"`
	InstructorID *int64               `json:"instructor_id"`
	MaxStudents  *int                 `json:"max_students"`
	Status       *models.CourseStatus `json:"status"`
}

// IsEmpty reports whether the update carries no fields.
func (r *UpdateCourseRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Credits == nil &&
		r.InstructorID == nil && r.MaxStudents == nil && r.Status == nil
}

// CourseResponse represents a course in API responses
type CourseResponse struct {
	ID            int64               `json:"id"`
	CourseCode    string              `json:"course_code"`
	Title         string              `json:"title"`
	Description   *string             `json:"description,omitempty"`
	Credits       int                 `json:"credits"`
	InstructorID  int64               `json:"instructor_id"`
	MaxStudents   int                 `json:"max_students"`
	Status        models.CourseStatus `json:"status"`
	EnrolledCount int64               `json:"enrolled_count"`
	CreatedAt     time.Time           `json:"created_at"`
}

// NewCourseResponse builds a CourseResponse from a course model.
func NewCourseResponse(course *models.Course) *CourseResponse {
	if course == nil {
		return nil
	}
	return &CourseResponse{
		ID:            course.ID,
		CourseCode:    course.CourseCode,
		Title:         course.Title,
		Description:   course.Description,
		Credits:       course.Credits,
		InstructorID:  course.InstructorID,
		MaxStudents:   course.MaxStudents,
		Status:        course.Status,
		EnrolledCount: course.EnrolledCount,
		CreatedAt:     course.CreatedAt,
	}
}

// NewCourseListResponse builds a list of course responses.
func NewCourseListResponse(courses []*models.Course) []*CourseResponse {
	responses := make([]*CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}
	return responses
}
