package services

import (
	"context"

	authz "github.com/izeinnn/university-management-system/internal/app/auth"
	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

// EnrollmentStore is the enrollment persistence surface the service needs.
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id int64) (*models.Enrollment, error)
	List(ctx context.Context, filter dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, error)
	Update(ctx context.Context, id int64, upd *dto.UpdateEnrollmentRequest) (*models.Enrollment, error)
	Delete(ctx context.Context, id int64) error
}

// StudentLookup loads student rows referenced by enrollment requests.
type StudentLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// CourseLookup loads course rows referenced by enrollment requests.
type CourseLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// EnrollmentService handles enrollment operations
type EnrollmentService struct {
	enrollments EnrollmentStore
	students    StudentLookup
	courses     CourseLookup
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(enrollments EnrollmentStore, students StudentLookup, courses CourseLookup) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, students: students, courses: courses}
}

// Create enrolls a student in a course. The capacity and duplicate checks run
// inside the store's transaction so concurrent requests cannot oversubscribe
// a course.
func (s *EnrollmentService) Create(ctx context.Context, principal *authz.Principal, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanCreateEnrollment(principal, student.ID, course); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: student.ID,
		CourseID:  course.ID,
		Status:    models.EnrollmentEnrolled,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	enrollment.Course = &models.Course{ID: course.ID, InstructorID: course.InstructorID}
	return enrollment, nil
}

// Get retrieves an enrollment by ID.
func (s *EnrollmentService) Get(ctx context.Context, principal *authz.Principal, id int64) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanViewEnrollment(principal, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// List retrieves enrollments, keeping only the rows the principal may see.
func (s *EnrollmentService) List(ctx context.Context, principal *authz.Principal, filter dto.EnrollmentFilter, skip, limit int) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollments.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.Enrollment, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if authz.CanSeeEnrollmentRow(principal, enrollment) {
			visible = append(visible, enrollment)
		}
	}
	return visible, nil
}

// Update applies a partial update to an enrollment.
func (s *EnrollmentService) Update(ctx context.Context, principal *authz.Principal, id int64, upd *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	enrollment, err := s.enrollments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanUpdateEnrollment(principal, enrollment, upd); err != nil {
		return nil, err
	}
	if upd.Status != nil && !upd.Status.IsValid() {
		return nil, apperrors.NewValidationError("status must be one of enrolled, completed, dropped, failed")
	}
	if upd.IsEmpty() {
		return enrollment, nil
	}
	return s.enrollments.Update(ctx, id, upd)
}

// Delete removes an enrollment record.
func (s *EnrollmentService) Delete(ctx context.Context, principal *authz.Principal, id int64) error {
	if _, err := s.enrollments.GetByID(ctx, id); err != nil {
		return err
	}
	if err := authz.CanDeleteEnrollment(principal); err != nil {
		return err
	}
	return s.enrollments.Delete(ctx, id)
}
