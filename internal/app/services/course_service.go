package services

import (
	"context"

	authz "github.com/izeinnn/university-management-system/internal/app/auth"
	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

// DefaultMaxStudents is the capacity assigned when a course is created
// without one.
const DefaultMaxStudents = 30

// CourseStore is the course persistence surface the service needs.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, skip, limit int) ([]*models.Course, error)
	Update(ctx context.Context, id int64, upd *dto.UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

// InstructorLookup loads instructor rows referenced by course requests.
type InstructorLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
}

// CourseEnrollmentLister lists the enrollments of one course.
type CourseEnrollmentLister interface {
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Enrollment, error)
}

// CourseService handles course operations
type CourseService struct {
	courses     CourseStore
	instructors InstructorLookup
	enrollments CourseEnrollmentLister
}

// NewCourseService creates a new CourseService
func NewCourseService(courses CourseStore, instructors InstructorLookup, enrollments CourseEnrollmentLister) *CourseService {
	return &CourseService{courses: courses, instructors: instructors, enrollments: enrollments}
}

// Create creates a course assigned to an existing instructor.
func (s *CourseService) Create(ctx context.Context, principal *authz.Principal, req *dto.CreateCourseRequest) (*models.Course, error) {
	if _, err := s.instructors.GetByID(ctx, req.InstructorID); err != nil {
		return nil, err
	}

	if err := authz.CanCreateCourse(principal); err != nil {
		return nil, err
	}

	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status must be one of active, inactive, completed")
	}
	if req.MaxStudents < 0 {
		return nil, apperrors.NewValidationError("max_students must be positive")
	}

	course := &models.Course{
		CourseCode:   req.CourseCode,
		Title:        req.Title,
		Description:  req.Description,
		Credits:      req.Credits,
		InstructorID: req.InstructorID,
		MaxStudents:  req.MaxStudents,
		Status:       models.CourseActive,
	}
	if course.MaxStudents == 0 {
		course.MaxStudents = DefaultMaxStudents
	}
	if req.Status != nil {
		course.Status = *req.Status
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Get retrieves a course by ID. Visible to any authenticated user.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// List retrieves courses with pagination. Visible to any authenticated user.
func (s *CourseService) List(ctx context.Context, skip, limit int) ([]*models.Course, error) {
	return s.courses.List(ctx, skip, limit)
}

// Update applies a partial update to a course.
func (s *CourseService) Update(ctx context.Context, principal *authz.Principal, id int64, upd *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanUpdateCourse(principal, course); err != nil {
		return nil, err
	}

	if upd.InstructorID != nil {
		if _, err := s.instructors.GetByID(ctx, *upd.InstructorID); err != nil {
			return nil, err
		}
	}
	if upd.Status != nil && !upd.Status.IsValid() {
		return nil, apperrors.NewValidationError("status must be one of active, inactive, completed")
	}
	if upd.Credits != nil && *upd.Credits < 1 {
		return nil, apperrors.NewValidationError("credits must be positive")
	}
	if upd.MaxStudents != nil && *upd.MaxStudents < 1 {
		return nil, apperrors.NewValidationError("max_students must be positive")
	}
	if upd.IsEmpty() {
		return course, nil
	}
	return s.courses.Update(ctx, id, upd)
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, principal *authz.Principal, id int64) error {
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		return err
	}
	if err := authz.CanDeleteCourse(principal); err != nil {
		return err
	}
	return s.courses.Delete(ctx, id)
}

// ListEnrollments retrieves all enrollments of a course.
func (s *CourseService) ListEnrollments(ctx context.Context, principal *authz.Principal, id int64) ([]*models.Enrollment, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanViewCourseEnrollments(principal, course); err != nil {
		return nil, err
	}
	return s.enrollments.ListByCourse(ctx, course.ID)
}
