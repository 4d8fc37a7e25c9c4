package services

import (
	"context"

	authz "github.com/izeinnn/university-management-system/internal/app/auth"
	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

// InstructorStore is the instructor persistence surface the service needs.
type InstructorStore interface {
	Create(ctx context.Context, instructor *models.Instructor) error
	GetByID(ctx context.Context, id int64) (*models.Instructor, error)
	List(ctx context.Context, skip, limit int) ([]*models.Instructor, error)
	Update(ctx context.Context, id int64, upd *dto.UpdateInstructorRequest) (*models.Instructor, error)
	Delete(ctx context.Context, id int64) error
}

// InstructorCourseLister lists the courses taught by one instructor.
type InstructorCourseLister interface {
	ListByInstructor(ctx context.Context, instructorID int64) ([]*models.Course, error)
}

// InstructorService handles instructor profile operations
type InstructorService struct {
	instructors InstructorStore
	users       UserLookup
	courses     InstructorCourseLister
}

// NewInstructorService creates a new InstructorService
func NewInstructorService(instructors InstructorStore, users UserLookup, courses InstructorCourseLister) *InstructorService {
	return &InstructorService{instructors: instructors, users: users, courses: courses}
}

// Create creates an instructor profile for an existing user.
func (s *InstructorService) Create(ctx context.Context, principal *authz.Principal, req *dto.CreateInstructorRequest) (*models.Instructor, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanCreateInstructor(principal); err != nil {
		return nil, err
	}

	if user.Role != models.RoleInstructor {
		return nil, apperrors.ErrRoleMismatch
	}

	instructor := &models.Instructor{
		UserID:         req.UserID,
		EmployeeID:     req.EmployeeID,
		Department:     req.Department,
		Salary:         req.Salary,
		OfficeLocation: req.OfficeLocation,
	}
	if err := s.instructors.Create(ctx, instructor); err != nil {
		return nil, err
	}
	return instructor, nil
}

// Get retrieves an instructor profile by ID. Visible to any authenticated user.
func (s *InstructorService) Get(ctx context.Context, id int64) (*models.Instructor, error) {
	return s.instructors.GetByID(ctx, id)
}

// List retrieves instructors with pagination. Visible to any authenticated user.
func (s *InstructorService) List(ctx context.Context, skip, limit int) ([]*models.Instructor, error) {
	return s.instructors.List(ctx, skip, limit)
}

// Update applies a partial update to an instructor profile.
func (s *InstructorService) Update(ctx context.Context, principal *authz.Principal, id int64, upd *dto.UpdateInstructorRequest) (*models.Instructor, error) {
	instructor, err := s.instructors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanUpdateInstructor(principal, instructor); err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return instructor, nil
	}
	return s.instructors.Update(ctx, id, upd)
}

// Delete removes an instructor profile.
func (s *InstructorService) Delete(ctx context.Context, principal *authz.Principal, id int64) error {
	if _, err := s.instructors.GetByID(ctx, id); err != nil {
		return err
	}
	if err := authz.CanDeleteInstructor(principal); err != nil {
		return err
	}
	return s.instructors.Delete(ctx, id)
}

// ListCourses retrieves the courses taught by an instructor. Visible to any
// authenticated user.
func (s *InstructorService) ListCourses(ctx context.Context, id int64) ([]*models.Course, error) {
	instructor, err := s.instructors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.courses.ListByInstructor(ctx, instructor.ID)
}
