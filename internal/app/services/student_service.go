package services

import (
	"context"

	authz "github.com/izeinnn/university-management-system/internal/app/auth"
	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

// StudentStore is the student persistence surface the service needs.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, skip, limit int) ([]*models.Student, error)
	Update(ctx context.Context, id int64, upd *dto.UpdateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

// UserLookup loads user rows referenced by profile requests.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// StudentEnrollmentLister lists the enrollments of one student.
type StudentEnrollmentLister interface {
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error)
}

// StudentService handles student profile operations
type StudentService struct {
	students    StudentStore
	users       UserLookup
	enrollments StudentEnrollmentLister
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, users UserLookup, enrollments StudentEnrollmentLister) *StudentService {
	return &StudentService{students: students, users: users, enrollments: enrollments}
}

// Create creates a student profile for an existing user.
func (s *StudentService) Create(ctx context.Context, principal *authz.Principal, req *dto.CreateStudentRequest) (*models.Student, error) {
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := authz.CanCreateStudent(principal, req.UserID); err != nil {
		return nil, err
	}

	if user.Role != models.RoleStudent {
		return nil, apperrors.ErrRoleMismatch
	}
	if req.Gender != nil && !req.Gender.IsValid() {
		return nil, apperrors.NewValidationError("gender must be one of male, female, other")
	}

	student := &models.Student{
		UserID:           req.UserID,
		StudentID:        req.StudentID,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Get retrieves a student profile by ID.
func (s *StudentService) Get(ctx context.Context, principal *authz.Principal, id int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanViewStudent(principal, student); err != nil {
		return nil, err
	}
	return student, nil
}

// List retrieves students with pagination.
func (s *StudentService) List(ctx context.Context, principal *authz.Principal, skip, limit int) ([]*models.Student, error) {
	if err := authz.CanListStudents(principal); err != nil {
		return nil, err
	}
	return s.students.List(ctx, skip, limit)
}

// Update applies a partial update to a student profile.
func (s *StudentService) Update(ctx context.Context, principal *authz.Principal, id int64, upd *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanUpdateStudent(principal, student); err != nil {
		return nil, err
	}
	if upd.Gender != nil && !upd.Gender.IsValid() {
		return nil, apperrors.NewValidationError("gender must be one of male, female, other")
	}
	if upd.IsEmpty() {
		return student, nil
	}
	return s.students.Update(ctx, id, upd)
}

// Delete removes a student profile.
func (s *StudentService) Delete(ctx context.Context, principal *authz.Principal, id int64) error {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return err
	}
	if err := authz.CanDeleteStudent(principal); err != nil {
		return err
	}
	return s.students.Delete(ctx, id)
}

// ListEnrollments retrieves all enrollments of a student.
func (s *StudentService) ListEnrollments(ctx context.Context, principal *authz.Principal, id int64) ([]*models.Enrollment, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanViewStudent(principal, student); err != nil {
		return nil, err
	}
	return s.enrollments.ListByStudent(ctx, student.ID)
}
