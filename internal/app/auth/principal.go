package auth

import (
	"context"

	"github.com/izeinnn/university-management-system/internal/app/models"
)

// Principal is the authorization context of one request: the authenticated
// user plus its profile row, resolved once and passed to every decision.
type Principal struct {
	User       *models.User
	Student    *models.Student
	Instructor *models.Instructor
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p.User != nil && p.User.Role == models.RoleAdmin
}

// IsInstructor reports whether the principal holds the instructor role.
func (p *Principal) IsInstructor() bool {
	return p.User != nil && p.User.Role == models.RoleInstructor
}

// OwnsStudent reports whether the given student profile belongs to the principal.
func (p *Principal) OwnsStudent(studentID int64) bool {
	return p.Student != nil && p.Student.ID == studentID
}

// OwnsInstructor reports whether the given instructor profile belongs to the principal.
func (p *Principal) OwnsInstructor(instructorID int64) bool {
	return p.Instructor != nil && p.Instructor.ID == instructorID
}

// OwnsCourse reports whether the principal teaches the given course.
func (p *Principal) OwnsCourse(course *models.Course) bool {
	return course != nil && p.Instructor != nil && course.InstructorID == p.Instructor.ID
}

// StudentLookup loads a student profile by its owning user.
type StudentLookup interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
}

// InstructorLookup loads an instructor profile by its owning user.
type InstructorLookup interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Instructor, error)
}

// Resolver builds principals by attaching the profile row matching the
// user's role. A missing profile is not an error: a freshly registered
// student has no profile until one is created for them.
type Resolver struct {
	students    StudentLookup
	instructors InstructorLookup
}

// NewResolver creates a new Resolver.
func NewResolver(students StudentLookup, instructors InstructorLookup) *Resolver {
	return &Resolver{students: students, instructors: instructors}
}

// Resolve loads the principal for an authenticated user.
func (r *Resolver) Resolve(ctx context.Context, user *models.User) (*Principal, error) {
	principal := &Principal{User: user}

	switch user.Role {
	case models.RoleStudent:
		student, err := r.students.GetByUserID(ctx, user.ID)
		if err == nil {
			principal.Student = student
		} else if !isNotFound(err) {
			return nil, err
		}
	case models.RoleInstructor:
		instructor, err := r.instructors.GetByUserID(ctx, user.ID)
		if err == nil {
			principal.Instructor = instructor
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	return principal, nil
}
