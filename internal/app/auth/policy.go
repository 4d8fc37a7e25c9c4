package auth

import (
	"errors"

	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrStudentNotFound) ||
		errors.Is(err, apperrors.ErrInstructorNotFound)
}

// CanCreateStudent allows admins to create any student profile and users to
// create their own.
func CanCreateStudent(p *Principal, forUserID int64) error {
	if p.IsAdmin() || p.User.ID == forUserID {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanListStudents allows admins and instructors to browse students.
func CanListStudents(p *Principal) error {
	if p.IsAdmin() || p.IsInstructor() {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanViewStudent allows admins, instructors and the profile owner.
func CanViewStudent(p *Principal, student *models.Student) error {
	if p.IsAdmin() || p.IsInstructor() || p.OwnsStudent(student.ID) {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanUpdateStudent allows admins and the profile owner.
func CanUpdateStudent(p *Principal, student *models.Student) error {
	if p.IsAdmin() || p.OwnsStudent(student.ID) {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanDeleteStudent allows only admins.
func CanDeleteStudent(p *Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanCreateInstructor allows only admins.
func CanCreateInstructor(p *Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanUpdateInstructor allows admins and the profile owner.
func CanUpdateInstructor(p *Principal, instructor *models.Instructor) error {
	if p.IsAdmin() || p.OwnsInstructor(instructor.ID) {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanDeleteInstructor allows only admins.
func CanDeleteInstructor(p *Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanCreateCourse allows only admins.
func CanCreateCourse(p *Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanUpdateCourse allows admins and the teaching instructor.
func CanUpdateCourse(p *Principal, course *models.Course) error {
	if p.IsAdmin() || p.OwnsCourse(course) {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanDeleteCourse allows only admins.
func CanDeleteCourse(p *Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanViewCourseEnrollments allows admins and the teaching instructor.
func CanViewCourseEnrollments(p *Principal, course *models.Course) error {
	if p.IsAdmin() || p.OwnsCourse(course) {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanCreateEnrollment allows admins, the enrolling student and the teaching
// instructor.
func CanCreateEnrollment(p *Principal, studentID int64, course *models.Course) error {
	if p.IsAdmin() || p.OwnsStudent(studentID) || p.OwnsCourse(course) {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanViewEnrollment allows admins, the enrolled student and the teaching
// instructor. The enrollment must carry its course relation.
func CanViewEnrollment(p *Principal, enrollment *models.Enrollment) error {
	if p.IsAdmin() || p.OwnsStudent(enrollment.StudentID) || p.OwnsCourse(enrollment.Course) {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanUpdateEnrollment allows admins and the teaching instructor to change
// anything, and the enrolled student only to drop.
func CanUpdateEnrollment(p *Principal, enrollment *models.Enrollment, upd *dto.UpdateEnrollmentRequest) error {
	if p.IsAdmin() || p.OwnsCourse(enrollment.Course) {
		return nil
	}
	if p.OwnsStudent(enrollment.StudentID) {
		if upd.Grade != nil || upd.Status == nil || *upd.Status != models.EnrollmentDropped {
			return apperrors.ErrStudentsDropOnly
		}
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanDeleteEnrollment allows only admins.
func CanDeleteEnrollment(p *Principal) error {
	if p.IsAdmin() {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

// CanSeeEnrollmentRow reports whether a listed enrollment is visible to the
// principal. Admins see all rows, students their own, instructors those of
// their courses.
func CanSeeEnrollmentRow(p *Principal, enrollment *models.Enrollment) bool {
	return p.IsAdmin() || p.OwnsStudent(enrollment.StudentID) || p.OwnsCourse(enrollment.Course)
}
