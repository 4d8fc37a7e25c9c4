package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin      RoleType = "admin"
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleInstructor:
		return true
	}
	return false
}

// Gender represents a student's gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid reports whether the gender is one of the known values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// CourseStatus represents the lifecycle state of a course
type CourseStatus string

const (
	CourseActive    CourseStatus = "active"
	CourseInactive  CourseStatus = "inactive"
	CourseCompleted CourseStatus = "completed"
)

// IsValid reports whether the course status is one of the known values.
func (s CourseStatus) IsValid() bool {
	switch s {
	case CourseActive, CourseInactive, CourseCompleted:
		return true
	}
	return false
}

// EnrollmentStatus represents the state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
	EnrollmentFailed    EnrollmentStatus = "failed"
)

// IsValid reports whether the enrollment status is one of the known values.
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentEnrolled, EnrollmentCompleted, EnrollmentDropped, EnrollmentFailed:
		return true
	}
	return false
}
