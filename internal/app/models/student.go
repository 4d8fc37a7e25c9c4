package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID               int64      `json:"id" db:"id" example:"1"`                         // Unique identifier for the student record
	UserID           int64      `json:"userId" db:"user_id" example:"5"`                // ID of the associated user account
	StudentID        string     `json:"studentId" db:"student_id" example:"S2024001"`   // Externally assigned student number
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`       // Date of birth (nullable)
	Gender           *Gender    `json:"gender,omitempty" db:"gender" example:"female"`  // Gender (nullable)
	Address          *string    `json:"address,omitempty" db:"address"`                 // Home address (nullable)
	EmergencyContact *string    `json:"emergencyContact,omitempty" db:"emergency_contact"` // Emergency contact (nullable)
	EnrollmentDate   time.Time  `json:"enrollmentDate" db:"enrollment_date"`            // Date the student enrolled at the university

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Associated user information
}
