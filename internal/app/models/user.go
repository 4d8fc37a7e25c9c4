package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email     string     `json:"email" db:"email" example:"user@university.edu"`           // User's email address
	Password  string     `json:"-" db:"hashed_password"`                                   // User's hashed password (excluded from JSON)
	FirstName string     `json:"firstName" db:"first_name" example:"John"`                 // User's first name
	LastName  string     `json:"lastName" db:"last_name" example:"Doe"`                    // User's last name
	Phone     *string    `json:"phone,omitempty" db:"phone" example:"+15551234567"`        // User's phone number (nullable)
	Role      RoleType   `json:"role" db:"role" example:"student"`                         // User's role (admin, student or instructor)
	IsActive  bool       `json:"isActive" db:"is_active" example:"true"`                   // Whether the user account is active
	CreatedAt time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at"`                      // Timestamp when the user was last updated (nullable)
}
