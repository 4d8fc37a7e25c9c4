package models

import "time"

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID             int64     `json:"id" db:"id" example:"1"`                           // Unique identifier for the instructor record
	UserID         int64     `json:"userId" db:"user_id" example:"5"`                  // ID of the associated user account
	EmployeeID     string    `json:"employeeId" db:"employee_id" example:"E1001"`      // Externally assigned employee number
	Department     string    `json:"department" db:"department" example:"Mathematics"` // Department the instructor belongs to
	HireDate       time.Time `json:"hireDate" db:"hire_date"`                          // Date the instructor was hired
	Salary         *float64  `json:"salary,omitempty" db:"salary"`                     // Salary (nullable)
	OfficeLocation *string   `json:"officeLocation,omitempty" db:"office_location"`    // Office location (nullable)

	// Relations (populated when needed)
	User *User `json:"user,omitempty"` // Associated user information
}
