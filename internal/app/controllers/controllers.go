package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/izeinnn/university-management-system/internal/app/services"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	StudentController    *StudentController
	InstructorController *InstructorController
	CourseController     *CourseController
	EnrollmentController *EnrollmentController
}

// NewControllers initializes all controllers
func NewControllers(s *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(s.AuthService),
		StudentController:    NewStudentController(s.StudentService),
		InstructorController: NewInstructorController(s.InstructorService),
		CourseController:     NewCourseController(s.CourseService),
		EnrollmentController: NewEnrollmentController(s.EnrollmentService),
	}
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return id, nil
}
