package services

import (
	"github.com/izeinnn/university-management-system/internal/app/repositories"
	pkgauth "github.com/izeinnn/university-management-system/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	StudentService    *StudentService
	InstructorService *InstructorService
	CourseService     *CourseService
	EnrollmentService *EnrollmentService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *pkgauth.JWTService) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, jwtService),
		StudentService:    NewStudentService(repos.StudentRepository, repos.UserRepository, repos.EnrollmentRepository),
		InstructorService: NewInstructorService(repos.InstructorRepository, repos.UserRepository, repos.CourseRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.InstructorRepository, repos.EnrollmentRepository),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository),
	}
}
