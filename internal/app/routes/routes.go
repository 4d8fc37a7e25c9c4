package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/izeinnn/university-management-system/internal/app/controllers"
	"github.com/izeinnn/university-management-system/internal/config"
)

// SetupRouter builds the gin engine with CORS, the public auth endpoints and
// the token-protected resource endpoints.
func SetupRouter(cfg *config.Config, ctrls *controllers.Controllers, authMiddleware gin.HandlerFunc, pool *pgxpool.Pool) *gin.Engine {
	mode := gin.DebugMode
	if cfg.Server.Mode == "production" || cfg.Server.Mode == "release" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthHandler(pool))

	auth := router.Group("/auth")
	{
		auth.POST("/register", ctrls.AuthController.Register)
		auth.POST("/login", ctrls.AuthController.Login)
		auth.GET("/me", authMiddleware, ctrls.AuthController.Me)
	}

	students := router.Group("/students", authMiddleware)
	{
		students.POST("", ctrls.StudentController.Create)
		students.GET("", ctrls.StudentController.List)
		students.GET("/:id", ctrls.StudentController.Get)
		students.PUT("/:id", ctrls.StudentController.Update)
		students.DELETE("/:id", ctrls.StudentController.Delete)
		students.GET("/:id/enrollments", ctrls.StudentController.ListEnrollments)
	}

	instructors := router.Group("/instructors", authMiddleware)
	{
		instructors.POST("", ctrls.InstructorController.Create)
		instructors.GET("", ctrls.InstructorController.List)
		instructors.GET("/:id", ctrls.InstructorController.Get)
		instructors.PUT("/:id", ctrls.InstructorController.Update)
		instructors.DELETE("/:id", ctrls.InstructorController.Delete)
		instructors.GET("/:id/courses", ctrls.InstructorController.ListCourses)
	}

	courses := router.Group("/courses", authMiddleware)
	{
		courses.POST("", ctrls.CourseController.Create)
		courses.GET("", ctrls.CourseController.List)
		courses.GET("/:id", ctrls.CourseController.Get)
		courses.PUT("/:id", ctrls.CourseController.Update)
		courses.DELETE("/:id", ctrls.CourseController.Delete)
		courses.GET("/:id/enrollments", ctrls.CourseController.ListEnrollments)
	}

	enrollments := router.Group("/enrollments", authMiddleware)
	{
		enrollments.POST("", ctrls.EnrollmentController.Create)
		enrollments.GET("", ctrls.EnrollmentController.List)
		enrollments.GET("/:id", ctrls.EnrollmentController.Get)
		enrollments.PUT("/:id", ctrls.EnrollmentController.Update)
		enrollments.DELETE("/:id", ctrls.EnrollmentController.Delete)
	}

	return router
}

func healthHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
