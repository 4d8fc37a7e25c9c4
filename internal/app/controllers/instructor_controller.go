package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izeinnn/university-management-system/internal/app/models/dto"
	"github.com/izeinnn/university-management-system/internal/app/services"
	"github.com/izeinnn/university-management-system/internal/middleware"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
	"github.com/izeinnn/university-management-system/internal/pkg/helpers"
)

// InstructorController handles instructor profile endpoints
type InstructorController struct {
	instructorService *services.InstructorService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(instructorService *services.InstructorService) *InstructorController {
	return &InstructorController{instructorService: instructorService}
}

// Create godoc
// @Summary Create an instructor profile
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInstructorRequest true "Instructor payload"
// @Success 201 {object} dto.APIResponse{data=dto.InstructorResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors [post]
func (ctrl *InstructorController) Create(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	instructor, err := ctrl.instructorService.Create(c.Request.Context(), principal, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewInstructorResponse(instructor)))
}

// List godoc
// @Summary List instructors
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse}
// @Router /instructors [get]
func (ctrl *InstructorController) List(c *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(c)
	instructors, err := ctrl.instructorService.List(c.Request.Context(), skip, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewInstructorListResponse(instructors)))
}

// Get godoc
// @Summary Get an instructor by ID
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id} [get]
func (ctrl *InstructorController) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	instructor, err := ctrl.instructorService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewInstructorResponse(instructor)))
}

// Update godoc
// @Summary Update an instructor profile
// @Description Applies only the fields present in the payload.
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Param request body dto.UpdateInstructorRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id} [put]
func (ctrl *InstructorController) Update(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	instructor, err := ctrl.instructorService.Update(c.Request.Context(), principal, id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewInstructorResponse(instructor)))
}

// Delete godoc
// @Summary Delete an instructor profile
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id} [delete]
func (ctrl *InstructorController) Delete(c *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.instructorService.Delete(c.Request.Context(), principal, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "Instructor deleted successfully"}))
}

// ListCourses godoc
// @Summary List the courses taught by an instructor
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Instructor ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id}/courses [get]
func (ctrl *InstructorController) ListCourses(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	courses, err := ctrl.instructorService.ListCourses(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewCourseListResponse(courses)))
}
