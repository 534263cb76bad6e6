package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/app/services"
	"github.com/yigit/enrollhub/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// CreateEnrollment enrolls a user into a course
// @Summary Enroll a user into a course
// @Description Enrolls a user into a course, subject to the course capacity and a single enrollment per course/user pair
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateEnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course or user not found"
// @Failure 409 {object} dto.ErrorResponse "User is already enrolled in this course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Failure 503 {object} dto.ErrorResponse "Course has reached its student limit"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}
	if respondFieldErrors(ctx, req.Validate()) {
		return
	}

	enrollment, err := c.enrollmentService.CreateEnrollment(ctx, req.CourseID, req.UserID, req.Rating, req.JoinAt, req.EndAt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewEnrollmentResponse(enrollment),
		Timestamp: time.Now(),
	})
}

// GetEnrollmentByID retrieves an enrollment by ID
// @Summary Get enrollment details
// @Description Retrieves detailed information about a specific enrollment by its ID
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID format"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollmentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Enrollment")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollmentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEnrollmentResponse(enrollment),
		Timestamp: time.Now(),
	})
}

// GetAllEnrollments retrieves all enrollments
// @Summary Get all enrollments
// @Description Retrieves a list of all enrollments
// @Tags enrollments
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrollmentResponse} "Enrollments retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	enrollments, err := c.enrollmentService.GetAllEnrollments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEnrollmentResponseList(enrollments),
		Timestamp: time.Now(),
	})
}

// UpdateEnrollment updates an existing enrollment
// @Summary Update an enrollment
// @Description Updates an existing enrollment with new information
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID" Format(uuid)
// @Param request body dto.UpdateEnrollmentRequest true "Updated enrollment information"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 409 {object} dto.ErrorResponse "Another enrollment already exists for this course/user pair"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Enrollment")
	if !ok {
		return
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}
	if respondFieldErrors(ctx, req.Validate()) {
		return
	}

	enrollment, err := c.enrollmentService.UpdateEnrollment(ctx, id, req.CourseID, req.UserID, req.Rating, req.JoinAt, req.EndAt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEnrollmentResponse(enrollment),
		Timestamp: time.Now(),
	})
}

// CloseEnrollment closes a single enrollment with a final rating
// @Summary Close an enrollment
// @Description Records the final rating, stamps the end date and marks the enrollment as no longer active
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID" Format(uuid)
// @Param request body dto.CloseEnrollmentRequest true "Final rating"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment closed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id}/close [put]
func (c *EnrollmentController) CloseEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Enrollment")
	if !ok {
		return
	}

	var req dto.CloseEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}
	if respondFieldErrors(ctx, req.Validate()) {
		return
	}

	enrollment, err := c.enrollmentService.CloseEnrollment(ctx, id, req.Rating)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEnrollmentResponse(enrollment),
		Timestamp: time.Now(),
	})
}

// DeleteEnrollment deletes an enrollment
// @Summary Delete an enrollment
// @Description Deletes an enrollment by its ID and returns the removed record
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse} "Enrollment deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid enrollment ID"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Enrollment")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.DeleteEnrollment(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewEnrollmentResponse(enrollment),
		Timestamp: time.Now(),
	})
}
