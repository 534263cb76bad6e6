package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/app/services"
	"github.com/yigit/enrollhub/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty
// @Description Creates a new faculty with the provided information
// @Tags faculties
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Faculty already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}
	if respondFieldErrors(ctx, req.Validate()) {
		return
	}

	faculty, err := c.facultyService.CreateFaculty(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewFacultyResponse(faculty),
		Timestamp: time.Now(),
	})
}

// GetFacultyByID retrieves a faculty by ID
// @Summary Get faculty details
// @Description Retrieves detailed information about a specific faculty by its ID
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID format"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Faculty")
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewFacultyResponse(faculty),
		Timestamp: time.Now(),
	})
}

// GetAllFaculties retrieves all faculties
// @Summary Get all faculties
// @Description Retrieves a list of all faculties
// @Tags faculties
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyResponse} "Faculties retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [get]
func (c *FacultyController) GetAllFaculties(ctx *gin.Context) {
	faculties, err := c.facultyService.GetAllFaculties(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewFacultyResponseList(faculties),
		Timestamp: time.Now(),
	})
}

// UpdateFaculty updates an existing faculty
// @Summary Update a faculty
// @Description Updates an existing faculty with new information
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Param request body dto.UpdateFacultyRequest true "Updated faculty information"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Faculty")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}
	if respondFieldErrors(ctx, req.Validate()) {
		return
	}

	faculty, err := c.facultyService.UpdateFaculty(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewFacultyResponse(faculty),
		Timestamp: time.Now(),
	})
}

// DeleteFaculty deletes a faculty
// @Summary Delete a faculty
// @Description Deletes a faculty that has no users assigned to it
// @Tags faculties
// @Accept json
// @Produce json
// @Param id path string true "Faculty ID" Format(uuid)
// @Success 200 {object} dto.APIResponse "Faculty deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty still has users"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Faculty")
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Faculty deleted successfully"},
		Timestamp: time.Now(),
	})
}
