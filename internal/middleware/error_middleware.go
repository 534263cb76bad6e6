package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		})
		return
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request"),
		})
		return
	case errors.Is(err, apperrors.ErrFacultyNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Faculty not found"),
		})
		return
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"),
		})
		return
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"),
		})
		return
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found"),
		})
		return
	case errors.Is(err, apperrors.ErrFacultyAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Faculty already exists"),
		})
		return
	case errors.Is(err, apperrors.ErrCourseAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Course already exists"),
		})
		return
	case errors.Is(err, apperrors.ErrEnrollmentAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "User is already enrolled in this course"),
		})
		return
	case errors.Is(err, apperrors.ErrFacultyHasUsers):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceConflict, "Faculty still has users assigned"),
		})
		return
	case errors.Is(err, apperrors.ErrCourseFull):
		c.JSON(503, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeCourseFull, "Course has reached its student limit"),
		})
		return
	default:
		var unknownErr *apperrors.UnknownError
		if errors.As(err, &unknownErr) {
			logger.Error().Err(unknownErr.Cause).Str("entityId", unknownErr.EntityID.String()).Msg("Unhandled service error")
		} else {
			logger.Error().Err(err).Msg("Unhandled service error")
		}
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
		return
	}
}
