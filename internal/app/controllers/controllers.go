package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// parseIDParam parses a UUID path parameter and writes a 400 response when
// it is malformed. The boolean reports whether parsing succeeded.
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" ID")
		errorDetail = errorDetail.WithDetails(name + " ID must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

// respondBindError writes a 400 response for a malformed request body.
// Binding-tag failures surface as per-field messages, anything else as the
// raw decode error.
func respondBindError(ctx *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(validationErrors)))
		return
	}

	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data")
	errorDetail = errorDetail.WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// respondFieldErrors writes a 400 response for rule table violations.
// The boolean reports whether any violations were present.
func respondFieldErrors(ctx *gin.Context, fieldErrors []validation.FieldError) bool {
	if len(fieldErrors) == 0 {
		return false
	}
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
	errorDetail = errorDetail.WithField(fieldErrors[0].Field).WithDetails(fieldErrors)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
	return true
}
