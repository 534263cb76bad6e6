package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// CreateFacultyRequest represents the payload for creating a faculty
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required,min=3,max=255" example:"Engineering Faculty"`
}

// Validate applies the faculty rule table
func (r *CreateFacultyRequest) Validate() []validation.FieldError {
	return validation.Apply(validation.FacultyRules, map[string]interface{}{
		"name": r.Name,
	})
}

// UpdateFacultyRequest represents the payload for renaming a faculty
type UpdateFacultyRequest struct {
	Name string `json:"name" binding:"required,min=3,max=255" example:"Engineering Faculty"`
}

// Validate applies the faculty rule table
func (r *UpdateFacultyRequest) Validate() []validation.FieldError {
	return validation.Apply(validation.FacultyRules, map[string]interface{}{
		"name": r.Name,
	})
}

// FacultyResponse represents faculty information returned by the API
type FacultyResponse struct {
	ID        uuid.UUID `json:"id" example:"9be72a78-30a5-4c3f-8573-7a3b6c9e21d4"`
	Name      string    `json:"name" example:"Engineering Faculty"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-04-23T12:01:05Z"`
}

// NewFacultyResponse maps a faculty model to its response shape
func NewFacultyResponse(faculty *models.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:        faculty.ID,
		Name:      faculty.Name,
		UpdatedAt: faculty.UpdatedAt,
	}
}

// NewFacultyResponseList maps a list of faculty models
func NewFacultyResponseList(faculties []*models.Faculty) []FacultyResponse {
	responses := make([]FacultyResponse, 0, len(faculties))
	for _, faculty := range faculties {
		responses = append(responses, NewFacultyResponse(faculty))
	}
	return responses
}
