package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// CreateUserRequest represents the payload for creating a user
type CreateUserRequest struct {
	FirstName string    `json:"firstName" binding:"required,max=255" example:"John"`
	LastName  string    `json:"lastName" binding:"required,max=255" example:"Doe"`
	FacultyID uuid.UUID `json:"facultyId" binding:"required" example:"9be72a78-30a5-4c3f-8573-7a3b6c9e21d4"`
}

// Validate applies the user rule table
func (r *CreateUserRequest) Validate() []validation.FieldError {
	return validation.Apply(validation.UserRules, map[string]interface{}{
		"firstName": r.FirstName,
		"lastName":  r.LastName,
	})
}

// UpdateUserRequest represents the payload for updating a user
type UpdateUserRequest struct {
	FirstName string    `json:"firstName" binding:"required,max=255" example:"John"`
	LastName  string    `json:"lastName" binding:"required,max=255" example:"Doe"`
	FacultyID uuid.UUID `json:"facultyId" binding:"required" example:"9be72a78-30a5-4c3f-8573-7a3b6c9e21d4"`
}

// Validate applies the user rule table
func (r *UpdateUserRequest) Validate() []validation.FieldError {
	return validation.Apply(validation.UserRules, map[string]interface{}{
		"firstName": r.FirstName,
		"lastName":  r.LastName,
	})
}

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"4f2c8b61-90de-4f6a-a5b0-2d1b6f3e8c70"`
	FirstName string    `json:"firstName" example:"John"`
	LastName  string    `json:"lastName" example:"Doe"`
	FullName  string    `json:"fullName" example:"John Doe"`
	FacultyID uuid.UUID `json:"facultyId" example:"9be72a78-30a5-4c3f-8573-7a3b6c9e21d4"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-04-23T12:01:05Z"`
}

// NewUserResponse maps a user model to its response shape
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		FullName:  user.FullName(),
		FacultyID: user.FacultyID,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserResponseList maps a list of user models
func NewUserResponseList(users []*models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}
