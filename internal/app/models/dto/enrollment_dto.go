package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// CreateEnrollmentRequest represents the payload for enrolling a user into a course
type CreateEnrollmentRequest struct {
	CourseID uuid.UUID `json:"courseId" binding:"required" example:"b3d63a0d-1f4e-49b7-83ad-6a1d5a60e1fc"`
	UserID   uuid.UUID `json:"userId" binding:"required" example:"4f2c8b61-90de-4f6a-a5b0-2d1b6f3e8c70"`
	Rating   int       `json:"rating" binding:"gte=0,lte=100" example:"85"`
	JoinAt   time.Time `json:"joinAt" binding:"required" example:"2025-09-01T08:00:00Z"`
	EndAt    time.Time `json:"endAt" binding:"required" example:"2025-12-20T16:00:00Z"`
}

// Validate applies the enrollment rule table
func (r *CreateEnrollmentRequest) Validate() []validation.FieldError {
	return validateEnrollmentFields(r.Rating, r.JoinAt, r.EndAt)
}

// UpdateEnrollmentRequest represents the payload for updating an enrollment
type UpdateEnrollmentRequest struct {
	CourseID uuid.UUID `json:"courseId" binding:"required" example:"b3d63a0d-1f4e-49b7-83ad-6a1d5a60e1fc"`
	UserID   uuid.UUID `json:"userId" binding:"required" example:"4f2c8b61-90de-4f6a-a5b0-2d1b6f3e8c70"`
	Rating   int       `json:"rating" binding:"gte=0,lte=100" example:"85"`
	JoinAt   time.Time `json:"joinAt" binding:"required" example:"2025-09-01T08:00:00Z"`
	EndAt    time.Time `json:"endAt" binding:"required" example:"2025-12-20T16:00:00Z"`
}

// Validate applies the enrollment rule table
func (r *UpdateEnrollmentRequest) Validate() []validation.FieldError {
	return validateEnrollmentFields(r.Rating, r.JoinAt, r.EndAt)
}

// CloseEnrollmentRequest represents the payload for closing an enrollment with
// a final rating
type CloseEnrollmentRequest struct {
	Rating int `json:"rating" binding:"gte=0,lte=100" example:"90"`
}

// Validate applies the rating rule
func (r *CloseEnrollmentRequest) Validate() []validation.FieldError {
	return validation.Apply(validation.EnrollmentRules, map[string]interface{}{
		"rating": r.Rating,
	})
}

func validateEnrollmentFields(rating int, joinAt, endAt time.Time) []validation.FieldError {
	return validation.Apply(validation.EnrollmentRules, map[string]interface{}{
		"rating": rating,
		"joinAt": joinAt,
		"endAt":  endAt,
	})
}

// EnrollmentResponse represents enrollment information returned by the API
type EnrollmentResponse struct {
	ID        uuid.UUID `json:"id" example:"1fd3c7e2-54b6-4ed8-b6a0-9a1c3d57e8f2"`
	CourseID  uuid.UUID `json:"courseId" example:"b3d63a0d-1f4e-49b7-83ad-6a1d5a60e1fc"`
	UserID    uuid.UUID `json:"userId" example:"4f2c8b61-90de-4f6a-a5b0-2d1b6f3e8c70"`
	Rating    int       `json:"rating" example:"85"`
	JoinAt    time.Time `json:"joinAt" example:"2025-09-01T08:00:00Z"`
	EndAt     time.Time `json:"endAt" example:"2025-12-20T16:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2025-04-23T12:01:05Z"`
	IsActive  bool      `json:"isActive" example:"true"`
}

// NewEnrollmentResponse maps an enrollment model to its response shape
func NewEnrollmentResponse(enrollment *models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        enrollment.ID,
		CourseID:  enrollment.CourseID,
		UserID:    enrollment.UserID,
		Rating:    enrollment.Rating,
		JoinAt:    enrollment.JoinAt,
		EndAt:     enrollment.EndAt,
		UpdatedAt: enrollment.UpdatedAt,
		IsActive:  enrollment.IsActive,
	}
}

// NewEnrollmentResponseList maps a list of enrollment models
func NewEnrollmentResponseList(enrollments []*models.Enrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, NewEnrollmentResponse(enrollment))
	}
	return responses
}
