package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// CreateCourseRequest represents the payload for creating a course
type CreateCourseRequest struct {
	Name        string    `json:"name" binding:"required,min=3,max=255" example:"Distributed Systems"`
	StartAt     time.Time `json:"startAt" binding:"required" example:"2025-09-01T08:00:00Z"`
	FinishAt    time.Time `json:"finishAt" binding:"required" example:"2025-12-20T16:00:00Z"`
	MaxStudents int       `json:"maxStudents" binding:"gte=0,lte=100" example:"30"`
}

// Validate applies the course rule table plus the start/finish ordering check
func (r *CreateCourseRequest) Validate() []validation.FieldError {
	return validateCourseFields(r.Name, r.StartAt, r.FinishAt, r.MaxStudents)
}

// UpdateCourseRequest represents the payload for updating a course
type UpdateCourseRequest struct {
	Name        string    `json:"name" binding:"required,min=3,max=255" example:"Distributed Systems"`
	StartAt     time.Time `json:"startAt" binding:"required" example:"2025-09-01T08:00:00Z"`
	FinishAt    time.Time `json:"finishAt" binding:"required" example:"2025-12-20T16:00:00Z"`
	MaxStudents int       `json:"maxStudents" binding:"gte=0,lte=100" example:"30"`
}

// Validate applies the course rule table plus the start/finish ordering check
func (r *UpdateCourseRequest) Validate() []validation.FieldError {
	return validateCourseFields(r.Name, r.StartAt, r.FinishAt, r.MaxStudents)
}

func validateCourseFields(name string, startAt, finishAt time.Time, maxStudents int) []validation.FieldError {
	failed := validation.Apply(validation.CourseRules, map[string]interface{}{
		"name":        name,
		"maxStudents": maxStudents,
		"startAt":     startAt,
		"finishAt":    finishAt,
	})

	// Cross-field ordering sits outside the per-field rule table
	if !startAt.IsZero() && !finishAt.IsZero() && !startAt.Before(finishAt) {
		failed = append(failed, validation.FieldError{
			Field:   "startAt",
			Message: "must be earlier than finishAt",
		})
	}

	return failed
}

// CourseResponse represents course information returned by the API
type CourseResponse struct {
	ID          uuid.UUID `json:"id" example:"b3d63a0d-1f4e-49b7-83ad-6a1d5a60e1fc"`
	Name        string    `json:"name" example:"Distributed Systems"`
	StartAt     time.Time `json:"startAt" example:"2025-09-01T08:00:00Z"`
	FinishAt    time.Time `json:"finishAt" example:"2025-12-20T16:00:00Z"`
	MaxStudents int       `json:"maxStudents" example:"30"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2025-04-23T12:01:05Z"`
}

// NewCourseResponse maps a course model to its response shape
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		StartAt:     course.StartAt,
		FinishAt:    course.FinishAt,
		MaxStudents: course.MaxStudents,
		UpdatedAt:   course.UpdatedAt,
	}
}

// NewCourseResponseList maps a list of course models
func NewCourseResponseList(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}
	return responses
}
