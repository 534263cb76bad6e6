package apperrors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Faculty errors
var (
	ErrFacultyNotFound      = errors.New("faculty not found")
	ErrFacultyAlreadyExists = errors.New("faculty with this name already exists")
	ErrFacultyHasUsers      = errors.New("faculty has associated users and cannot be deleted")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this name already exists")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound      = errors.New("enrollment not found")
	ErrEnrollmentAlreadyExists = errors.New("enrollment already exists for this course and user")
	ErrCourseFull              = errors.New("course has reached its maximum number of students")
)

// UnknownError wraps an unexpected persistence failure together with the id of
// the entity involved. EntityID is uuid.Nil when the failure happened before
// the entity was ever created.
type UnknownError struct {
	EntityID uuid.UUID
	Cause    error
}

// Error implements the error interface
func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown failure for entity %s: %v", e.EntityID, e.Cause)
}

// Unwrap exposes the underlying cause
func (e *UnknownError) Unwrap() error {
	return e.Cause
}

// NewUnknownError converts an unexpected failure into a typed result
func NewUnknownError(entityID uuid.UUID, cause error) *UnknownError {
	return &UnknownError{EntityID: entityID, Cause: cause}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
