package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, name string, startAt, finishAt time.Time, maxStudents int) (*models.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, name string, startAt, finishAt time.Time, maxStudents int) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data against the course rule table
func validateCourse(name string, startAt, finishAt time.Time, maxStudents int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	failed := validation.Apply(validation.CourseRules, map[string]interface{}{
		"name":        name,
		"maxStudents": maxStudents,
		"startAt":     startAt,
		"finishAt":    finishAt,
	})
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, failed[0].Error())
	}

	if !startAt.Before(finishAt) {
		return fmt.Errorf("%w: startAt must be earlier than finishAt", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, name string, startAt, finishAt time.Time, maxStudents int) (*models.Course, error) {
	if err := validateCourse(name, startAt, finishAt, maxStudents); err != nil {
		return nil, err
	}

	course := models.NewCourse(name, startAt, finishAt, maxStudents)
	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// UpdateCourse updates an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id uuid.UUID, name string, startAt, finishAt time.Time, maxStudents int) (*models.Course, error) {
	if err := validateCourse(name, startAt, finishAt, maxStudents); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	course.UpdateDetails(name, startAt, finishAt, maxStudents)
	if err := s.courseRepo.Update(ctx, course); err != nil {
		if apperrors.Is(err, apperrors.ErrCourseNotFound, apperrors.ErrCourseAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return course, nil
}

// DeleteCourse deletes a course by ID
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
