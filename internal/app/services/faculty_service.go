package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, name string) (*models.Faculty, error)
	GetFacultyByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id uuid.UUID, name string) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id uuid.UUID) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo FacultyStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo FacultyStore) FacultyService {
	return &facultyServiceImpl{
		facultyRepo: facultyRepo,
	}
}

// validateFacultyName validates the name against the faculty rule table
func validateFacultyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	failed := validation.Apply(validation.FacultyRules, map[string]interface{}{
		"name": name,
	})
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, failed[0].Error())
	}

	return nil
}

// CreateFaculty creates a new faculty
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, name string) (*models.Faculty, error) {
	if err := validateFacultyName(name); err != nil {
		return nil, err
	}

	faculty := models.NewFaculty(name)
	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
			return nil, apperrors.ErrFacultyAlreadyExists
		}
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}
	return faculty, nil
}

// GetFacultyByID retrieves a faculty by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return faculty, nil
}

// GetAllFaculties retrieves all faculties
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	faculties, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// UpdateFaculty renames an existing faculty
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id uuid.UUID, name string) (*models.Faculty, error) {
	if err := validateFacultyName(name); err != nil {
		return nil, err
	}

	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	faculty.Rename(name)
	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		if apperrors.Is(err, apperrors.ErrFacultyNotFound, apperrors.ErrFacultyAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	return faculty, nil
}

// DeleteFaculty deletes a faculty by ID
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id uuid.UUID) error {
	err := s.facultyRepo.Delete(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrFacultyNotFound, apperrors.ErrFacultyHasUsers) {
			return err
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
