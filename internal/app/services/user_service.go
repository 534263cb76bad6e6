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

// UserService defines the interface for user-related operations
type UserService interface {
	CreateUser(ctx context.Context, firstName, lastName string, facultyID uuid.UUID) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, firstName, lastName string, facultyID uuid.UUID) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo    UserStore
	facultyRepo FacultyStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserStore, facultyRepo FacultyStore) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		facultyRepo: facultyRepo,
	}
}

// validateUserNames validates the name fields against the user rule table
func validateUserNames(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("%w: first and last name cannot be empty", apperrors.ErrValidationFailed)
	}

	failed := validation.Apply(validation.UserRules, map[string]interface{}{
		"firstName": firstName,
		"lastName":  lastName,
	})
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, failed[0].Error())
	}

	return nil
}

// CreateUser creates a new user under the given faculty
func (s *userServiceImpl) CreateUser(ctx context.Context, firstName, lastName string, facultyID uuid.UUID) (*models.User, error) {
	if err := validateUserNames(firstName, lastName); err != nil {
		return nil, err
	}

	// Owning faculty must exist
	if _, err := s.facultyRepo.GetByID(ctx, facultyID); err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error checking faculty: %w", err)
	}

	user := models.NewUser(firstName, lastName, facultyID)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetAllUsers retrieves all users
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}

// UpdateUser updates an existing user
func (s *userServiceImpl) UpdateUser(ctx context.Context, id uuid.UUID, firstName, lastName string, facultyID uuid.UUID) (*models.User, error) {
	if err := validateUserNames(firstName, lastName); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	user.UpdateDetails(firstName, lastName, facultyID)
	if err := s.userRepo.Update(ctx, user); err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound, apperrors.ErrFacultyNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

// DeleteUser deletes a user by ID
func (s *userServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
