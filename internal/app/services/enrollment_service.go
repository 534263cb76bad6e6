package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/validation"
)

// EnrollmentService defines the interface for the enrollment lifecycle workflow
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, courseID, userID uuid.UUID, rating int, joinAt, endAt time.Time) (*models.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id, courseID, userID uuid.UUID, rating int, joinAt, endAt time.Time) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
	CloseEnrollment(ctx context.Context, id uuid.UUID, finalRating int) (*models.Enrollment, error)
	CloseCourseEnrollments(ctx context.Context, courseID uuid.UUID) ([]*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
	GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error)
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentRepo EnrollmentStore
	tx             TxRunner
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo EnrollmentStore, tx TxRunner) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		tx:             tx,
	}
}

// validateRating defensively re-checks the rating bounds. The DTO layer
// rejects out-of-range ratings before the workflow runs, but the workflow must
// hold the invariant on its own when invoked directly.
func validateRating(rating int) error {
	if rating < validation.RatingMin || rating > validation.RatingMax {
		return fmt.Errorf("%w: rating must be between %d and %d",
			apperrors.ErrValidationFailed, validation.RatingMin, validation.RatingMax)
	}
	return nil
}

// wrapUnknown converts an unexpected failure into the typed unknown error.
// Expected business-rule failures pass through untouched so callers can match
// on them; nothing untyped leaves the workflow.
func wrapUnknown(err error, entityID uuid.UUID) error {
	if apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrEnrollmentNotFound,
		apperrors.ErrEnrollmentAlreadyExists,
		apperrors.ErrCourseNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrCourseFull,
	) {
		return err
	}

	var unknown *apperrors.UnknownError
	if errors.As(err, &unknown) {
		return err
	}

	return apperrors.NewUnknownError(entityID, err)
}

// CreateEnrollment enrolls a user into a course. The duplicate and capacity
// checks run inside one transaction holding the course row lock, so two
// concurrent creates for the same course cannot both pass the checks.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, courseID, userID uuid.UUID, rating int, joinAt, endAt time.Time) (*models.Enrollment, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	var created *models.Enrollment
	err := s.tx.InTx(ctx, func(ctx context.Context, stores TxStores) error {
		// Lock the course row first; every concurrent create for this course
		// serializes here.
		course, err := stores.Courses.GetByIDForUpdate(ctx, courseID)
		if err != nil {
			return err
		}

		existing, err := stores.Enrollments.GetByCourseAndUser(ctx, courseID, userID)
		if err == nil {
			return fmt.Errorf("%w: id %s", apperrors.ErrEnrollmentAlreadyExists, existing.ID)
		}
		if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return err
		}

		if _, err := stores.Users.GetByID(ctx, userID); err != nil {
			return err
		}

		activeCount, err := stores.Enrollments.CountActiveByCourse(ctx, courseID)
		if err != nil {
			return err
		}
		if activeCount >= course.MaxStudents {
			return fmt.Errorf("%w: course %s", apperrors.ErrCourseFull, course.ID)
		}

		created = models.NewEnrollment(courseID, userID, rating, joinAt, endAt)
		return stores.Enrollments.Create(ctx, created)
	})
	if err != nil {
		entityID := uuid.Nil
		if created != nil {
			entityID = created.ID
		}
		return nil, wrapUnknown(err, entityID)
	}

	return created, nil
}

// UpdateEnrollment applies new field values to an existing enrollment. The
// target (course, user) pair must not be owned by another enrollment; the
// unique pair index backs this check at the database level.
func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, id, courseID, userID uuid.UUID, rating int, joinAt, endAt time.Time) (*models.Enrollment, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapUnknown(err, id)
	}

	existing, err := s.enrollmentRepo.GetByCourseAndUser(ctx, courseID, userID)
	if err == nil && existing.ID != enrollment.ID {
		return nil, fmt.Errorf("%w: id %s", apperrors.ErrEnrollmentAlreadyExists, existing.ID)
	}
	if err != nil && !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		return nil, wrapUnknown(err, id)
	}

	enrollment.UpdateDetails(courseID, userID, rating, joinAt, endAt)
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, wrapUnknown(err, id)
	}

	return enrollment, nil
}

// DeleteEnrollment removes an enrollment and returns the removed record
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapUnknown(err, id)
	}

	if err := s.enrollmentRepo.Delete(ctx, id); err != nil {
		return nil, wrapUnknown(err, id)
	}

	return enrollment, nil
}

// CloseEnrollment finishes a single enrollment with a final rating. The end
// timestamp is stamped to now and the record goes inactive; closed is terminal.
func (s *enrollmentServiceImpl) CloseEnrollment(ctx context.Context, id uuid.UUID, finalRating int) (*models.Enrollment, error) {
	if err := validateRating(finalRating); err != nil {
		return nil, err
	}

	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapUnknown(err, id)
	}

	enrollment.Close(finalRating)
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, wrapUnknown(err, id)
	}

	return enrollment, nil
}

// CloseCourseEnrollments marks every enrollment of a course inactive, leaving
// ratings and end timestamps untouched. A course with no enrollments yields an
// empty list and no write. The bulk update commits or rolls back as one unit.
func (s *enrollmentServiceImpl) CloseCourseEnrollments(ctx context.Context, courseID uuid.UUID) ([]*models.Enrollment, error) {
	var closed []*models.Enrollment
	err := s.tx.InTx(ctx, func(ctx context.Context, stores TxStores) error {
		enrollments, err := stores.Enrollments.GetAllByCourse(ctx, courseID)
		if err != nil {
			return err
		}

		closed = enrollments
		if len(enrollments) == 0 {
			return nil
		}

		for _, enrollment := range enrollments {
			enrollment.Deactivate()
		}

		return stores.Enrollments.UpdateAll(ctx, enrollments)
	})
	if err != nil {
		return nil, wrapUnknown(err, courseID)
	}

	return closed, nil
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEnrollmentNotFound) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}
	return enrollment, nil
}

// GetAllEnrollments retrieves all enrollments
func (s *enrollmentServiceImpl) GetAllEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}
