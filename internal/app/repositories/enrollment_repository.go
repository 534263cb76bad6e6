package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
	"github.com/yigit/enrollhub/internal/pkg/dberrors"
	"github.com/yigit/enrollhub/internal/pkg/logger"
)

const enrollmentColumns = "id, course_id, user_id, rating, join_at, end_at, updated_at, is_active"

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db Querier) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository bound to the given transaction
func (r *EnrollmentRepository) WithTx(tx pgx.Tx) *EnrollmentRepository {
	return &EnrollmentRepository{db: tx, sb: r.sb}
}

func scanEnrollment(row pgx.Row) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{}
	err := row.Scan(
		&enrollment.ID,
		&enrollment.CourseID,
		&enrollment.UserID,
		&enrollment.Rating,
		&enrollment.JoinAt,
		&enrollment.EndAt,
		&enrollment.UpdatedAt,
		&enrollment.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

// Create inserts a new enrollment
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("id", "course_id", "user_id", "rating", "join_at", "end_at", "updated_at", "is_active").
		Values(
			enrollment.ID,
			enrollment.CourseID,
			enrollment.UserID,
			enrollment.Rating,
			enrollment.JoinAt,
			enrollment.EndAt,
			enrollment.UpdatedAt,
			enrollment.IsActive,
		).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create enrollment SQL")
		return fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_course_id_user_id_key") {
			// The unique (course_id, user_id) index backs the duplicate check
			// against races the pair lookup cannot see.
			return apperrors.ErrEnrollmentAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create enrollment query")
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// GetByID retrieves an enrollment by ID
func (r *EnrollmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select(enrollmentColumns).
		From("enrollments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrollment by ID SQL")
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).Str("enrollmentID", id.String()).Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("error getting enrollment by ID: %w", err)
	}

	return enrollment, nil
}

// GetByCourseAndUser retrieves the enrollment for a (course, user) pair.
// Returns apperrors.ErrEnrollmentNotFound when no such record exists.
func (r *EnrollmentRepository) GetByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select(enrollmentColumns).
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseID, "user_id": userID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrollment by pair SQL")
		return nil, fmt.Errorf("failed to build get enrollment by pair query: %w", err)
	}

	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		logger.Error().Err(err).
			Str("courseID", courseID.String()).
			Str("userID", userID.String()).
			Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("error getting enrollment by course and user: %w", err)
	}

	return enrollment, nil
}

// GetAll retrieves all enrollments
func (r *EnrollmentRepository) GetAll(ctx context.Context) ([]*models.Enrollment, error) {
	query := r.sb.Select(enrollmentColumns).
		From("enrollments").
		OrderBy("join_at DESC")

	return r.queryMany(ctx, query)
}

// GetAllByCourse retrieves all enrollments tied to a course
func (r *EnrollmentRepository) GetAllByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Enrollment, error) {
	query := r.sb.Select(enrollmentColumns).
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("join_at DESC")

	return r.queryMany(ctx, query)
}

func (r *EnrollmentRepository) queryMany(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Enrollment, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enrollment list SQL")
		return nil, fmt.Errorf("failed to build enrollment list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing enrollment list query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning enrollment row")
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating enrollment rows")
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// CountActiveByCourse returns the number of active enrollments for a course
func (r *EnrollmentRepository) CountActiveByCourse(ctx context.Context, courseID uuid.UUID) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("enrollments").
		Where(squirrel.Eq{"course_id": courseID, "is_active": true}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building count enrollments SQL")
		return 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("courseID", courseID.String()).Msg("Error counting enrollments")
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	return count, nil
}

// Update updates an existing enrollment
func (r *EnrollmentRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	sql, args, err := r.updateSQL(enrollment)
	if err != nil {
		logger.Error().Err(err).Msg("Error building update enrollment SQL")
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_course_id_user_id_key") {
			return apperrors.ErrEnrollmentAlreadyExists
		}
		logger.Error().Err(err).Str("enrollmentID", enrollment.ID.String()).Msg("Error executing update enrollment query")
		return fmt.Errorf("error updating enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}

// UpdateAll persists a list of enrollments in a single batch. All rows are
// written in one round trip; the first failing statement fails the whole call.
func (r *EnrollmentRepository) UpdateAll(ctx context.Context, enrollments []*models.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, enrollment := range enrollments {
		sql, args, err := r.updateSQL(enrollment)
		if err != nil {
			logger.Error().Err(err).Msg("Error building bulk update enrollment SQL")
			return fmt.Errorf("failed to build bulk update enrollment query: %w", err)
		}
		batch.Queue(sql, args...)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range enrollments {
		if _, err := results.Exec(); err != nil {
			logger.Error().Err(err).Msg("Error executing bulk update enrollment batch")
			return fmt.Errorf("error bulk updating enrollments: %w", err)
		}
	}

	return nil
}

func (r *EnrollmentRepository) updateSQL(enrollment *models.Enrollment) (string, []interface{}, error) {
	return r.sb.Update("enrollments").
		SetMap(map[string]interface{}{
			"course_id":  enrollment.CourseID,
			"user_id":    enrollment.UserID,
			"rating":     enrollment.Rating,
			"join_at":    enrollment.JoinAt,
			"end_at":     enrollment.EndAt,
			"updated_at": enrollment.UpdatedAt,
			"is_active":  enrollment.IsActive,
		}).
		Where(squirrel.Eq{"id": enrollment.ID}).
		ToSql()
}

// Delete deletes an enrollment by ID
func (r *EnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete enrollment SQL")
		return fmt.Errorf("failed to build delete enrollment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("enrollmentID", id.String()).Msg("Error executing delete enrollment query")
		return fmt.Errorf("error deleting enrollment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}

	return nil
}
