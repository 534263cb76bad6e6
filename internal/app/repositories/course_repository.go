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

// CourseRepository handles course database operations
type CourseRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db Querier) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a repository bound to the given transaction
func (r *CourseRepository) WithTx(tx pgx.Tx) *CourseRepository {
	return &CourseRepository{db: tx, sb: r.sb}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("id", "name", "start_at", "finish_at", "max_students", "updated_at").
		Values(course.ID, course.Name, course.StartAt, course.FinishAt, course.MaxStudents, course.UpdatedAt).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate retrieves a course by ID and locks its row for the rest of
// the surrounding transaction. Used to serialize the capacity check against
// concurrent enrollment creates for the same course.
func (r *CourseRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return r.getByID(ctx, id, true)
}

func (r *CourseRepository) getByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.Course, error) {
	query := r.sb.Select("id", "name", "start_at", "finish_at", "max_students", "updated_at").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by ID SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.Name, &course.StartAt, &course.FinishAt, &course.MaxStudents, &course.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "start_at", "finish_at", "max_students", "updated_at").
		From("courses").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.ID, &course.Name, &course.StartAt, &course.FinishAt, &course.MaxStudents, &course.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning course row during get all")
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating course rows")
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"name":         course.Name,
			"start_at":     course.StartAt,
			"finish_at":    course.FinishAt,
			"max_students": course.MaxStudents,
			"updated_at":   course.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("courseID", course.ID.String()).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
