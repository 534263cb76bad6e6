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

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db Querier) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new faculty
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Insert("faculties").
		Columns("id", "name", "updated_at").
		Values(faculty.ID, faculty.Name, faculty.UpdatedAt).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return fmt.Errorf("error creating faculty: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "updated_at").
		From("faculties").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty by ID SQL")
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.Name, &faculty.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("facultyID", id.String()).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by ID: %w", err)
	}

	return faculty, nil
}

// GetAll retrieves all faculties
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "updated_at").
		From("faculties").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all faculties SQL")
		return nil, fmt.Errorf("failed to build get all faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all faculties query")
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(&faculty.ID, &faculty.Name, &faculty.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty row during get all")
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty rows")
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculties, nil
}

// Update updates an existing faculty
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Update("faculties").
		SetMap(map[string]interface{}{
			"name":       faculty.Name,
			"updated_at": faculty.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": faculty.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update faculty SQL")
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Str("facultyID", faculty.ID.String()).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete deletes a faculty by ID
func (r *FacultyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Check for associated users BEFORE deleting
	checkSql, checkArgs, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"faculty_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building check users SQL")
		return fmt.Errorf("failed to build check users query: %w", err)
	}

	var hasUsers bool
	err = r.db.QueryRow(ctx, checkSql, checkArgs...).Scan(&hasUsers)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("facultyID", id.String()).Msg("Error checking associated users")
		return fmt.Errorf("error checking associated users: %w", err)
	}

	if hasUsers {
		return apperrors.ErrFacultyHasUsers
	}

	sql, args, err := r.sb.Delete("faculties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete faculty SQL")
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id.String()).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Faculty removed between check and delete
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
