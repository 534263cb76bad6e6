package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/app/repositories"
	"github.com/yigit/enrollhub/internal/db"
)

// FacultyStore is the persistence surface faculty operations require
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserStore is the persistence surface user operations require
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CourseStore is the persistence surface course operations require
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EnrollmentStore is the persistence surface the enrollment workflow requires
type EnrollmentStore interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Enrollment, error)
	GetByCourseAndUser(ctx context.Context, courseID, userID uuid.UUID) (*models.Enrollment, error)
	GetAll(ctx context.Context) ([]*models.Enrollment, error)
	GetAllByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Enrollment, error)
	CountActiveByCourse(ctx context.Context, courseID uuid.UUID) (int, error)
	Update(ctx context.Context, enrollment *models.Enrollment) error
	UpdateAll(ctx context.Context, enrollments []*models.Enrollment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TxStores bundles the transaction-scoped stores the enrollment workflow
// needs when it must make a check-then-act sequence atomic.
type TxStores struct {
	Courses     CourseStore
	Users       UserStore
	Enrollments EnrollmentStore
}

// TxRunner runs a function against transaction-scoped stores. The whole
// function commits or rolls back as one unit.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context, stores TxStores) error) error
}

// pgxTxRunner is the production TxRunner backed by db.WithTransaction
type pgxTxRunner struct {
	pool  *pgxpool.Pool
	repos *repositories.Repositories
}

// NewTxRunner creates a TxRunner over the connection pool
func NewTxRunner(pool *pgxpool.Pool, repos *repositories.Repositories) TxRunner {
	return &pgxTxRunner{pool: pool, repos: repos}
}

// InTx runs fn inside a single database transaction
func (r *pgxTxRunner) InTx(ctx context.Context, fn func(ctx context.Context, stores TxStores) error) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, TxStores{
			Courses:     r.repos.CourseRepository.WithTx(tx),
			Users:       r.repos.UserRepository.WithTx(tx),
			Enrollments: r.repos.EnrollmentRepository.WithTx(tx),
		})
	})
}
