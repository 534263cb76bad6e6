package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

// memStore is an in-memory stand-in for the persistence layer. It mirrors the
// repository error contract: lookups on missing rows return the not-found
// sentinels and a duplicate (course, user) pair is rejected on insert.
type memStore struct {
	mu          sync.Mutex
	courses     map[uuid.UUID]*models.Course
	users       map[uuid.UUID]*models.User
	enrollments map[uuid.UUID]*models.Enrollment

	enrollmentWrites int
	failUpdate       error
}

func newMemStore() *memStore {
	return &memStore{
		courses:     make(map[uuid.UUID]*models.Course),
		users:       make(map[uuid.UUID]*models.User),
		enrollments: make(map[uuid.UUID]*models.Enrollment),
	}
}

type courseStoreStub struct{ s *memStore }

func (c courseStoreStub) Create(_ context.Context, course *models.Course) error {
	c.s.courses[course.ID] = course
	return nil
}

func (c courseStoreStub) GetByID(_ context.Context, id uuid.UUID) (*models.Course, error) {
	course, ok := c.s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (c courseStoreStub) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return c.GetByID(ctx, id)
}

func (c courseStoreStub) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(c.s.courses))
	for _, course := range c.s.courses {
		out = append(out, course)
	}
	return out, nil
}

func (c courseStoreStub) Update(_ context.Context, course *models.Course) error {
	if _, ok := c.s.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	c.s.courses[course.ID] = course
	return nil
}

func (c courseStoreStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := c.s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(c.s.courses, id)
	return nil
}

type userStoreStub struct{ s *memStore }

func (u userStoreStub) Create(_ context.Context, user *models.User) error {
	u.s.users[user.ID] = user
	return nil
}

func (u userStoreStub) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := u.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (u userStoreStub) GetAll(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(u.s.users))
	for _, user := range u.s.users {
		out = append(out, user)
	}
	return out, nil
}

func (u userStoreStub) Update(_ context.Context, user *models.User) error {
	if _, ok := u.s.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	u.s.users[user.ID] = user
	return nil
}

func (u userStoreStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := u.s.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(u.s.users, id)
	return nil
}

type enrollmentStoreStub struct{ s *memStore }

func (e enrollmentStoreStub) Create(_ context.Context, enrollment *models.Enrollment) error {
	for _, existing := range e.s.enrollments {
		if existing.CourseID == enrollment.CourseID && existing.UserID == enrollment.UserID {
			return apperrors.ErrEnrollmentAlreadyExists
		}
	}
	e.s.enrollments[enrollment.ID] = enrollment
	e.s.enrollmentWrites++
	return nil
}

func (e enrollmentStoreStub) GetByID(_ context.Context, id uuid.UUID) (*models.Enrollment, error) {
	enrollment, ok := e.s.enrollments[id]
	if !ok {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (e enrollmentStoreStub) GetByCourseAndUser(_ context.Context, courseID, userID uuid.UUID) (*models.Enrollment, error) {
	for _, enrollment := range e.s.enrollments {
		if enrollment.CourseID == courseID && enrollment.UserID == userID {
			return enrollment, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (e enrollmentStoreStub) GetAll(_ context.Context) ([]*models.Enrollment, error) {
	out := make([]*models.Enrollment, 0, len(e.s.enrollments))
	for _, enrollment := range e.s.enrollments {
		out = append(out, enrollment)
	}
	return out, nil
}

func (e enrollmentStoreStub) GetAllByCourse(_ context.Context, courseID uuid.UUID) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, enrollment := range e.s.enrollments {
		if enrollment.CourseID == courseID {
			out = append(out, enrollment)
		}
	}
	return out, nil
}

func (e enrollmentStoreStub) CountActiveByCourse(_ context.Context, courseID uuid.UUID) (int, error) {
	count := 0
	for _, enrollment := range e.s.enrollments {
		if enrollment.CourseID == courseID && enrollment.IsActive {
			count++
		}
	}
	return count, nil
}

func (e enrollmentStoreStub) Update(_ context.Context, enrollment *models.Enrollment) error {
	if e.s.failUpdate != nil {
		return e.s.failUpdate
	}
	if _, ok := e.s.enrollments[enrollment.ID]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	e.s.enrollments[enrollment.ID] = enrollment
	e.s.enrollmentWrites++
	return nil
}

func (e enrollmentStoreStub) UpdateAll(_ context.Context, enrollments []*models.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}
	for _, enrollment := range enrollments {
		if _, ok := e.s.enrollments[enrollment.ID]; !ok {
			return apperrors.ErrEnrollmentNotFound
		}
	}
	for _, enrollment := range enrollments {
		e.s.enrollments[enrollment.ID] = enrollment
	}
	e.s.enrollmentWrites++
	return nil
}

func (e enrollmentStoreStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := e.s.enrollments[id]; !ok {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(e.s.enrollments, id)
	e.s.enrollmentWrites++
	return nil
}

// memTxRunner serializes transactions with a mutex, coarsely mirroring the
// course row lock the production runner relies on.
type memTxRunner struct {
	s *memStore
}

func (r memTxRunner) InTx(ctx context.Context, fn func(ctx context.Context, stores TxStores) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(ctx, TxStores{
		Courses:     courseStoreStub{r.s},
		Users:       userStoreStub{r.s},
		Enrollments: enrollmentStoreStub{r.s},
	})
}

type enrollmentEnv struct {
	store   *memStore
	service EnrollmentService
}

func newEnrollmentEnv() *enrollmentEnv {
	store := newMemStore()
	return &enrollmentEnv{
		store:   store,
		service: NewEnrollmentService(enrollmentStoreStub{store}, memTxRunner{store}),
	}
}

func (env *enrollmentEnv) addCourse(maxStudents int) *models.Course {
	course := models.NewCourse("Distributed Systems", time.Now().UTC(), time.Now().UTC().Add(90*24*time.Hour), maxStudents)
	env.store.courses[course.ID] = course
	return course
}

func (env *enrollmentEnv) addUser() *models.User {
	user := models.NewUser("John", "Doe", uuid.New())
	env.store.users[user.ID] = user
	return user
}

func (env *enrollmentEnv) enroll(t *testing.T, courseID, userID uuid.UUID) *models.Enrollment {
	t.Helper()
	enrollment, err := env.service.CreateEnrollment(context.Background(), courseID, userID, 0, time.Now().UTC(), time.Now().UTC().Add(90*24*time.Hour))
	if err != nil {
		t.Fatalf("create enrollment: %v", err)
	}
	return enrollment
}

func TestCreateEnrollment(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()

	enrollment := env.enroll(t, course.ID, user.ID)

	if !enrollment.IsActive {
		t.Fatalf("new enrollment should be active")
	}
	if enrollment.CourseID != course.ID || enrollment.UserID != user.ID {
		t.Fatalf("enrollment keys mismatch")
	}
	if _, ok := env.store.enrollments[enrollment.ID]; !ok {
		t.Fatalf("enrollment not persisted")
	}
}

func TestCreateEnrollment_DuplicatePair(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()
	env.enroll(t, course.ID, user.ID)

	_, err := env.service.CreateEnrollment(context.Background(), course.ID, user.ID, 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
	if !errors.Is(err, apperrors.ErrEnrollmentAlreadyExists) {
		t.Fatalf("expected ErrEnrollmentAlreadyExists, got %v", err)
	}
	if len(env.store.enrollments) != 1 {
		t.Fatalf("duplicate create must not write, have %d enrollments", len(env.store.enrollments))
	}
}

func TestCreateEnrollment_CourseNotFound(t *testing.T) {
	env := newEnrollmentEnv()
	user := env.addUser()

	_, err := env.service.CreateEnrollment(context.Background(), uuid.New(), user.ID, 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCreateEnrollment_UserNotFound(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)

	_, err := env.service.CreateEnrollment(context.Background(), course.ID, uuid.New(), 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(env.store.enrollments) != 0 {
		t.Fatalf("failed create must not write")
	}
}

func TestCreateEnrollment_CourseFull(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(2)

	env.enroll(t, course.ID, env.addUser().ID)
	env.enroll(t, course.ID, env.addUser().ID)

	_, err := env.service.CreateEnrollment(context.Background(), course.ID, env.addUser().ID, 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
	if !errors.Is(err, apperrors.ErrCourseFull) {
		t.Fatalf("expected ErrCourseFull, got %v", err)
	}
	if len(env.store.enrollments) != 2 {
		t.Fatalf("capacity overflow must not write")
	}
}

func TestCreateEnrollment_ClosedSeatsFreeCapacity(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(1)
	first := env.addUser()

	enrollment := env.enroll(t, course.ID, first.ID)
	if _, err := env.service.CloseEnrollment(context.Background(), enrollment.ID, 75); err != nil {
		t.Fatalf("close enrollment: %v", err)
	}

	// Only active enrollments count against max_students
	second := env.addUser()
	if _, err := env.service.CreateEnrollment(context.Background(), course.ID, second.ID, 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("expected free seat after close, got %v", err)
	}
}

func TestCreateEnrollment_RatingOutOfRange(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()

	for _, rating := range []int{-1, 101} {
		_, err := env.service.CreateEnrollment(context.Background(), course.ID, user.ID, rating, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("rating %d: expected ErrValidationFailed, got %v", rating, err)
		}
	}
	if len(env.store.enrollments) != 0 {
		t.Fatalf("invalid rating must not write")
	}
}

func TestCreateEnrollment_ConcurrentLastSeat(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(1)
	userA := env.addUser()
	userB := env.addUser()

	results := make(chan error, 2)
	for _, userID := range []uuid.UUID{userA.ID, userB.ID} {
		go func(id uuid.UUID) {
			_, err := env.service.CreateEnrollment(context.Background(), course.ID, id, 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
			results <- err
		}(userID)
	}

	var successes, full int
	for i := 0; i < 2; i++ {
		err := <-results
		switch {
		case err == nil:
			successes++
		case errors.Is(err, apperrors.ErrCourseFull):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 || full != 1 {
		t.Fatalf("expected exactly one winner for the last seat, got %d successes and %d full", successes, full)
	}
}

func TestUpdateEnrollment(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()
	enrollment := env.enroll(t, course.ID, user.ID)

	newJoin := time.Now().UTC().Add(time.Hour)
	newEnd := newJoin.Add(30 * 24 * time.Hour)
	updated, err := env.service.UpdateEnrollment(context.Background(), enrollment.ID, course.ID, user.ID, 42, newJoin, newEnd)
	if err != nil {
		t.Fatalf("update enrollment: %v", err)
	}
	if updated.Rating != 42 {
		t.Fatalf("expected rating 42, got %d", updated.Rating)
	}
	if !updated.IsActive {
		t.Fatalf("update must not close the enrollment")
	}
}

func TestUpdateEnrollment_NotFound(t *testing.T) {
	env := newEnrollmentEnv()
	writes := env.store.enrollmentWrites

	_, err := env.service.UpdateEnrollment(context.Background(), uuid.New(), uuid.New(), uuid.New(), 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
	if env.store.enrollmentWrites != writes {
		t.Fatalf("update of missing enrollment must not write")
	}
}

func TestUpdateEnrollment_PairConflict(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	userA := env.addUser()
	userB := env.addUser()
	env.enroll(t, course.ID, userA.ID)
	target := env.enroll(t, course.ID, userB.ID)

	// Moving target onto userA's pair must conflict
	_, err := env.service.UpdateEnrollment(context.Background(), target.ID, course.ID, userA.ID, 0, target.JoinAt, target.EndAt)
	if !errors.Is(err, apperrors.ErrEnrollmentAlreadyExists) {
		t.Fatalf("expected ErrEnrollmentAlreadyExists, got %v", err)
	}
}

func TestUpdateEnrollment_KeepOwnPair(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()
	enrollment := env.enroll(t, course.ID, user.ID)

	// An update that keeps its own (course, user) pair is not a conflict
	if _, err := env.service.UpdateEnrollment(context.Background(), enrollment.ID, course.ID, user.ID, 90, enrollment.JoinAt, enrollment.EndAt); err != nil {
		t.Fatalf("update keeping own pair: %v", err)
	}
}

func TestUpdateEnrollment_RepositoryFailure(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()
	enrollment := env.enroll(t, course.ID, user.ID)

	env.store.failUpdate = errors.New("connection reset")
	_, err := env.service.UpdateEnrollment(context.Background(), enrollment.ID, course.ID, user.ID, 10, enrollment.JoinAt, enrollment.EndAt)

	var unknown *apperrors.UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownError, got %v", err)
	}
	if unknown.EntityID != enrollment.ID {
		t.Fatalf("unknown error should carry the enrollment id")
	}
}

func TestCloseEnrollment(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()
	enrollment := env.enroll(t, course.ID, user.ID)
	before := time.Now().UTC()

	closed, err := env.service.CloseEnrollment(context.Background(), enrollment.ID, 88)
	if err != nil {
		t.Fatalf("close enrollment: %v", err)
	}
	if closed.IsActive {
		t.Fatalf("closed enrollment must be inactive")
	}
	if closed.Rating != 88 {
		t.Fatalf("expected final rating 88, got %d", closed.Rating)
	}
	if closed.EndAt.Before(before) {
		t.Fatalf("close must stamp the end timestamp to now")
	}
}

func TestCloseEnrollment_NotFound(t *testing.T) {
	env := newEnrollmentEnv()

	_, err := env.service.CloseEnrollment(context.Background(), uuid.New(), 50)
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
}

func TestCloseEnrollment_RatingOutOfRange(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()
	enrollment := env.enroll(t, course.ID, user.ID)

	_, err := env.service.CloseEnrollment(context.Background(), enrollment.ID, 101)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	if !env.store.enrollments[enrollment.ID].IsActive {
		t.Fatalf("invalid close must leave the enrollment untouched")
	}
}

func TestDeleteEnrollment(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	user := env.addUser()
	enrollment := env.enroll(t, course.ID, user.ID)

	removed, err := env.service.DeleteEnrollment(context.Background(), enrollment.ID)
	if err != nil {
		t.Fatalf("delete enrollment: %v", err)
	}
	if removed.ID != enrollment.ID {
		t.Fatalf("delete must return the removed record")
	}
	if len(env.store.enrollments) != 0 {
		t.Fatalf("enrollment still present after delete")
	}
}

func TestDeleteEnrollment_NotFound(t *testing.T) {
	env := newEnrollmentEnv()

	_, err := env.service.DeleteEnrollment(context.Background(), uuid.New())
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
}

func TestCloseCourseEnrollments(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	first := env.enroll(t, course.ID, env.addUser().ID)
	second := env.enroll(t, course.ID, env.addUser().ID)
	firstRating := first.Rating
	secondEnd := second.EndAt

	closed, err := env.service.CloseCourseEnrollments(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("close course enrollments: %v", err)
	}
	if len(closed) != 2 {
		t.Fatalf("expected 2 closed enrollments, got %d", len(closed))
	}
	for _, enrollment := range closed {
		if enrollment.IsActive {
			t.Fatalf("enrollment %s still active after course close", enrollment.ID)
		}
	}

	// Bulk close leaves ratings and end dates untouched
	if env.store.enrollments[first.ID].Rating != firstRating {
		t.Fatalf("bulk close must not touch ratings")
	}
	if !env.store.enrollments[second.ID].EndAt.Equal(secondEnd) {
		t.Fatalf("bulk close must not touch end timestamps")
	}
}

func TestCloseCourseEnrollments_Empty(t *testing.T) {
	env := newEnrollmentEnv()
	course := env.addCourse(10)
	writes := env.store.enrollmentWrites

	closed, err := env.service.CloseCourseEnrollments(context.Background(), course.ID)
	if err != nil {
		t.Fatalf("close course enrollments: %v", err)
	}
	if len(closed) != 0 {
		t.Fatalf("expected empty result, got %d", len(closed))
	}
	if env.store.enrollmentWrites != writes {
		t.Fatalf("closing a course with no enrollments must not write")
	}
}

func TestGetEnrollmentByID_NotFound(t *testing.T) {
	env := newEnrollmentEnv()

	_, err := env.service.GetEnrollmentByID(context.Background(), uuid.New())
	if !errors.Is(err, apperrors.ErrEnrollmentNotFound) {
		t.Fatalf("expected ErrEnrollmentNotFound, got %v", err)
	}
}
