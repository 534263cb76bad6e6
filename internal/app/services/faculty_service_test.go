package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

// facultyStoreStub enforces the same contract as the production repository:
// unique names on insert and rename, delete blocked while users remain.
type facultyStoreStub struct {
	faculties map[uuid.UUID]*models.Faculty
	withUsers map[uuid.UUID]bool
}

func newFacultyStoreStub() *facultyStoreStub {
	return &facultyStoreStub{
		faculties: make(map[uuid.UUID]*models.Faculty),
		withUsers: make(map[uuid.UUID]bool),
	}
}

func (f *facultyStoreStub) nameTaken(name string, exclude uuid.UUID) bool {
	for _, faculty := range f.faculties {
		if faculty.Name == name && faculty.ID != exclude {
			return true
		}
	}
	return false
}

func (f *facultyStoreStub) Create(_ context.Context, faculty *models.Faculty) error {
	if f.nameTaken(faculty.Name, faculty.ID) {
		return apperrors.ErrFacultyAlreadyExists
	}
	f.faculties[faculty.ID] = faculty
	return nil
}

func (f *facultyStoreStub) GetByID(_ context.Context, id uuid.UUID) (*models.Faculty, error) {
	faculty, ok := f.faculties[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	return faculty, nil
}

func (f *facultyStoreStub) GetAll(_ context.Context) ([]*models.Faculty, error) {
	out := make([]*models.Faculty, 0, len(f.faculties))
	for _, faculty := range f.faculties {
		out = append(out, faculty)
	}
	return out, nil
}

func (f *facultyStoreStub) Update(_ context.Context, faculty *models.Faculty) error {
	if _, ok := f.faculties[faculty.ID]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	if f.nameTaken(faculty.Name, faculty.ID) {
		return apperrors.ErrFacultyAlreadyExists
	}
	f.faculties[faculty.ID] = faculty
	return nil
}

func (f *facultyStoreStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.faculties[id]; !ok {
		return apperrors.ErrFacultyNotFound
	}
	if f.withUsers[id] {
		return apperrors.ErrFacultyHasUsers
	}
	delete(f.faculties, id)
	return nil
}

func TestCreateFaculty(t *testing.T) {
	store := newFacultyStoreStub()
	service := NewFacultyService(store)

	faculty, err := service.CreateFaculty(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("create faculty: %v", err)
	}
	if faculty.Name != "Engineering" {
		t.Fatalf("expected name Engineering, got %q", faculty.Name)
	}
	if _, ok := store.faculties[faculty.ID]; !ok {
		t.Fatalf("faculty not persisted")
	}
}

func TestCreateFaculty_DuplicateName(t *testing.T) {
	store := newFacultyStoreStub()
	service := NewFacultyService(store)

	if _, err := service.CreateFaculty(context.Background(), "Engineering"); err != nil {
		t.Fatalf("create faculty: %v", err)
	}
	_, err := service.CreateFaculty(context.Background(), "Engineering")
	if !errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
		t.Fatalf("expected ErrFacultyAlreadyExists, got %v", err)
	}
}

func TestCreateFaculty_InvalidName(t *testing.T) {
	service := NewFacultyService(newFacultyStoreStub())

	cases := []struct {
		label string
		name  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"too short", "ab"},
		{"too long", strings.Repeat("x", 256)},
	}
	for _, tc := range cases {
		_, err := service.CreateFaculty(context.Background(), tc.name)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("%s: expected ErrValidationFailed, got %v", tc.label, err)
		}
	}
}

func TestUpdateFaculty(t *testing.T) {
	store := newFacultyStoreStub()
	service := NewFacultyService(store)

	faculty, err := service.CreateFaculty(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("create faculty: %v", err)
	}

	updated, err := service.UpdateFaculty(context.Background(), faculty.ID, "Applied Sciences")
	if err != nil {
		t.Fatalf("update faculty: %v", err)
	}
	if updated.Name != "Applied Sciences" {
		t.Fatalf("expected renamed faculty, got %q", updated.Name)
	}
}

func TestUpdateFaculty_NotFound(t *testing.T) {
	service := NewFacultyService(newFacultyStoreStub())

	_, err := service.UpdateFaculty(context.Background(), uuid.New(), "Engineering")
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Fatalf("expected ErrFacultyNotFound, got %v", err)
	}
}

func TestDeleteFaculty_Blocked(t *testing.T) {
	store := newFacultyStoreStub()
	service := NewFacultyService(store)

	faculty, err := service.CreateFaculty(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("create faculty: %v", err)
	}
	store.withUsers[faculty.ID] = true

	err = service.DeleteFaculty(context.Background(), faculty.ID)
	if !errors.Is(err, apperrors.ErrFacultyHasUsers) {
		t.Fatalf("expected ErrFacultyHasUsers, got %v", err)
	}
	if _, ok := store.faculties[faculty.ID]; !ok {
		t.Fatalf("blocked delete must not remove the faculty")
	}
}

func TestDeleteFaculty(t *testing.T) {
	store := newFacultyStoreStub()
	service := NewFacultyService(store)

	faculty, err := service.CreateFaculty(context.Background(), "Engineering")
	if err != nil {
		t.Fatalf("create faculty: %v", err)
	}

	if err := service.DeleteFaculty(context.Background(), faculty.ID); err != nil {
		t.Fatalf("delete faculty: %v", err)
	}
	if len(store.faculties) != 0 {
		t.Fatalf("faculty still present after delete")
	}
}
