package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

func newUserEnv() (*memStore, *facultyStoreStub, UserService) {
	store := newMemStore()
	faculties := newFacultyStoreStub()
	return store, faculties, NewUserService(userStoreStub{store}, faculties)
}

func TestCreateUser(t *testing.T) {
	store, faculties, service := newUserEnv()
	faculty := models.NewFaculty("Engineering")
	faculties.faculties[faculty.ID] = faculty

	user, err := service.CreateUser(context.Background(), "John", "Doe", faculty.ID)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.FacultyID != faculty.ID {
		t.Fatalf("user not assigned to faculty")
	}
	if _, ok := store.users[user.ID]; !ok {
		t.Fatalf("user not persisted")
	}
}

func TestCreateUser_FacultyNotFound(t *testing.T) {
	store, _, service := newUserEnv()

	_, err := service.CreateUser(context.Background(), "John", "Doe", uuid.New())
	if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		t.Fatalf("expected ErrFacultyNotFound, got %v", err)
	}
	if len(store.users) != 0 {
		t.Fatalf("failed create must not write")
	}
}

func TestCreateUser_InvalidNames(t *testing.T) {
	_, faculties, service := newUserEnv()
	faculty := models.NewFaculty("Engineering")
	faculties.faculties[faculty.ID] = faculty

	for _, names := range [][2]string{{"", "Doe"}, {"John", ""}, {"  ", "Doe"}} {
		_, err := service.CreateUser(context.Background(), names[0], names[1], faculty.ID)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("names %q %q: expected ErrValidationFailed, got %v", names[0], names[1], err)
		}
	}
}

func TestUpdateUser(t *testing.T) {
	store, faculties, service := newUserEnv()
	faculty := models.NewFaculty("Engineering")
	other := models.NewFaculty("Humanities")
	faculties.faculties[faculty.ID] = faculty
	faculties.faculties[other.ID] = other

	user := models.NewUser("John", "Doe", faculty.ID)
	store.users[user.ID] = user

	updated, err := service.UpdateUser(context.Background(), user.ID, "Jane", "Doe", other.ID)
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.FirstName != "Jane" || updated.FacultyID != other.ID {
		t.Fatalf("update not applied")
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	_, _, service := newUserEnv()

	_, err := service.UpdateUser(context.Background(), uuid.New(), "Jane", "Doe", uuid.New())
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	store, _, service := newUserEnv()
	user := models.NewUser("John", "Doe", uuid.New())
	store.users[user.ID] = user

	if err := service.DeleteUser(context.Background(), user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if len(store.users) != 0 {
		t.Fatalf("user still present after delete")
	}

	if err := service.DeleteUser(context.Background(), user.ID); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
