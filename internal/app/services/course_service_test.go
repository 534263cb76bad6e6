package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

func TestCreateCourse(t *testing.T) {
	store := newMemStore()
	service := NewCourseService(courseStoreStub{store})

	start := time.Now().UTC()
	finish := start.Add(90 * 24 * time.Hour)
	course, err := service.CreateCourse(context.Background(), "Distributed Systems", start, finish, 30)
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	if course.MaxStudents != 30 {
		t.Fatalf("expected max students 30, got %d", course.MaxStudents)
	}
	if _, ok := store.courses[course.ID]; !ok {
		t.Fatalf("course not persisted")
	}
}

func TestCreateCourse_Invalid(t *testing.T) {
	service := NewCourseService(courseStoreStub{newMemStore()})
	start := time.Now().UTC()
	finish := start.Add(time.Hour)

	cases := []struct {
		label       string
		name        string
		startAt     time.Time
		finishAt    time.Time
		maxStudents int
	}{
		{"empty name", "", start, finish, 10},
		{"short name", "ab", start, finish, 10},
		{"negative capacity", "Distributed Systems", start, finish, -1},
		{"capacity above limit", "Distributed Systems", start, finish, 101},
		{"start after finish", "Distributed Systems", finish, start, 10},
		{"start equals finish", "Distributed Systems", start, start, 10},
	}
	for _, tc := range cases {
		_, err := service.CreateCourse(context.Background(), tc.name, tc.startAt, tc.finishAt, tc.maxStudents)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("%s: expected ErrValidationFailed, got %v", tc.label, err)
		}
	}
}

func TestUpdateCourse(t *testing.T) {
	store := newMemStore()
	service := NewCourseService(courseStoreStub{store})

	start := time.Now().UTC()
	finish := start.Add(90 * 24 * time.Hour)
	course, err := service.CreateCourse(context.Background(), "Distributed Systems", start, finish, 30)
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	updated, err := service.UpdateCourse(context.Background(), course.ID, "Operating Systems", start, finish, 50)
	if err != nil {
		t.Fatalf("update course: %v", err)
	}
	if updated.Name != "Operating Systems" || updated.MaxStudents != 50 {
		t.Fatalf("update not applied")
	}
}

func TestUpdateCourse_NotFound(t *testing.T) {
	service := NewCourseService(courseStoreStub{newMemStore()})
	start := time.Now().UTC()

	_, err := service.UpdateCourse(context.Background(), uuid.New(), "Operating Systems", start, start.Add(time.Hour), 10)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestDeleteCourse(t *testing.T) {
	store := newMemStore()
	service := NewCourseService(courseStoreStub{store})

	start := time.Now().UTC()
	course, err := service.CreateCourse(context.Background(), "Distributed Systems", start, start.Add(time.Hour), 10)
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	if err := service.DeleteCourse(context.Background(), course.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}
	if err := service.DeleteCourse(context.Background(), course.ID); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}
