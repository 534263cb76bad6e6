package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewEnrollment(t *testing.T) {
	courseID, userID := uuid.New(), uuid.New()
	joinAt := time.Now().UTC()
	endAt := joinAt.Add(90 * 24 * time.Hour)

	enrollment := NewEnrollment(courseID, userID, 10, joinAt, endAt)

	if !enrollment.IsActive {
		t.Fatalf("new enrollment must start active")
	}
	if enrollment.ID == uuid.Nil {
		t.Fatalf("new enrollment must get an id")
	}
	if enrollment.CourseID != courseID || enrollment.UserID != userID {
		t.Fatalf("enrollment keys mismatch")
	}
}

func TestEnrollmentClose(t *testing.T) {
	enrollment := NewEnrollment(uuid.New(), uuid.New(), 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
	before := time.Now().UTC()

	enrollment.Close(95)

	if enrollment.IsActive {
		t.Fatalf("closed enrollment must be inactive")
	}
	if enrollment.Rating != 95 {
		t.Fatalf("close must record the final rating")
	}
	if enrollment.EndAt.Before(before) {
		t.Fatalf("close must stamp the end timestamp to now")
	}
}

func TestEnrollmentDeactivate(t *testing.T) {
	joinAt := time.Now().UTC()
	endAt := joinAt.Add(time.Hour)
	enrollment := NewEnrollment(uuid.New(), uuid.New(), 40, joinAt, endAt)

	enrollment.Deactivate()

	if enrollment.IsActive {
		t.Fatalf("deactivated enrollment must be inactive")
	}
	if enrollment.Rating != 40 {
		t.Fatalf("deactivate must not touch the rating")
	}
	if !enrollment.EndAt.Equal(endAt) {
		t.Fatalf("deactivate must not touch the end timestamp")
	}
}

func TestEnrollmentUpdateDetails(t *testing.T) {
	enrollment := NewEnrollment(uuid.New(), uuid.New(), 0, time.Now().UTC(), time.Now().UTC().Add(time.Hour))
	newCourse, newUser := uuid.New(), uuid.New()
	newJoin := time.Now().UTC().Add(time.Hour)
	newEnd := newJoin.Add(time.Hour)

	enrollment.UpdateDetails(newCourse, newUser, 77, newJoin, newEnd)

	if enrollment.CourseID != newCourse || enrollment.UserID != newUser || enrollment.Rating != 77 {
		t.Fatalf("update not applied")
	}
	if !enrollment.IsActive {
		t.Fatalf("updating must not close the enrollment")
	}
}

func TestUserFullName(t *testing.T) {
	user := NewUser("John", "Doe", uuid.New())
	if got := user.FullName(); got != "John Doe" {
		t.Fatalf("expected %q, got %q", "John Doe", got)
	}
}
