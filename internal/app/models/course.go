package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a course students can enroll into.
type Course struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"` // Unique across all courses
	StartAt     time.Time `json:"startAt" db:"start_at"`
	FinishAt    time.Time `json:"finishAt" db:"finish_at"`
	MaxStudents int       `json:"maxStudents" db:"max_students"` // 0..100
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// NewCourse creates a course with a generated id and a fresh update stamp
func NewCourse(name string, startAt, finishAt time.Time, maxStudents int) *Course {
	return &Course{
		ID:          uuid.New(),
		Name:        name,
		StartAt:     startAt,
		FinishAt:    finishAt,
		MaxStudents: maxStudents,
		UpdatedAt:   time.Now().UTC(),
	}
}

// UpdateDetails applies new field values and refreshes the update stamp
func (c *Course) UpdateDetails(name string, startAt, finishAt time.Time, maxStudents int) {
	c.Name = name
	c.StartAt = startAt
	c.FinishAt = finishAt
	c.MaxStudents = maxStudents
	c.UpdatedAt = time.Now().UTC()
}
