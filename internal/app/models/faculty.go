package models

import (
	"time"

	"github.com/google/uuid"
)

// Faculty represents a faculty at the university
type Faculty struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"` // Unique across all faculties
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// NewFaculty creates a faculty with a generated id and a fresh update stamp
func NewFaculty(name string) *Faculty {
	return &Faculty{
		ID:        uuid.New(),
		Name:      name,
		UpdatedAt: time.Now().UTC(),
	}
}

// Rename changes the faculty name and refreshes the update stamp
func (f *Faculty) Rename(name string) {
	f.Name = name
	f.UpdatedAt = time.Now().UTC()
}
