package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	FacultyID uuid.UUID `json:"facultyId" db:"faculty_id"` // Owning faculty
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Faculty *Faculty `json:"faculty,omitempty"`
}

// NewUser creates a user with a generated id and a fresh update stamp
func NewUser(firstName, lastName string, facultyID uuid.UUID) *User {
	return &User{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		FacultyID: facultyID,
		UpdatedAt: time.Now().UTC(),
	}
}

// FullName returns the user's derived display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UpdateDetails applies new field values and refreshes the update stamp
func (u *User) UpdateDetails(firstName, lastName string, facultyID uuid.UUID) {
	u.FirstName = firstName
	u.LastName = lastName
	u.FacultyID = facultyID
	u.UpdatedAt = time.Now().UTC()
}
