package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment is the join record linking one user to one course for a bounded
// period. At most one enrollment exists per (course, user) pair. An enrollment
// starts active and is closed exactly once; there is no reopen path.
type Enrollment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CourseID  uuid.UUID `json:"courseId" db:"course_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"` // 0..100
	JoinAt    time.Time `json:"joinAt" db:"join_at"`
	EndAt     time.Time `json:"endAt" db:"end_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	IsActive  bool      `json:"isActive" db:"is_active"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
	User   *User   `json:"user,omitempty"`
}

// NewEnrollment creates an active enrollment with a generated id and a fresh
// update stamp.
func NewEnrollment(courseID, userID uuid.UUID, rating int, joinAt, endAt time.Time) *Enrollment {
	return &Enrollment{
		ID:        uuid.New(),
		CourseID:  courseID,
		UserID:    userID,
		Rating:    rating,
		JoinAt:    joinAt,
		EndAt:     endAt,
		UpdatedAt: time.Now().UTC(),
		IsActive:  true,
	}
}

// UpdateDetails applies new field values and refreshes the update stamp.
// The active flag is not touched; updating never closes an enrollment.
func (e *Enrollment) UpdateDetails(courseID, userID uuid.UUID, rating int, joinAt, endAt time.Time) {
	e.CourseID = courseID
	e.UserID = userID
	e.Rating = rating
	e.JoinAt = joinAt
	e.EndAt = endAt
	e.UpdatedAt = time.Now().UTC()
}

// Close finishes the enrollment with a final rating: the end timestamp is set
// to now and the record goes inactive.
func (e *Enrollment) Close(finalRating int) {
	now := time.Now().UTC()
	e.Rating = finalRating
	e.EndAt = now
	e.UpdatedAt = now
	e.IsActive = false
}

// Deactivate marks the enrollment inactive without touching rating or end
// timestamp. Used when a whole course is closed out.
func (e *Enrollment) Deactivate() {
	e.IsActive = false
	e.UpdatedAt = time.Now().UTC()
}
