package models

import "time"

// TrackingStatus is the outcome recorded for a habit on a given day.
type TrackingStatus string

const (
	StatusCompleted TrackingStatus = "completed"
	StatusFailed    TrackingStatus = "failed"
	StatusSkipped   TrackingStatus = "skipped"
)

// Valid reports whether s is one of the known tracking statuses.
func (s TrackingStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusSkipped:
		return true
	}
	return false
}

// HabitTracking is a daily tracking record for a habit. At most one record
// exists per (HabitID, Date); recording the same day again overwrites the
// previous status and notes.
type HabitTracking struct {
	// ID is the database-assigned identifier of the tracking record.
	ID int64 `json:"id"`

	// HabitID is the identifier of the habit this record belongs to.
	HabitID int64 `json:"habit_id"`

	// Date is the calendar day the record covers, in "2006-01-02" form.
	Date string `json:"date"`

	// Status is the recorded outcome for the day.
	Status TrackingStatus `json:"status"`

	// Notes is an optional comment, up to 500 characters.
	Notes *string `json:"notes,omitempty"`

	// CreatedAt is the immutable creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the HabitTracking model.
func (t HabitTracking) TableName() string {
	return "habit_tracking"
}
