package models

import "time"

// DefaultHabitColor is the hex color assigned to habits created without an
// explicit color.
const DefaultHabitColor = "#3B82F6"

// DefaultGoalStreak is the goal streak length assigned to habits created
// without an explicit goal.
const DefaultGoalStreak = 21

// Habit is a user-owned tracked habit. Every read and write of a habit is
// scoped by (UserID, ID) jointly; a habit id alone never authorizes access.
type Habit struct {
	// ID is the database-assigned identifier of the habit.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user (UUID).
	UserID string `json:"user_id"`

	// Title is the display name of the habit, 1–100 characters.
	Title string `json:"title"`

	// Description is an optional free-form description, up to 500 characters.
	Description *string `json:"description,omitempty"`

	// Color is the display color as "#RRGGBB".
	Color string `json:"color"`

	// GoalStreak is the target streak length in days, 1–365.
	GoalStreak int `json:"goal_streak"`

	// ReminderTime is an optional daily reminder time in "HH:MM" form.
	ReminderTime *string `json:"reminder_time,omitempty"`

	// IsActive is false for soft-deleted habits. Soft-deleted rows are kept
	// in storage and excluded from default listings.
	IsActive bool `json:"is_active"`

	// CreatedAt is the immutable creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Habit model.
func (h Habit) TableName() string {
	return "habits"
}

// NormalizeColor prepends a missing "#" to a color value so that "3B82F6"
// and "#3B82F6" are stored identically. It does not validate the value.
func NormalizeColor(color string) string {
	if color != "" && color[0] != '#' {
		return "#" + color
	}
	return color
}

// HabitUpdate represents a partial update of a single habit.
// Only non-nil fields overwrite stored values (merge semantics);
// a nil field leaves the stored value untouched.
type HabitUpdate struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Color        *string `json:"color,omitempty"`
	GoalStreak   *int    `json:"goal_streak,omitempty"`
	ReminderTime *string `json:"reminder_time,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
// An empty update is treated as a no-op read by the service layer.
func (u HabitUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Description == nil &&
		u.Color == nil &&
		u.GoalStreak == nil &&
		u.ReminderTime == nil &&
		u.IsActive == nil
}
