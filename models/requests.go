package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the payload of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest is the payload of POST /api/auth/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// HabitCreate is the payload of POST /api/habits. Optional fields left nil
// receive their documented defaults.
type HabitCreate struct {
	Title        string  `json:"title"`
	Description  *string `json:"description,omitempty"`
	Color        *string `json:"color,omitempty"`
	GoalStreak   *int    `json:"goal_streak,omitempty"`
	ReminderTime *string `json:"reminder_time,omitempty"`
}

// TrackRequest is the payload of POST /api/habits/{id}/track. An empty Date
// means "today"; an empty Status defaults to completed.
type TrackRequest struct {
	Date   string         `json:"date,omitempty"`
	Status TrackingStatus `json:"status,omitempty"`
	Notes  *string        `json:"notes,omitempty"`
}
