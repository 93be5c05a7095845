package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID, generated app-side).
	UserID string `json:"id"`

	// Username is the unique public handle chosen at registration.
	Username string `json:"username"`

	// Email is the unique address used for login. Matched exactly as stored.
	Email string `json:"email"`

	// HashedPassword stores the argon2id-encoded password hash.
	// This value MUST be a derived value (KDF output), never plaintext.
	// It is never exposed via JSON.
	HashedPassword string `json:"-"`

	// StreakDays is a counter reserved for streak computation.
	// Nothing in this service mutates it; it is stored and returned verbatim.
	StreakDays int `json:"streak_days"`

	// IsActive marks whether the account may authenticate.
	// When false, login and token resolution fail even with valid credentials.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
