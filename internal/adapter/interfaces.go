// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the habit-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ansorokin/habit-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// habit-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetTokens stores the token pair attached to all subsequent
	// authenticated requests. It is called automatically after a successful
	// Register, Login, or Refresh.
	SetTokens(accessToken, refreshToken string)

	// AccessToken returns the bearer token currently stored in the adapter,
	// or an empty string if no token has been set yet.
	AccessToken() string

	// Register creates an account and stores the issued token pair.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with email and password and stores the issued
	// token pair.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Refresh exchanges the stored refresh token for a fresh pair.
	Refresh(ctx context.Context) (models.AuthResponse, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.User, error)

	// Logout tells the server the session is over and drops the stored pair.
	Logout(ctx context.Context) error

	// ChangePassword rotates the account password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// CreateHabit adds a habit to the authenticated user's collection.
	CreateHabit(ctx context.Context, req models.HabitCreate) (models.Habit, error)

	// ListHabits returns the user's habits, optionally including
	// soft-deleted ones.
	ListHabits(ctx context.Context, includeInactive bool) ([]models.Habit, error)

	// GetHabit returns a single habit by id.
	GetHabit(ctx context.Context, habitID int64) (models.Habit, error)

	// UpdateHabit applies a partial update to a habit.
	UpdateHabit(ctx context.Context, habitID int64, update models.HabitUpdate) (models.Habit, error)

	// DeleteHabit soft-deletes a habit.
	DeleteHabit(ctx context.Context, habitID int64) error

	// Track records the habit's outcome for one day. A zero-valued request
	// marks today as completed.
	Track(ctx context.Context, habitID int64, req models.TrackRequest) (models.HabitTracking, error)

	// History returns the habit's tracking records, newest first.
	History(ctx context.Context, habitID int64) ([]models.HabitTracking, error)
}
