package service

import (
	"context"

	"github.com/ansorokin/habit-keeper/models"
)

// AuthService manages accounts and the JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Refresh exchanges a valid refresh token for the account it belongs to.
	// The caller issues a new token pair afterwards.
	Refresh(ctx context.Context, refreshToken string) (models.User, error)

	// Resolve maps a raw access token to a live user record. Every failure
	// mode collapses into ErrUnauthenticated.
	Resolve(ctx context.Context, accessToken string) (models.User, error)

	CreateTokenPair(ctx context.Context, user models.User) (models.TokenPair, error)
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error
	SetActive(ctx context.Context, userID string, active bool) (models.User, error)
}

// HabitService manages the habit lifecycle. Every operation is scoped to the
// calling user; habit ids from other accounts resolve to ErrHabitNotFound.
type HabitService interface {
	Create(ctx context.Context, userID string, req models.HabitCreate) (models.Habit, error)
	List(ctx context.Context, userID string, includeInactive bool) ([]models.Habit, error)
	Get(ctx context.Context, userID string, habitID int64) (models.Habit, error)
	Update(ctx context.Context, userID string, habitID int64, update models.HabitUpdate) (models.Habit, error)
	Delete(ctx context.Context, userID string, habitID int64) error
}

// TrackingService records daily habit outcomes.
type TrackingService interface {
	Track(ctx context.Context, userID string, habitID int64, req models.TrackRequest) (models.HabitTracking, error)
	History(ctx context.Context, userID string, habitID int64) ([]models.HabitTracking, error)
}
