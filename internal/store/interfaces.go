package store

import (
	"context"

	"github.com/ansorokin/habit-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateUserFields(ctx context.Context, userID string, fields map[string]any) (models.User, error)
}

// HabitRepository persists habits. Every method except ListDueReminders is
// scoped by the owner: a habit id alone never selects a row.
type HabitRepository interface {
	Insert(ctx context.Context, habit models.Habit) (models.Habit, error)
	ListByOwner(ctx context.Context, userID string, includeInactive bool) ([]models.Habit, error)
	FindByOwnerAndID(ctx context.Context, userID string, habitID int64) (models.Habit, error)
	UpdateFields(ctx context.Context, userID string, habitID int64, update models.HabitUpdate) (models.Habit, error)

	// ListDueReminders returns every active habit whose reminder_time equals
	// reminderTime ("HH:MM"). It crosses user boundaries and is reserved for
	// the background reminder worker.
	ListDueReminders(ctx context.Context, reminderTime string) ([]models.Habit, error)
}

// TrackingRepository persists daily tracking records. Ownership checks happen
// one level up: callers resolve the habit through [HabitRepository] first.
type TrackingRepository interface {
	UpsertForDay(ctx context.Context, record models.HabitTracking) (models.HabitTracking, error)
	ListByHabit(ctx context.Context, habitID int64) ([]models.HabitTracking, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are driver-specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
