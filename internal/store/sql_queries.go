package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/ansorokin/habit-keeper/models"
)

var (
	userColumns     = []string{"user_id", "username", "email", "hashed_password", "streak_days", "is_active", "created_at"}
	habitColumns    = []string{"id", "user_id", "title", "description", "color", "goal_streak", "reminder_time", "is_active", "created_at"}
	trackingColumns = []string{"id", "habit_id", "date", "status", "notes", "created_at"}
)

const (
	returningUserColumns     = "RETURNING user_id, username, email, hashed_password, streak_days, is_active, created_at"
	returningHabitColumns    = "RETURNING id, user_id, title, description, color, goal_streak, reminder_time, is_active, created_at"
	returningTrackingColumns = "RETURNING id, habit_id, date, status, notes, created_at"
)

func (r *userRepository) buildInsertUser(user models.User) (string, []any, error) {
	return r.db.sb.
		Insert(user.TableName()).
		Columns("user_id", "username", "email", "hashed_password").
		Values(user.UserID, user.Username, user.Email, user.HashedPassword).
		Suffix(returningUserColumns).
		ToSql()
}

func (r *userRepository) buildFindUserBy(column string, value any) (string, []any, error) {
	return r.db.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
}

func (r *userRepository) buildUpdateUserFields(userID string, fields map[string]any) (string, []any, error) {
	return r.db.sb.
		Update(models.User{}.TableName()).
		SetMap(fields).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returningUserColumns).
		ToSql()
}

func (r *habitRepository) buildInsertHabit(habit models.Habit) (string, []any, error) {
	return r.db.sb.
		Insert(habit.TableName()).
		Columns("user_id", "title", "description", "color", "goal_streak", "reminder_time").
		Values(habit.UserID, habit.Title, habit.Description, habit.Color, habit.GoalStreak, habit.ReminderTime).
		Suffix(returningHabitColumns).
		ToSql()
}

func (r *habitRepository) buildListByOwner(userID string, includeInactive bool) (string, []any, error) {
	q := r.db.sb.
		Select(habitColumns...).
		From(models.Habit{}.TableName()).
		Where(sq.Eq{"user_id": userID})

	if !includeInactive {
		q = q.Where(sq.Eq{"is_active": true})
	}

	return q.OrderBy("created_at DESC", "id DESC").ToSql()
}

func (r *habitRepository) buildListDueReminders(reminderTime string) (string, []any, error) {
	return r.db.sb.
		Select(habitColumns...).
		From(models.Habit{}.TableName()).
		Where(sq.Eq{"is_active": true, "reminder_time": reminderTime}).
		OrderBy("user_id", "id").
		ToSql()
}

func (r *habitRepository) buildFindByOwnerAndID(userID string, habitID int64) (string, []any, error) {
	return r.db.sb.
		Select(habitColumns...).
		From(models.Habit{}.TableName()).
		Where(sq.Eq{"user_id": userID, "id": habitID}).
		ToSql()
}

// buildUpdateFields assembles a partial UPDATE touching only the fields the
// update carries. The WHERE clause is always owner-scoped.
func (r *habitRepository) buildUpdateFields(userID string, habitID int64, update models.HabitUpdate) (string, []any, error) {
	fields := map[string]any{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Color != nil {
		fields["color"] = *update.Color
	}
	if update.GoalStreak != nil {
		fields["goal_streak"] = *update.GoalStreak
	}
	if update.ReminderTime != nil {
		fields["reminder_time"] = *update.ReminderTime
	}
	if update.IsActive != nil {
		fields["is_active"] = *update.IsActive
	}

	return r.db.sb.
		Update(models.Habit{}.TableName()).
		SetMap(fields).
		Where(sq.Eq{"user_id": userID, "id": habitID}).
		Suffix(returningHabitColumns).
		ToSql()
}

// buildUpsertForDay inserts a tracking record or, when a record for the same
// (habit_id, date) already exists, overwrites its status and notes. The
// conflict clause works identically on PostgreSQL and SQLite.
func (r *trackingRepository) buildUpsertForDay(record models.HabitTracking) (string, []any, error) {
	return r.db.sb.
		Insert(record.TableName()).
		Columns("habit_id", "date", "status", "notes").
		Values(record.HabitID, record.Date, record.Status, record.Notes).
		Suffix("ON CONFLICT (habit_id, date) DO UPDATE SET status = excluded.status, notes = excluded.notes").
		Suffix(returningTrackingColumns).
		ToSql()
}

func (r *trackingRepository) buildListByHabit(habitID int64) (string, []any, error) {
	return r.db.sb.
		Select(trackingColumns...).
		From(models.HabitTracking{}.TableName()).
		Where(sq.Eq{"habit_id": habitID}).
		OrderBy("date DESC").
		ToSql()
}
