package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/models"
)

// habitRepository is the SQL-backed implementation of [HabitRepository].
// Every query it produces carries the owner's user_id in the WHERE clause,
// so a habit belonging to another user behaves exactly like a missing row.
type habitRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHabitRepository constructs a [HabitRepository] backed by the provided
// database connection and logger.
func NewHabitRepository(db *DB, logger *logger.Logger) HabitRepository {
	logger.Debug().Msg("creating habit repository")
	return &habitRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a new habit and returns it with server-assigned fields
// (ID, IsActive, CreatedAt).
func (r *habitRepository) Insert(ctx context.Context, habit models.Habit) (models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildInsertHabit(habit)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.Insert").Msg("error building insert query")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Habit
	err = r.db.execWithRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		return scanHabit(row, &created)
	})
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.Insert").Msg("error inserting habit")
		return models.Habit{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListByOwner returns the user's habits ordered newest first. Soft-deleted
// habits are excluded unless includeInactive is set.
func (r *habitRepository) ListByOwner(ctx context.Context, userID string, includeInactive bool) ([]models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListByOwner(userID, includeInactive)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.ListByOwner").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.ListByOwner").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	habits := make([]models.Habit, 0)
	for rows.Next() {
		var h models.Habit
		if err := scanHabit(rows, &h); err != nil {
			log.Err(err).Str("func", "*habitRepository.ListByOwner").Msg("error scanning habit rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return habits, nil
}

// ListDueReminders returns all active habits, across all users, whose
// reminder_time matches the given "HH:MM" value.
func (r *habitRepository) ListDueReminders(ctx context.Context, reminderTime string) ([]models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListDueReminders(reminderTime)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.ListDueReminders").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.ListDueReminders").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	habits := make([]models.Habit, 0)
	for rows.Next() {
		var h models.Habit
		if err := scanHabit(rows, &h); err != nil {
			log.Err(err).Str("func", "*habitRepository.ListDueReminders").Msg("error scanning habit rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return habits, nil
}

// FindByOwnerAndID retrieves a single habit scoped by owner. Returns
// [ErrHabitNotFound] when no row matches the (user_id, id) pair.
func (r *habitRepository) FindByOwnerAndID(ctx context.Context, userID string, habitID int64) (models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildFindByOwnerAndID(userID, habitID)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.FindByOwnerAndID").Msg("error building select query")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Habit
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanHabit(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, ErrHabitNotFound
		}
		log.Err(err).Str("func", "*habitRepository.FindByOwnerAndID").Msg("error scanning habit row")
		return models.Habit{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateFields applies a partial update to a habit scoped by owner and
// returns the updated row. Returns [ErrHabitNotFound] when the (user_id, id)
// pair matches nothing.
func (r *habitRepository) UpdateFields(ctx context.Context, userID string, habitID int64, update models.HabitUpdate) (models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpdateFields(userID, habitID, update)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.UpdateFields").Msg("error building update query")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Habit
	err = r.db.execWithRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		return scanHabit(row, &updated)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, ErrHabitNotFound
		}
		log.Err(err).Str("func", "*habitRepository.UpdateFields").Msg("error updating habit")
		return models.Habit{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func scanHabit(row rowScanner, habit *models.Habit) error {
	return row.Scan(&habit.ID, &habit.UserID, &habit.Title, &habit.Description, &habit.Color, &habit.GoalStreak, &habit.ReminderTime, &habit.IsActive, &habit.CreatedAt)
}
