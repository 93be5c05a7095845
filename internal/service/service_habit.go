package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/store"
	"github.com/ansorokin/habit-keeper/internal/validators"
	"github.com/ansorokin/habit-keeper/models"
)

// habitService is the concrete implementation of HabitService. Ownership
// enforcement lives in the repository layer: every query carries the user id,
// so this service never needs to compare owners itself.
type habitService struct {
	habitRepository store.HabitRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewHabitService constructs a HabitService backed by the given repository.
func NewHabitService(habitRepository store.HabitRepository, validator validators.Validator, logger *logger.Logger) HabitService {
	return &habitService{
		habitRepository: habitRepository,
		validator:       validator,
		logger:          logger,
	}
}

// Create validates the payload, fills in defaults for omitted fields and
// persists a new active habit.
//
// Defaults: color #3B82F6, goal streak 21 days, no description, no reminder.
// A color supplied without the leading "#" is normalised before validation.
func (s *habitService) Create(ctx context.Context, userID string, req models.HabitCreate) (models.Habit, error) {
	log := logger.FromContext(ctx)

	if req.Color != nil {
		normalized := models.NormalizeColor(*req.Color)
		req.Color = &normalized
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("invalid habit data provided")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	habit := models.Habit{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Color:        models.DefaultHabitColor,
		GoalStreak:   models.DefaultGoalStreak,
		ReminderTime: req.ReminderTime,
	}
	if req.Color != nil {
		habit.Color = *req.Color
	}
	if req.GoalStreak != nil {
		habit.GoalStreak = *req.GoalStreak
	}

	created, err := s.habitRepository.Insert(ctx, habit)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("habit creation ended with error")
		return models.Habit{}, fmt.Errorf("habit creation ended with error: %w", err)
	}

	return created, nil
}

// List returns the user's habits, newest first. Soft-deleted habits are
// excluded unless includeInactive is set.
func (s *habitService) List(ctx context.Context, userID string, includeInactive bool) ([]models.Habit, error) {
	habits, err := s.habitRepository.ListByOwner(ctx, userID, includeInactive)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("habit listing ended with error")
		return nil, fmt.Errorf("habit listing ended with error: %w", err)
	}

	return habits, nil
}

// Get returns one habit scoped to the user. A habit owned by someone else is
// reported as ErrHabitNotFound, never as a permission error.
func (s *habitService) Get(ctx context.Context, userID string, habitID int64) (models.Habit, error) {
	habit, err := s.habitRepository.FindByOwnerAndID(ctx, userID, habitID)
	if err != nil {
		if errors.Is(err, store.ErrHabitNotFound) {
			return models.Habit{}, ErrHabitNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("habit_id", habitID).Msg("habit lookup ended with error")
		return models.Habit{}, fmt.Errorf("habit lookup ended with error: %w", err)
	}

	return habit, nil
}

// Update applies merge semantics: only the fields the update carries
// overwrite stored values. An update carrying no fields at all degrades to a
// plain read of the current state.
func (s *habitService) Update(ctx context.Context, userID string, habitID int64, update models.HabitUpdate) (models.Habit, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return s.Get(ctx, userID, habitID)
	}

	if update.Color != nil {
		normalized := models.NormalizeColor(*update.Color)
		update.Color = &normalized
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Int64("habit_id", habitID).Msg("invalid habit update provided")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.habitRepository.UpdateFields(ctx, userID, habitID, update)
	if err != nil {
		if errors.Is(err, store.ErrHabitNotFound) {
			return models.Habit{}, ErrHabitNotFound
		}
		log.Err(err).Int64("habit_id", habitID).Msg("habit update ended with error")
		return models.Habit{}, fmt.Errorf("habit update ended with error: %w", err)
	}

	return updated, nil
}

// Delete soft-deletes a habit by clearing its active flag. The row and its
// tracking history stay in storage. Deleting an already deleted habit
// succeeds again with no further effect.
func (s *habitService) Delete(ctx context.Context, userID string, habitID int64) error {
	inactive := false

	_, err := s.habitRepository.UpdateFields(ctx, userID, habitID, models.HabitUpdate{IsActive: &inactive})
	if err != nil {
		if errors.Is(err, store.ErrHabitNotFound) {
			return ErrHabitNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("habit_id", habitID).Msg("habit deletion ended with error")
		return fmt.Errorf("habit deletion ended with error: %w", err)
	}

	return nil
}
