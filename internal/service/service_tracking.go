package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/store"
	"github.com/ansorokin/habit-keeper/internal/validators"
	"github.com/ansorokin/habit-keeper/models"
)

// trackingService is the concrete implementation of TrackingService. Every
// operation resolves the habit through the owner-scoped habit repository
// first, so tracking rows are only ever reachable through habits the caller
// owns.
type trackingService struct {
	habitRepository    store.HabitRepository
	trackingRepository store.TrackingRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewTrackingService constructs a TrackingService backed by the given
// repositories.
func NewTrackingService(habitRepository store.HabitRepository, trackingRepository store.TrackingRepository, validator validators.Validator, logger *logger.Logger) TrackingService {
	return &trackingService{
		habitRepository:    habitRepository,
		trackingRepository: trackingRepository,
		validator:          validator,
		logger:             logger,
	}
}

// Track records the habit's outcome for one day. An omitted date means
// today; an omitted status means completed. Recording the same day twice
// overwrites the earlier record in place.
func (s *trackingService) Track(ctx context.Context, userID string, habitID int64, req models.TrackRequest) (models.HabitTracking, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Int64("habit_id", habitID).Msg("invalid tracking data provided")
		return models.HabitTracking{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.habitRepository.FindByOwnerAndID(ctx, userID, habitID); err != nil {
		if errors.Is(err, store.ErrHabitNotFound) {
			return models.HabitTracking{}, ErrHabitNotFound
		}
		log.Err(err).Int64("habit_id", habitID).Msg("habit lookup ended with error")
		return models.HabitTracking{}, fmt.Errorf("habit lookup ended with error: %w", err)
	}

	record := models.HabitTracking{
		HabitID: habitID,
		Date:    req.Date,
		Status:  req.Status,
		Notes:   req.Notes,
	}
	if record.Date == "" {
		record.Date = time.Now().Format("2006-01-02")
	}
	if record.Status == "" {
		record.Status = models.StatusCompleted
	}

	saved, err := s.trackingRepository.UpsertForDay(ctx, record)
	if err != nil {
		log.Err(err).Int64("habit_id", habitID).Msg("tracking record save ended with error")
		return models.HabitTracking{}, fmt.Errorf("tracking record save ended with error: %w", err)
	}

	return saved, nil
}

// History returns the habit's tracking records, most recent day first.
func (s *trackingService) History(ctx context.Context, userID string, habitID int64) ([]models.HabitTracking, error) {
	log := logger.FromContext(ctx)

	if _, err := s.habitRepository.FindByOwnerAndID(ctx, userID, habitID); err != nil {
		if errors.Is(err, store.ErrHabitNotFound) {
			return nil, ErrHabitNotFound
		}
		log.Err(err).Int64("habit_id", habitID).Msg("habit lookup ended with error")
		return nil, fmt.Errorf("habit lookup ended with error: %w", err)
	}

	records, err := s.trackingRepository.ListByHabit(ctx, habitID)
	if err != nil {
		log.Err(err).Int64("habit_id", habitID).Msg("tracking history listing ended with error")
		return nil, fmt.Errorf("tracking history listing ended with error: %w", err)
	}

	return records, nil
}
