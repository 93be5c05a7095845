package store

import (
	"context"
	"fmt"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/models"
)

// trackingRepository is the SQL-backed implementation of [TrackingRepository].
type trackingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTrackingRepository constructs a [TrackingRepository] backed by the
// provided database connection and logger.
func NewTrackingRepository(db *DB, logger *logger.Logger) TrackingRepository {
	logger.Debug().Msg("creating tracking repository")
	return &trackingRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertForDay records a habit's outcome for one calendar day. A second
// record for the same (habit_id, date) overwrites the first one's status
// and notes in place.
func (r *trackingRepository) UpsertForDay(ctx context.Context, record models.HabitTracking) (models.HabitTracking, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpsertForDay(record)
	if err != nil {
		log.Err(err).Str("func", "*trackingRepository.UpsertForDay").Msg("error building upsert query")
		return models.HabitTracking{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.HabitTracking
	err = r.db.execWithRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, args...)
		return scanTracking(row, &saved)
	})
	if err != nil {
		log.Err(err).Str("func", "*trackingRepository.UpsertForDay").Msg("error upserting tracking record")
		return models.HabitTracking{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// ListByHabit returns the habit's tracking history, most recent day first.
func (r *trackingRepository) ListByHabit(ctx context.Context, habitID int64) ([]models.HabitTracking, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListByHabit(habitID)
	if err != nil {
		log.Err(err).Str("func", "*trackingRepository.ListByHabit").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*trackingRepository.ListByHabit").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.HabitTracking, 0)
	for rows.Next() {
		var rec models.HabitTracking
		if err := scanTracking(rows, &rec); err != nil {
			log.Err(err).Str("func", "*trackingRepository.ListByHabit").Msg("error scanning tracking rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func scanTracking(row rowScanner, record *models.HabitTracking) error {
	return row.Scan(&record.ID, &record.HabitID, &record.Date, &record.Status, &record.Notes, &record.CreatedAt)
}
