// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/store"
)

// ReminderWorker periodically scans for active habits whose reminder time
// has come due and emits a structured log event for each. The event stream
// is the delivery channel: notification transports tail the log.
//
// A habit is due when its reminder_time equals the current wall-clock
// minute. The scan interval should therefore be one minute or shorter;
// longer intervals skip minutes entirely.
type ReminderWorker struct {
	habits   store.HabitRepository
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup

	// now is replaceable in tests.
	now func() time.Time
}

func NewReminderWorker(habits store.HabitRepository, interval time.Duration, logger *logger.Logger) *ReminderWorker {
	return &ReminderWorker{
		habits:   habits,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run starts the scan loop in its own goroutine and returns immediately.
func (w *ReminderWorker) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.logger.Info().Dur("interval", w.interval).Msg("reminder worker started")

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.scan(ctx)
			}
		}
	}()
}

// Stop signals the loop to finish and waits for the in-flight scan.
func (w *ReminderWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.logger.Info().Msg("reminder worker stopped")
}

// scan emits one reminder event per habit due at the current minute.
func (w *ReminderWorker) scan(ctx context.Context) {
	now := w.now().Format("15:04")

	due, err := w.habits.ListDueReminders(ctx, now)
	if err != nil {
		w.logger.Err(err).Str("reminder_time", now).Msg("reminder scan failed")
		return
	}

	for _, habit := range due {
		w.logger.Info().
			Str("event", "habit_reminder").
			Str("user_id", habit.UserID).
			Int64("habit_id", habit.ID).
			Str("title", habit.Title).
			Str("reminder_time", now).
			Msg("habit reminder due")
	}
}
