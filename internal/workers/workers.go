package workers

import (
	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/store"
)

// Workers aggregates the application's background workers behind a single
// lifecycle. Run starts every worker; Stop shuts them down in reverse order.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the worker set from configuration. A zero reminder
// interval disables the reminder worker.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if cfg.ReminderInterval > 0 {
		ws.workers = append(ws.workers, NewReminderWorker(storages.HabitRepository, cfg.ReminderInterval, logger))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
