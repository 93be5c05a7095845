package workers

import (
	"testing"
	"time"

	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/store"
)

// mockWorker tracks lifecycle calls for the aggregate tests.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run()  { m.runCount++ }
func (m *mockWorker) Stop() { m.stopCount++ }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Stop_AllWorkersAreStopped(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run()
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
	ws.Stop()
}

func TestNewWorkers_ZeroIntervalDisablesReminder(t *testing.T) {
	ws := NewWorkers(&store.Storages{}, config.Workers{}, logger.Nop())

	if len(ws.workers) != 0 {
		t.Fatalf("expected no workers, got %d", len(ws.workers))
	}
}

func TestNewWorkers_ReminderEnabled(t *testing.T) {
	cfg := config.Workers{ReminderInterval: time.Minute}
	ws := NewWorkers(&store.Storages{}, cfg, logger.Nop())

	if len(ws.workers) != 1 {
		t.Fatalf("expected 1 worker, got %d", len(ws.workers))
	}
	if _, ok := ws.workers[0].(*ReminderWorker); !ok {
		t.Fatalf("expected a *ReminderWorker, got %T", ws.workers[0])
	}
}
