package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/models"
)

func newTestTrackingRepo(t *testing.T) (*trackingRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &trackingRepository{
		db:     &DB{DB: db, sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func trackingRows(records ...models.HabitTracking) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "habit_id", "date", "status", "notes", "created_at"})
	for _, rec := range records {
		rows.AddRow(rec.ID, rec.HabitID, rec.Date, string(rec.Status), rec.Notes, time.Now())
	}
	return rows
}

func TestUpsertForDay_Success(t *testing.T) {
	repo, mock, db := newTestTrackingRepo(t)
	defer db.Close()

	record := models.HabitTracking{HabitID: 42, Date: "2026-09-01", Status: models.StatusCompleted}
	saved := record
	saved.ID = 7

	mock.ExpectQuery("INSERT INTO habit_tracking").
		WithArgs(record.HabitID, record.Date, record.Status, record.Notes).
		WillReturnRows(trackingRows(saved))

	got, err := repo.UpsertForDay(context.Background(), record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 7 {
		t.Errorf("expected ID=7, got %d", got.ID)
	}
	if got.Status != models.StatusCompleted {
		t.Errorf("expected status completed, got %s", got.Status)
	}
}

func TestUpsertForDay_DBError(t *testing.T) {
	repo, mock, db := newTestTrackingRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO habit_tracking").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.UpsertForDay(context.Background(), models.HabitTracking{HabitID: 42, Date: "2026-09-01"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListByHabit_Success(t *testing.T) {
	repo, mock, db := newTestTrackingRepo(t)
	defer db.Close()

	newer := models.HabitTracking{ID: 2, HabitID: 42, Date: "2026-09-01", Status: models.StatusCompleted}
	older := models.HabitTracking{ID: 1, HabitID: 42, Date: "2026-08-31", Status: models.StatusSkipped}

	mock.ExpectQuery("SELECT .+ FROM habit_tracking").
		WithArgs(int64(42)).
		WillReturnRows(trackingRows(newer, older))

	records, err := repo.ListByHabit(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Date != "2026-09-01" {
		t.Errorf("expected most recent day first, got %s", records[0].Date)
	}
}

func TestListByHabit_Empty(t *testing.T) {
	repo, mock, db := newTestTrackingRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM habit_tracking").
		WithArgs(int64(42)).
		WillReturnRows(trackingRows())

	records, err := repo.ListByHabit(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
