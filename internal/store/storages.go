package store

import "github.com/ansorokin/habit-keeper/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	HabitRepository    HabitRepository
	TrackingRepository TrackingRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		HabitRepository:    NewHabitRepository(db, log),
		TrackingRepository: NewTrackingRepository(db, log),
	}
}
