package service

import (
	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/crypto"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/store"
	"github.com/ansorokin/habit-keeper/internal/validators"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService     AuthService
	HabitService    HabitService
	TrackingService TrackingService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher()
	credentialsValidator := validators.NewCredentialsValidator()
	habitValidator := validators.NewHabitValidator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, credentialsValidator, cfg.App, logger),
		HabitService:    NewHabitService(storages.HabitRepository, habitValidator, logger),
		TrackingService: NewTrackingService(storages.HabitRepository, storages.TrackingRepository, habitValidator, logger),
	}
}
