package http

import (
	"github.com/ansorokin/habit-keeper/internal/config"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// cfg carries token lifetimes so auth responses can report them in
	// seconds without reaching back into the service layer.
	cfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
