package client

import (
	"context"
	"errors"

	"github.com/ansorokin/habit-keeper/internal/adapter"
	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/tui"
)

// App runs the terminal client: the authentication flow first, then the
// habit screens. Logging out returns the user to the authentication flow;
// quitting either phase exits the process.
type App struct {
	server adapter.ServerAdapter
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if server == nil || ui == nil {
		return nil, errors.New("server adapter and tui are required")
	}

	return &App{server: server, tui: ui, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.tui.AuthFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err := a.server.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout request failed")
		}
	}
}
