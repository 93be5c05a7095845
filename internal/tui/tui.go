// Package tui implements the interactive terminal client.
//
// The client runs in two phases. AuthFlow hosts the welcome menu with the
// login and registration screens; once a token pair is held, MainLoop takes
// over with the habit list, detail, and editing screens. All server
// communication goes through [adapter.ServerAdapter].
package tui

import (
	"context"
	"errors"

	"github.com/ansorokin/habit-keeper/internal/adapter"
	"github.com/ansorokin/habit-keeper/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	adapter adapter.ServerAdapter
}

func New(adapter adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{adapter: adapter}, nil
}

// AuthFlow runs the menu/login/register screens until the user either
// authenticates or quits. A successful registration also finishes the
// flow, since the server issues tokens on registration.
// Returns [ErrUserQuit] when the user backs out.
func (t *TUI) AuthFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.adapter),
		"register": NewRegisterModel(ctx, t.adapter),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the habit screens until the user quits or logs out.
// Returns logout=true when the user chose to log out rather than exit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.adapter)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
