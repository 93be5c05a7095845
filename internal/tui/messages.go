package tui

import (
	"github.com/ansorokin/habit-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page. Payload, when set,
// is delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the authentication flow. A nil Err closes the auth
// program and hands control to the main loop. Both the login and the
// registration screens produce it, since a successful registration also
// signs the user in.
type AuthResult struct {
	Err error
}

type habitsLoadedMsg struct {
	habits []models.Habit
	err    error
}

type habitSavedMsg struct {
	err error
}

type habitDeletedMsg struct {
	err error
}

type trackDoneMsg struct {
	record models.HabitTracking
	err    error
}

type historyLoadedMsg struct {
	records []models.HabitTracking
	err     error
}
