package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ansorokin/habit-keeper/internal/adapter"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldTitle = iota
	formFieldDescription
	formFieldColor
	formFieldGoalStreak
	formFieldReminderTime
	formFieldCount
)

type mainLoopModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	habits          []models.Habit
	idx             int
	loading         bool
	includeInactive bool
	status          string
	errMsg          string

	detail  bool
	history []models.HabitTracking

	editing        bool
	editHabitID    int64
	formInputs     []textinput.Model
	formFocus      int
	formSubmitting bool
	formErr        string

	logout bool
}

func newMainLoopModel(ctx context.Context, server adapter.ServerAdapter) mainLoopModel {
	return mainLoopModel{
		ctx:     ctx,
		server:  server,
		loading: true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadHabits()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case habitsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.habits = msg.habits
		if m.idx >= len(m.habits) {
			m.idx = len(m.habits) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case habitSavedMsg:
		m.formSubmitting = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		if m.editHabitID > 0 {
			m.status = "Habit updated"
		} else {
			m.status = "Habit created"
		}
		m.errMsg = ""
		m.resetForm()
		m.loading = true
		return m, m.cmdLoadHabits()
	case habitDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Habit deleted"
		m.errMsg = ""
		m.detail = false
		m.loading = true
		return m, m.cmdLoadHabits()
	case trackDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Check-in failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Recorded %s for %s", msg.record.Status, msg.record.Date)
		m.errMsg = ""
		if m.detail {
			return m, m.cmdLoadHistory()
		}
		return m, nil
	case historyLoadedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("History failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.history = msg.records
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			return m.updateEditing(msg)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.editing {
		return m.updateEditing(msg)
	}

	if m.detail {
		habit, ok := m.current()
		if !ok {
			m.detail = false
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			m.detail = false
			m.history = nil
		case "c":
			return m, m.cmdTrack(habit.ID, models.StatusCompleted)
		case "f":
			return m, m.cmdTrack(habit.ID, models.StatusFailed)
		case "s":
			return m, m.cmdTrack(habit.ID, models.StatusSkipped)
		case "e":
			m.detail = false
			m.history = nil
			m.startEdit(habit)
			return m, nil
		case "ctrl+d":
			return m, m.cmdDelete(habit.ID)
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.habits)-1 {
			m.idx++
		}
	case "a":
		m.startCreate()
		return m, nil
	case "i":
		m.includeInactive = !m.includeInactive
		m.loading = true
		return m, m.cmdLoadHabits()
	case "enter":
		habit, ok := m.current()
		if !ok {
			m.status = "No habits yet"
			return m, nil
		}
		m.detail = true
		m.history = nil
		return m, m.cmdHistoryFor(habit.ID)
	case "c":
		habit, ok := m.current()
		if !ok {
			m.status = "No habits yet"
			return m, nil
		}
		return m, m.cmdTrack(habit.ID, models.StatusCompleted)
	case "e":
		habit, ok := m.current()
		if !ok {
			m.status = "No habits yet"
			return m, nil
		}
		m.startEdit(habit)
		return m, nil
	case "ctrl+d":
		habit, ok := m.current()
		if !ok {
			m.status = "No habits yet"
			return m, nil
		}
		return m, m.cmdDelete(habit.ID)
	case "l":
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			return m, nil
		case "tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "shift+tab":
			m.formInputs[m.formFocus].Blur()
			m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
			m.formInputs[m.formFocus].Focus()
			return m, nil
		case "enter":
			if m.formSubmitting {
				return m, nil
			}

			form, err := m.collectForm()
			if err != nil {
				m.formErr = err.Error()
				return m, nil
			}

			m.formErr = ""
			m.formSubmitting = true
			if m.editHabitID > 0 {
				return m, m.cmdUpdate(m.editHabitID, form)
			}
			return m, m.cmdCreate(form)
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

type habitForm struct {
	title        string
	description  *string
	color        *string
	goalStreak   *int
	reminderTime *string
}

func (m mainLoopModel) collectForm() (habitForm, error) {
	title := strings.TrimSpace(m.formInputs[formFieldTitle].Value())
	if title == "" {
		return habitForm{}, fmt.Errorf("title is required")
	}

	form := habitForm{title: title}

	if v := strings.TrimSpace(m.formInputs[formFieldDescription].Value()); v != "" {
		form.description = &v
	}
	if v := strings.TrimSpace(m.formInputs[formFieldColor].Value()); v != "" {
		form.color = &v
	}
	if v := strings.TrimSpace(m.formInputs[formFieldGoalStreak].Value()); v != "" {
		goal, err := strconv.Atoi(v)
		if err != nil {
			return habitForm{}, fmt.Errorf("goal streak must be a number")
		}
		form.goalStreak = &goal
	}
	if v := strings.TrimSpace(m.formInputs[formFieldReminderTime].Value()); v != "" {
		form.reminderTime = &v
	}

	return form, nil
}

func (m *mainLoopModel) startCreate() {
	m.editHabitID = 0
	m.initFormInputs(models.Habit{})
	m.editing = true
	m.formErr = ""
	m.formSubmitting = false
}

func (m *mainLoopModel) startEdit(habit models.Habit) {
	m.editHabitID = habit.ID
	m.initFormInputs(habit)
	m.editing = true
	m.formErr = ""
	m.formSubmitting = false
}

func (m *mainLoopModel) initFormInputs(habit models.Habit) {
	inputs := make([]textinput.Model, formFieldCount)

	inputs[formFieldTitle] = textinput.New()
	inputs[formFieldTitle].Placeholder = "title"
	inputs[formFieldTitle].CharLimit = 100
	inputs[formFieldTitle].Width = 40
	inputs[formFieldTitle].SetValue(habit.Title)
	inputs[formFieldTitle].Focus()

	inputs[formFieldDescription] = textinput.New()
	inputs[formFieldDescription].Placeholder = "description (optional)"
	inputs[formFieldDescription].CharLimit = 500
	inputs[formFieldDescription].Width = 40
	if habit.Description != nil {
		inputs[formFieldDescription].SetValue(*habit.Description)
	}

	inputs[formFieldColor] = textinput.New()
	inputs[formFieldColor].Placeholder = "#RRGGBB (optional)"
	inputs[formFieldColor].CharLimit = 7
	inputs[formFieldColor].Width = 40
	if habit.Color != "" {
		inputs[formFieldColor].SetValue(habit.Color)
	}

	inputs[formFieldGoalStreak] = textinput.New()
	inputs[formFieldGoalStreak].Placeholder = "goal streak in days (optional)"
	inputs[formFieldGoalStreak].CharLimit = 3
	inputs[formFieldGoalStreak].Width = 40
	if habit.GoalStreak > 0 {
		inputs[formFieldGoalStreak].SetValue(strconv.Itoa(habit.GoalStreak))
	}

	inputs[formFieldReminderTime] = textinput.New()
	inputs[formFieldReminderTime].Placeholder = "HH:MM (optional)"
	inputs[formFieldReminderTime].CharLimit = 5
	inputs[formFieldReminderTime].Width = 40
	if habit.ReminderTime != nil {
		inputs[formFieldReminderTime].SetValue(*habit.ReminderTime)
	}

	m.formInputs = inputs
	m.formFocus = 0
}

func (m *mainLoopModel) resetForm() {
	m.editing = false
	m.editHabitID = 0
	m.formInputs = nil
	m.formFocus = 0
	m.formSubmitting = false
	m.formErr = ""
}

func (m mainLoopModel) current() (models.Habit, bool) {
	if len(m.habits) == 0 || m.idx < 0 || m.idx >= len(m.habits) {
		return models.Habit{}, false
	}
	return m.habits[m.idx], true
}

func (m mainLoopModel) cmdLoadHabits() tea.Cmd {
	ctx := m.ctx
	server := m.server
	includeInactive := m.includeInactive

	return func() tea.Msg {
		habits, err := server.ListHabits(ctx, includeInactive)
		return habitsLoadedMsg{habits: habits, err: err}
	}
}

func (m mainLoopModel) cmdCreate(form habitForm) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		_, err := server.CreateHabit(ctx, models.HabitCreate{
			Title:        form.title,
			Description:  form.description,
			Color:        form.color,
			GoalStreak:   form.goalStreak,
			ReminderTime: form.reminderTime,
		})
		return habitSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdate(habitID int64, form habitForm) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		title := form.title
		_, err := server.UpdateHabit(ctx, habitID, models.HabitUpdate{
			Title:        &title,
			Description:  form.description,
			Color:        form.color,
			GoalStreak:   form.goalStreak,
			ReminderTime: form.reminderTime,
		})
		return habitSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDelete(habitID int64) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		err := server.DeleteHabit(ctx, habitID)
		return habitDeletedMsg{err: err}
	}
}

func (m mainLoopModel) cmdTrack(habitID int64, status models.TrackingStatus) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		record, err := server.Track(ctx, habitID, models.TrackRequest{Status: status})
		return trackDoneMsg{record: record, err: err}
	}
}

func (m mainLoopModel) cmdLoadHistory() tea.Cmd {
	habit, ok := m.current()
	if !ok {
		return nil
	}
	return m.cmdHistoryFor(habit.ID)
}

func (m mainLoopModel) cmdHistoryFor(habitID int64) tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		records, err := server.History(ctx, habitID)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m mainLoopModel) View() string {
	if m.editing {
		return m.viewForm()
	}

	if m.detail {
		habit, ok := m.current()
		if !ok {
			return renderPage("HABIT", "Habit not found", "esc: back")
		}
		title, body, hotKeys := m.viewDetail(habit)
		return renderPage(title, strings.TrimRight(body, "\n"), hotKeys)
	}

	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	hotKeys := "a: add │ enter: open │ c: check in │ e: edit │ ctrl+d: delete │ i: inactive │ l: log out │ ↑/↓: navigate"

	out := ""
	if m.loading {
		out += "Loading habits...\n"
		return renderPage("MY HABITS", strings.TrimRight(out, "\n"), hotKeys)
	}

	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}
	if m.includeInactive {
		out += "Showing deleted habits too\n"
	}

	if len(m.habits) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No habits yet. Press 'a' to add one.\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "ID   │ Title                    │ Goal   │ Reminder │ Active\n"
		out += "─────┼──────────────────────────┼────────┼──────────┼───────\n"
		for i, habit := range m.habits {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			active := "yes"
			if !habit.IsActive {
				active = "no"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-6s │ %-8s │ %s\n",
				cursor,
				habit.ID,
				fitText(habit.Title, 24),
				fmt.Sprintf("%dd", habit.GoalStreak),
				valueOrDash(habit.ReminderTime),
				active,
			)
		}
	}

	return renderPage("MY HABITS", strings.TrimRight(out, "\n"), hotKeys)
}

func (m mainLoopModel) viewDetail(habit models.Habit) (title, body, hotKeys string) {
	var b strings.Builder

	b.WriteString("[ HABIT ]\n")
	b.WriteString("Title       : " + habit.Title + "\n")
	b.WriteString("Description : " + valueOrDash(habit.Description) + "\n")
	b.WriteString("Color       : " + habit.Color + "\n")
	b.WriteString(fmt.Sprintf("Goal streak : %d days\n", habit.GoalStreak))
	b.WriteString("Reminder    : " + valueOrDash(habit.ReminderTime) + "\n")
	if !habit.IsActive {
		b.WriteString("Deleted     : yes\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}
	if m.status != "" {
		b.WriteString("\nStatus: " + m.status + "\n")
	}

	b.WriteString("\n[ HISTORY ]\n")
	if len(m.history) == 0 {
		b.WriteString("(no records)\n")
	} else {
		for _, record := range m.history {
			line := fmt.Sprintf("%s  %-9s", record.Date, record.Status)
			if record.Notes != nil && *record.Notes != "" {
				line += "  " + fitText(*record.Notes, 30)
			}
			b.WriteString(line + "\n")
		}
	}

	title = "HABIT: " + fitText(habit.Title, 40)
	hotKeys = "c: completed │ f: failed │ s: skipped │ e: edit │ ctrl+d: delete │ esc: back"
	return title, b.String(), hotKeys
}

func (m mainLoopModel) viewForm() string {
	title := "NEW HABIT"
	if m.editHabitID > 0 {
		title = "EDIT HABIT"
	}

	out := "Field        │ Value\n"
	out += "─────────────┼──────────────────────────────────────────\n"
	out += "Title        │ [" + m.formInputs[formFieldTitle].View() + "]\n"
	out += "Description  │ [" + m.formInputs[formFieldDescription].View() + "]\n"
	out += "Color        │ [" + m.formInputs[formFieldColor].View() + "]\n"
	out += "Goal streak  │ [" + m.formInputs[formFieldGoalStreak].View() + "]\n"
	out += "Reminder     │ [" + m.formInputs[formFieldReminderTime].View() + "]\n"
	if m.formSubmitting {
		out += "\n[Saving...]\n"
	} else {
		out += "\n[Save]\n"
	}
	if m.formErr != "" {
		out += "\nError: " + m.formErr + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "esc: back │ tab: next field │ enter: save")
}
