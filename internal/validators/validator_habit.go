package validators

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/ansorokin/habit-keeper/models"
)

const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldColor        = "color"
	FieldGoalStreak   = "goal_streak"
	FieldReminderTime = "reminder_time"
	FieldDate         = "date"
	FieldStatus       = "status"
	FieldNotes        = "notes"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
	maxNotesLen       = 500
	minGoalStreak     = 1
	maxGoalStreak     = 365
)

// HabitValidator validates habit payloads and daily tracking records.
// Partial updates are validated field by field: a nil field is always
// accepted because it leaves the stored value untouched.
type HabitValidator struct {
}

func NewHabitValidator() Validator {
	return &HabitValidator{}
}

func (v *HabitValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HabitCreate:
		return v.validateHabitCreate(ctx, value, fields...)
	case *models.HabitCreate:
		return v.validateHabitCreate(ctx, *value, fields...)

	case models.HabitUpdate:
		return v.validateHabitUpdate(ctx, value, fields...)
	case *models.HabitUpdate:
		return v.validateHabitUpdate(ctx, *value, fields...)

	case models.TrackRequest:
		return v.validateTrackRequest(ctx, value, fields...)
	case *models.TrackRequest:
		return v.validateTrackRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *HabitValidator) validateHabitCreate(_ context.Context, req models.HabitCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldColor, FieldGoalStreak, FieldReminderTime}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if !isValidTitle(req.Title) {
				return ErrInvalidTitle
			}
		case FieldDescription:
			if req.Description != nil && !isValidDescription(*req.Description) {
				return ErrInvalidDescription
			}
		case FieldColor:
			if req.Color != nil && !isValidColor(*req.Color) {
				return ErrInvalidColor
			}
		case FieldGoalStreak:
			if req.GoalStreak != nil && !isValidGoalStreak(*req.GoalStreak) {
				return ErrInvalidGoalStreak
			}
		case FieldReminderTime:
			if req.ReminderTime != nil && !isValidReminderTime(*req.ReminderTime) {
				return ErrInvalidReminderTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *HabitValidator) validateHabitUpdate(_ context.Context, req models.HabitUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldColor, FieldGoalStreak, FieldReminderTime}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if req.Title != nil && !isValidTitle(*req.Title) {
				return ErrInvalidTitle
			}
		case FieldDescription:
			if req.Description != nil && !isValidDescription(*req.Description) {
				return ErrInvalidDescription
			}
		case FieldColor:
			if req.Color != nil && !isValidColor(*req.Color) {
				return ErrInvalidColor
			}
		case FieldGoalStreak:
			if req.GoalStreak != nil && !isValidGoalStreak(*req.GoalStreak) {
				return ErrInvalidGoalStreak
			}
		case FieldReminderTime:
			if req.ReminderTime != nil && !isValidReminderTime(*req.ReminderTime) {
				return ErrInvalidReminderTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *HabitValidator) validateTrackRequest(_ context.Context, req models.TrackRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldStatus, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if req.Date != "" && !isValidDate(req.Date) {
				return ErrInvalidDate
			}
		case FieldStatus:
			if req.Status != "" && !req.Status.Valid() {
				return ErrInvalidStatus
			}
		case FieldNotes:
			if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > maxNotesLen {
				return ErrInvalidNotes
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidTitle(title string) bool {
	length := utf8.RuneCountInString(title)
	return length >= 1 && length <= maxTitleLen
}

func isValidDescription(description string) bool {
	return utf8.RuneCountInString(description) <= maxDescriptionLen
}

func isValidColor(color string) bool {
	if len(color) != 7 || color[0] != '#' {
		return false
	}
	for _, c := range color[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func isValidGoalStreak(goal int) bool {
	return goal >= minGoalStreak && goal <= maxGoalStreak
}

func isValidReminderTime(reminder string) bool {
	if len(reminder) != 5 || reminder[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", reminder)
	return err == nil
}

func isValidDate(date string) bool {
	if len(date) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
