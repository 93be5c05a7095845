package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername     = errors.New("username must be 3-50 characters long")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidPassword     = errors.New("password must be at least 8 characters long")
	ErrInvalidTitle        = errors.New("title must be 1-100 characters long")
	ErrInvalidDescription  = errors.New("description must be at most 500 characters long")
	ErrInvalidColor        = errors.New("color must be a hex value like #3B82F6")
	ErrInvalidGoalStreak   = errors.New("goal streak must be between 1 and 365 days")
	ErrInvalidReminderTime = errors.New("reminder time must be in HH:MM format")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStatus       = errors.New("status must be one of: completed, failed, skipped")
	ErrInvalidNotes        = errors.New("notes must be at most 500 characters long")
)
