package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error",
			err:        service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.ErrInvalidDataProvided.Error(),
		},
		{
			name:       "wrapped sentinel still matches",
			err:        fmt.Errorf("login: %w", service.ErrInvalidCredentials),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    service.ErrInvalidCredentials.Error(),
		},
		{
			name:       "conflict",
			err:        service.ErrIdentifierTaken,
			wantStatus: http.StatusConflict,
			wantMsg:    service.ErrIdentifierTaken.Error(),
		},
		{
			name:       "habit not found",
			err:        service.ErrHabitNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    service.ErrHabitNotFound.Error(),
		},
		{
			name:       "store errors are masked",
			err:        fmt.Errorf("%w: syntax error near SELECT", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    http.StatusText(http.StatusInternalServerError),
		},
		{
			name:       "unknown errors are masked",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusAndMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
