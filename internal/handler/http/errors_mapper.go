package http

import (
	"errors"
	"net/http"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/internal/store"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrUnauthenticated:      http.StatusUnauthorized,
	service.ErrWrongCurrentPassword: http.StatusBadRequest,
	service.ErrIdentifierTaken:      http.StatusConflict,
	service.ErrUserNotFound:         http.StatusNotFound,
	service.ErrHabitNotFound:        http.StatusNotFound,
	service.ErrTokenCreationFailed:  http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusAndMessage maps an error to its HTTP status and outward message.
// Matched errors below 500 expose the sentinel's text; everything else is
// reported as a plain status text so internals never leak.
func statusAndMessage(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status >= http.StatusInternalServerError {
				return status, http.StatusText(status)
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// respondError writes the uniform JSON error body for err and logs the
// underlying cause with the request-scoped logger.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusAndMessage(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(msg)
	utils.WriteJSON(w, models.ErrorResponse{Error: msg}, status)
}
