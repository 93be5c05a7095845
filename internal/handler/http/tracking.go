package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
)

// trackHabit records the habit's outcome for one day. An empty body is a
// valid request: it marks today as completed.
func (h *Handler) trackHabit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondError(w, r, service.ErrUnauthenticated)
		return
	}

	habitID, err := habitIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	var req models.TrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	saved, err := h.services.TrackingService.Track(ctx, user.UserID, habitID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Int64("habit_id", habitID).Str("date", saved.Date).Str("status", string(saved.Status)).Msg("habit tracked")

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) trackingHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondError(w, r, service.ErrUnauthenticated)
		return
	}

	habitID, err := habitIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	records, err := h.services.TrackingService.History(ctx, user.UserID, habitID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
