package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createHabit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.HabitCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.HabitService.Create(ctx, user.UserID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Int64("habit_id", created.ID).Msg("habit created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listHabits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondError(w, r, service.ErrUnauthenticated)
		return
	}

	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	habits, err := h.services.HabitService.List(ctx, user.UserID, includeInactive)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, habits, http.StatusOK)
}

func (h *Handler) getHabit(w http.ResponseWriter, r *http.Request) {
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

	habit, err := h.services.HabitService.Get(ctx, user.UserID, habitID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, habit, http.StatusOK)
}

func (h *Handler) updateHabit(w http.ResponseWriter, r *http.Request) {
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

	var update models.HabitUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	updated, err := h.services.HabitService.Update(ctx, user.UserID, habitID, update)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Int64("habit_id", habitID).Msg("habit updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteHabit(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.HabitService.Delete(ctx, user.UserID, habitID); err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Int64("habit_id", habitID).Msg("habit deleted")

	utils.WriteJSON(w, models.MessageResponse{Message: "habit deleted"}, http.StatusOK)
}

func habitIDFromRequest(r *http.Request) (int64, error) {
	habitID, err := strconv.ParseInt(chi.URLParam(r, "habitID"), 10, 64)
	if err != nil || habitID <= 0 {
		return 0, ErrInvalidHabitID
	}
	return habitID, nil
}
