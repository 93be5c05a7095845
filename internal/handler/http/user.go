package http

import (
	"encoding/json"
	"net/http"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
	"github.com/go-chi/chi/v5"
)

// me returns the profile of the authenticated user. The record is already in
// the context: the auth middleware resolved it from the access token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, r, service.ErrUnauthenticated)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		respondError(w, r, service.ErrUnauthenticated)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, user.UserID, req); err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("password changed")

	utils.WriteJSON(w, models.MessageResponse{Message: "password changed"}, http.StatusOK)
}

func (h *Handler) activateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserActive(w, r, true, "user activated")
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	h.setUserActive(w, r, false, "user deactivated")
}

func (h *Handler) setUserActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	ctx := r.Context()

	userID := chi.URLParam(r, "userID")
	if userID == "" {
		respondError(w, r, service.ErrUserNotFound)
		return
	}

	if _, err := h.services.AuthService.SetActive(ctx, userID, active); err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Bool("active", active).Msg(message)

	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}
