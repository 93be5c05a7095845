package http

import (
	"encoding/json"
	"net/http"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.CreateTokenPair(ctx, registered)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Info().Str("user_id", registered.UserID).Msg("user registered")

	utils.WriteJSON(w, h.authResponse(pair, &registered), http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.CreateTokenPair(ctx, user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, h.authResponse(pair, &user), http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		respondError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.CreateTokenPair(ctx, user)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, h.authResponse(pair, nil), http.StatusOK)
}

// logout acknowledges the request. Tokens are stateless, so the server keeps
// no session to destroy; clients discard the pair they hold.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) authResponse(pair models.TokenPair, user *models.User) models.AuthResponse {
	return models.AuthResponse{
		AccessToken:      pair.AccessToken.SignedString,
		RefreshToken:     pair.RefreshToken.SignedString,
		TokenType:        "bearer",
		ExpiresIn:        int64(h.cfg.AccessTokenTTL.Seconds()),
		RefreshExpiresIn: int64(h.cfg.RefreshTokenTTL.Seconds()),
		User:             user,
	}
}
