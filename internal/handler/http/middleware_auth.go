package http

import (
	"context"
	"net/http"

	"github.com/ansorokin/habit-keeper/internal/logger"
	"github.com/ansorokin/habit-keeper/internal/service"
	"github.com/ansorokin/habit-keeper/internal/utils"
	"github.com/ansorokin/habit-keeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header and resolves
// it to a live user via [service.AuthService.Resolve]. On success the full
// user record is stored in the request context under [utils.UserCtxKey], so
// downstream handlers never re-parse the token or hit the database again.
//
// Every failure mode — a missing header, a malformed token, an expired or
// forged token, a deactivated account — produces the same HTTP 401 body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: service.ErrUnauthenticated.Error()}, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{Error: service.ErrUnauthenticated.Error()}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Resolve(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token could not be resolved")
			utils.WriteJSON(w, models.ErrorResponse{Error: service.ErrUnauthenticated.Error()}, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
