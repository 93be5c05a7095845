package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
	})

	// routes requiring a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/auth/password", h.changePassword)

		r.Post("/api/admin/users/{userID}/activate", h.activateUser)
		r.Post("/api/admin/users/{userID}/deactivate", h.deactivateUser)

		r.Route("/api/habits", func(r chi.Router) {
			r.Get("/", h.listHabits)
			r.Post("/", h.createHabit)

			r.Route("/{habitID}", func(r chi.Router) {
				r.Get("/", h.getHabit)
				r.Patch("/", h.updateHabit)
				r.Delete("/", h.deleteHabit)

				r.Post("/track", h.trackHabit)
				r.Get("/track", h.trackingHistory)
			})
		})
	})

	return router
}
