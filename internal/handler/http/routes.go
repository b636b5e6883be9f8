package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kuppisite/video-catalog/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
		})

		// routes behind the bearer-token gate
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)
			r.Get("/auth/logout", h.logout)

			r.Get("/videos", h.listVideos)
			r.Get("/videos/{id}", h.getVideo)

			// admin-only catalog mutations
			r.Group(func(r chi.Router) {
				r.Use(h.requireRole(models.RoleAdmin))

				r.Post("/videos", h.createVideo)
				r.Put("/videos/{id}", h.updateVideo)
				r.Delete("/videos/{id}", h.deleteVideo)
			})
		})
	})

	return router
}
