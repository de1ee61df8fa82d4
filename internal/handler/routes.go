package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/msomdec/authgate/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given router.
func RegisterRoutes(r chi.Router, auth *service.AuthService) {
	authHandler := NewAuthHandler(auth)

	r.Get("/healthz", HandleHealthz)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.HandleRegister)
		r.Post("/login", authHandler.HandleLogin)
		r.With(RequireAuth(auth)).Get("/me", authHandler.HandleMe)
	})
}
