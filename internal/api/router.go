package api

import (
	"net/http"
	"time"

	"auth_api/internal/api/handler"
	"auth_api/internal/api/middleware"
	"auth_api/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	tokens *security.TokenManager,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		v1.Group(func(public chi.Router) {
			authHandler.RegisterRoutes(public)
		})

		// Routes requiring a valid access token
		v1.Group(func(private chi.Router) {
			private.Use(jwtauth.Verifier(tokens.Auth())) // Verifies token, puts claims in context
			private.Use(middleware.Authenticator)
			userHandler.RegisterRoutes(private)
		})
	})

	return r
}
