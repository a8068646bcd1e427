package router

import (
	"net/http"

	"mini-shop/internal/handler"
	"mini-shop/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	userHandler *handler.UserHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: Recovery -> Logging -> CORS -> CorrelationID
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.CorrelationID)

	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		productHandler.RegisterRoutes(r)
		userHandler.RegisterRoutes(r)
		orderHandler.RegisterRoutes(r)
	})

	return r
}
