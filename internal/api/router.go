package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Priya8975/city-events-api/internal/refresh"
	"github.com/Priya8975/city-events-api/internal/store"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(eventStore *store.EventStore, controller *refresh.Controller) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// CORS for the browser client
	r.Use(corsMiddleware)

	eventHandler := NewEventHandler(eventStore)
	metaHandler := NewMetaHandler(eventStore)
	adminHandler := NewAdminHandler(controller)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", adminHandler.Health)
		r.Post("/refresh", adminHandler.Refresh)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.List)
			r.Get("/{id}", eventHandler.Get)
			r.Get("/{id}/calendar.ics", eventHandler.Calendar)
		})

		r.Get("/categories", metaHandler.Categories)
		r.Get("/areas", metaHandler.Areas)
		r.Get("/autocomplete", metaHandler.Autocomplete)
	})

	return r
}

// corsMiddleware adds permissive CORS headers for the browser client.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
