package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openliturgy/calendar-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                               liveness + database check
//	GET /metrics                              Prometheus exposition
//	GET /api/v1/calendars                     supported diocese codes
//	GET /api/v1/calendar/{diocese}/today      today's liturgical day
//	GET /api/v1/calendar/{diocese}/{date}     liturgical day for YYYY-MM-DD
func SetupRoutes(handlers *Handlers, cfg *config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.RequestID)
	r.Use(RecoveryMiddleware(log))
	r.Use(LoggingMiddleware(log))
	r.Use(CORSMiddleware())
	r.Use(RateLimitMiddleware(cfg))

	r.Get("/health", handlers.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendars", handlers.ListCalendars)
		r.Get("/calendar/{diocese}/today", handlers.GetToday)
		r.Get("/calendar/{diocese}/{date}", handlers.GetDay)
	})

	return r
}
