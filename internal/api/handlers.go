// Package api exposes the calendar resolver over HTTP.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openliturgy/calendar-api/internal/calendar"
	"github.com/openliturgy/calendar-api/internal/config"
	"github.com/openliturgy/calendar-api/internal/database"
	"github.com/openliturgy/calendar-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	resolver *calendar.Resolver
	cfg      *config.Config
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, resolver *calendar.Resolver, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:       db,
		resolver: resolver,
		cfg:      cfg,
		logger:   logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		logger.With(ctx, h.logger).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"calendars": calendar.Dioceses(),
	})
}

// GetToday handles GET /api/v1/calendar/{diocese}/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	diocese := chi.URLParam(r, "diocese")

	day, err := h.resolver.ResolveToday(r.Context(), diocese)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, day)
}

// GetDay handles GET /api/v1/calendar/{diocese}/{date}
func (h *Handlers) GetDay(w http.ResponseWriter, r *http.Request) {
	diocese := chi.URLParam(r, "diocese")
	date := chi.URLParam(r, "date")

	day, err := h.resolver.ResolveDate(r.Context(), date, diocese)
	if err != nil {
		h.writeResolveError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, day)
}

// writeResolveError maps resolver error codes to HTTP statuses.
//
// Engine failures are reported to the client exactly like missing data
// (404, NO_DATA_FOR_DATE) and logged with their cause for operators;
// the distinction exists in the resolver's error but is not exposed.
func (h *Handlers) writeResolveError(w http.ResponseWriter, r *http.Request, err error) {
	var re *calendar.Error
	if !errors.As(err, &re) {
		logger.With(r.Context(), h.logger).Error("unexpected resolver error", slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve date")
		return
	}

	switch re.Code {
	case calendar.CodeInvalidDateFormat, calendar.CodeUnsupportedDiocese:
		WriteBadRequest(w, re.Message, string(re.Code))
	case calendar.CodeNoDataForDate:
		WriteNotFound(w, re.Message, string(re.Code))
	case calendar.CodeEngineFailure:
		WriteNotFound(w, re.Message, string(calendar.CodeNoDataForDate))
	default:
		WriteInternalError(w, re.Message)
	}
}
