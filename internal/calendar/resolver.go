package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/openliturgy/calendar-api/internal/logger"
)

// Resolver answers (date, diocese) queries. It validates input before
// touching the cache, fetches the year calendar on demand and
// normalizes the matching day record.
type Resolver struct {
	cache  *Cache
	logger *slog.Logger
	now    func() time.Time
}

// NewResolver creates a resolver backed by cache.
func NewResolver(cache *Cache, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// ResolveDate resolves a YYYY-MM-DD string for a diocese.
//
// Validation is ordered to fail fast: the diocese check and date parse
// both happen before any cache or engine interaction. Engine faults are
// logged and returned as an ENGINE_FAILURE error that carries the same
// user-facing message as NO_DATA_FOR_DATE; the boundary layer chooses
// how to expose the distinction.
func (r *Resolver) ResolveDate(ctx context.Context, dateStr, diocese string) (*DayResponse, error) {
	if !IsSupported(diocese) {
		return nil, errUnsupportedDiocese(diocese)
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, errInvalidDate(dateStr)
	}

	return r.resolve(ctx, date, diocese)
}

// ResolveToday resolves the current UTC date for a diocese.
func (r *Resolver) ResolveToday(ctx context.Context, diocese string) (*DayResponse, error) {
	if !IsSupported(diocese) {
		return nil, errUnsupportedDiocese(diocese)
	}
	return r.resolve(ctx, r.now().UTC(), diocese)
}

func (r *Resolver) resolve(ctx context.Context, date time.Time, diocese string) (*DayResponse, error) {
	formatted := FormatDate(date)
	country := EngineIdentifier(diocese)

	year, err := r.cache.Year(ctx, date.Year(), country)
	if err != nil {
		logger.With(ctx, r.logger).Error("calendar engine failed",
			slog.String("date", formatted),
			slog.String("diocese", diocese),
			slog.Any("error", err),
		)
		return nil, errEngineFailure(formatted, diocese, err)
	}

	raw, ok := year[formatted]
	if !ok {
		// The engine produced no entry for this date. Treated as a
		// legitimate empty result, not a fault.
		return nil, errNoData(formatted, diocese)
	}

	resp := Normalize(raw)
	return &resp, nil
}
