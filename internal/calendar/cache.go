package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openliturgy/calendar-api/internal/metrics"
)

// Engine computes a full year of liturgical days for a country.
// Implementations must be deterministic and side-effect-free for
// identical inputs; the cache relies on that to tolerate duplicate
// computation under concurrent misses.
type Engine interface {
	ComputeYear(ctx context.Context, year int, country string) ([]RawDay, error)
}

// YearCalendar maps formatted date strings (YYYY-MM-DD) to the engine's
// raw day records for one (year, country) pair. Once stored it is
// complete: it holds every day the engine produced for that year.
type YearCalendar map[string]RawDay

// CalendarKey identifies one cached year calendar. A structured key
// avoids the separator-collision problem of concatenated string keys.
type CalendarKey struct {
	Year    int
	Country string
}

// Cache memoizes full-year calendars per (year, country). Entries are
// created lazily and live for the life of the process; Clear is the
// only reset primitive. There is no eviction or TTL.
type Cache struct {
	engine Engine

	mu      sync.RWMutex
	entries map[CalendarKey]YearCalendar
}

// NewCache creates an empty cache backed by engine.
func NewCache(engine Engine) *Cache {
	return &Cache{
		engine:  engine,
		entries: make(map[CalendarKey]YearCalendar),
	}
}

// Year returns the calendar for (year, country), computing and storing
// it on first access.
//
// The computation runs outside the lock, so two goroutines missing the
// same key may each invoke the engine. That is wasteful but safe: the
// engine is pure, so both produce equivalent calendars and the last
// insert wins.
func (c *Cache) Year(ctx context.Context, year int, country string) (YearCalendar, error) {
	key := CalendarKey{Year: year, Country: country}

	c.mu.RLock()
	cal, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		metrics.CalendarCacheHits.Inc()
		return cal, nil
	}

	metrics.CalendarCacheMisses.Inc()

	start := time.Now()
	days, err := c.engine.ComputeYear(ctx, year, country)
	if err != nil {
		metrics.EngineFailures.Inc()
		return nil, fmt.Errorf("compute year %d for %q: %w", year, country, err)
	}
	metrics.EngineComputeSeconds.Observe(time.Since(start).Seconds())

	cal = make(YearCalendar, len(days))
	for _, day := range days {
		cal[FormatDate(day.Date)] = day
	}

	c.mu.Lock()
	c.entries[key] = cal
	c.mu.Unlock()

	return cal, nil
}

// Clear discards all cached calendars. Used for test isolation and to
// force a refresh after the celebration data changes.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[CalendarKey]YearCalendar)
	c.mu.Unlock()
}

// Len returns the number of cached (year, country) entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
