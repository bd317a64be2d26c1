package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openliturgy/calendar-api/internal/calendar"
	"github.com/openliturgy/calendar-api/internal/database"
)

// GeneralCalendar is the store identifier for celebrations shared by
// every national calendar.
const GeneralCalendar = "general"

// CelebrationStore supplies fixed-date celebrations for a calendar
// identifier. Satisfied by *database.DB.
type CelebrationStore interface {
	CelebrationsForCalendar(ctx context.Context, cal string) ([]database.Celebration, error)
}

// Engine computes full-year liturgical calendars. ComputeYear is a pure
// function of (year, country) as long as the celebration data does not
// change underneath it, which is what the calendar cache relies on.
type Engine struct {
	store  CelebrationStore
	logger *slog.Logger
}

// New creates an engine reading fixed-date celebrations from store.
func New(store CelebrationStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, logger: logger}
}

type monthDay struct {
	month time.Month
	day   int
}

// ComputeYear produces one record per day of the given year for a
// country identifier (the engine's camelCase convention, e.g.
// "unitedStates"). The temporal cycle provides every day's default;
// movable named days and the sanctoral overlay displace it according to
// precedence.
func (e *Engine) ComputeYear(ctx context.Context, year int, country string) ([]calendar.RawDay, error) {
	// The Gregorian computus is undefined before the calendar reform.
	if year < 1583 || year > 9999 {
		return nil, fmt.Errorf("year %d outside supported range 1583-9999", year)
	}

	sanctoral, err := e.loadSanctoral(ctx, country)
	if err != nil {
		return nil, err
	}

	yd := datesFor(year)
	movable := movableDays(year, yd)

	days := make([]calendar.RawDay, 0, 366)
	for date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC); date.Year() == year; date = date.AddDate(0, 0, 1) {
		td := temporalFor(date, yd)
		if mv, ok := movable[dateKey(date)]; ok {
			td = mv
		}

		if c := bestCelebration(sanctoral[monthDay{date.Month(), date.Day()}], td.precedence); c != nil {
			td = celebrationDay(c, td)
		}

		days = append(days, calendar.RawDay{
			Date:   date,
			Key:    td.key,
			Name:   td.name,
			Rank:   td.rank,
			Season: td.season,
			Colors: td.colors,
		})
	}

	e.logger.Debug("computed year calendar",
		slog.Int("year", year),
		slog.String("country", country),
		slog.Int("days", len(days)),
	)

	return days, nil
}

// loadSanctoral merges the general calendar with the country's propers.
// Proper entries come after the general ones for the same date, so on
// equal rank the national celebration wins.
func (e *Engine) loadSanctoral(ctx context.Context, country string) (map[monthDay][]database.Celebration, error) {
	calendars := []string{GeneralCalendar}
	if country != GeneralCalendar {
		calendars = append(calendars, country)
	}

	out := make(map[monthDay][]database.Celebration)
	for _, cal := range calendars {
		celebrations, err := e.store.CelebrationsForCalendar(ctx, cal)
		if err != nil {
			return nil, fmt.Errorf("load celebrations for %q: %w", cal, err)
		}
		for _, c := range celebrations {
			key := monthDay{time.Month(c.Month), c.Day}
			out[key] = append(out[key], c)
		}
	}
	return out, nil
}

// bestCelebration picks the celebration that displaces a temporal day
// of the given precedence, or nil if none does. Later entries win ties,
// which lets national propers shadow the general calendar.
func bestCelebration(candidates []database.Celebration, floor int) *database.Celebration {
	var best *database.Celebration
	bestPrec := floor
	for i := range candidates {
		if p := rankPrecedence(candidates[i].Rank); p > bestPrec || (best != nil && p == bestPrec) {
			best = &candidates[i]
			bestPrec = p
		}
	}
	return best
}

// celebrationDay builds the day record for a sanctoral celebration. The
// season stays the temporal one; a celebration without a color falls
// back to the season's default.
func celebrationDay(c *database.Celebration, td temporalDay) temporalDay {
	colors := td.colors
	if c.Color != "" {
		colors = []string{c.Color}
	}
	return temporalDay{
		key:        c.Key,
		name:       c.Name,
		rank:       c.Rank,
		season:     td.season,
		colors:     colors,
		precedence: rankPrecedence(c.Rank),
	}
}

func rankPrecedence(rank string) int {
	switch rank {
	case calendar.RankSolemnity:
		return precSolemnity
	case calendar.RankFeast:
		return precFeast
	case calendar.RankMemorial:
		return precMemorial
	case calendar.RankOptMemorial:
		return precOptMemorial
	default:
		return precWeekday
	}
}
