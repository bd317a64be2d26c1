package engine

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/openliturgy/calendar-api/internal/calendar"
	"github.com/openliturgy/calendar-api/internal/database"
)

// stubStore serves celebrations from a fixture map.
type stubStore struct {
	data map[string][]database.Celebration
	err  error
}

func (s stubStore) CelebrationsForCalendar(ctx context.Context, cal string) ([]database.Celebration, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data[cal], nil
}

func testEngine(store CelebrationStore) *Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	return New(store, logger)
}

func dayByDate(t *testing.T, days []calendar.RawDay, date string) calendar.RawDay {
	t.Helper()
	for _, d := range days {
		if d.Date.Format("2006-01-02") == date {
			return d
		}
	}
	t.Fatalf("no day record for %s", date)
	return calendar.RawDay{}
}

func TestComputeYear_Shape(t *testing.T) {
	eng := testEngine(stubStore{})

	days, err := eng.ComputeYear(context.Background(), 2026, "england")
	if err != nil {
		t.Fatalf("ComputeYear failed: %v", err)
	}
	if len(days) != 365 {
		t.Fatalf("2026 has %d records, want 365", len(days))
	}

	prev := time.Time{}
	for _, d := range days {
		if d.Key == "" || d.Name == "" || d.Rank == "" || d.Season == "" {
			t.Fatalf("incomplete record for %s: %+v", d.Date.Format("2006-01-02"), d)
		}
		if len(d.Colors) == 0 {
			t.Fatalf("record for %s has no colors", d.Date.Format("2006-01-02"))
		}
		if !prev.IsZero() && !d.Date.Equal(prev.AddDate(0, 0, 1)) {
			t.Fatalf("dates not consecutive: %s after %s", d.Date, prev)
		}
		prev = d.Date
	}
}

func TestComputeYear_LeapYear(t *testing.T) {
	eng := testEngine(stubStore{})

	days, err := eng.ComputeYear(context.Background(), 2028, "france")
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 366 {
		t.Errorf("2028 has %d records, want 366", len(days))
	}
}

func TestComputeYear_MovableDays(t *testing.T) {
	eng := testEngine(stubStore{})

	days, err := eng.ComputeYear(context.Background(), 2026, "germany")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		date   string
		key    string
		rank   string
		season string
		color  string
	}{
		{"2026-02-18", "ash_wednesday", "WEEKDAY", SeasonLent, ColorPurple},
		{"2026-03-29", "palm_sunday_of_the_passion_of_the_lord", "SUNDAY", SeasonLent, ColorRed},
		{"2026-04-03", "friday_of_the_passion_of_the_lord", "TRIDUUM", SeasonTriduum, ColorRed},
		{"2026-04-05", "easter_sunday_of_the_resurrection_of_the_lord", "SOLEMNITY", SeasonEastertide, ColorWhite},
		{"2026-05-14", "ascension_of_the_lord", "SOLEMNITY", SeasonEastertide, ColorWhite},
		{"2026-05-24", "pentecost_sunday", "SOLEMNITY", SeasonEastertide, ColorRed},
		{"2026-05-31", "most_holy_trinity", "SOLEMNITY", SeasonOrdinaryTime, ColorWhite},
		{"2026-11-22", "christ_the_king", "SOLEMNITY", SeasonOrdinaryTime, ColorWhite},
		{"2026-12-25", "nativity_of_the_lord", "SOLEMNITY", SeasonChristmastide, ColorWhite},
		{"2026-12-27", "holy_family_of_jesus_mary_and_joseph", "FEAST", SeasonChristmastide, ColorWhite},
		{"2026-01-11", "baptism_of_the_lord", "FEAST", SeasonChristmastide, ColorWhite},
		{"2026-01-06", "epiphany_of_the_lord", "SOLEMNITY", SeasonChristmastide, ColorWhite},
	}

	for _, tt := range tests {
		got := dayByDate(t, days, tt.date)
		if got.Key != tt.key {
			t.Errorf("%s key = %q, want %q", tt.date, got.Key, tt.key)
		}
		if got.Rank != tt.rank {
			t.Errorf("%s rank = %q, want %q", tt.date, got.Rank, tt.rank)
		}
		if got.Season != tt.season {
			t.Errorf("%s season = %q, want %q", tt.date, got.Season, tt.season)
		}
		if len(got.Colors) == 0 || got.Colors[0] != tt.color {
			t.Errorf("%s colors = %v, want first %q", tt.date, got.Colors, tt.color)
		}
	}
}

func TestComputeYear_SeasonsAndNumbering(t *testing.T) {
	eng := testEngine(stubStore{})

	days, err := eng.ComputeYear(context.Background(), 2026, "england")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		date   string
		name   string
		season string
	}{
		{"2026-01-18", "2nd Sunday in Ordinary Time", SeasonOrdinaryTime},
		{"2026-08-23", "21st Sunday in Ordinary Time", SeasonOrdinaryTime},
		{"2026-08-30", "22nd Sunday in Ordinary Time", SeasonOrdinaryTime},
		{"2026-09-06", "23rd Sunday in Ordinary Time", SeasonOrdinaryTime},
		{"2026-10-04", "27th Sunday in Ordinary Time", SeasonOrdinaryTime},
		{"2026-12-06", "2nd Sunday of Advent", SeasonAdvent},
		{"2026-03-15", "4th Sunday of Lent", SeasonLent},
		{"2026-04-12", "2nd Sunday of Easter (Divine Mercy Sunday)", SeasonEastertide},
		{"2026-04-06", "Monday within the Octave of Easter", SeasonEastertide},
		{"2026-02-19", "Thursday after Ash Wednesday", SeasonLent},
	}

	for _, tt := range tests {
		got := dayByDate(t, days, tt.date)
		if got.Name != tt.name {
			t.Errorf("%s name = %q, want %q", tt.date, got.Name, tt.name)
		}
		if got.Season != tt.season {
			t.Errorf("%s season = %q, want %q", tt.date, got.Season, tt.season)
		}
	}

	// Gaudete and Laetare carry rose before the seasonal color.
	gaudete := dayByDate(t, days, "2026-12-13")
	if len(gaudete.Colors) != 2 || gaudete.Colors[0] != ColorRose {
		t.Errorf("Gaudete colors = %v, want [ROSE PURPLE]", gaudete.Colors)
	}
}

func TestComputeYear_SanctoralOverlay(t *testing.T) {
	store := stubStore{data: map[string][]database.Celebration{
		"general": {
			{Calendar: "general", Month: 8, Day: 28, Key: "saint_augustine", Name: "Saint Augustine", Rank: "MEMORIAL", Color: "WHITE"},
			{Calendar: "general", Month: 10, Day: 4, Key: "saint_francis_of_assisi", Name: "Saint Francis of Assisi", Rank: "MEMORIAL", Color: "WHITE"},
			{Calendar: "general", Month: 11, Day: 1, Key: "all_saints", Name: "All Saints", Rank: "SOLEMNITY", Color: "WHITE"},
		},
		"italy": {
			{Calendar: "italy", Month: 10, Day: 4, Key: "saint_francis_of_assisi", Name: "Saint Francis of Assisi, Patron of Italy", Rank: "FEAST", Color: "WHITE"},
		},
	}}
	eng := testEngine(store)
	ctx := context.Background()

	english, err := eng.ComputeYear(ctx, 2026, "england")
	if err != nil {
		t.Fatal(err)
	}
	italian, err := eng.ComputeYear(ctx, 2026, "italy")
	if err != nil {
		t.Fatal(err)
	}

	// A memorial displaces an ordinary weekday (Aug 28 2026 is a Friday).
	if got := dayByDate(t, english, "2026-08-28"); got.Key != "saint_augustine" || got.Rank != "MEMORIAL" {
		t.Errorf("2026-08-28 = %q/%q, want saint_augustine/MEMORIAL", got.Key, got.Rank)
	}

	// October 4 2026 is a Sunday: the general memorial yields to it,
	// but Italy's proper feast of its patron displaces it.
	if got := dayByDate(t, english, "2026-10-04"); got.Rank != "SUNDAY" {
		t.Errorf("2026-10-04 (england) rank = %q, want SUNDAY", got.Rank)
	}
	if got := dayByDate(t, italian, "2026-10-04"); got.Key != "saint_francis_of_assisi" || got.Rank != "FEAST" {
		t.Errorf("2026-10-04 (italy) = %q/%q, want saint_francis_of_assisi/FEAST", got.Key, got.Rank)
	}

	// A solemnity displaces even a Sunday (Nov 1 2026 is a Sunday).
	if got := dayByDate(t, english, "2026-11-01"); got.Key != "all_saints" || got.Rank != "SOLEMNITY" {
		t.Errorf("2026-11-01 = %q/%q, want all_saints/SOLEMNITY", got.Key, got.Rank)
	}
}

func TestComputeYear_CelebrationColorFallback(t *testing.T) {
	store := stubStore{data: map[string][]database.Celebration{
		"general": {
			// No color set: the record inherits the season default.
			{Calendar: "general", Month: 3, Day: 9, Key: "saint_frances_of_rome", Name: "Saint Frances of Rome", Rank: "MEMORIAL"},
		},
	}}
	eng := testEngine(store)

	days, err := eng.ComputeYear(context.Background(), 2026, "spain")
	if err != nil {
		t.Fatal(err)
	}

	// March 9 2026 falls in Lent.
	got := dayByDate(t, days, "2026-03-09")
	if got.Key != "saint_frances_of_rome" {
		t.Fatalf("2026-03-09 key = %q", got.Key)
	}
	if len(got.Colors) != 1 || got.Colors[0] != ColorPurple {
		t.Errorf("colors = %v, want season default [PURPLE]", got.Colors)
	}
}

func TestComputeYear_StoreError(t *testing.T) {
	eng := testEngine(stubStore{err: errors.New("disk gone")})

	if _, err := eng.ComputeYear(context.Background(), 2026, "france"); err == nil {
		t.Fatal("ComputeYear succeeded, want error")
	}
}

func TestComputeYear_YearRange(t *testing.T) {
	eng := testEngine(stubStore{})

	for _, year := range []int{1582, 0, -4, 10000} {
		if _, err := eng.ComputeYear(context.Background(), year, "italy"); err == nil {
			t.Errorf("ComputeYear(%d) succeeded, want error", year)
		}
	}
}
