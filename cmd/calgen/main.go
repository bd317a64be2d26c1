// calgen dumps a computed year calendar for a diocese as JSON. Useful
// for inspecting what the engine produces without running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/openliturgy/calendar-api/internal/calendar"
	"github.com/openliturgy/calendar-api/internal/database"
	"github.com/openliturgy/calendar-api/internal/engine"
)

func main() {
	year := flag.Int("year", time.Now().UTC().Year(), "Year to compute")
	diocese := flag.String("diocese", "united-states", "Diocese code")
	dbPath := flag.String("db", "./data/calendar.db", "Path to SQLite celebration data")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if !calendar.IsSupported(*diocese) {
		fmt.Fprintf(os.Stderr, "unsupported diocese %q: supported values are %v\n", *diocese, calendar.Dioceses())
		os.Exit(1)
	}

	db, err := database.Open(database.DefaultConfig(*dbPath), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(db, log)
	days, err := eng.ComputeYear(ctx, *year, calendar.EngineIdentifier(*diocese))
	if err != nil {
		fmt.Fprintf(os.Stderr, "compute year: %v\n", err)
		os.Exit(1)
	}

	out := make([]calendar.DayResponse, 0, len(days))
	for _, day := range days {
		out = append(out, calendar.Normalize(day))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
