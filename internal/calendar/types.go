// Package calendar resolves (date, diocese) queries against cached
// per-year liturgical calendars and normalizes the engine's raw day
// records into the public response shape.
package calendar

import "time"

// Celebration ranks as emitted by the calendar engine.
const (
	RankSolemnity   = "SOLEMNITY"
	RankFeast       = "FEAST"
	RankMemorial    = "MEMORIAL"
	RankOptMemorial = "OPT_MEMORIAL"
	RankSunday      = "SUNDAY"
	RankWeekday     = "WEEKDAY"
)

// RawDay is a single day as produced by the calendar engine.
// Values are never mutated after the engine returns them.
type RawDay struct {
	Date   time.Time
	Key    string
	Name   string
	Rank   string
	Season string
	Colors []string
}

// DayResponse is the public per-day contract. Field names are part of
// the API and must not change.
type DayResponse struct {
	Date        string   `json:"date"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rank        string   `json:"rank"`
	Season      string   `json:"season"`
	Color       []string `json:"color"`
	IsFeast     bool     `json:"isFeast"`
	IsSolemnity bool     `json:"isSolemnity"`
	IsOptional  bool     `json:"isOptional"`
}
