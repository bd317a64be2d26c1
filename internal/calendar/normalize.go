package calendar

import "strings"

// Normalize maps an engine day record to the public response shape.
//
// Colors are lowercased with the engine's order preserved; a record
// without colors yields an empty (non-nil) list so the JSON field is
// always an array. The three rank flags derive from the single rank
// string, so at most one is true; an unrecognized rank leaves all three
// false, which is the defined behavior rather than an error.
func Normalize(raw RawDay) DayResponse {
	colors := make([]string, 0, len(raw.Colors))
	for _, c := range raw.Colors {
		colors = append(colors, strings.ToLower(c))
	}

	return DayResponse{
		Date:        FormatDate(raw.Date),
		ID:          raw.Key,
		Name:        raw.Name,
		Rank:        raw.Rank,
		Season:      raw.Season,
		Color:       colors,
		IsFeast:     raw.Rank == RankFeast,
		IsSolemnity: raw.Rank == RankSolemnity,
		IsOptional:  raw.Rank == RankOptMemorial,
	}
}
