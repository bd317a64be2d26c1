// Package database provides SQLite access to the celebration data that
// backs the calendar engine's sanctoral cycle.
package database

// Celebration is a fixed-date celebration belonging to one calendar
// ("general" or a country identifier). Month and day are the calendar
// date it recurs on every year.
type Celebration struct {
	ID       int64  `json:"id"`
	Calendar string `json:"calendar"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Rank     string `json:"rank"`  // SOLEMNITY, FEAST, MEMORIAL, OPT_MEMORIAL
	Color    string `json:"color"` // engine color identifier, may be empty
}
