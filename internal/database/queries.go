package database

import (
	"context"
	"fmt"
)

// CelebrationsForCalendar returns every fixed-date celebration for a
// calendar identifier, ordered by date then insertion order so callers
// see a stable sequence. An unknown calendar yields an empty slice, not
// an error: national calendars without propers are legal.
func (db *DB) CelebrationsForCalendar(ctx context.Context, cal string) ([]Celebration, error) {
	query := `
		SELECT id, calendar, month, day, key, name, rank, color
		FROM celebrations
		WHERE calendar = ?
		ORDER BY month, day, id
	`

	rows, err := db.QueryContext(ctx, query, cal)
	if err != nil {
		return nil, fmt.Errorf("query celebrations for %q: %w", cal, err)
	}
	defer rows.Close()

	var out []Celebration
	for rows.Next() {
		var c Celebration
		if err := rows.Scan(&c.ID, &c.Calendar, &c.Month, &c.Day, &c.Key, &c.Name, &c.Rank, &c.Color); err != nil {
			return nil, fmt.Errorf("scan celebration: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate celebrations: %w", err)
	}

	return out, nil
}

// Calendars returns the distinct calendar identifiers present in the
// store, ordered alphabetically.
func (db *DB) Calendars(ctx context.Context) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT DISTINCT calendar FROM celebrations ORDER BY calendar")
	if err != nil {
		return nil, fmt.Errorf("query calendars: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var cal string
		if err := rows.Scan(&cal); err != nil {
			return nil, fmt.Errorf("scan calendar: %w", err)
		}
		out = append(out, cal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendars: %w", err)
	}

	return out, nil
}
