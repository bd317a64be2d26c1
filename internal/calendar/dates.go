package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// datePattern is deliberately strict: four digits, two digits, two digits,
// '-' separators, nothing else. No whitespace, no alternate separators,
// no missing zero-padding.
var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseDate parses a strict YYYY-MM-DD string into a UTC date.
//
// After the pattern match, the components are round-tripped through
// time.Date: Go normalizes impossible dates (February 30 becomes March 2,
// month 13 rolls into the next year), so a component mismatch after
// construction means the input named a date that does not exist. This
// catches non-leap-year Feb 29 without any range tables.
func ParseDate(s string) (time.Time, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must match YYYY-MM-DD", s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q: no such calendar date", s)
	}

	return t, nil
}

// ValidDate reports whether s is a well-formed, existing calendar date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// FormatDate formats a date as YYYY-MM-DD in UTC. It is the strict
// inverse of ParseDate: FormatDate(ParseDate(s)) == s for every s that
// ParseDate accepts.
func FormatDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}
