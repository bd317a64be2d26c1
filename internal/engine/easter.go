// Package engine computes a full year of liturgical days for a national
// calendar: the temporal cycle (seasons and movable days anchored to
// Easter and Advent) overlaid with fixed-date celebrations loaded from
// the celebration store.
package engine

import "time"

// Easter returns Easter Sunday for a year, using the Gregorian computus
// described by J.M. Oudin (1940). Valid for all Gregorian years.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Advent returns the First Sunday of Advent for a year: the Sunday on
// or before November 30, i.e. between November 27 and December 3.
func Advent(year int) time.Time {
	nov30 := time.Date(year, time.November, 30, 0, 0, 0, 0, time.UTC)
	return nov30.AddDate(0, 0, -int(nov30.Weekday()))
}

// AshWednesday is 46 days before Easter.
func AshWednesday(year int) time.Time {
	return Easter(year).AddDate(0, 0, -46)
}

// Pentecost is 49 days after Easter.
func Pentecost(year int) time.Time {
	return Easter(year).AddDate(0, 0, 49)
}

// Epiphany is kept on January 6 (the engine does not implement the
// transferred-Sunday variant some countries use).
func Epiphany(year int) time.Time {
	return time.Date(year, time.January, 6, 0, 0, 0, 0, time.UTC)
}

// BaptismOfTheLord is the Sunday after Epiphany.
func BaptismOfTheLord(year int) time.Time {
	d := Epiphany(year).AddDate(0, 0, 1)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// sameDay reports whether a and b name the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
