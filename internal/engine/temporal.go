package engine

import (
	"fmt"
	"strings"
	"time"
)

// Liturgical seasons as emitted in day records.
const (
	SeasonAdvent        = "advent"
	SeasonChristmastide = "christmastide"
	SeasonOrdinaryTime  = "ordinary_time"
	SeasonLent          = "lent"
	SeasonTriduum       = "paschal_triduum"
	SeasonEastertide    = "eastertide"
)

// Liturgical colors, in the engine's uppercase convention.
const (
	ColorWhite  = "WHITE"
	ColorRed    = "RED"
	ColorGreen  = "GREEN"
	ColorPurple = "PURPLE"
	ColorRose   = "ROSE"
)

// Precedence levels used to decide whether a fixed-date celebration
// displaces the day computed from the temporal cycle. Higher wins;
// sanctoral entries displace only on a strictly greater value.
const (
	precWeekday          = 1
	precOptMemorial      = 3
	precMemorial         = 4
	precSunday           = 5
	precFeast            = 6
	precPrivilegedSunday = 7 // Sundays of Advent, Lent and Eastertide
	precSolemnity        = 8
	precTriduum          = 9
)

// temporalDay is a day of the temporal cycle before the sanctoral
// overlay is applied.
type temporalDay struct {
	key        string
	name       string
	rank       string
	season     string
	colors     []string
	precedence int
}

// yearDates holds the movable anchors for one calendar year.
type yearDates struct {
	easter     time.Time
	pentecost  time.Time
	ash        time.Time
	palmSunday time.Time
	advent     time.Time
	epiphany   time.Time
	baptism    time.Time
	christmas  time.Time
}

func datesFor(year int) yearDates {
	easter := Easter(year)
	return yearDates{
		easter:     easter,
		pentecost:  Pentecost(year),
		ash:        AshWednesday(year),
		palmSunday: easter.AddDate(0, 0, -7),
		advent:     Advent(year),
		epiphany:   Epiphany(year),
		baptism:    BaptismOfTheLord(year),
		christmas:  time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC),
	}
}

// temporalFor computes the default day record for a date from the
// season it falls in. Movable named days (Easter, Ash Wednesday, ...)
// are handled separately by movableDays and override this result.
func temporalFor(date time.Time, yd yearDates) temporalDay {
	switch {
	case date.Before(yd.baptism) || sameDay(date, yd.baptism):
		return christmastideDay(date, yd)
	case date.Before(yd.ash):
		return ordinaryTimeDay(date, yd.baptism, 0)
	case date.Before(yd.palmSunday):
		return lentDay(date, yd)
	case date.Before(yd.easter):
		return holyWeekDay(date, yd)
	case date.Before(yd.pentecost) || sameDay(date, yd.pentecost):
		return eastertideDay(date, yd)
	case date.Before(yd.advent):
		return ordinaryTimeDay(date, yd.advent, 34)
	case date.Before(yd.christmas):
		return adventDay(date, yd)
	default:
		return octaveOfChristmasDay(date)
	}
}

// christmastideDay covers January 1 through the Baptism of the Lord.
// January 1 and 6 carry solemnities supplied elsewhere (sanctoral seed
// and movableDays); this produces the fallback weekday records.
func christmastideDay(date time.Time, yd yearDates) temporalDay {
	if date.Weekday() == time.Sunday && date.Before(yd.epiphany) {
		return temporalDay{
			key:        "second_sunday_of_christmas",
			name:       "Second Sunday of Christmas",
			rank:       "SUNDAY",
			season:     SeasonChristmastide,
			colors:     []string{ColorWhite},
			precedence: precSunday,
		}
	}

	var name string
	if date.After(yd.epiphany) {
		name = fmt.Sprintf("%s after Epiphany", date.Weekday())
	} else {
		name = fmt.Sprintf("%s of Christmastide", date.Weekday())
	}
	return temporalDay{
		key:        slug(name),
		name:       name,
		rank:       "WEEKDAY",
		season:     SeasonChristmastide,
		colors:     []string{ColorWhite},
		precedence: precWeekday,
	}
}

// ordinaryTimeDay numbers Ordinary Time weeks. The first stretch counts
// forward from the Baptism of the Lord (a Sunday, opening week 1); the
// stretch after Pentecost counts backward from week 34, which always
// ends the day before Advent. endWeek is 0 for the first stretch.
func ordinaryTimeDay(date time.Time, anchor time.Time, endWeek int) temporalDay {
	var week int
	if endWeek == 0 {
		week = daysBetween(anchor, date)/7 + 1
	} else {
		lastWeekStart := anchor.AddDate(0, 0, -7) // Sunday opening week 34
		week = endWeek - daysBetween(sundayOnOrBefore(date), lastWeekStart)/7
	}

	if date.Weekday() == time.Sunday {
		name := fmt.Sprintf("%s Sunday in Ordinary Time", ordinal(week))
		return temporalDay{
			key:        slug(name),
			name:       name,
			rank:       "SUNDAY",
			season:     SeasonOrdinaryTime,
			colors:     []string{ColorGreen},
			precedence: precSunday,
		}
	}

	name := fmt.Sprintf("%s of the %s Week in Ordinary Time", date.Weekday(), ordinal(week))
	return temporalDay{
		key:        slug(name),
		name:       name,
		rank:       "WEEKDAY",
		season:     SeasonOrdinaryTime,
		colors:     []string{ColorGreen},
		precedence: precWeekday,
	}
}

func lentDay(date time.Time, yd yearDates) temporalDay {
	firstSunday := yd.ash.AddDate(0, 0, 4)

	if date.Before(firstSunday) {
		name := fmt.Sprintf("%s after Ash Wednesday", date.Weekday())
		return temporalDay{
			key:        slug(name),
			name:       name,
			rank:       "WEEKDAY",
			season:     SeasonLent,
			colors:     []string{ColorPurple},
			precedence: precWeekday,
		}
	}

	week := daysBetween(firstSunday, date)/7 + 1
	if date.Weekday() == time.Sunday {
		name := fmt.Sprintf("%s Sunday of Lent", ordinal(week))
		colors := []string{ColorPurple}
		if week == 4 {
			// Laetare Sunday
			colors = []string{ColorRose, ColorPurple}
		}
		return temporalDay{
			key:        slug(name),
			name:       name,
			rank:       "SUNDAY",
			season:     SeasonLent,
			colors:     colors,
			precedence: precPrivilegedSunday,
		}
	}

	name := fmt.Sprintf("%s of the %s Week of Lent", date.Weekday(), ordinal(week))
	return temporalDay{
		key:        slug(name),
		name:       name,
		rank:       "WEEKDAY",
		season:     SeasonLent,
		colors:     []string{ColorPurple},
		precedence: precWeekday,
	}
}

// holyWeekDay covers Monday of Holy Week through Holy Saturday. Nothing
// displaces these days, so they carry Triduum-level precedence.
func holyWeekDay(date time.Time, yd yearDates) temporalDay {
	switch daysBetween(yd.palmSunday, date) {
	case 4:
		return temporalDay{
			key:        "thursday_of_the_lords_supper",
			name:       "Thursday of the Lord's Supper (Holy Thursday)",
			rank:       "TRIDUUM",
			season:     SeasonTriduum,
			colors:     []string{ColorWhite},
			precedence: precTriduum,
		}
	case 5:
		return temporalDay{
			key:        "friday_of_the_passion_of_the_lord",
			name:       "Friday of the Passion of the Lord (Good Friday)",
			rank:       "TRIDUUM",
			season:     SeasonTriduum,
			colors:     []string{ColorRed},
			precedence: precTriduum,
		}
	case 6:
		return temporalDay{
			key:        "holy_saturday",
			name:       "Holy Saturday",
			rank:       "TRIDUUM",
			season:     SeasonTriduum,
			colors:     []string{ColorPurple},
			precedence: precTriduum,
		}
	}

	name := fmt.Sprintf("%s of Holy Week", date.Weekday())
	return temporalDay{
		key:        slug(name),
		name:       name,
		rank:       "WEEKDAY",
		season:     SeasonLent,
		colors:     []string{ColorPurple},
		precedence: precTriduum,
	}
}

func eastertideDay(date time.Time, yd yearDates) temporalDay {
	days := daysBetween(yd.easter, date)

	// Monday through Saturday within the Octave of Easter rank as
	// solemnities and displace everything.
	if days >= 1 && days <= 6 {
		name := fmt.Sprintf("%s within the Octave of Easter", date.Weekday())
		return temporalDay{
			key:        slug(name),
			name:       name,
			rank:       "SOLEMNITY",
			season:     SeasonEastertide,
			colors:     []string{ColorWhite},
			precedence: precSolemnity,
		}
	}

	week := days/7 + 1
	if date.Weekday() == time.Sunday {
		name := fmt.Sprintf("%s Sunday of Easter", ordinal(week))
		if week == 2 {
			name += " (Divine Mercy Sunday)"
		}
		return temporalDay{
			key:        slug(name),
			name:       name,
			rank:       "SUNDAY",
			season:     SeasonEastertide,
			colors:     []string{ColorWhite},
			precedence: precPrivilegedSunday,
		}
	}

	name := fmt.Sprintf("%s of the %s Week of Easter", date.Weekday(), ordinal(week))
	return temporalDay{
		key:        slug(name),
		name:       name,
		rank:       "WEEKDAY",
		season:     SeasonEastertide,
		colors:     []string{ColorWhite},
		precedence: precWeekday,
	}
}

func adventDay(date time.Time, yd yearDates) temporalDay {
	week := daysBetween(yd.advent, date)/7 + 1

	if date.Weekday() == time.Sunday {
		name := fmt.Sprintf("%s Sunday of Advent", ordinal(week))
		colors := []string{ColorPurple}
		if week == 3 {
			// Gaudete Sunday
			colors = []string{ColorRose, ColorPurple}
		}
		return temporalDay{
			key:        slug(name),
			name:       name,
			rank:       "SUNDAY",
			season:     SeasonAdvent,
			colors:     colors,
			precedence: precPrivilegedSunday,
		}
	}

	name := fmt.Sprintf("%s of the %s Week of Advent", date.Weekday(), ordinal(week))
	return temporalDay{
		key:        slug(name),
		name:       name,
		rank:       "WEEKDAY",
		season:     SeasonAdvent,
		colors:     []string{ColorPurple},
		precedence: precWeekday,
	}
}

func octaveOfChristmasDay(date time.Time) temporalDay {
	name := fmt.Sprintf("%s within the Octave of Christmas", date.Weekday())
	return temporalDay{
		key:        slug(name),
		name:       name,
		rank:       "WEEKDAY",
		season:     SeasonChristmastide,
		colors:     []string{ColorWhite},
		precedence: precWeekday,
	}
}

// movableDays returns the named days whose dates move with Easter or
// Advent, plus the fixed anchors of the temporal cycle (Christmas,
// Epiphany), keyed by YYYY-MM-DD.
func movableDays(year int, yd yearDates) map[string]temporalDay {
	out := make(map[string]temporalDay)

	add := func(date time.Time, td temporalDay) {
		out[dateKey(date)] = td
	}

	add(yd.christmas, temporalDay{
		key:        "nativity_of_the_lord",
		name:       "The Nativity of the Lord",
		rank:       "SOLEMNITY",
		season:     SeasonChristmastide,
		colors:     []string{ColorWhite},
		precedence: precSolemnity,
	})
	add(yd.epiphany, temporalDay{
		key:        "epiphany_of_the_lord",
		name:       "The Epiphany of the Lord",
		rank:       "SOLEMNITY",
		season:     SeasonChristmastide,
		colors:     []string{ColorWhite},
		precedence: precSolemnity,
	})
	add(yd.baptism, temporalDay{
		key:        "baptism_of_the_lord",
		name:       "The Baptism of the Lord",
		rank:       "FEAST",
		season:     SeasonChristmastide,
		colors:     []string{ColorWhite},
		precedence: precFeast,
	})
	add(yd.ash, temporalDay{
		key:        "ash_wednesday",
		name:       "Ash Wednesday",
		rank:       "WEEKDAY",
		season:     SeasonLent,
		colors:     []string{ColorPurple},
		// Ash Wednesday displaces any memorial that shares its date.
		precedence: precPrivilegedSunday,
	})
	add(yd.palmSunday, temporalDay{
		key:        "palm_sunday_of_the_passion_of_the_lord",
		name:       "Palm Sunday of the Passion of the Lord",
		rank:       "SUNDAY",
		season:     SeasonLent,
		colors:     []string{ColorRed},
		precedence: precPrivilegedSunday,
	})
	add(yd.easter, temporalDay{
		key:        "easter_sunday_of_the_resurrection_of_the_lord",
		name:       "Easter Sunday of the Resurrection of the Lord",
		rank:       "SOLEMNITY",
		season:     SeasonEastertide,
		colors:     []string{ColorWhite},
		precedence: precTriduum,
	})
	add(yd.easter.AddDate(0, 0, 39), temporalDay{
		key:        "ascension_of_the_lord",
		name:       "The Ascension of the Lord",
		rank:       "SOLEMNITY",
		season:     SeasonEastertide,
		colors:     []string{ColorWhite},
		precedence: precSolemnity,
	})
	add(yd.pentecost, temporalDay{
		key:        "pentecost_sunday",
		name:       "Pentecost Sunday",
		rank:       "SOLEMNITY",
		season:     SeasonEastertide,
		colors:     []string{ColorRed},
		precedence: precSolemnity,
	})
	add(yd.pentecost.AddDate(0, 0, 7), temporalDay{
		key:        "most_holy_trinity",
		name:       "The Most Holy Trinity",
		rank:       "SOLEMNITY",
		season:     SeasonOrdinaryTime,
		colors:     []string{ColorWhite},
		precedence: precSolemnity,
	})
	add(yd.pentecost.AddDate(0, 0, 14), temporalDay{
		key:        "most_holy_body_and_blood_of_christ",
		name:       "The Most Holy Body and Blood of Christ (Corpus Christi)",
		rank:       "SOLEMNITY",
		season:     SeasonOrdinaryTime,
		colors:     []string{ColorWhite},
		precedence: precSolemnity,
	})
	add(yd.easter.AddDate(0, 0, 68), temporalDay{
		key:        "most_sacred_heart_of_jesus",
		name:       "The Most Sacred Heart of Jesus",
		rank:       "SOLEMNITY",
		season:     SeasonOrdinaryTime,
		colors:     []string{ColorWhite},
		precedence: precSolemnity,
	})
	add(yd.advent.AddDate(0, 0, -7), temporalDay{
		key:        "christ_the_king",
		name:       "Our Lord Jesus Christ, King of the Universe",
		rank:       "SOLEMNITY",
		season:     SeasonOrdinaryTime,
		colors:     []string{ColorWhite},
		precedence: precSolemnity,
	})
	add(holyFamily(year, yd), temporalDay{
		key:        "holy_family_of_jesus_mary_and_joseph",
		name:       "The Holy Family of Jesus, Mary and Joseph",
		rank:       "FEAST",
		season:     SeasonChristmastide,
		colors:     []string{ColorWhite},
		precedence: precFeast,
	})

	return out
}

// holyFamily falls on the Sunday within the Octave of Christmas, or
// December 30 when Christmas itself is a Sunday and no such Sunday
// exists.
func holyFamily(year int, yd yearDates) time.Time {
	for d := 26; d <= 31; d++ {
		date := time.Date(year, time.December, d, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Sunday {
			return date
		}
	}
	return time.Date(year, time.December, 30, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func sundayOnOrBefore(date time.Time) time.Time {
	return date.AddDate(0, 0, -int(date.Weekday()))
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}

// slug turns a display name into a stable lowercase key.
func slug(name string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimRight(b.String(), "_")
}
