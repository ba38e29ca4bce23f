package duration

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Unit is a unit of time accepted in an offset expression.
type Unit int

const (
	// Nanosecond through Week are fixed-length units.
	Nanosecond Unit = iota + 1
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week

	// Month and Year are calendar units; their length depends on the
	// instant they are applied to.
	Month
	Year
)

var unitNames = map[Unit]string{
	Nanosecond:  "nanoseconds",
	Microsecond: "microseconds",
	Millisecond: "milliseconds",
	Second:      "seconds",
	Minute:      "minutes",
	Hour:        "hours",
	Day:         "days",
	Week:        "weeks",
	Month:       "months",
	Year:        "years",
}

var unitSymbols = map[Unit]string{
	Nanosecond:  "ns",
	Microsecond: "µs",
	Millisecond: "ms",
	Second:      "s",
	Minute:      "m",
	Hour:        "h",
	Day:         "d",
	Week:        "w",
	Month:       "mo",
	Year:        "y",
}

var unitLengths = map[Unit]time.Duration{
	Nanosecond:  time.Nanosecond,
	Microsecond: time.Microsecond,
	Millisecond: time.Millisecond,
	Second:      time.Second,
	Minute:      time.Minute,
	Hour:        time.Hour,
	Day:         24 * time.Hour,
	Week:        7 * 24 * time.Hour,
}

// unitWords maps every accepted (lower-cased) spelling to its unit.
// Bare "m" is minutes; months need "mo", "mon" or "month".
var unitWords = map[string]Unit{
	"ns": Nanosecond, "nsec": Nanosecond, "nsecs": Nanosecond,
	"nanosecond": Nanosecond, "nanoseconds": Nanosecond,

	"us": Microsecond, "µs": Microsecond, "μs": Microsecond,
	"usec": Microsecond, "usecs": Microsecond,
	"microsecond": Microsecond, "microseconds": Microsecond,

	"ms": Millisecond, "msec": Millisecond, "msecs": Millisecond,
	"millisecond": Millisecond, "milliseconds": Millisecond,

	"s": Second, "sec": Second, "secs": Second,
	"second": Second, "seconds": Second,

	"m": Minute, "min": Minute, "mins": Minute,
	"minute": Minute, "minutes": Minute,

	"h": Hour, "hr": Hour, "hrs": Hour,
	"hour": Hour, "hours": Hour,

	"d": Day, "day": Day, "days": Day,

	"w": Week, "wk": Week, "wks": Week,
	"week": Week, "weeks": Week,

	"mo": Month, "mon": Month, "mos": Month,
	"month": Month, "months": Month,

	"y": Year, "yr": Year, "yrs": Year,
	"year": Year, "years": Year,
}

// LookupUnit resolves a unit word, ignoring case.
func LookupUnit(word string) (Unit, bool) {
	u, ok := unitWords[strings.ToLower(word)]
	return u, ok
}

// Units returns every unit, shortest first.
func Units() []Unit {
	return []Unit{Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day, Week, Month, Year}
}

// String returns the plural unit name, e.g. "seconds".
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

// Symbol returns the canonical abbreviation, e.g. "ms".
func (u Unit) Symbol() string {
	return unitSymbols[u]
}

// Fixed reports whether the unit has a constant length.
func (u Unit) Fixed() bool {
	_, ok := unitLengths[u]
	return ok
}

// Length returns the length of one unit, or 0 for calendar units.
func (u Unit) Length() time.Duration {
	return unitLengths[u]
}

// Words returns the accepted spellings for the unit, sorted by length.
func (u Unit) Words() []string {
	var words []string
	for w, unit := range unitWords {
		if unit == u {
			words = append(words, w)
		}
	}
	slices.SortFunc(words, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return words
}
