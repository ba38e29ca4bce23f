// Package duration provides parsing for human-readable offset expressions
// such as "15 days 20 seconds 100 milliseconds" or "1h30m".
//
// Fixed-length units (nanoseconds through weeks) are summed into an exact
// elapsed time. Months and years are kept as separate calendar counts and
// are applied with calendar arithmetic against the instant they offset.
package duration

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidSyntax is returned when an expression has no usable
	// (magnitude, unit) token or a token is malformed.
	ErrInvalidSyntax = errors.New("invalid duration syntax")

	// ErrUnknownUnit is returned when a unit word is not recognised.
	ErrUnknownUnit = errors.New("unknown duration unit")

	// ErrOverflow is returned when the accumulated offset does not fit.
	ErrOverflow = errors.New("duration overflow")
)

var (
	minElapsed  = decimal.NewFromInt(math.MinInt64)
	maxElapsed  = decimal.NewFromInt(math.MaxInt64)
	minCalendar = decimal.NewFromInt(math.MinInt32)
	maxCalendar = decimal.NewFromInt(math.MaxInt32)
)

// Duration is a signed offset made of an exact elapsed part and a
// calendar part. The zero value is an empty offset.
type Duration struct {
	Years   int
	Months  int
	Elapsed time.Duration
}

// Parse parses an offset expression. Tokens may be separated by spaces
// ("15 days 20 seconds") or written together ("15d20s"); units match
// case-insensitively in singular, plural or abbreviated form.
func Parse(expr string) (Duration, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return Duration{}, err
	}

	elapsed := decimal.Zero
	months := decimal.Zero
	years := decimal.Zero
	for _, tok := range tokens {
		amount, err := tok.amount()
		if err != nil {
			return Duration{}, err
		}
		switch tok.Unit {
		case Month:
			months = months.Add(amount)
		case Year:
			years = years.Add(amount)
		default:
			elapsed = elapsed.Add(amount)
		}
	}

	return newDuration(expr, years, months, elapsed)
}

func newDuration(expr string, years, months, elapsed decimal.Decimal) (Duration, error) {
	if elapsed.LessThan(minElapsed) || elapsed.GreaterThan(maxElapsed) {
		return Duration{}, fmt.Errorf("%w: %q exceeds %v", ErrOverflow, expr, time.Duration(math.MaxInt64))
	}
	if outsideCalendar(years) || outsideCalendar(months) {
		return Duration{}, fmt.Errorf("%w: %q has too many months or years", ErrOverflow, expr)
	}
	return Duration{
		Years:   int(years.IntPart()),
		Months:  int(months.IntPart()),
		Elapsed: time.Duration(elapsed.IntPart()),
	}, nil
}

func outsideCalendar(n decimal.Decimal) bool {
	return n.LessThan(minCalendar) || n.GreaterThan(maxCalendar)
}

// Apply offsets t: the calendar part is added first with time.AddDate,
// then the elapsed part as exact elapsed time.
func (d Duration) Apply(t time.Time) time.Time {
	if d.Years != 0 || d.Months != 0 {
		t = t.AddDate(d.Years, d.Months, 0)
	}
	return t.Add(d.Elapsed)
}

// IsZero reports whether the offset has no effect.
func (d Duration) IsZero() bool {
	return d.Years == 0 && d.Months == 0 && d.Elapsed == 0
}

// HasCalendar reports whether the offset contains months or years.
func (d Duration) HasCalendar() bool {
	return d.Years != 0 || d.Months != 0
}

// String renders the offset in a form Parse accepts, e.g. "1y 2mo 15d 20s 100ms".
func (d Duration) String() string {
	if d.IsZero() {
		return "0s"
	}
	var parts []string
	if d.Years != 0 {
		parts = append(parts, fmt.Sprintf("%dy", d.Years))
	}
	if d.Months != 0 {
		parts = append(parts, fmt.Sprintf("%dmo", d.Months))
	}
	if d.Elapsed != 0 {
		parts = append(parts, formatElapsed(d.Elapsed))
	}
	return strings.Join(parts, " ")
}

// formatElapsed splits e into days down to nanoseconds, signing each part
// so that the result parses back to e.
func formatElapsed(e time.Duration) string {
	sign := ""
	mag := uint64(e)
	if e < 0 {
		sign = "-"
		mag = uint64(-(e + 1)) + 1
	}

	var parts []string
	for _, u := range []Unit{Day, Hour, Minute, Second, Millisecond, Microsecond, Nanosecond} {
		length := uint64(u.Length())
		if n := mag / length; n > 0 {
			parts = append(parts, fmt.Sprintf("%s%d%s", sign, n, u.Symbol()))
			mag %= length
		}
	}
	return strings.Join(parts, " ")
}
