// Package timestamp parses and formats instants with strftime-style
// format strings, resolved in the local time zone.
package timestamp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

// ErrImpossible is wrapped by a ParseError when the text matches the format
// but names no real instant, such as Feb 30 or a weekday that contradicts
// the date.
var ErrImpossible = errors.New("impossible date")

// DefaultFormat matches ctime-style stamps such as "Fri May 13 03:13:06 2022".
const DefaultFormat = "%a %b %e %T %Y"

// ParseError reports a timestamp that does not match its format.
type ParseError struct {
	Text   string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse timestamp %q with format %q: %v", e.Text, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses text against format in time.Local. An empty format means
// DefaultFormat. Runs of whitespace in both are treated as one space, so
// the space padding of %e does not need to be matched exactly.
func Parse(text, format string) (time.Time, error) {
	return ParseInLocation(text, format, time.Local)
}

// ParseInLocation is like Parse but resolves the instant in loc. The
// parsed instant must format back to the same text, so dates that would
// roll over and mismatched weekdays are rejected with ErrImpossible.
func ParseInLocation(text, format string, loc *time.Location) (time.Time, error) {
	if format == "" {
		format = DefaultFormat
	}
	t, err := timefmt.ParseInLocation(squeeze(text), squeeze(format), loc)
	if err != nil {
		return time.Time{}, &ParseError{Text: text, Format: format, Err: err}
	}
	if got := timefmt.Format(t, format); canonical(got) != canonical(text) {
		return time.Time{}, &ParseError{
			Text:   text,
			Format: format,
			Err:    fmt.Errorf("%w: reads back as %q", ErrImpossible, squeeze(got)),
		}
	}
	return t, nil
}

// Format renders t with format, or DefaultFormat when format is empty.
func Format(t time.Time, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	return timefmt.Format(t, format)
}

func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// canonical squeezes whitespace, folds case and drops leading zeros from
// each run of digits, so "May  5" and "may 05" compare equal.
func canonical(s string) string {
	s = strings.ToLower(squeeze(s))

	var b strings.Builder
	b.Grow(len(s))
	inNumber := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '0' && !inNumber && i+1 < len(s) && isDigit(s[i+1]) {
			continue
		}
		inNumber = isDigit(c)
		b.WriteByte(c)
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
