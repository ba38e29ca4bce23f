package duration

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Token is one (magnitude, unit) pair of an expression.
type Token struct {
	Magnitude string // signed integer or decimal as written, e.g. "-1.5"
	Unit      Unit
	Raw       string // the token's source text, e.g. "15 days"
}

// Tokenize splits an expression into tokens without evaluating them.
func Tokenize(expr string) ([]Token, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidSyntax)
	}

	var tokens []Token
	rest := expr
	for {
		rest = strings.TrimLeftFunc(rest, isSeparator)
		if rest == "" {
			break
		}
		start := len(expr) - len(rest)

		n := scanNumber(rest)
		if n == 0 {
			return nil, fmt.Errorf("%w: expected a number at %q in %q", ErrInvalidSyntax, rest, expr)
		}
		magnitude := rest[:n]

		rest = strings.TrimLeftFunc(rest[n:], unicode.IsSpace)
		w := scanWord(rest)
		if w == 0 {
			return nil, fmt.Errorf("%w: missing unit after %q in %q", ErrInvalidSyntax, magnitude, expr)
		}
		word := rest[:w]
		unit, ok := LookupUnit(word)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownUnit, word, expr)
		}
		rest = rest[w:]

		tokens = append(tokens, Token{
			Magnitude: magnitude,
			Unit:      unit,
			Raw:       expr[start : len(expr)-len(rest)],
		})
	}

	return tokens, nil
}

// Duration evaluates the token on its own.
func (t Token) Duration() (Duration, error) {
	amount, err := t.amount()
	if err != nil {
		return Duration{}, err
	}
	switch t.Unit {
	case Month:
		return newDuration(t.Raw, decimal.Zero, amount, decimal.Zero)
	case Year:
		return newDuration(t.Raw, amount, decimal.Zero, decimal.Zero)
	default:
		return newDuration(t.Raw, decimal.Zero, decimal.Zero, amount)
	}
}

// amount returns the token in nanoseconds for fixed units, or as a whole
// count for calendar units. Sub-nanosecond fractions truncate toward zero.
func (t Token) amount() (decimal.Decimal, error) {
	mag, err := decimal.NewFromString(normalizeMagnitude(t.Magnitude))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bad magnitude %q", ErrInvalidSyntax, t.Magnitude)
	}
	if !t.Unit.Fixed() {
		if !mag.IsInteger() {
			return decimal.Zero, fmt.Errorf("%w: %s must be a whole number in %q", ErrInvalidSyntax, t.Unit, t.Raw)
		}
		return mag, nil
	}
	return mag.Mul(decimal.NewFromInt(int64(t.Unit.Length()))).Truncate(0), nil
}

// normalizeMagnitude drops a leading '+' and adds the zero in ".5".
func normalizeMagnitude(s string) string {
	s = strings.TrimPrefix(s, "+")
	switch {
	case strings.HasPrefix(s, "."):
		return "0" + s
	case strings.HasPrefix(s, "-."):
		return "-0" + s[1:]
	}
	return s
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == ','
}

// scanNumber returns the byte length of a leading [+-]digits[.digits]
// number in s, or 0 if there is none.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	return i
}

// scanWord returns the byte length of the leading run of letters in s.
func scanWord(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(r) {
			break
		}
		i += size
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
