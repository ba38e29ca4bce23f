// Package compare implements the relational operators used to test a
// sample instant against the adjusted reference instant.
package compare

import (
	"fmt"
	"time"
)

// Operator is a relational operator between a sample and a reference.
type Operator int

const (
	Gt Operator = iota + 1
	Lt
	Eq
	Ge
	Le
)

var operatorNames = map[Operator]string{
	Gt: "gt",
	Lt: "lt",
	Eq: "eq",
	Ge: "ge",
	Le: "le",
}

var operatorSymbols = map[Operator]string{
	Gt: ">",
	Lt: "<",
	Eq: "=",
	Ge: ">=",
	Le: "<=",
}

// Operators returns all operators in display order.
func Operators() []Operator {
	return []Operator{Gt, Lt, Eq, Ge, Le}
}

// String returns the operator's command name.
func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Symbol returns the mathematical symbol, e.g. ">=".
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

// Description explains the comparison the operator performs.
func (o Operator) Description() string {
	return fmt.Sprintf("Compare sample time %s reference + offset", o.Symbol())
}

// Compare applies op to sample and reference. Equality is exact instant
// equality; the zone and monotonic reading are ignored.
func Compare(sample, reference time.Time, op Operator) bool {
	switch op {
	case Gt:
		return sample.After(reference)
	case Lt:
		return sample.Before(reference)
	case Eq:
		return sample.Equal(reference)
	case Ge:
		return !sample.Before(reference)
	case Le:
		return !sample.After(reference)
	default:
		return false
	}
}
