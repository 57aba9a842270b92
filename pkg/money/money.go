// Package money provides the monetary amount type used for all account
// balances. Amounts are backed by arbitrary-precision decimals so that
// repeated credits and debits never drift, and render with exactly four
// fractional digits.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// scale is the number of fractional digits in rendered amounts.
const scale = 4

// Amount is a monetary value. The zero value is zero money.
type Amount struct {
	value decimal.Decimal
}

// Zero is the zero amount.
var Zero = Amount{}

// Parse parses a decimal numeric string into an Amount. More than four
// fractional digits are preserved internally; rendering rounds.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

// MustParse parses s and panics on failure. Intended for tests and
// constants.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Add returns a + other.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Sub returns a - other.
func (a Amount) Sub(other Amount) Amount {
	return Amount{value: a.value.Sub(other.value)}
}

// Cmp compares two amounts: -1 if a < other, 0 if equal, 1 if a > other.
func (a Amount) Cmp(other Amount) int {
	return a.value.Cmp(other.value)
}

// LessThan reports whether a < other.
func (a Amount) LessThan(other Amount) bool {
	return a.value.LessThan(other.value)
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Equal reports whether two amounts are numerically equal.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// String renders the amount with exactly four fractional digits, sign
// preserved, no separators or exponent. Extra digits round half away
// from zero.
func (a Amount) String() string {
	return a.value.StringFixed(scale)
}
