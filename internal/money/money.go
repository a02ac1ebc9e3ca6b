// Package money converts between decimal amounts and integer cents.
//
// Amounts travel through the API and domain as decimal.Decimal values with at
// most two decimal places. Arithmetic that must be exact (splits, balance
// updates) is done on int64 cents, which is also what the store persists.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places every amount carries.
const Scale = 2

var (
	ErrTooPrecise = errors.New("amount has more than 2 decimal places")
	ErrOutOfRange = errors.New("amount is out of range")
)

// maxAmount bounds accepted amounts so cent sums can never overflow int64.
var maxAmount = decimal.New(1, maxExponent)

const (
	// maxExponent is the largest exponent a nonzero amount below maxAmount
	// can have.
	maxExponent = 12
	// minExponent allows trailing zeros such as "1.500" while refusing
	// exponents whose rescaling would be expensive.
	minExponent = -18
)

// ToCents converts d to integer cents.
// It fails if d has sub-cent precision or exceeds the supported range.
// The exponent is checked before any rounding or comparison, since both
// rescale the coefficient to the larger exponent.
func ToCents(d decimal.Decimal) (int64, error) {
	if d.IsZero() {
		return 0, nil
	}
	switch exp := d.Exponent(); {
	case exp > maxExponent:
		return 0, fmt.Errorf("%w: exponent %d", ErrOutOfRange, exp)
	case exp < minExponent:
		return 0, fmt.Errorf("%w: exponent %d", ErrTooPrecise, exp)
	}

	if !d.Equal(d.Round(Scale)) {
		return 0, fmt.Errorf("%w: %s", ErrTooPrecise, d.String())
	}
	if d.Abs().GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, d.String())
	}
	return d.Shift(Scale).IntPart(), nil
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -Scale)
}

// Parse reads a decimal string such as "12.50" and checks it is representable
// in cents.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if _, err := ToCents(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// Format renders d with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
