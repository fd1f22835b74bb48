package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount is returned when an amount string cannot be
// represented exactly in minor units.
var ErrMalformedAmount = errors.New("malformed amount")

// ParseAmount converts a major-unit string such as "12.34" into integer
// minor units. Anything finer than two decimal places is rejected
// rather than rounded.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrMalformedAmount
	}

	minor := d.Shift(2)
	if !minor.IsInteger() {
		return 0, ErrMalformedAmount
	}

	if !minor.BigInt().IsInt64() {
		return 0, ErrMalformedAmount
	}

	return minor.IntPart(), nil
}

// FormatAmount renders minor units as a major-unit string with two
// decimal places.
func FormatAmount(minor int64) string {
	return decimal.NewFromInt(minor).Shift(-2).StringFixed(2)
}
