package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places every amount is kept at.
const MoneyPlaces = 2

// FeeFactor models the flat 3% processing fee taken from raw terminal amounts.
var FeeFactor = decimal.RequireFromString("0.97")

// Money normalizes an amount to cents.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// NetOfFee applies FeeFactor to a raw terminal amount.
func NetOfFee(raw decimal.Decimal) decimal.Decimal {
	return Money(raw.Mul(FeeFactor))
}

// FormatMoney renders an amount with exactly two decimals, e.g. "48.50".
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

// ParseMoney parses an amount, accepting either '.' or ',' as the decimal separator.
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return Money(d), nil
}

func validateNonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return newValidationError(field, "must not be negative")
	}
	return nil
}
