// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors. The ERP schema keeps
// amounts in LAK with a Baht view stored alongside, so every amount exists in
// two currencies derived through one exchange rate.
type Money = decimal.Decimal

// AmountPlaces is the scale for LAK and Baht amount columns.
const AmountPlaces = 2

// CostPlaces is the scale for average-cost and sum-of-cost columns.
const CostPlaces = 4

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// RoundAmount rounds a LAK or Baht amount to 2 decimal places,
// half away from zero.
func RoundAmount(m Money) Money {
	return m.Round(AmountPlaces)
}

// RoundCost rounds a cost figure to 4 decimal places, half away from zero.
func RoundCost(m Money) Money {
	return m.Round(CostPlaces)
}

// ToBaht converts a LAK amount to Baht through the given exchange rate and
// rounds to 2 decimal places.
func ToBaht(lak, rate Money) Money {
	return RoundAmount(lak.Mul(rate))
}
