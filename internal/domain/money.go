package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary precision constants
const (
	// MonetaryScale is the number of decimal places for stored amounts
	MonetaryScale = 2
	// PercentageScale is the intermediate precision for percentage division
	PercentageScale = 4
)

var oneHundred = decimal.NewFromInt(100)

// Money is an exact decimal amount normalized to two decimal places with
// half-up rounding. The zero value is 0.00.
type Money struct {
	value decimal.Decimal
}

// NewMoney creates a Money from a decimal, normalizing it to monetary scale
func NewMoney(value decimal.Decimal) Money {
	return Money{value: value.Round(MonetaryScale)}
}

// NewMoneyFromString parses a decimal string into a Money
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("invalid monetary amount %q: %w", value, err)
	}
	return NewMoney(d), nil
}

// NewMoneyFromInt creates a Money from whole currency units
func NewMoneyFromInt(value int64) Money {
	return NewMoney(decimal.NewFromInt(value))
}

// ZeroMoney returns a zero amount
func ZeroMoney() Money {
	return Money{}
}

// Add returns m + other
func (m Money) Add(other Money) Money {
	return NewMoney(m.value.Add(other.value))
}

// Sub returns m - other
func (m Money) Sub(other Money) Money {
	return NewMoney(m.value.Sub(other.value))
}

// Abs returns the absolute value
func (m Money) Abs() Money {
	return NewMoney(m.value.Abs())
}

// Neg returns the negated amount
func (m Money) Neg() Money {
	return NewMoney(m.value.Neg())
}

// IsPositive reports whether the amount is greater than zero
func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

// IsNegative reports whether the amount is less than zero
func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// IsZero reports whether the amount is exactly zero
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Equal reports whether two amounts are equal after normalization
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// GreaterThan reports whether m > other
func (m Money) GreaterThan(other Money) bool {
	return m.value.GreaterThan(other.value)
}

// GreaterThanOrEqual reports whether m >= other
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.value.GreaterThanOrEqual(other.value)
}

// LessThan reports whether m < other
func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

// PercentageOf returns m as a percentage of total. Division runs at
// percentage scale before the final rounding back to monetary scale.
func (m Money) PercentageOf(total Money) (Money, error) {
	if total.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	ratio := m.value.DivRound(total.value, PercentageScale)
	return NewMoney(ratio.Mul(oneHundred)), nil
}

// Decimal returns the underlying normalized decimal value
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// String formats the amount with exactly two decimal places
func (m Money) String() string {
	return m.value.StringFixed(MonetaryScale)
}

// MarshalJSON encodes the amount as a fixed-scale decimal string
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes a decimal string or JSON number
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = NewMoney(d)
	return nil
}

// Value implements driver.Valuer for database storage
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (m *Money) Scan(src interface{}) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return err
	}
	*m = NewMoney(d)
	return nil
}
