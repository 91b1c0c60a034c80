package money

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with cent precision.
type Money struct {
	decimal decimal.Decimal
}

// Zero represents zero (0) amount.
// Zero always equals to 0 and to 0.0...N.
var Zero = NewFromInt(0)

// MaxTransactionAmount is the largest amount a single transaction may carry.
var MaxTransactionAmount = mustFromString("999999999.99")

// NewFromString parses string and returns decimal amount.
// If s is empty, Zero is returned without an error.
func NewFromString(s string) (Money, error) {
	if len(s) == 0 {
		return Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, err
	}
	return Money{d}, nil
}

// NewFromInt returns decimal amount from integer number.
func NewFromInt(i int64) Money {
	return Money{decimal.NewFromInt(i)}
}

// NewFromFloat returns decimal amount from float number.
func NewFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

func mustFromString(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return Money{d}
}

// RoundToCents returns the amount rounded to 2 fractional digits,
// half away from zero.
func (m Money) RoundToCents() Money {
	return Money{m.decimal.Round(2)}
}

// Inc increments the amount by right.
// Same as left = left + right; left+=right
func (m *Money) Inc(right Money) {
	m.decimal = m.decimal.Add(right.decimal)
}

// Sub returns left - right amounts.
func (m Money) Sub(right Money) Money {
	return Money{m.decimal.Sub(right.decimal)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.decimal.IsPositive()
}

// GreaterThan reports whether the amount is strictly greater than right.
func (m Money) GreaterThan(right Money) bool {
	return m.decimal.GreaterThan(right.decimal)
}

// Equal reports whether two amounts are numerically equal.
func (m Money) Equal(right Money) bool {
	return m.decimal.Equal(right.decimal)
}

// Float64 returns the nearest float64 representation of the amount.
func (m Money) Float64() float64 {
	f, _ := m.decimal.Float64()
	return f
}

// StringFixed returns string representation of the amount with 2 places
// after digit. Resulting string will be rounded to nearest.
func (m Money) StringFixed() string {
	return m.decimal.StringFixed(2)
}
