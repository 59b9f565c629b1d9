package model

import "github.com/shopspring/decimal"

// Money is a fixed-point currency amount. It serializes as a JSON number with
// exactly two fractional digits and maps to a decimal(18,2) column.
type Money struct {
	decimal.Decimal
}

// NewMoney builds a Money from a decimal value.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MoneyFromString parses a decimal string into Money.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Decimal: d}, nil
}

// Mul returns the amount multiplied by d.
func (m Money) Mul(d decimal.Decimal) Money {
	return Money{Decimal: m.Decimal.Mul(d)}
}

// MarshalJSON renders the amount with two fractional digits, e.g. 75.50.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.StringFixed(2)), nil
}
