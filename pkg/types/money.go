package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount that marshals as a bare JSON number, matching the
// shape persisted in collection snapshots (`"price": 9.99`, not a string).
type Money struct {
	decimal.Decimal
}

// ParseMoney converts raw form input into a Money value.
func ParseMoney(raw string) (Money, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Money{}, fmt.Errorf("amount is empty")
	}
	dec, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return Money{Decimal: dec}, nil
}

// MustMoney parses raw or panics; intended for seeded defaults and tests.
func MustMoney(raw string) Money {
	m, err := ParseMoney(raw)
	if err != nil {
		panic(err)
	}
	return m
}

// MarshalJSON emits the amount as an unquoted number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

// Equal reports numeric equality.
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}
