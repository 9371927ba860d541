// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts from strings
// and converting between cents and decimal representations.
package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxCents keeps cents*100 arithmetic and summation well inside int64.
var maxCents = decimal.NewFromInt((1<<63 - 1) / 1000)

// ParseDecimalToCents converts a decimal string to cents with proper rounding.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and performs
// half-up rounding on the third decimal place. Zero is accepted; negative
// values are rejected with ErrNegativeAmount.
//
// Examples:
//
//	ParseDecimalToCents("12.34") -> 1234, nil
//	ParseDecimalToCents("12,34") -> 1234, nil
//	ParseDecimalToCents("12.345") -> 1235, nil (rounds up)
//	ParseDecimalToCents("-1") -> 0, ErrNegativeAmount
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return decimalToCents(d)
}

// ParseMoney parses a user-entered amount into Money.
func ParseMoney(s string) (Money, error) {
	cents, err := ParseDecimalToCents(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Cents: cents}, nil
}

func decimalToCents(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	cents := d.Round(2).Shift(2)
	if cents.GreaterThan(maxCents) {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// Decimal returns the exact decimal value of m in currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// String formats m with exactly two fractional digits, e.g. "10.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Float returns the value as a float64 for display purposes and for targets
// that only store floating point numbers.
// Note: Use cents for calculations to avoid floating-point precision issues.
func (m Money) Float() float64 {
	return m.Decimal().InexactFloat64()
}

// MarshalJSON writes the amount as a bare JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
// null is rejected rather than read as zero.
func (m *Money) UnmarshalJSON(b []byte) error {
	if strings.TrimSpace(string(b)) == "null" {
		return fmt.Errorf("%w: null", ErrInvalidAmount)
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return ErrInvalidAmount
	}
	cents, err := decimalToCents(d)
	if err != nil {
		return err
	}
	m.Cents = cents
	return nil
}
