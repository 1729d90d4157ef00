package common

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AtoiDefault converts the provided string to an integer falling back to the default when parsing fails.
func AtoiDefault(value string, def int) int {
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// ParseIndex parses a 1-based menu selection. Zero is allowed so
// callers can treat it as "finished".
func ParseIndex(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, Validation("enter a valid number", err)
	}
	if n < 0 {
		return 0, Validation("number must not be negative", nil)
	}
	return n, nil
}

// ParseQuantity parses a strictly positive integer quantity.
func ParseQuantity(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, Validation("enter a valid quantity", err)
	}
	if n <= 0 {
		return 0, Validation("quantity must be greater than 0", nil)
	}
	return n, nil
}

// ParseAmount parses a non-negative decimal amount.
func ParseAmount(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, Validation("enter a valid amount", err)
	}
	if d.IsNegative() {
		return decimal.Zero, Validation("amount must not be negative", nil)
	}
	return d, nil
}
