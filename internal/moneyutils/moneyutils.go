// Package moneyutils provides decimal amount parsing for statement values.
package moneyutils

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a locale-formatted amount string into a decimal value.
// Indian grouping ("1,23,456.78") and Western grouping ("123,456.78") are
// both handled by stripping every comma and whitespace character before
// parsing. Non-numeric or empty input yields zero, never an error: callers
// treat zero as "no amount" and drop the row.
func ParseAmount(amountStr string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, amountStr)

	if cleaned == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// IsPositive reports whether the amount is strictly greater than zero.
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
