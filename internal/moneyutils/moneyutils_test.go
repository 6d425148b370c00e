package moneyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"indian grouping", "1,23,456.78", "123456.78"},
		{"western grouping", "123,456.78", "123456.78"},
		{"plain decimal", "250.50", "250.5"},
		{"integer", "250", "250"},
		{"embedded spaces", " 1 234.00 ", "1234"},
		{"empty string", "", "0"},
		{"non-numeric", "abc", "0"},
		{"mixed garbage", "12ab", "0"},
		{"negative", "-42.10", "-42.1"},
		{"only separators", ", ,", "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tc.expected)
			assert.NoError(t, err)
			assert.True(t, ParseAmount(tc.input).Equal(expected),
				"ParseAmount(%q) = %s, want %s", tc.input, ParseAmount(tc.input), expected)
		})
	}
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(decimal.NewFromInt(1)))
	assert.False(t, IsPositive(decimal.Zero))
	assert.False(t, IsPositive(decimal.NewFromInt(-1)))
}
