package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected int64
	}{
		{name: "exact", amount: 1500, expected: 1500},
		{name: "half rounds up", amount: 17707.5, expected: 17708},
		{name: "below half", amount: 2997.49, expected: 2997},
		{name: "above half", amount: 2997.75, expected: 2998},
		{name: "zero", amount: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundHalfUp(tt.amount))
		})
	}
}

func TestRoundDecimal(t *testing.T) {
	assert.Equal(t, int64(40208), RoundDecimal(decimal.RequireFromString("40207.5")))
	assert.Equal(t, int64(260), RoundDecimal(decimal.RequireFromString("259.625")))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, int64(67600), PercentOf(676000, 10))
	assert.Equal(t, int64(13520), PercentOf(676000, 2))
	assert.Equal(t, int64(0), PercentOf(676000, 0))
	assert.Equal(t, int64(12168), PercentOf(676000, 1.8))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", FormatCurrency(0))
	assert.Equal(t, "$999", FormatCurrency(999))
	assert.Equal(t, "$676,000", FormatCurrency(676000))
	assert.Equal(t, "$10,000,000", FormatCurrency(10000000))
	assert.Equal(t, "-$1,250", FormatCurrency(-1250))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "2.00%", FormatPercent(2, 2))
	assert.Equal(t, "92.0%", FormatPercent(92, 1))
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "1 year", FormatYears(1))
	assert.Equal(t, "30 years", FormatYears(30))
}

func TestMinMaxInt64(t *testing.T) {
	assert.Equal(t, int64(3), MinInt64(3, 7))
	assert.Equal(t, int64(7), MaxInt64(3, 7))
}
