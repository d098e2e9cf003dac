package utils

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RoundHalfUp rounds a non-negative amount to the nearest whole currency unit.
// Halves round away from zero.
func RoundHalfUp(amount float64) int64 {
	return RoundDecimal(decimal.NewFromFloat(amount))
}

// RoundDecimal rounds d to a whole currency unit
func RoundDecimal(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// PercentOf returns amount * percent / 100 rounded to a whole unit
func PercentOf(amount int64, percent float64) int64 {
	return RoundDecimal(decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100)))
}

// MinInt64 returns the smaller of a and b
func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// MaxInt64 returns the larger of a and b
func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// FormatCurrency renders whole dollars with thousands separators, e.g. 676000 -> "$676,000".
func FormatCurrency(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}

// FormatPercent renders a percentage with a fixed number of decimal places.
func FormatPercent(value float64, places int) string {
	return strconv.FormatFloat(value, 'f', places, 64) + "%"
}

// FormatYears renders a loan term such as "30 years".
func FormatYears(years int) string {
	if years == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", years)
}
