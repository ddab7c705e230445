package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// FormatCurrency форматирует сумму с точностью до цента ("1234.57").
// Округление выполняется в десятичной арифметике, половина - от нуля.
func FormatCurrency(value float64) string {
	if !IsFinite(value) {
		return nonFinite(value)
	}
	return decimal.NewFromFloat(value).Round(2).StringFixed(2)
}

// FormatPercent форматирует долю как проценты ("15.00%")
func FormatPercent(fraction float64) string {
	if !IsFinite(fraction) {
		return nonFinite(fraction)
	}
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func nonFinite(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return "+Inf"
	case math.IsInf(value, -1):
		return "-Inf"
	default:
		return "NaN"
	}
}
