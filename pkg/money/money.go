// Package money holds the rounding rules for monetary amounts.
package money

import "github.com/shopspring/decimal"

// Round2 rounds an amount to cents, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Percent returns v * pct / 100 rounded to cents.
func Percent(v, pct float64) float64 {
	return decimal.NewFromFloat(v).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}
