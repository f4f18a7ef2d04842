package app

import "github.com/shopspring/decimal"

// The zero-on-empty policy for every aggregate lives here so it is
// enforced (and tested) once: dividing by zero or averaging an empty
// set yields zero, never NaN, Inf, or an error.

func safeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func safeRatio(num, den int) float64 {
	return safeDivide(float64(num), float64(den))
}

func safeAverageDecimal(vals []decimal.Decimal) decimal.Decimal {
	if len(vals) == 0 {
		return decimal.Zero
	}
	return decimal.Avg(vals[0], vals[1:]...)
}
