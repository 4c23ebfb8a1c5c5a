package utils

import "math"

// RoundToDecimalPrecision rounds a quantity down to the given decimal
// precision. Rounding down never overshoots the intended spend.
func RoundToDecimalPrecision(quantity float64, decimalPrecision int) float64 {
	multiplier := math.Pow10(decimalPrecision)

	return math.Floor(quantity*multiplier) / multiplier
}
