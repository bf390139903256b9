package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FormatCents renders an amount in minor currency units as a display
// string, e.g. 2595 -> "$25.95". Negative amounts keep their sign.
func FormatCents(cents int64) string {
	d := decimal.NewFromInt(cents).Div(hundred)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// PercentOf applies a percentage to an amount in cents, rounding to the
// nearest cent. Kept for display breakdowns only; discount amounts used in
// pricing always come verbatim from the validation endpoint.
func PercentOf(cents int64, percent float64) int64 {
	return decimal.NewFromInt(cents).
		Mul(decimal.NewFromFloat(percent)).
		Div(hundred).
		Round(0).
		IntPart()
}
