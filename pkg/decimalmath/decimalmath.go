// Package decimalmath bridges the fractional-exponent math the projection
// engine needs onto shopspring decimals. decimal.Pow only supports integer
// exponents, so growth factors for partial years go through float64; the
// ~15 significant digits of float64 are far below the cent-level tolerance
// of a multi-decade projection.
package decimalmath

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Pow returns base raised to a fractional exponent.
func Pow(base decimal.Decimal, exp float64) decimal.Decimal {
	b := base.InexactFloat64()
	if b <= 0 {
		// Growth bases at or below zero are clamped rather than producing NaN.
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Pow(b, exp))
}

// GrowthFactor returns (1 + ratePercent/100)^years.
func GrowthFactor(ratePercent decimal.Decimal, years float64) decimal.Decimal {
	base := decimal.NewFromInt(1).Add(ratePercent.Div(hundred))
	return Pow(base, years)
}

// Compound grows amount at ratePercent per year for a fractional number of
// years.
func Compound(amount, ratePercent decimal.Decimal, years float64) decimal.Decimal {
	return amount.Mul(GrowthFactor(ratePercent, years))
}

// Deflate converts a nominal future amount into today's dollars at the given
// annual inflation percentage.
func Deflate(amount, inflationPercent decimal.Decimal, years float64) decimal.Decimal {
	factor := GrowthFactor(inflationPercent, years)
	if factor.IsZero() {
		return decimal.Zero
	}
	return amount.Div(factor)
}
