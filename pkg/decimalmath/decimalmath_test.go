package decimalmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPow(t *testing.T) {
	got := Pow(decimal.NewFromFloat(1.07), 10)
	assert.InDelta(t, 1.967151, got.InexactFloat64(), 0.000001)

	assert.True(t, Pow(decimal.NewFromInt(2), 0).Equal(decimal.NewFromInt(1)))
	assert.True(t, Pow(decimal.NewFromInt(-3), 2).IsZero(), "non-positive bases clamp to zero")
}

func TestGrowthFactor(t *testing.T) {
	got := GrowthFactor(decimal.NewFromInt(7), 1)
	assert.InDelta(t, 1.07, got.InexactFloat64(), 0.0000001)

	// Fractional years work, unlike decimal.Pow.
	half := GrowthFactor(decimal.NewFromInt(7), 0.5)
	assert.InDelta(t, 1.034408, half.InexactFloat64(), 0.000001)
}

func TestCompound(t *testing.T) {
	got := Compound(decimal.NewFromInt(1000), decimal.NewFromInt(7), 2)
	assert.InDelta(t, 1144.9, got.InexactFloat64(), 0.01)

	// Zero rate is the identity.
	same := Compound(decimal.NewFromInt(1000), decimal.Zero, 30)
	assert.True(t, same.Equal(decimal.NewFromInt(1000)))
}

func TestDeflate(t *testing.T) {
	nominal := Compound(decimal.NewFromInt(1000), decimal.NewFromInt(3), 10)
	real := Deflate(nominal, decimal.NewFromInt(3), 10)
	assert.InDelta(t, 1000, real.InexactFloat64(), 0.0001)

	// A -100% rate collapses the factor; deflating reports zero.
	assert.True(t, Deflate(decimal.NewFromInt(1000), decimal.NewFromInt(-100), 1).IsZero())
}
