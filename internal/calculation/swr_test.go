package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeSWRAmounts(t *testing.T) {
	amounts := ComputeSWRAmounts(d(1000000), d(4))

	assert.True(t, amounts.Annual.Equal(d(40000)), "annual should be 40000, got %s", amounts.Annual)
	assert.InDelta(t, 3333.33, amounts.Monthly.InexactFloat64(), 0.01)
	assert.InDelta(t, 766.58, amounts.Weekly.InexactFloat64(), 0.01)
	assert.InDelta(t, 109.51, amounts.Daily.InexactFloat64(), 0.01)
}

func TestComputeSWRAmounts_ZeroRate(t *testing.T) {
	amounts := ComputeSWRAmounts(d(1000000), decimal.Zero)
	assert.True(t, amounts.Annual.IsZero())
	assert.True(t, amounts.Monthly.IsZero())
}

func TestFITarget(t *testing.T) {
	// (3000 * 12) / 0.04 = 900,000.
	target := FITarget(d(3000), d(4))
	assert.True(t, target.Equal(d(900000)), "FI target should be 900000, got %s", target)
}

func TestFITarget_ZeroSWR(t *testing.T) {
	// An infinite target is reported as zero, not an error.
	assert.True(t, FITarget(d(3000), decimal.Zero).IsZero())
	assert.True(t, FITarget(d(3000), d(-1)).IsZero())
}

func TestFIProgress(t *testing.T) {
	progress := FIProgress(d(500000), d(900000))
	assert.InDelta(t, 55.56, progress.InexactFloat64(), 0.01)

	progress = FIProgress(d(1000000), d(900000))
	assert.InDelta(t, 111.11, progress.InexactFloat64(), 0.01)
}

func TestFIProgress_ZeroTarget(t *testing.T) {
	assert.True(t, FIProgress(d(500000), decimal.Zero).IsZero())
	assert.True(t, FIProgress(d(500000), d(-1)).IsZero())
}
