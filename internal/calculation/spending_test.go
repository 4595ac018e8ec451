package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fiplan/fiplan/internal/domain"
)

func testScenario() *domain.Scenario {
	s := &domain.Scenario{
		ID:                "s1",
		Name:              "base",
		CurrentRate:       d(7),
		SWR:               d(4),
		InflationRate:     d(3),
		BaseMonthlyBudget: d(3000),
	}
	s.ApplyDefaults()
	return s
}

func TestMonthlySpend_InflationIndexedBase(t *testing.T) {
	s := testScenario()

	now := MonthlySpend(d(500000), s, 0)
	assert.True(t, now.Equal(d(3000)), "year 0 spend should be the base budget, got %s", now)

	// One year out the base budget grows by the inflation rate.
	oneYear := MonthlySpend(d(500000), s, 1)
	assert.InDelta(t, 3090, oneYear.InexactFloat64(), 0.01, "base budget should grow 3%% in a year")
}

func TestMonthlySpend_NetWorthPortion(t *testing.T) {
	s := testScenario()
	s.SpendingGrowthRate = d(1) // 1% of net worth per year

	spend := MonthlySpend(d(1200000), s, 0)
	// 3000 base + 1,200,000 * 1% / 12 = 3000 + 1000.
	assert.True(t, spend.Equal(d(4000)), "spend should include net worth portion, got %s", spend)
}

func TestMonthlySpend_LinearInNetWorth(t *testing.T) {
	s := testScenario()
	s.SpendingGrowthRate = d(2)

	base := MonthlySpend(decimal.Zero, s, 5)
	atNW := MonthlySpend(d(400000), s, 5)
	atDouble := MonthlySpend(d(800000), s, 5)

	// Doubling net worth doubles only the net worth portion.
	portion := atNW.Sub(base)
	doublePortion := atDouble.Sub(base)
	assert.True(t, doublePortion.Sub(portion.Mul(decimal.NewFromInt(2))).Abs().LessThan(d(0.0001)),
		"net worth portion should scale linearly")
}

func TestMonthlySpend_ZeroEverything(t *testing.T) {
	s := testScenario()
	s.BaseMonthlyBudget = decimal.Zero
	s.SpendingGrowthRate = decimal.Zero

	// No hidden floor: zero budget and zero growth rate yield zero spend.
	for _, nw := range []decimal.Decimal{decimal.Zero, d(1000000), d(-50000)} {
		assert.True(t, MonthlySpend(nw, s, 10).IsZero(), "spend should be zero for net worth %s", nw)
	}
}

func TestMonthlySpend_NegativeNetWorthPropagates(t *testing.T) {
	s := testScenario()
	s.BaseMonthlyBudget = decimal.Zero
	s.SpendingGrowthRate = d(4)

	spend := MonthlySpend(d(-120000), s, 0)
	assert.True(t, spend.IsNegative(), "negative net worth should produce negative spend, got %s", spend)
}
