package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiplan/fiplan/internal/domain"
)

var projectionStart = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func TestProject_AlreadyFI(t *testing.T) {
	engine := NewEngine()
	s := testScenario()

	result := engine.Project(s, d(1000000), projectionStart, domain.Profile{}, 30)
	require.Len(t, result.YearlyRows, 31)

	row0 := result.YearlyRows[0]
	assert.True(t, row0.NetWorth.Equal(d(1000000)), "year 0 is the current baseline")
	assert.True(t, row0.FITarget.Equal(d(900000)), "FI target should be (3000*12)/0.04, got %s", row0.FITarget)
	assert.InDelta(t, 111.11, row0.FIProgress.InexactFloat64(), 0.01)
	assert.True(t, row0.IsFiYear, "already past the target, FI at year 0")
	assert.True(t, row0.SwrCoversSpend)
}

func TestProject_HalfwayToFI(t *testing.T) {
	engine := NewEngine()
	s := testScenario()

	result := engine.Project(s, d(500000), projectionStart, domain.Profile{}, 40)

	row0 := result.YearlyRows[0]
	assert.InDelta(t, 55.56, row0.FIProgress.InexactFloat64(), 0.01)
	assert.False(t, row0.IsFiYear)

	// 500,000 growing at 7% catches the 3%-inflating 900,000 target in
	// year 16: (1.07/1.03)^16 is the first power >= 1.8.
	fiRow := result.FiRow()
	require.NotNil(t, fiRow, "FI should be reached within the horizon")
	assert.True(t, fiRow.YearsFromNow.Equal(decimal.NewFromInt(16)), "FI year should be 16, got %s", fiRow.YearsFromNow)

	// Exactly one FI row.
	count := 0
	for _, row := range result.YearlyRows {
		if row.IsFiYear {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestProject_Idempotent(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.YearlyContribution = d(24000)

	a := engine.Project(s, d(250000), projectionStart, domain.Profile{}, 45)
	b := engine.Project(s, d(250000), projectionStart, domain.Profile{}, 45)

	assert.Equal(t, a, b, "identical inputs must yield identical projections")
}

func TestProject_ContributionAnnuity(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.YearlyContribution = d(10000)

	result := engine.Project(s, decimal.Zero, projectionStart, domain.Profile{}, 10)

	// End-of-year deposits: 10,000 * (1.07^2 + 1.07 + 1) after three years.
	row3 := result.YearlyRows[3]
	assert.InDelta(t, 32149, row3.NetWorth.InexactFloat64(), 1)
	assert.True(t, row3.Contributed.Equal(d(30000)))
	assert.InDelta(t, 2149, row3.Interest.InexactFloat64(), 1)
}

func TestProject_Crossover(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.YearlyContribution = d(10000)

	result := engine.Project(s, d(100000), projectionStart, domain.Profile{}, 30)

	cross := result.CrossoverRow()
	require.NotNil(t, cross)
	// Cumulative growth first exceeds cumulative contributions in year 6.
	assert.True(t, cross.YearsFromNow.Equal(decimal.NewFromInt(6)), "crossover should be year 6, got %s", cross.YearsFromNow)

	row5 := result.YearlyRows[5]
	assert.True(t, row5.Interest.LessThan(row5.Contributed), "year 5 interest still below contributions")
}

func TestProject_CoastIgnoresContributions(t *testing.T) {
	engine := NewEngine()

	withSmall := testScenario()
	withSmall.YearlyContribution = decimal.Zero
	withLarge := testScenario()
	withLarge.YearlyContribution = d(500000)

	a := engine.Project(withSmall, d(200000), projectionStart, domain.Profile{}, 30)
	b := engine.Project(withLarge, d(200000), projectionStart, domain.Profile{}, 30)

	require.NotNil(t, a.YearlyRows[0].CoastFiYear)
	require.NotNil(t, b.YearlyRows[0].CoastFiYear)
	assert.Equal(t, *a.YearlyRows[0].CoastFiYear, *b.YearlyRows[0].CoastFiYear,
		"coast-FI compounds the current balance only; future contributions must not matter")
}

func TestProject_NegativeNetWorth(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.BaseMonthlyBudget = decimal.Zero
	s.SpendingGrowthRate = d(4)

	result := engine.Project(s, d(-100000), projectionStart, domain.Profile{}, 10)

	row := result.YearlyRows[5]
	assert.True(t, row.NetWorth.IsNegative(), "negative net worth propagates")
	assert.True(t, row.MonthlySpend.IsNegative(), "spending follows net worth without special-casing")
	assert.True(t, row.FIProgress.IsZero(), "progress against a negative target is reported as zero")
}

func TestProject_IncomeAndTaxFields(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.Income = &domain.IncomeProfile{
		GrossIncome:      d(100000),
		IncomeGrowthRate: d(2),
		FilingStatus:     domain.FilingSingle,
	}
	s.YearlyContribution = d(20000)

	result := engine.Project(s, d(100000), projectionStart, domain.Profile{}, 20)

	row0 := result.YearlyRows[0]
	assert.True(t, row0.GrossIncome.Equal(d(100000)))
	assert.True(t, row0.TotalTax.Equal(d(21491)), "year 0 tax should match the single-filer breakdown")

	row10 := result.YearlyRows[10]
	assert.InDelta(t, 121899, row10.GrossIncome.InexactFloat64(), 1, "gross income should grow 2%% per year")
	assert.True(t, row10.TotalTax.GreaterThan(row0.TotalTax))

	// Contributions grow with income.
	assert.InDelta(t, 24380, row10.AnnualSavings.InexactFloat64(), 1)
}

func TestProject_DefaultHorizon(t *testing.T) {
	engine := NewEngine()
	s := testScenario()

	result := engine.Project(s, d(100000), projectionStart, domain.Profile{}, 0)
	assert.Len(t, result.YearlyRows, DefaultHorizonYears+1)
	assert.Len(t, result.MonthlyRows, DefaultHorizonYears*12)
}

func TestProject_MonthlyRowsInterpolate(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.YearlyContribution = d(12000)

	result := engine.Project(s, d(300000), projectionStart, domain.Profile{}, 10)
	require.Len(t, result.MonthlyRows, 120)

	// Month 12 lands exactly on the first anniversary.
	month12 := result.MonthlyRows[11]
	assert.True(t, month12.NetWorth.Sub(result.YearlyRows[1].NetWorth).Abs().LessThan(d(0.01)),
		"month 12 should match year 1 net worth")

	// Net worth is monotone for a growing scenario.
	prev := result.MonthlyRows[0].NetWorth
	for _, row := range result.MonthlyRows[1:] {
		assert.True(t, row.NetWorth.GreaterThanOrEqual(prev), "monthly net worth should not decrease")
		prev = row.NetWorth
	}
}

func TestProject_DoesNotMutateScenario(t *testing.T) {
	engine := NewEngine()
	s := &domain.Scenario{Name: "sparse", BaseMonthlyBudget: d(3000)}

	result := engine.Project(s, d(100000), projectionStart, domain.Profile{}, 10)
	require.NotEmpty(t, result.YearlyRows)

	// Defaults go to an internal copy; zero still reads as "unset" here.
	assert.True(t, s.CurrentRate.IsZero())
	assert.True(t, s.SWR.IsZero())
	assert.True(t, s.InflationRate.IsZero())
}

func TestProject_AgesFromProfile(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	profile := domain.Profile{BirthDate: time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC)}

	result := engine.Project(s, d(100000), projectionStart, profile, 10)
	assert.Equal(t, 34, result.YearlyRows[0].Age)
	assert.Equal(t, 44, result.YearlyRows[10].Age)
}
