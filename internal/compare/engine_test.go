package compare

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/config"
	"github.com/fiplan/fiplan/internal/domain"
)

var compareStart = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func testPlan() *config.Plan {
	baseline := domain.Scenario{
		ID:                 "baseline",
		Name:               "baseline",
		BaseMonthlyBudget:  decimal.NewFromInt(3000),
		YearlyContribution: decimal.NewFromInt(20000),
	}
	aggressive := domain.Scenario{
		ID:                 "aggressive",
		Name:               "aggressive",
		BaseMonthlyBudget:  decimal.NewFromInt(3000),
		YearlyContribution: decimal.NewFromInt(40000),
	}
	frugal := domain.Scenario{
		ID:                 "frugal",
		Name:               "frugal",
		BaseMonthlyBudget:  decimal.NewFromInt(2000),
		YearlyContribution: decimal.NewFromInt(20000),
	}
	baseline.ApplyDefaults()
	aggressive.ApplyDefaults()
	frugal.ApplyDefaults()

	return &config.Plan{
		CurrentNetWorth: decimal.NewFromInt(200000),
		HorizonYears:    40,
		Scenarios:       []domain.Scenario{baseline, aggressive, frugal},
	}
}

func TestCompare_AllScenarios(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())

	compSet, err := engine.Compare(context.Background(), testPlan(), CompareOptions{
		BaseScenarioName: "baseline",
		StartDate:        compareStart,
	})
	require.NoError(t, err)
	require.NotNil(t, compSet.BaseResult)
	require.Len(t, compSet.AlternativeResults, 2, "empty alternatives means everything but base")

	// Input order survives the concurrent runs.
	assert.Equal(t, "aggressive", compSet.AlternativeResults[0].ScenarioName)
	assert.Equal(t, "frugal", compSet.AlternativeResults[1].ScenarioName)
}

func TestCompare_MetricsAndDeltas(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())

	compSet, err := engine.Compare(context.Background(), testPlan(), CompareOptions{
		BaseScenarioName: "baseline",
		AlternativeNames: []string{"aggressive"},
		StartDate:        compareStart,
	})
	require.NoError(t, err)

	base := compSet.BaseResult
	agg := compSet.AlternativeResults[0]

	assert.True(t, base.FITarget.Equal(decimal.NewFromInt(900000)),
		"3000/month at 4%% SWR targets 900k, got %s", base.FITarget)

	// Double the contribution grows faster and reaches FI sooner.
	assert.True(t, agg.NetWorthAt30.GreaterThan(base.NetWorthAt30))
	assert.True(t, agg.NetWorthDiffAt30.IsPositive())
	require.NotNil(t, base.YearsToFI)
	require.NotNil(t, agg.YearsToFI)
	assert.Less(t, *agg.YearsToFI, *base.YearsToFI)
	require.NotNil(t, agg.YearsToFIDiff)
	assert.Negative(t, *agg.YearsToFIDiff)
}

func TestCompare_Recommendations(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())

	compSet, err := engine.Compare(context.Background(), testPlan(), CompareOptions{
		BaseScenarioName: "baseline",
		StartDate:        compareStart,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, compSet.Recommendations, "an alternative beats base on some metric")
}

func TestCompare_UnknownScenarios(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())

	_, err := engine.Compare(context.Background(), testPlan(), CompareOptions{
		BaseScenarioName: "missing",
	})
	assert.Error(t, err)

	_, err = engine.Compare(context.Background(), testPlan(), CompareOptions{
		BaseScenarioName: "baseline",
		AlternativeNames: []string{"missing"},
	})
	assert.Error(t, err)
}
