package solver

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/domain"
)

func testScenario() *domain.Scenario {
	return &domain.Scenario{
		ID:                 "baseline",
		Name:               "baseline",
		CurrentRate:        decimal.NewFromInt(7),
		SWR:                decimal.NewFromInt(4),
		InflationRate:      decimal.NewFromInt(3),
		BaseMonthlyBudget:  decimal.NewFromInt(3000),
		YearlyContribution: decimal.NewFromInt(12000),
	}
}

func testRequest(target SolveTarget, targetYears int) SolveRequest {
	return SolveRequest{
		Scenario:        testScenario(),
		CurrentNetWorth: decimal.NewFromInt(200000),
		HorizonYears:    40,
		Target:          target,
		TargetYears:     targetYears,
	}
}

func TestSolveContribution(t *testing.T) {
	s := NewDefaultSolver(calculation.NewEngine())

	result, err := s.Solve(context.Background(), testRequest(SolveContribution, 10))
	require.NoError(t, err)
	require.True(t, result.Success)

	// Hitting a $1.2M nominal FI target in 10 years from $200k at 7% needs
	// roughly $59k/year of contributions.
	assert.True(t, result.SolvedValue.GreaterThan(decimal.NewFromInt(50000)),
		"solved contribution %s should exceed $50k", result.SolvedValue)
	assert.True(t, result.SolvedValue.LessThan(decimal.NewFromInt(70000)),
		"solved contribution %s should be below $70k", result.SolvedValue)
	assert.LessOrEqual(t, result.YearsToFI, 10)
	require.NotNil(t, result.Result)
	require.NotNil(t, result.Result.Projection.FiRow())
}

func TestSolveContributionAlreadyOnTrack(t *testing.T) {
	s := NewDefaultSolver(calculation.NewEngine())

	req := testRequest(SolveContribution, 10)
	req.CurrentNetWorth = decimal.NewFromInt(2000000)

	result, err := s.Solve(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.True(t, result.SolvedValue.IsZero(), "a portfolio past the target needs no contributions")
	assert.Contains(t, result.ConvergenceInfo, "already on track")
}

func TestSolveContributionUnreachable(t *testing.T) {
	s := NewDefaultSolver(calculation.NewEngine())

	// Spending that grows as 5% of net worth can never be covered by a 4%
	// withdrawal rate, no matter how much is contributed.
	req := testRequest(SolveContribution, 10)
	req.Scenario.SpendingGrowthRate = decimal.NewFromInt(5)

	_, err := s.Solve(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not reachable")
}

func TestSolveBudget(t *testing.T) {
	s := NewDefaultSolver(calculation.NewEngine())

	result, err := s.Solve(context.Background(), testRequest(SolveBudget, 20))
	require.NoError(t, err)
	require.True(t, result.Success)

	// At the 20-year net worth the sustainable inflation-indexed budget is
	// around $2,300/month.
	assert.True(t, result.SolvedValue.GreaterThan(decimal.NewFromInt(2000)),
		"solved budget %s should exceed $2,000", result.SolvedValue)
	assert.True(t, result.SolvedValue.LessThan(decimal.NewFromInt(2700)),
		"solved budget %s should be below $2,700", result.SolvedValue)
	assert.LessOrEqual(t, result.YearsToFI, 20)
}

func TestSolveSWR(t *testing.T) {
	s := NewDefaultSolver(calculation.NewEngine())

	result, err := s.Solve(context.Background(), testRequest(SolveSWR, 20))
	require.NoError(t, err)
	require.True(t, result.Success)

	// Covering the year-20 budget from the year-20 portfolio takes roughly a
	// 5.1% withdrawal rate.
	assert.True(t, result.SolvedValue.GreaterThan(decimal.NewFromFloat(4.5)),
		"solved SWR %s should exceed 4.5%%", result.SolvedValue)
	assert.True(t, result.SolvedValue.LessThan(decimal.NewFromFloat(5.8)),
		"solved SWR %s should be below 5.8%%", result.SolvedValue)
	assert.LessOrEqual(t, result.YearsToFI, 20)
}

func TestSolveValidation(t *testing.T) {
	s := NewDefaultSolver(calculation.NewEngine())

	_, err := s.Solve(context.Background(), SolveRequest{Target: SolveContribution, TargetYears: 10})
	require.Error(t, err, "missing scenario should fail validation")

	req := testRequest(SolveContribution, 0)
	_, err = s.Solve(context.Background(), req)
	require.Error(t, err, "zero target years should fail validation")

	req = testRequest(SolveContribution, 50)
	_, err = s.Solve(context.Background(), req)
	require.Error(t, err, "target years beyond the horizon should fail validation")

	req = testRequest("net_worth", 10)
	_, err = s.Solve(context.Background(), req)
	require.Error(t, err, "unknown target should fail")
	assert.Contains(t, err.Error(), "unsupported solve target")
}

func TestSolveCancelled(t *testing.T) {
	s := NewDefaultSolver(calculation.NewEngine())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Solve(ctx, testRequest(SolveContribution, 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
