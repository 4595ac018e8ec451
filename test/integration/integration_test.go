package integration

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/compare"
	"github.com/fiplan/fiplan/internal/config"
	"github.com/fiplan/fiplan/internal/output"
	"github.com/fiplan/fiplan/internal/solver"
	"github.com/fiplan/fiplan/internal/store"
	"github.com/fiplan/fiplan/internal/transform"
)

const examplePlan = "../testdata/example_plan.yaml"

var integrationStart = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func loadExamplePlan(t *testing.T) *config.Plan {
	t.Helper()
	plan, err := config.NewInputParser().LoadFromFile(examplePlan)
	require.NoError(t, err, "example plan should load")
	return plan
}

func TestPlanToProjectionEndToEnd(t *testing.T) {
	plan := loadExamplePlan(t)
	require.Len(t, plan.Scenarios, 3)

	selected := plan.SelectedScenarios()
	require.Len(t, selected, 1, "only baseline carries the selected flag")
	require.Equal(t, "baseline", selected[0].Name)

	engine := calculation.NewEngine()
	result, err := engine.RunScenario(selected[0], plan.CurrentNetWorth, integrationStart, plan.Profile, plan.HorizonYears)
	require.NoError(t, err)

	require.Len(t, result.Projection.YearlyRows, 41, "a 40-year horizon has 41 yearly rows")
	require.Len(t, result.Projection.MonthlyRows, 480)

	// $3,000/month at a 4% SWR targets $900,000 today.
	first := result.Projection.YearlyRows[0]
	assert.True(t, first.FITarget.Equal(decimal.NewFromInt(900000)),
		"FI target should be $900,000, got %s", first.FITarget)
	assert.Equal(t, 34, first.Age, "born 1990-03-15, age 34 in June 2024")

	fiRow := result.Projection.FiRow()
	require.NotNil(t, fiRow, "baseline should reach FI within 40 years")

	require.NotNil(t, result.Milestones)
	require.NotNil(t, result.Milestones.NextMilestone)
}

func TestProjectionFormatters(t *testing.T) {
	plan := loadExamplePlan(t)
	engine := calculation.NewEngine()

	aggressive := plan.FindScenario("aggressive")
	require.NotNil(t, aggressive)

	result, err := engine.RunScenario(aggressive, plan.CurrentNetWorth, integrationStart, plan.Profile, plan.HorizonYears)
	require.NoError(t, err)
	require.NotNil(t, result.Tax, "an income scenario should carry a tax breakdown")

	console, err := output.GetFormatterByName("console").Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(console), "aggressive")

	verbose, err := output.GetFormatterByName("console-verbose").Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(verbose), "TAX BREAKDOWN")
	assert.Contains(t, string(verbose), "MILESTONES")

	csvOut, err := output.GetFormatterByName("csv").Format(result)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvOut)), "\n")
	assert.Len(t, lines, 42, "header plus 41 yearly rows")
}

func TestCompareEndToEnd(t *testing.T) {
	plan := loadExamplePlan(t)

	engine := compare.NewCompareEngine(calculation.NewEngine())
	set, err := engine.Compare(context.Background(), plan, compare.CompareOptions{
		BaseScenarioName: "baseline",
		StartDate:        integrationStart,
	})
	require.NoError(t, err)

	require.Len(t, set.AlternativeResults, 2)
	require.NotNil(t, set.BaseResult.YearsToFI)

	for _, alt := range set.AlternativeResults {
		if alt.ScenarioName != "frugal" {
			continue
		}
		require.NotNil(t, alt.YearsToFI)
		assert.Less(t, *alt.YearsToFI, *set.BaseResult.YearsToFI,
			"a lower budget reaches FI sooner than baseline")
	}
	assert.NotEmpty(t, set.Recommendations)

	table := (&compare.TableFormatter{}).Format(set)
	assert.Contains(t, table, "FI SCENARIO COMPARISON")
	assert.Contains(t, table, "baseline")
}

func TestWhatIfTemplateComparison(t *testing.T) {
	plan := loadExamplePlan(t)
	base := plan.FindScenario("baseline")
	require.NotNil(t, base)

	registry := transform.BuiltInTemplates()
	tpl, ok := registry.Get("double_savings")
	require.True(t, ok)

	derived, err := transform.ApplyTransforms(base, tpl.Transforms)
	require.NoError(t, err)

	engine := calculation.NewEngine()
	baseResult, err := engine.RunScenario(base, plan.CurrentNetWorth, integrationStart, plan.Profile, plan.HorizonYears)
	require.NoError(t, err)
	derivedResult, err := engine.RunScenario(derived, plan.CurrentNetWorth, integrationStart, plan.Profile, plan.HorizonYears)
	require.NoError(t, err)

	baseFi := baseResult.Projection.FiRow()
	derivedFi := derivedResult.Projection.FiRow()
	require.NotNil(t, baseFi)
	require.NotNil(t, derivedFi)
	assert.True(t, derivedFi.YearsFromNow.LessThan(baseFi.YearsFromNow),
		"doubled savings should reach FI sooner")
}

func TestSolveFromPlan(t *testing.T) {
	plan := loadExamplePlan(t)
	baseline := plan.FindScenario("baseline")
	require.NotNil(t, baseline)

	s := solver.NewDefaultSolver(calculation.NewEngine())
	result, err := s.Solve(context.Background(), solver.SolveRequest{
		Scenario:        baseline,
		CurrentNetWorth: plan.CurrentNetWorth,
		Profile:         plan.Profile,
		HorizonYears:    plan.HorizonYears,
		Target:          solver.SolveContribution,
		TargetYears:     12,
	})
	require.NoError(t, err)
	require.True(t, result.Success)

	assert.True(t, result.SolvedValue.GreaterThan(baseline.YearlyContribution),
		"hitting FI in 12 years needs more than the current $12k/year")
	assert.LessOrEqual(t, result.YearsToFI, 12)
}

func TestStoreWritebackFlow(t *testing.T) {
	plan := loadExamplePlan(t)
	engine := calculation.NewEngine()

	repo, err := store.NewSQLiteRepository(filepath.Join(t.TempDir(), "fiplan.db"))
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	_, err = repo.AddEntry(ctx, plan.CurrentNetWorth, integrationStart)
	require.NoError(t, err)

	aggressive := plan.FindScenario("aggressive")
	require.NotNil(t, aggressive)
	aggressive.ID = aggressive.Name

	tax := engine.RecomputeContribution(aggressive, plan.CurrentNetWorth)
	require.NotNil(t, tax)
	require.NoError(t, repo.SaveScenario(ctx, aggressive))

	stored, err := repo.Scenarios(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	assert.True(t, stored[0].YearlyContribution.Equal(aggressive.YearlyContribution),
		"the recomputed contribution should survive the round trip")
	assert.True(t, stored[0].Income.EffectiveTaxRate.GreaterThan(decimal.Zero))

	latest, err := repo.LatestEntry(ctx)
	require.NoError(t, err)
	assert.True(t, latest.Amount.Equal(plan.CurrentNetWorth))
}
