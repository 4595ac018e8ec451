package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiplan/fiplan/internal/domain"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validPlanYAML = `
profile:
  birth_date: 1990-03-15T00:00:00Z
current_net_worth: 200000
horizon_years: 30
scenarios:
  - name: baseline
    current_rate: 7
    swr: 4
    inflation_rate: 3
    base_monthly_budget: 3000
    yearly_contribution: 12000
  - name: aggressive
    base_monthly_budget: 3000
    yearly_contribution: 24000
    income:
      gross_income: 100000
      filing_status: single
      state_code: CA
      pre_tax:
        traditional_401k: 23000
`

func TestLoadFromFile(t *testing.T) {
	path := writePlanFile(t, validPlanYAML)

	parser := NewInputParser()
	plan, err := parser.LoadFromFile(path)
	require.NoError(t, err, "valid plan file should load")

	assert.True(t, plan.CurrentNetWorth.Equal(decimal.NewFromInt(200000)), "net worth should parse exactly")
	assert.Equal(t, 30, plan.HorizonYears)
	assert.True(t, plan.Profile.HasBirthDate(), "birth date should be set")
	require.Len(t, plan.Scenarios, 2)

	baseline := plan.FindScenario("baseline")
	require.NotNil(t, baseline)
	assert.True(t, baseline.CurrentRate.Equal(decimal.NewFromInt(7)))

	aggressive := plan.FindScenario("aggressive")
	require.NotNil(t, aggressive)
	require.NotNil(t, aggressive.Income)
	assert.True(t, aggressive.Income.PreTax.Traditional401k.Equal(decimal.NewFromInt(23000)))
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writePlanFile(t, `
current_net_worth: 50000
horizon_years: 20
scenarios:
  - name: minimal
    base_monthly_budget: 2500
`)

	parser := NewInputParser()
	plan, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	s := plan.FindScenario("minimal")
	require.NotNil(t, s)
	assert.True(t, s.CurrentRate.Equal(domain.DefaultCurrentRate), "zero growth rate should pick up the default")
	assert.True(t, s.SWR.Equal(domain.DefaultSWR), "zero SWR should pick up the default")
	assert.True(t, s.InflationRate.Equal(domain.DefaultInflationRate), "zero inflation should pick up the default")
	assert.Equal(t, domain.DefaultRetirementAge, s.RetirementAge)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err, "missing file should error")
}

func TestLoadFromFileBadYAML(t *testing.T) {
	path := writePlanFile(t, "scenarios: [unclosed")

	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	require.Error(t, err, "malformed YAML should error")
}

func TestValidatePlanRejectsEmptyScenarios(t *testing.T) {
	parser := NewInputParser()
	err := parser.ValidatePlan(&Plan{HorizonYears: 30})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenarios")
}

func TestValidatePlanRejectsBadHorizon(t *testing.T) {
	parser := NewInputParser()
	plan := &Plan{
		HorizonYears: 150,
		Scenarios:    []domain.Scenario{{Name: "baseline"}},
	}
	err := parser.ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "horizon years")
}

func TestValidatePlanRejectsDuplicateNames(t *testing.T) {
	parser := NewInputParser()
	plan := &Plan{
		HorizonYears: 30,
		Scenarios: []domain.Scenario{
			{Name: "baseline"},
			{Name: "baseline"},
		},
	}
	err := parser.ValidatePlan(plan)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate scenario name")
}

func TestValidateScenarioFieldRanges(t *testing.T) {
	tests := []struct {
		name     string
		scenario domain.Scenario
		wantErr  string
	}{
		{
			name:     "missing name",
			scenario: domain.Scenario{},
			wantErr:  "name is required",
		},
		{
			name: "growth rate too high",
			scenario: domain.Scenario{
				Name:        "hot",
				CurrentRate: decimal.NewFromInt(60),
			},
			wantErr: "current rate",
		},
		{
			name: "negative swr",
			scenario: domain.Scenario{
				Name: "bad-swr",
				SWR:  decimal.NewFromInt(-1),
			},
			wantErr: "safe withdrawal rate",
		},
		{
			name: "inflation out of range",
			scenario: domain.Scenario{
				Name:          "deflation",
				InflationRate: decimal.NewFromInt(-50),
			},
			wantErr: "inflation rate",
		},
		{
			name: "negative budget",
			scenario: domain.Scenario{
				Name:              "negative-budget",
				BaseMonthlyBudget: decimal.NewFromInt(-100),
			},
			wantErr: "base monthly budget",
		},
		{
			name: "retirement age out of range",
			scenario: domain.Scenario{
				Name:          "immortal",
				RetirementAge: 120,
			},
			wantErr: "retirement age",
		},
		{
			name: "negative gross income",
			scenario: domain.Scenario{
				Name: "bad-income",
				Income: &domain.IncomeProfile{
					GrossIncome: decimal.NewFromInt(-1),
				},
			},
			wantErr: "gross income",
		},
		{
			name: "invalid filing status",
			scenario: domain.Scenario{
				Name: "bad-status",
				Income: &domain.IncomeProfile{
					GrossIncome:  decimal.NewFromInt(100000),
					FilingStatus: "widowed",
				},
			},
			wantErr: "filing status",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.validateScenario(&tt.scenario)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSelectedScenarios(t *testing.T) {
	plan := &Plan{
		Scenarios: []domain.Scenario{
			{Name: "a"},
			{Name: "b", Selected: true},
			{Name: "c", Selected: true},
		},
	}

	selected := plan.SelectedScenarios()
	require.Len(t, selected, 2, "only flagged scenarios should be selected")
	assert.Equal(t, "b", selected[0].Name)
	assert.Equal(t, "c", selected[1].Name)

	// With no flags set, every scenario is selected.
	for i := range plan.Scenarios {
		plan.Scenarios[i].Selected = false
	}
	all := plan.SelectedScenarios()
	require.Len(t, all, 3)
}

func TestFindScenario(t *testing.T) {
	plan := &Plan{
		Scenarios: []domain.Scenario{{Name: "baseline"}},
	}
	require.NotNil(t, plan.FindScenario("baseline"))
	assert.Nil(t, plan.FindScenario("missing"))
}
