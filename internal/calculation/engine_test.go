package calculation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiplan/fiplan/internal/domain"
)

// testLogger records formatted messages for assertions.
type testLogger struct {
	messages []string
}

func (l *testLogger) Debugf(format string, args ...any) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}
func (l *testLogger) Infof(format string, args ...any)  {}
func (l *testLogger) Warnf(format string, args ...any)  {}
func (l *testLogger) Errorf(format string, args ...any) {}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()
	require.NotNil(t, engine)
	assert.NotNil(t, engine.Logger, "should initialize with a logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	logger := &testLogger{}
	engine.SetLogger(logger)
	assert.Equal(t, logger, engine.Logger)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "nil restores the no-op logger")
}

func TestEngine_RunScenario(t *testing.T) {
	engine := NewEngine()
	s := testScenario()

	result, err := engine.RunScenario(s, d(500000), projectionStart, domain.Profile{}, 30)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, s, result.Scenario)
	assert.Len(t, result.Projection.YearlyRows, 31)
	assert.NotEmpty(t, result.Milestones.Milestones)
	assert.Nil(t, result.Tax, "no tax breakdown without an income profile")
}

func TestEngine_RunScenario_WithIncome(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.Income = &domain.IncomeProfile{
		GrossIncome:  d(100000),
		FilingStatus: domain.FilingSingle,
	}

	result, err := engine.RunScenario(s, d(500000), projectionStart, domain.Profile{}, 30)
	require.NoError(t, err)
	require.NotNil(t, result.Tax)
	assert.True(t, result.Tax.TotalTax.Equal(d(21491)))
}

func TestEngine_RunScenario_LeavesInputUntouched(t *testing.T) {
	engine := NewEngine()
	s := &domain.Scenario{Name: "sparse", BaseMonthlyBudget: d(3000)}

	result, err := engine.RunScenario(s, d(200000), projectionStart, domain.Profile{}, 10)
	require.NoError(t, err)

	assert.True(t, s.CurrentRate.IsZero(), "caller's growth rate must stay unset")
	assert.True(t, s.SWR.IsZero(), "caller's SWR must stay unset")
	assert.Equal(t, 0, s.RetirementAge)
	assert.True(t, result.Scenario.SWR.Equal(d(4)), "the result carries the defaulted copy")
	assert.True(t, result.Scenario.CurrentRate.Equal(d(7)))
}

func TestEngine_RunScenario_Invalid(t *testing.T) {
	engine := NewEngine()

	_, err := engine.RunScenario(nil, d(100), projectionStart, domain.Profile{}, 10)
	assert.Error(t, err)

	_, err = engine.RunScenario(&domain.Scenario{}, d(100), projectionStart, domain.Profile{}, 10)
	assert.Error(t, err, "scenario name is required")
}

func TestEngine_RecomputeContribution(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.Income = &domain.IncomeProfile{
		GrossIncome:  d(100000),
		FilingStatus: domain.FilingSingle,
		PreTax:       domain.PreTaxContributions{Traditional401k: d(10000)},
	}

	tax := engine.RecomputeContribution(s, d(500000))
	require.NotNil(t, tax)

	// Savings = net income + pre-tax contributions - annual spending, and the
	// derived contribution mirrors it exactly.
	annualSpending := AnnualSpend(d(500000), s, 0)
	expected := tax.NetIncome.Add(tax.TotalPreTaxContributions).Sub(annualSpending)
	assert.True(t, s.YearlyContribution.Equal(expected),
		"yearly contribution should equal total annual savings, got %s want %s", s.YearlyContribution, expected)
	assert.True(t, s.Income.EffectiveTaxRate.Equal(tax.EffectiveTaxRate), "effective rate is cached on the profile")
}

func TestEngine_RecomputeContribution_NoIncome(t *testing.T) {
	engine := NewEngine()
	s := testScenario()
	s.YearlyContribution = d(12000)

	tax := engine.RecomputeContribution(s, d(500000))
	assert.Nil(t, tax)
	assert.True(t, s.YearlyContribution.Equal(d(12000)), "user-supplied contribution is left untouched")
}

func TestEngine_DebugLogging(t *testing.T) {
	engine := NewEngine()
	logger := &testLogger{}
	engine.SetLogger(logger)

	_, err := engine.RunScenario(testScenario(), d(100000), projectionStart, domain.Profile{}, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, logger.messages)
}
