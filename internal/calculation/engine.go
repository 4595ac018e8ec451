package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
)

// Logger is the minimal logging interface the engine needs. The CLI and
// server wire real loggers in; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Engine orchestrates projection, tax, and milestone calculations. It holds
// no mutable computation state, so a single Engine is safe for concurrent use.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

// ScenarioResult bundles everything derived from one scenario and a starting
// net worth: the projection, the evaluated milestone catalog, and the current
// tax breakdown when the scenario has an income profile.
type ScenarioResult struct {
	Scenario   *domain.Scenario         `json:"scenario"`
	Projection *domain.ProjectionResult `json:"projection"`
	Milestones *domain.MilestoneSet     `json:"milestones"`
	Tax        *domain.TaxCalculation   `json:"tax,omitempty"`
}

// RunScenario projects a scenario from the given net worth and start time and
// evaluates the milestone catalog against the result. The caller's scenario is
// never written to; defaults are applied to an internal copy, which the result
// carries.
func (e *Engine) RunScenario(scenario *domain.Scenario, currentNetWorth decimal.Decimal, start time.Time, profile domain.Profile, horizonYears int) (*ScenarioResult, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is required")
	}
	if scenario.Name == "" {
		return nil, fmt.Errorf("scenario name is required")
	}
	if start.IsZero() {
		start = time.Now().UTC()
	}

	scenario = scenario.Clone()
	scenario.ApplyDefaults()
	e.Logger.Debugf("running scenario %q from net worth %s", scenario.Name, currentNetWorth.StringFixed(2))

	projection := e.Project(scenario, currentNetWorth, start, profile, horizonYears)
	milestones := e.EvaluateMilestones(projection, scenario, profile)

	result := &ScenarioResult{
		Scenario:   scenario,
		Projection: projection,
		Milestones: milestones,
	}
	if scenario.HasIncome() {
		result.Tax = ComputeTax(scenario.Income.GrossIncome, scenario.Income.FilingStatus, scenario.Income.StateCode, scenario.Income.PreTax)
	}
	return result, nil
}

// RecomputeContribution rebuilds the income breakdown for a scenario and
// refreshes the derived YearlyContribution and cached EffectiveTaxRate.
// Scenarios without an income profile are left untouched. The returned
// breakdown is what callers persist alongside the scenario.
func (e *Engine) RecomputeContribution(scenario *domain.Scenario, currentNetWorth decimal.Decimal) *domain.TaxCalculation {
	if scenario == nil || !scenario.HasIncome() {
		return nil
	}
	scenario.ApplyDefaults()

	tax := ComputeTax(scenario.Income.GrossIncome, scenario.Income.FilingStatus, scenario.Income.StateCode, scenario.Income.PreTax)
	annualSpending := AnnualSpend(currentNetWorth, scenario, 0)

	scenario.YearlyContribution = tax.TotalAnnualSavings(annualSpending)
	scenario.Income.EffectiveTaxRate = tax.EffectiveTaxRate

	e.Logger.Debugf("scenario %q: yearly contribution recomputed to %s (effective tax %s%%)",
		scenario.Name, scenario.YearlyContribution.StringFixed(2), tax.EffectiveTaxRate.StringFixed(2))
	return tax
}
