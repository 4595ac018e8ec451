package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ScaleContribution multiplies the yearly contribution by a percentage.
// 200 doubles the contribution, 50 halves it.
type ScaleContribution struct {
	Percent decimal.Decimal
}

func (sc *ScaleContribution) Name() string {
	return "scale_contribution"
}

func (sc *ScaleContribution) Description() string {
	return fmt.Sprintf("Scale the yearly contribution to %s%% of its current value", sc.Percent)
}

func (sc *ScaleContribution) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sc.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sc.Percent.IsNegative() {
		return NewTransformError(sc.Name(), "validate",
			fmt.Sprintf("percent must be non-negative, got %s", sc.Percent), nil)
	}
	return nil
}

func (sc *ScaleContribution) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Clone()
	modified.YearlyContribution = base.YearlyContribution.Mul(sc.Percent).Div(hundred)
	// A scaled contribution is a deliberate override; drop the income link so
	// the engine does not recompute it away.
	modified.Income = nil
	return modified, nil
}

// SetContribution sets the yearly contribution to an absolute amount.
type SetContribution struct {
	Amount decimal.Decimal
}

func (sc *SetContribution) Name() string {
	return "set_contribution"
}

func (sc *SetContribution) Description() string {
	return fmt.Sprintf("Set the yearly contribution to $%s", sc.Amount.StringFixed(0))
}

func (sc *SetContribution) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sc.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sc.Amount.IsNegative() {
		return NewTransformError(sc.Name(), "validate",
			fmt.Sprintf("amount must be non-negative, got %s", sc.Amount), nil)
	}
	return nil
}

func (sc *SetContribution) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Clone()
	modified.YearlyContribution = sc.Amount
	modified.Income = nil
	return modified, nil
}

// CutBudget reduces the base monthly budget by a percentage.
type CutBudget struct {
	Percent decimal.Decimal
}

func (cb *CutBudget) Name() string {
	return "cut_budget"
}

func (cb *CutBudget) Description() string {
	return fmt.Sprintf("Cut the monthly budget by %s%%", cb.Percent)
}

func (cb *CutBudget) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(cb.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if cb.Percent.IsNegative() || cb.Percent.GreaterThan(hundred) {
		return NewTransformError(cb.Name(), "validate",
			fmt.Sprintf("percent must be between 0 and 100, got %s", cb.Percent), nil)
	}
	return nil
}

func (cb *CutBudget) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Clone()
	factor := hundred.Sub(cb.Percent).Div(hundred)
	modified.BaseMonthlyBudget = base.BaseMonthlyBudget.Mul(factor)
	return modified, nil
}

// SetMonthlyBudget sets the base monthly budget to an absolute amount.
type SetMonthlyBudget struct {
	Amount decimal.Decimal
}

func (sb *SetMonthlyBudget) Name() string {
	return "set_monthly_budget"
}

func (sb *SetMonthlyBudget) Description() string {
	return fmt.Sprintf("Set the monthly budget to $%s", sb.Amount.StringFixed(0))
}

func (sb *SetMonthlyBudget) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sb.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sb.Amount.IsNegative() {
		return NewTransformError(sb.Name(), "validate",
			fmt.Sprintf("amount must be non-negative, got %s", sb.Amount), nil)
	}
	return nil
}

func (sb *SetMonthlyBudget) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Clone()
	modified.BaseMonthlyBudget = sb.Amount
	return modified, nil
}

// SetGrowthRate sets the expected annual return percentage.
type SetGrowthRate struct {
	Percent decimal.Decimal
}

func (sg *SetGrowthRate) Name() string {
	return "set_growth_rate"
}

func (sg *SetGrowthRate) Description() string {
	return fmt.Sprintf("Set the expected annual return to %s%%", sg.Percent)
}

func (sg *SetGrowthRate) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sg.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sg.Percent.LessThan(decimal.NewFromInt(-100)) || sg.Percent.GreaterThan(decimal.NewFromInt(50)) {
		return NewTransformError(sg.Name(), "validate",
			fmt.Sprintf("rate must be between -100%% and 50%%, got %s", sg.Percent), nil)
	}
	return nil
}

func (sg *SetGrowthRate) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Clone()
	modified.CurrentRate = sg.Percent
	return modified, nil
}

// SetSWR sets the safe withdrawal rate percentage.
type SetSWR struct {
	Percent decimal.Decimal
}

func (ss *SetSWR) Name() string {
	return "set_swr"
}

func (ss *SetSWR) Description() string {
	return fmt.Sprintf("Set the safe withdrawal rate to %s%%", ss.Percent)
}

func (ss *SetSWR) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(ss.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if ss.Percent.IsNegative() || ss.Percent.GreaterThan(decimal.NewFromInt(20)) {
		return NewTransformError(ss.Name(), "validate",
			fmt.Sprintf("rate must be between 0%% and 20%%, got %s", ss.Percent), nil)
	}
	return nil
}

func (ss *SetSWR) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Clone()
	modified.SWR = ss.Percent
	return modified, nil
}

// SetRetirementAge changes the retirement age that anchors the coast-FI and
// retirement-income milestones.
type SetRetirementAge struct {
	Age int
}

func (sr *SetRetirementAge) Name() string {
	return "set_retirement_age"
}

func (sr *SetRetirementAge) Description() string {
	return fmt.Sprintf("Set the retirement age to %d", sr.Age)
}

func (sr *SetRetirementAge) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(sr.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if sr.Age <= 0 || sr.Age > 100 {
		return NewTransformError(sr.Name(), "validate",
			fmt.Sprintf("age must be between 1 and 100, got %d", sr.Age), nil)
	}
	return nil
}

func (sr *SetRetirementAge) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Clone()
	modified.RetirementAge = sr.Age
	return modified, nil
}

// IncreasePreTax raises the traditional 401k contribution by an amount,
// shifting income from taxed to tax-deferred savings.
type IncreasePreTax struct {
	Amount decimal.Decimal
}

func (ip *IncreasePreTax) Name() string {
	return "increase_pretax"
}

func (ip *IncreasePreTax) Description() string {
	return fmt.Sprintf("Increase pre-tax 401k contributions by $%s", ip.Amount.StringFixed(0))
}

func (ip *IncreasePreTax) Validate(base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(ip.Name(), "validate", "base scenario cannot be nil", nil)
	}
	if ip.Amount.IsNegative() {
		return NewTransformError(ip.Name(), "validate",
			fmt.Sprintf("amount must be non-negative, got %s", ip.Amount), nil)
	}
	if base.Income == nil {
		return NewTransformError(ip.Name(), "validate", "scenario has no income profile", nil)
	}
	return nil
}

func (ip *IncreasePreTax) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.Clone()
	modified.Income.PreTax.Traditional401k = base.Income.PreTax.Traditional401k.Add(ip.Amount)
	return modified, nil
}
