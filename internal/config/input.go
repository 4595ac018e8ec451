package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fiplan/fiplan/internal/domain"
)

// Plan is a plan file: the user profile, the projection baseline, and the
// scenarios to project. Scenarios omitted fields pick up the documented
// defaults at load time.
type Plan struct {
	Profile         domain.Profile    `yaml:"profile"`
	CurrentNetWorth decimal.Decimal   `yaml:"current_net_worth"`
	HorizonYears    int               `yaml:"horizon_years"`
	Scenarios       []domain.Scenario `yaml:"scenarios"`
}

// SelectedScenarios returns the scenarios flagged for comparison, or all of
// them when none carries the flag.
func (p *Plan) SelectedScenarios() []*domain.Scenario {
	selected := make([]*domain.Scenario, 0, len(p.Scenarios))
	for i := range p.Scenarios {
		if p.Scenarios[i].Selected {
			selected = append(selected, &p.Scenarios[i])
		}
	}
	if len(selected) == 0 {
		for i := range p.Scenarios {
			selected = append(selected, &p.Scenarios[i])
		}
	}
	return selected
}

// FindScenario returns the scenario with the given name, or nil.
func (p *Plan) FindScenario(name string) *domain.Scenario {
	for i := range p.Scenarios {
		if p.Scenarios[i].Name == name {
			return &p.Scenarios[i]
		}
	}
	return nil
}

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML plan file, applying scenario
// defaults once so downstream code never re-defaults.
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	for i := range plan.Scenarios {
		plan.Scenarios[i].ApplyDefaults()
	}
	return &plan, nil
}

// ValidatePlan validates a loaded plan.
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if len(plan.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}
	if plan.HorizonYears < 0 || plan.HorizonYears > 100 {
		return fmt.Errorf("horizon years must be between 0 and 100")
	}

	names := make(map[string]bool, len(plan.Scenarios))
	for i := range plan.Scenarios {
		s := &plan.Scenarios[i]
		if err := ip.validateScenario(s); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, s.Name, err)
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate scenario name: %s", s.Name)
		}
		names[s.Name] = true
	}
	return nil
}

// validateScenario checks a single scenario's fields. Numeric edge cases the
// engine clamps on its own (zero SWR, unknown state codes) are allowed here;
// validation rejects only inputs that signal a mistyped plan file.
func (ip *InputParser) validateScenario(s *domain.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.CurrentRate.LessThan(decimal.NewFromInt(-100)) || s.CurrentRate.GreaterThan(decimal.NewFromInt(50)) {
		return fmt.Errorf("current rate must be between -100%% and 50%%, got %s%%", s.CurrentRate)
	}
	if s.SWR.LessThan(decimal.Zero) || s.SWR.GreaterThan(decimal.NewFromInt(20)) {
		return fmt.Errorf("safe withdrawal rate must be between 0%% and 20%%, got %s%%", s.SWR)
	}
	if s.InflationRate.LessThan(decimal.NewFromInt(-10)) || s.InflationRate.GreaterThan(decimal.NewFromInt(20)) {
		return fmt.Errorf("inflation rate must be between -10%% and 20%%, got %s%%", s.InflationRate)
	}
	if s.SpendingGrowthRate.LessThan(decimal.Zero) || s.SpendingGrowthRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("spending growth rate must be between 0%% and 100%%, got %s%%", s.SpendingGrowthRate)
	}
	if s.BaseMonthlyBudget.LessThan(decimal.Zero) {
		return fmt.Errorf("base monthly budget cannot be negative")
	}
	if s.RetirementAge < 0 || s.RetirementAge > 100 {
		return fmt.Errorf("retirement age must be between 0 and 100")
	}

	if s.Income != nil {
		if s.Income.GrossIncome.LessThan(decimal.Zero) {
			return fmt.Errorf("gross income cannot be negative")
		}
		if s.Income.FilingStatus != "" && !s.Income.FilingStatus.Valid() {
			return fmt.Errorf("filing status must be single, married_jointly, married_separately, or head_of_household")
		}
		if s.Income.PreTax.Total().LessThan(decimal.Zero) {
			return fmt.Errorf("pre-tax contributions cannot be negative")
		}
	}
	return nil
}
