package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/pkg/dateutil"
)

// FilingStatus identifies the federal filing status used for tax calculations.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married_jointly"
	FilingMarriedSeparately FilingStatus = "married_separately"
	FilingHeadOfHousehold   FilingStatus = "head_of_household"
)

// Valid reports whether the filing status is one of the four supported values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case FilingSingle, FilingMarriedJointly, FilingMarriedSeparately, FilingHeadOfHousehold:
		return true
	}
	return false
}

// PreTaxContributions holds the annual pre-tax retirement and health savings
// contributions that reduce AGI.
type PreTaxContributions struct {
	Traditional401k decimal.Decimal `yaml:"traditional_401k" json:"traditional401k"`
	TraditionalIRA  decimal.Decimal `yaml:"traditional_ira" json:"traditionalIra"`
	HSA             decimal.Decimal `yaml:"hsa" json:"hsa"`
	Other           decimal.Decimal `yaml:"other" json:"other"`
}

// Total returns the sum of all pre-tax contributions.
func (p PreTaxContributions) Total() decimal.Decimal {
	return p.Traditional401k.Add(p.TraditionalIRA).Add(p.HSA).Add(p.Other)
}

// IncomeProfile holds the optional income and tax assumptions of a scenario.
// When present, the yearly contribution is derived from the income breakdown
// instead of being a user-supplied constant.
type IncomeProfile struct {
	GrossIncome      decimal.Decimal     `yaml:"gross_income" json:"grossIncome"`
	IncomeGrowthRate decimal.Decimal     `yaml:"income_growth_rate" json:"incomeGrowthRate"`
	FilingStatus     FilingStatus        `yaml:"filing_status" json:"filingStatus"`
	StateCode        string              `yaml:"state_code" json:"stateCode"` // empty = no state tax
	PreTax           PreTaxContributions `yaml:"pre_tax" json:"preTax"`

	// EffectiveTaxRate is cached from the last income breakdown (percent).
	EffectiveTaxRate decimal.Decimal `yaml:"effective_tax_rate,omitempty" json:"effectiveTaxRate"`
}

// Scenario is a named set of planning assumptions. All rates are expressed as
// percentages (7 means 7% annually), matching how users enter them.
type Scenario struct {
	ID           string `yaml:"id" json:"id"`
	Name         string `yaml:"name" json:"name"`
	Color        string `yaml:"color" json:"color"`
	DisplayOrder int    `yaml:"display_order" json:"displayOrder"`
	Selected     bool   `yaml:"selected" json:"selected"`

	CurrentRate   decimal.Decimal `yaml:"current_rate" json:"currentRate"`
	SWR           decimal.Decimal `yaml:"swr" json:"swr"`
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflationRate"`

	BaseMonthlyBudget  decimal.Decimal `yaml:"base_monthly_budget" json:"baseMonthlyBudget"`
	SpendingGrowthRate decimal.Decimal `yaml:"spending_growth_rate" json:"spendingGrowthRate"`

	// YearlyContribution is the annual savings added to the portfolio. When
	// Income is set it mirrors the last computed total annual savings from the
	// income breakdown; otherwise it is user-supplied.
	YearlyContribution decimal.Decimal `yaml:"yearly_contribution" json:"yearlyContribution"`

	// RetirementAge anchors the coast-FI and retirement-income milestones.
	RetirementAge int `yaml:"retirement_age" json:"retirementAge"`

	Income *IncomeProfile `yaml:"income,omitempty" json:"income,omitempty"`
}

// Default planning assumptions applied to zero-valued scenario fields.
var (
	DefaultCurrentRate   = decimal.NewFromInt(7)
	DefaultSWR           = decimal.NewFromInt(4)
	DefaultInflationRate = decimal.NewFromInt(3)
)

// DefaultRetirementAge is the retirement age used for coast-FI and
// retirement-income milestones when a scenario does not override it.
const DefaultRetirementAge = 65

// ApplyDefaults fills zero-valued assumption fields with the documented
// defaults and clamps rates to computable ranges. It is applied once at
// construction so call sites never need ad hoc defaulting.
func (s *Scenario) ApplyDefaults() {
	if s.CurrentRate.IsZero() {
		s.CurrentRate = DefaultCurrentRate
	}
	if s.SWR.IsZero() {
		s.SWR = DefaultSWR
	}
	if s.InflationRate.IsZero() {
		s.InflationRate = DefaultInflationRate
	}
	if s.RetirementAge <= 0 {
		s.RetirementAge = DefaultRetirementAge
	}
	// A return at or below -100% would wipe out the portfolio within a year;
	// clamp so the compounding math stays defined.
	minRate := decimal.NewFromInt(-100)
	if s.CurrentRate.LessThan(minRate) {
		s.CurrentRate = minRate
	}
	if s.SWR.IsNegative() {
		s.SWR = decimal.Zero
	}
	if s.Income != nil && s.Income.FilingStatus == "" {
		s.Income.FilingStatus = FilingSingle
	}
}

// HasIncome reports whether the scenario carries an income/tax profile.
func (s *Scenario) HasIncome() bool {
	return s.Income != nil && s.Income.GrossIncome.GreaterThan(decimal.Zero)
}

// Clone returns a copy that shares no mutable state with the receiver, so
// derived scenarios can be edited without touching the original.
func (s *Scenario) Clone() *Scenario {
	clone := *s
	if s.Income != nil {
		income := *s.Income
		clone.Income = &income
	}
	return &clone
}

// NetWorthEntry is a single timestamped net worth observation. Entries are
// immutable once created; the most recent one is the projection baseline.
type NetWorthEntry struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// Profile holds per-user data that is not scenario-specific.
type Profile struct {
	BirthDate time.Time `yaml:"birth_date" json:"birthDate"`
}

// HasBirthDate reports whether an age can be computed for milestones.
func (p Profile) HasBirthDate() bool {
	return !p.BirthDate.IsZero()
}

// AgeAt returns the profile owner's age in whole years at the given time,
// or 0 when no birth date is set.
func (p Profile) AgeAt(at time.Time) int {
	if !p.HasBirthDate() {
		return 0
	}
	age := dateutil.Age(p.BirthDate, at)
	if age < 0 {
		age = 0
	}
	return age
}
