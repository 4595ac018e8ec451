package domain

import "github.com/shopspring/decimal"

// StateTaxType classifies how a state taxes income.
type StateTaxType string

const (
	StateTaxNone        StateTaxType = "none"
	StateTaxFlat        StateTaxType = "flat"
	StateTaxProgressive StateTaxType = "progressive"
)

// BracketLine is one row of a progressive bracket breakdown: the bracket
// bounds and rate plus the income taxed and tax owed within it.
type BracketLine struct {
	Min              decimal.Decimal `json:"min"`
	Max              decimal.Decimal `json:"max"`
	Rate             decimal.Decimal `json:"rate"`
	TaxableInBracket decimal.Decimal `json:"taxableInBracket"`
	TaxFromBracket   decimal.Decimal `json:"taxFromBracket"`
}

// FICADetail breaks down Social Security and Medicare payroll taxes.
type FICADetail struct {
	SocialSecurityWages decimal.Decimal `json:"socialSecurityWages"`
	SocialSecurityCap   decimal.Decimal `json:"socialSecurityCap"`
	SocialSecurityTax   decimal.Decimal `json:"socialSecurityTax"`
	// WagesAboveCap is income escaping Social Security tax, kept for
	// tax-savings reporting.
	WagesAboveCap decimal.Decimal `json:"wagesAboveCap"`

	MedicareTax                 decimal.Decimal `json:"medicareTax"`
	AdditionalMedicareThreshold decimal.Decimal `json:"additionalMedicareThreshold"`
	AdditionalMedicareTax       decimal.Decimal `json:"additionalMedicareTax"`

	TotalFICATax decimal.Decimal `json:"totalFicaTax"`
}

// TaxCalculation is the full tax breakdown for one gross income amount under
// one scenario's tax profile. It is derived data, recomputed on every read.
//
// Invariants: TotalTax = FederalTax + StateTax + FICA.TotalFICATax and
// NetIncome = GrossIncome - TotalPreTaxContributions - TotalTax.
type TaxCalculation struct {
	GrossIncome              decimal.Decimal `json:"grossIncome"`
	TotalPreTaxContributions decimal.Decimal `json:"totalPreTaxContributions"`
	AGI                      decimal.Decimal `json:"agi"`

	FilingStatus             FilingStatus    `json:"filingStatus"`
	FederalStandardDeduction decimal.Decimal `json:"federalStandardDeduction"`
	FederalTaxableIncome     decimal.Decimal `json:"federalTaxableIncome"`
	FederalBrackets          []BracketLine   `json:"federalBrackets"`
	FederalTax               decimal.Decimal `json:"federalTax"`
	FederalMarginalRate      decimal.Decimal `json:"federalMarginalRate"`
	FederalEffectiveRate     decimal.Decimal `json:"federalEffectiveRate"`

	StateCode          string          `json:"stateCode,omitempty"`
	StateTaxType       StateTaxType    `json:"stateTaxType"`
	StateDeduction     decimal.Decimal `json:"stateDeduction"`
	StateExemption     decimal.Decimal `json:"stateExemption"`
	StateTaxableIncome decimal.Decimal `json:"stateTaxableIncome"`
	StateBrackets      []BracketLine   `json:"stateBrackets,omitempty"`
	StateTax           decimal.Decimal `json:"stateTax"`
	StateMarginalRate  decimal.Decimal `json:"stateMarginalRate"`
	StateEffectiveRate decimal.Decimal `json:"stateEffectiveRate"`

	FICA FICADetail `json:"fica"`

	TotalTax         decimal.Decimal `json:"totalTax"`
	EffectiveTaxRate decimal.Decimal `json:"effectiveTaxRate"` // total tax / gross, percent
	NetIncome        decimal.Decimal `json:"netIncome"`
	MonthlyNetIncome decimal.Decimal `json:"monthlyNetIncome"`
}

// TotalAnnualSavings returns the savings implied by the breakdown for a given
// annual spending amount: take-home pay plus pre-tax contributions (which are
// savings as well) minus spending. May be negative when spending exceeds
// take-home pay.
func (tc *TaxCalculation) TotalAnnualSavings(annualSpending decimal.Decimal) decimal.Decimal {
	return tc.NetIncome.Add(tc.TotalPreTaxContributions).Sub(annualSpending)
}
