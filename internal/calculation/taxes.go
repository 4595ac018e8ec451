package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal tax brackets: 2024 tables for all projection years
//    - No inflation indexing applied to future years
//    - Standard deduction by filing status (2024 amounts)
//
// 2. FICA: 2024 Social Security wage base ($168,600) and rates;
//    Additional Medicare thresholds are not inflation indexed per IRS rules
//
// 3. State tax: static per-state table in statetax.go; states not in the
//    table are treated as having no income tax

// TaxBracket is one bracket of a progressive schedule. Brackets are
// contiguous (each Min equals the previous Max) so that a breakdown over all
// brackets partitions taxable income exactly.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// bracketNoMax caps the top bracket; income beyond it is not expected.
var bracketNoMax = decimal.NewFromInt(1_000_000_000_000)

func bracket(min, max int64, rate float64) TaxBracket {
	m := bracketNoMax
	if max > 0 {
		m = decimal.NewFromInt(max)
	}
	return TaxBracket{Min: decimal.NewFromInt(min), Max: m, Rate: decimal.NewFromFloat(rate)}
}

// federalBrackets2024 holds the 2024 federal schedules by filing status.
var federalBrackets2024 = map[domain.FilingStatus][]TaxBracket{
	domain.FilingSingle: {
		bracket(0, 11600, 0.10),
		bracket(11600, 47150, 0.12),
		bracket(47150, 100525, 0.22),
		bracket(100525, 191950, 0.24),
		bracket(191950, 243725, 0.32),
		bracket(243725, 609350, 0.35),
		bracket(609350, 0, 0.37),
	},
	domain.FilingMarriedJointly: {
		bracket(0, 23200, 0.10),
		bracket(23200, 94300, 0.12),
		bracket(94300, 201050, 0.22),
		bracket(201050, 383900, 0.24),
		bracket(383900, 487450, 0.32),
		bracket(487450, 731200, 0.35),
		bracket(731200, 0, 0.37),
	},
	domain.FilingMarriedSeparately: {
		bracket(0, 11600, 0.10),
		bracket(11600, 47150, 0.12),
		bracket(47150, 100525, 0.22),
		bracket(100525, 191950, 0.24),
		bracket(191950, 243725, 0.32),
		bracket(243725, 365600, 0.35),
		bracket(365600, 0, 0.37),
	},
	domain.FilingHeadOfHousehold: {
		bracket(0, 16550, 0.10),
		bracket(16550, 63100, 0.12),
		bracket(63100, 100500, 0.22),
		bracket(100500, 191950, 0.24),
		bracket(191950, 243700, 0.32),
		bracket(243700, 609350, 0.35),
		bracket(609350, 0, 0.37),
	},
}

// standardDeduction2024 holds the 2024 federal standard deduction by status.
var standardDeduction2024 = map[domain.FilingStatus]decimal.Decimal{
	domain.FilingSingle:            decimal.NewFromInt(14600),
	domain.FilingMarriedJointly:    decimal.NewFromInt(29200),
	domain.FilingMarriedSeparately: decimal.NewFromInt(14600),
	domain.FilingHeadOfHousehold:   decimal.NewFromInt(21900),
}

// FICA parameters for 2024.
var (
	ssWageCap2024      = decimal.NewFromInt(168600)
	ssRate             = decimal.NewFromFloat(0.062)
	medicareBaseRate   = decimal.NewFromFloat(0.0145)
	additionalMedRate  = decimal.NewFromFloat(0.009)
	additionalMedThresholds = map[domain.FilingStatus]decimal.Decimal{
		domain.FilingSingle:            decimal.NewFromInt(200000),
		domain.FilingMarriedJointly:    decimal.NewFromInt(250000),
		domain.FilingMarriedSeparately: decimal.NewFromInt(125000),
		domain.FilingHeadOfHousehold:   decimal.NewFromInt(200000),
	}
)

// bracketBreakdown applies a progressive schedule to taxable income and
// returns the per-bracket lines, the total tax, and the marginal rate (the
// rate of the bracket containing the last dollar of taxable income).
func bracketBreakdown(taxableIncome decimal.Decimal, brackets []TaxBracket) ([]domain.BracketLine, decimal.Decimal, decimal.Decimal) {
	lines := make([]domain.BracketLine, 0, len(brackets))
	totalTax := decimal.Zero
	marginal := decimal.Zero

	for _, b := range brackets {
		inBracket := decimal.Min(taxableIncome, b.Max).Sub(b.Min)
		if inBracket.IsNegative() {
			inBracket = decimal.Zero
		}
		fromBracket := inBracket.Mul(b.Rate)
		totalTax = totalTax.Add(fromBracket)
		if taxableIncome.GreaterThan(b.Min) {
			marginal = b.Rate
		}
		lines = append(lines, domain.BracketLine{
			Min:              b.Min,
			Max:              b.Max,
			Rate:             b.Rate,
			TaxableInBracket: inBracket,
			TaxFromBracket:   fromBracket,
		})
	}

	return lines, totalTax, marginal
}

// computeFICA calculates Social Security and Medicare taxes on gross wages.
func computeFICA(grossIncome decimal.Decimal, status domain.FilingStatus) domain.FICADetail {
	threshold, ok := additionalMedThresholds[status]
	if !ok {
		threshold = additionalMedThresholds[domain.FilingSingle]
	}

	detail := domain.FICADetail{
		SocialSecurityCap:           ssWageCap2024,
		AdditionalMedicareThreshold: threshold,
	}
	if grossIncome.LessThanOrEqual(decimal.Zero) {
		detail.SocialSecurityWages = decimal.Zero
		detail.SocialSecurityTax = decimal.Zero
		detail.WagesAboveCap = decimal.Zero
		detail.MedicareTax = decimal.Zero
		detail.AdditionalMedicareTax = decimal.Zero
		detail.TotalFICATax = decimal.Zero
		return detail
	}

	detail.SocialSecurityWages = decimal.Min(grossIncome, ssWageCap2024)
	detail.SocialSecurityTax = detail.SocialSecurityWages.Mul(ssRate)
	detail.WagesAboveCap = decimal.Max(decimal.Zero, grossIncome.Sub(ssWageCap2024))

	detail.MedicareTax = grossIncome.Mul(medicareBaseRate)
	excess := grossIncome.Sub(threshold)
	if excess.GreaterThan(decimal.Zero) {
		detail.AdditionalMedicareTax = excess.Mul(additionalMedRate)
	} else {
		detail.AdditionalMedicareTax = decimal.Zero
	}

	detail.TotalFICATax = detail.SocialSecurityTax.Add(detail.MedicareTax).Add(detail.AdditionalMedicareTax)
	return detail
}

// ComputeTax produces the full federal, state, and FICA breakdown for one
// gross income amount. Zero or negative income yields all-zero tax fields;
// an unknown state code falls back to no state tax. Deterministic and free
// of side effects.
func ComputeTax(grossIncome decimal.Decimal, status domain.FilingStatus, stateCode string, preTax domain.PreTaxContributions) *domain.TaxCalculation {
	if !status.Valid() {
		status = domain.FilingSingle
	}

	state := LookupState(stateCode)

	calc := &domain.TaxCalculation{
		FilingStatus:             status,
		FederalStandardDeduction: standardDeduction2024[status],
		StateCode:                state.Code,
		StateTaxType:             state.Type,
		FICA: domain.FICADetail{
			SocialSecurityCap:           ssWageCap2024,
			AdditionalMedicareThreshold: additionalMedThresholds[status],
		},
	}

	if grossIncome.LessThanOrEqual(decimal.Zero) {
		return calc
	}

	calc.GrossIncome = grossIncome
	calc.TotalPreTaxContributions = preTax.Total()
	calc.AGI = decimal.Max(decimal.Zero, grossIncome.Sub(calc.TotalPreTaxContributions))

	// Federal.
	calc.FederalTaxableIncome = decimal.Max(decimal.Zero, calc.AGI.Sub(calc.FederalStandardDeduction))
	calc.FederalBrackets, calc.FederalTax, calc.FederalMarginalRate =
		bracketBreakdown(calc.FederalTaxableIncome, federalBrackets2024[status])
	calc.FederalEffectiveRate = effectiveRate(calc.FederalTax, grossIncome)

	// State.
	if state.Type != domain.StateTaxNone {
		calc.StateDeduction = state.Deduction
		calc.StateExemption = state.Exemption
		calc.StateTaxableIncome = decimal.Max(decimal.Zero, calc.AGI.Sub(state.Deduction).Sub(state.Exemption))
		calc.StateBrackets, calc.StateTax, calc.StateMarginalRate =
			bracketBreakdown(calc.StateTaxableIncome, state.Brackets)
		calc.StateEffectiveRate = effectiveRate(calc.StateTax, grossIncome)
	}

	// FICA.
	calc.FICA = computeFICA(grossIncome, status)

	calc.TotalTax = calc.FederalTax.Add(calc.StateTax).Add(calc.FICA.TotalFICATax)
	calc.EffectiveTaxRate = effectiveRate(calc.TotalTax, grossIncome)
	calc.NetIncome = grossIncome.Sub(calc.TotalPreTaxContributions).Sub(calc.TotalTax)
	calc.MonthlyNetIncome = calc.NetIncome.Div(decimal.NewFromInt(12))

	return calc
}

// effectiveRate returns tax/base as a percentage, zero when base is zero.
func effectiveRate(tax, base decimal.Decimal) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return tax.Div(base).Mul(decimal.NewFromInt(100))
}
