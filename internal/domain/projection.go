package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionRow is one point of a projection, at yearly or monthly
// granularity. Monetary fields are nominal (future dollars).
type ProjectionRow struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"` // 1-12 for monthly rows, 0 for yearly

	YearsFromNow decimal.Decimal `json:"yearsFromNow"`
	Age          int             `json:"age,omitempty"` // 0 when no birth date is known

	NetWorth    decimal.Decimal `json:"netWorth"`
	Interest    decimal.Decimal `json:"interest"`    // cumulative growth since start
	Contributed decimal.Decimal `json:"contributed"` // cumulative contributions since start

	MonthlySpend   decimal.Decimal `json:"monthlySpend"`
	AnnualSpending decimal.Decimal `json:"annualSpending"`
	AnnualSavings  decimal.Decimal `json:"annualSavings"`

	FITarget   decimal.Decimal `json:"fiTarget"`
	FIProgress decimal.Decimal `json:"fiProgress"` // percent

	MonthlySWR decimal.Decimal `json:"monthlySwr"`
	AnnualSWR  decimal.Decimal `json:"annualSwr"`

	SwrCoversSpend bool `json:"swrCoversSpend"`
	IsFiYear       bool `json:"isFiYear"`    // first row where SwrCoversSpend holds
	IsCrossover    bool `json:"isCrossover"` // first row where interest exceeds contributions

	CoastFiYear *int `json:"coastFiYear,omitempty"`
	CoastFiAge  *int `json:"coastFiAge,omitempty"`

	// Income/tax fields, zero when the scenario has no income profile.
	GrossIncome         decimal.Decimal `json:"grossIncome"`
	TotalTax            decimal.Decimal `json:"totalTax"`
	NetIncome           decimal.Decimal `json:"netIncome"`
	PreTaxContributions decimal.Decimal `json:"preTaxContributions"`
}

// ProjectionResult is the full output of projecting one scenario.
type ProjectionResult struct {
	ScenarioID   string          `json:"scenarioId"`
	ScenarioName string          `json:"scenarioName"`
	StartDate    time.Time       `json:"startDate"`
	StartValue   decimal.Decimal `json:"startValue"`

	YearlyRows  []ProjectionRow `json:"yearlyRows"`
	MonthlyRows []ProjectionRow `json:"monthlyRows"`
}

// FiRow returns the first yearly row where the safe withdrawal covers
// spending, or nil when FI is not reached within the horizon.
func (pr *ProjectionResult) FiRow() *ProjectionRow {
	for i := range pr.YearlyRows {
		if pr.YearlyRows[i].IsFiYear {
			return &pr.YearlyRows[i]
		}
	}
	return nil
}

// CrossoverRow returns the yearly row where cumulative interest first exceeds
// cumulative contributions, or nil if it never happens within the horizon.
func (pr *ProjectionResult) CrossoverRow() *ProjectionRow {
	for i := range pr.YearlyRows {
		if pr.YearlyRows[i].IsCrossover {
			return &pr.YearlyRows[i]
		}
	}
	return nil
}

// FinalNetWorth returns the net worth of the last yearly row.
func (pr *ProjectionResult) FinalNetWorth() decimal.Decimal {
	if len(pr.YearlyRows) == 0 {
		return decimal.Zero
	}
	return pr.YearlyRows[len(pr.YearlyRows)-1].NetWorth
}

// NetWorthAtYear returns the net worth at the given years-from-now offset,
// or zero when the offset is outside the projection.
func (pr *ProjectionResult) NetWorthAtYear(yearsFromNow int) decimal.Decimal {
	if yearsFromNow < 0 || yearsFromNow >= len(pr.YearlyRows) {
		return decimal.Zero
	}
	return pr.YearlyRows[yearsFromNow].NetWorth
}

// LifetimeTax sums the tax paid across all yearly rows.
func (pr *ProjectionResult) LifetimeTax() decimal.Decimal {
	total := decimal.Zero
	for _, row := range pr.YearlyRows {
		total = total.Add(row.TotalTax)
	}
	return total
}
