package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
	"github.com/fiplan/fiplan/pkg/decimalmath"
)

// DefaultHorizonYears is the projection horizon when none is given.
const DefaultHorizonYears = 60

// coastSearchYears bounds the forward search for a coast-FI year.
const coastSearchYears = 100

// Project produces the yearly and monthly trajectories for one scenario.
//
// Yearly rows sit on anniversaries of the start date: row 0 is the current
// baseline, row i is i full years out. The starting net worth compounds
// exactly; each year's contribution (growing at the income growth rate when
// an income profile is present) is deposited at the end of its year and
// compounds from there, the loop form of the future-value-of-annuity
// formula. Monthly rows interpolate net worth linearly between the yearly
// values and recompute spending, SWR, and FI target at each interpolated
// point, so small systematic differences between the monthly and yearly view
// of the same instant are expected.
func (e *Engine) Project(scenario *domain.Scenario, currentNetWorth decimal.Decimal, start time.Time, profile domain.Profile, horizonYears int) *domain.ProjectionResult {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}
	scenario = scenario.Clone()
	scenario.ApplyDefaults()

	result := &domain.ProjectionResult{
		ScenarioID:   scenario.ID,
		ScenarioName: scenario.Name,
		StartDate:    start,
		StartValue:   currentNetWorth,
	}

	growthRate := decimal.Zero
	if scenario.Income != nil {
		growthRate = scenario.Income.IncomeGrowthRate
	}

	// Contribution for year i, grown at the income growth rate. The deposit
	// for year i lands at the end of that year (anniversary i+1).
	contribution := make([]decimal.Decimal, horizonYears+1)
	for i := 0; i <= horizonYears; i++ {
		contribution[i] = decimalmath.Compound(scenario.YearlyContribution, growthRate, float64(i))
	}

	rows := make([]domain.ProjectionRow, horizonYears+1)
	fiSeen := false
	crossoverSeen := false

	for i := 0; i <= horizonYears; i++ {
		compoundedInitial := decimalmath.Compound(currentNetWorth, scenario.CurrentRate, float64(i))

		contributed := decimal.Zero
		contributionGrowth := decimal.Zero
		for j := 1; j <= i; j++ {
			deposit := contribution[j-1]
			contributed = contributed.Add(deposit)
			contributionGrowth = contributionGrowth.Add(
				decimalmath.Compound(deposit, scenario.CurrentRate, float64(i-j)))
		}

		netWorth := compoundedInitial.Add(contributionGrowth)
		interest := netWorth.Sub(currentNetWorth).Sub(contributed)

		rowDate := start.AddDate(i, 0, 0)
		monthlySpend := MonthlySpend(netWorth, scenario, float64(i))
		fiTarget := FITarget(monthlySpend, scenario.SWR)
		swr := ComputeSWRAmounts(netWorth, scenario.SWR)
		covers := swr.Monthly.GreaterThanOrEqual(monthlySpend)

		row := domain.ProjectionRow{
			Year:           rowDate.Year(),
			YearsFromNow:   decimal.NewFromInt(int64(i)),
			Age:            profile.AgeAt(rowDate),
			NetWorth:       netWorth,
			Interest:       interest,
			Contributed:    contributed,
			MonthlySpend:   monthlySpend,
			AnnualSpending: monthlySpend.Mul(decimalTwelve),
			AnnualSavings:  contribution[i],
			FITarget:       fiTarget,
			FIProgress:     FIProgress(netWorth, fiTarget),
			MonthlySWR:     swr.Monthly,
			AnnualSWR:      swr.Annual,
			SwrCoversSpend: covers,
		}

		if covers && !fiSeen {
			row.IsFiYear = true
			fiSeen = true
		}
		if interest.GreaterThan(contributed) && !crossoverSeen {
			row.IsCrossover = true
			crossoverSeen = true
		}

		if year, ok := e.coastFiYear(netWorth, i, scenario, rowDate.Year()); ok {
			row.CoastFiYear = &year
			if profile.HasBirthDate() {
				age := year - profile.BirthDate.Year()
				row.CoastFiAge = &age
			}
		}

		if scenario.HasIncome() {
			gross := decimalmath.Compound(scenario.Income.GrossIncome, growthRate, float64(i))
			tax := ComputeTax(gross, scenario.Income.FilingStatus, scenario.Income.StateCode, scenario.Income.PreTax)
			row.GrossIncome = gross
			row.TotalTax = tax.TotalTax
			row.NetIncome = tax.NetIncome
			row.PreTaxContributions = tax.TotalPreTaxContributions
		}

		rows[i] = row
	}

	result.YearlyRows = rows
	result.MonthlyRows = e.monthlyRows(scenario, currentNetWorth, start, profile, rows)
	return result
}

// monthlyRows interpolates net worth and cumulative contributions linearly
// between successive yearly rows and recomputes the spending, SWR, and
// FI-target formulas at each interpolated point; interest is derived from
// the two interpolants.
func (e *Engine) monthlyRows(scenario *domain.Scenario, currentNetWorth decimal.Decimal, start time.Time, profile domain.Profile, yearly []domain.ProjectionRow) []domain.ProjectionRow {
	if len(yearly) < 2 {
		return nil
	}
	horizonYears := len(yearly) - 1

	rows := make([]domain.ProjectionRow, 0, horizonYears*12)
	for m := 1; m <= horizonYears*12; m++ {
		i0 := (m - 1) / 12
		frac := decimal.NewFromInt(int64(m - i0*12)).Div(decimalTwelve)

		lo, hi := &yearly[i0], &yearly[i0+1]
		netWorth := lo.NetWorth.Add(hi.NetWorth.Sub(lo.NetWorth).Mul(frac))
		contributed := lo.Contributed.Add(hi.Contributed.Sub(lo.Contributed).Mul(frac))

		yearsFromNow := float64(m) / 12
		date := start.AddDate(0, m, 0)

		monthlySpend := MonthlySpend(netWorth, scenario, yearsFromNow)
		fiTarget := FITarget(monthlySpend, scenario.SWR)
		swr := ComputeSWRAmounts(netWorth, scenario.SWR)

		rows = append(rows, domain.ProjectionRow{
			Year:           date.Year(),
			Month:          int(date.Month()),
			YearsFromNow:   decimal.NewFromFloat(yearsFromNow),
			Age:            profile.AgeAt(date),
			NetWorth:       netWorth,
			Interest:       netWorth.Sub(currentNetWorth).Sub(contributed),
			Contributed:    contributed,
			MonthlySpend:   monthlySpend,
			AnnualSpending: monthlySpend.Mul(decimalTwelve),
			FITarget:       fiTarget,
			FIProgress:     FIProgress(netWorth, fiTarget),
			MonthlySWR:     swr.Monthly,
			AnnualSWR:      swr.Annual,
			SwrCoversSpend: swr.Monthly.GreaterThanOrEqual(monthlySpend),
		})
	}
	return rows
}

// coastFiYear searches forward from projection year i for the first year in
// which netWorth, compounding with no further contributions, meets the
// inflation-adjusted FI target of that future year. The bool result is false
// when no year within the search horizon qualifies.
func (e *Engine) coastFiYear(netWorth decimal.Decimal, i int, scenario *domain.Scenario, calendarYear int) (int, bool) {
	if scenario.SWR.LessThanOrEqual(decimal.Zero) {
		return 0, false
	}
	for k := i; k <= i+coastSearchYears; k++ {
		compounded := decimalmath.Compound(netWorth, scenario.CurrentRate, float64(k-i))
		futureSpend := MonthlySpend(compounded, scenario, float64(k))
		target := FITarget(futureSpend, scenario.SWR)
		if target.LessThanOrEqual(decimal.Zero) {
			return calendarYear + (k - i), true
		}
		if compounded.GreaterThanOrEqual(target) {
			return calendarYear + (k - i), true
		}
	}
	return 0, false
}
