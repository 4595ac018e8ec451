package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
	"github.com/fiplan/fiplan/pkg/dateutil"
	"github.com/fiplan/fiplan/pkg/decimalmath"
)

// MilestoneSpec is one entry of the fixed milestone catalog. Target carries
// the type-specific threshold: a FI-progress percentage, years of runway, a
// coast percentage, a nominal monthly spend, or a real annual income.
type MilestoneSpec struct {
	ID          string
	Type        domain.MilestoneType
	ShortName   string
	Description string
	Target      decimal.Decimal
	Color       string
}

func spec(id string, typ domain.MilestoneType, short, desc string, target float64, color string) MilestoneSpec {
	return MilestoneSpec{ID: id, Type: typ, ShortName: short, Description: desc, Target: decimal.NewFromFloat(target), Color: color}
}

// milestoneCatalog is the fixed catalog, in display order. One generic
// evaluator per type walks the projection; adding a milestone means adding a
// row here, not a new function.
var milestoneCatalog = []MilestoneSpec{
	spec("fi-10", domain.MilestonePercentage, "10% FI", "10% of the FI target", 10, "#94a3b8"),
	spec("fi-25", domain.MilestonePercentage, "25% FI", "25% of the FI target", 25, "#60a5fa"),
	spec("fi-50", domain.MilestonePercentage, "50% FI", "Halfway to the FI target", 50, "#34d399"),
	spec("fi-75", domain.MilestonePercentage, "75% FI", "75% of the FI target", 75, "#fbbf24"),
	spec("fi-100", domain.MilestonePercentage, "FI", "Safe withdrawals cover spending", 100, "#f87171"),

	spec("runway-6mo", domain.MilestoneRunway, "6-month runway", "Six months of spending with zero growth", 0.5, "#a78bfa"),
	spec("runway-1yr", domain.MilestoneRunway, "1-year runway", "One year of spending with zero growth", 1, "#8b5cf6"),
	spec("runway-2yr", domain.MilestoneRunway, "2-year runway", "Two years of spending with zero growth", 2, "#7c3aed"),
	spec("runway-5yr", domain.MilestoneRunway, "5-year runway", "Five years of spending with zero growth", 5, "#6d28d9"),

	spec("coast-fi", domain.MilestoneCoast, "Coast FI", "Compounding alone reaches the FI target by retirement age", 100, "#2dd4bf"),

	spec("lifestyle-lean", domain.MilestoneLifestyle, "Lean lifestyle", "Portfolio sustains $2,000/month", 2000, "#fde047"),
	spec("lifestyle-base", domain.MilestoneLifestyle, "Baseline lifestyle", "Portfolio sustains $4,000/month", 4000, "#facc15"),
	spec("lifestyle-comfort", domain.MilestoneLifestyle, "Comfortable lifestyle", "Portfolio sustains $8,000/month", 8000, "#eab308"),
	spec("lifestyle-lux", domain.MilestoneLifestyle, "Luxury lifestyle", "Portfolio sustains $15,000/month", 15000, "#ca8a04"),

	spec("retinc-30k", domain.MilestoneRetirementIncome, "$30k retirement income", "Real $30,000/year at retirement age if contributions stopped today", 30000, "#38bdf8"),
	spec("retinc-50k", domain.MilestoneRetirementIncome, "$50k retirement income", "Real $50,000/year at retirement age if contributions stopped today", 50000, "#0ea5e9"),
	spec("retinc-100k", domain.MilestoneRetirementIncome, "$100k retirement income", "Real $100,000/year at retirement age if contributions stopped today", 100000, "#0284c7"),

	spec("crossover", domain.MilestoneSpecial, "Crossover", "Investment growth exceeds total contributions", 0, "#fb923c"),
	spec("fat-fi", domain.MilestoneSpecial, "Fat FI", "Twice the FI target", 200, "#f472b6"),
}

// MilestoneCatalog returns a copy of the fixed catalog.
func MilestoneCatalog() []MilestoneSpec {
	out := make([]MilestoneSpec, len(milestoneCatalog))
	copy(out, milestoneCatalog)
	return out
}

// fallbackCoastYears anchors the coast and retirement-income milestones when
// no birth date is known: retirement is assumed this many years out.
const fallbackCoastYears = 30

// EvaluateMilestones walks the yearly rows of a projection and determines,
// for every catalog entry, the first row at which it is achieved. Milestones
// never reached within the horizon stay unachieved with nil year/age. The
// next milestone and amount-to-next come from the percentage family, the
// primary progress indicator.
func (e *Engine) EvaluateMilestones(projection *domain.ProjectionResult, scenario *domain.Scenario, profile domain.Profile) *domain.MilestoneSet {
	scenario = scenario.Clone()
	scenario.ApplyDefaults()
	rows := projection.YearlyRows

	// Calendar year retirement-anchored milestones aim at.
	retirementYear := projection.StartDate.Year() + fallbackCoastYears
	if profile.HasBirthDate() {
		retirementYear = dateutil.YearAtAge(profile.BirthDate.Year(), scenario.RetirementAge)
	}

	fiTargetNow := decimal.Zero
	if len(rows) > 0 {
		fiTargetNow = rows[0].FITarget
	}

	set := &domain.MilestoneSet{AmountToNext: decimal.Zero}
	for _, ms := range milestoneCatalog {
		m := domain.FiMilestone{
			ID:          ms.ID,
			Type:        ms.Type,
			ShortName:   ms.ShortName,
			Description: ms.Description,
			Color:       ms.Color,
			TargetValue: e.milestoneTargetValue(ms, scenario, fiTargetNow, retirementYear, projection),
		}

		for i := range rows {
			if !e.milestoneAchievedAt(ms, &rows[i], scenario, retirementYear, projection) {
				continue
			}
			row := &rows[i]
			m.IsAchieved = true
			year := row.Year
			m.Year = &year
			yearsFromNow := i
			m.YearsFromNow = &yearsFromNow
			if profile.HasBirthDate() {
				age := row.Age
				m.Age = &age
			}
			m.NetWorthAtMilestone = row.NetWorth
			break
		}

		set.Milestones = append(set.Milestones, m)
	}

	// Next percentage milestone and the net worth gap to it.
	for i := range set.Milestones {
		m := &set.Milestones[i]
		if m.Type != domain.MilestonePercentage || m.IsAchieved {
			continue
		}
		set.NextMilestone = m
		set.AmountToNext = decimal.Max(decimal.Zero, m.TargetValue.Sub(projection.StartValue))
		break
	}

	return set
}

// milestoneAchievedAt is the per-type predicate evaluated against one yearly row.
func (e *Engine) milestoneAchievedAt(ms MilestoneSpec, row *domain.ProjectionRow, scenario *domain.Scenario, retirementYear int, projection *domain.ProjectionResult) bool {
	switch ms.Type {
	case domain.MilestonePercentage:
		return row.FIProgress.GreaterThanOrEqual(ms.Target)

	case domain.MilestoneRunway:
		if row.AnnualSpending.LessThanOrEqual(decimal.Zero) {
			// Zero spending means any balance lasts forever.
			return row.NetWorth.GreaterThanOrEqual(decimal.Zero)
		}
		runwayYears := row.NetWorth.Div(row.AnnualSpending)
		return runwayYears.GreaterThanOrEqual(ms.Target)

	case domain.MilestoneCoast:
		return row.CoastFiYear != nil && *row.CoastFiYear <= retirementYear

	case domain.MilestoneLifestyle:
		target := FITarget(ms.Target, scenario.SWR)
		return target.GreaterThan(decimal.Zero) && row.NetWorth.GreaterThanOrEqual(target)

	case domain.MilestoneRetirementIncome:
		real := e.retirementIncomeAt(row, scenario, retirementYear, projection)
		return real.GreaterThanOrEqual(ms.Target)

	case domain.MilestoneSpecial:
		if ms.ID == "crossover" {
			return row.IsCrossover
		}
		return row.FIProgress.GreaterThanOrEqual(ms.Target)
	}
	return false
}

// retirementIncomeAt computes the real (today's dollars) annual income the
// row's net worth would support at retirement age if contributions stopped at
// that row: compound to the retirement year, apply the SWR, deflate back.
func (e *Engine) retirementIncomeAt(row *domain.ProjectionRow, scenario *domain.Scenario, retirementYear int, projection *domain.ProjectionResult) decimal.Decimal {
	yearsToRetirement := float64(retirementYear - row.Year)
	if yearsToRetirement < 0 {
		yearsToRetirement = 0
	}
	atRetirement := decimalmath.Compound(row.NetWorth, scenario.CurrentRate, yearsToRetirement)
	nominal := ComputeSWRAmounts(atRetirement, scenario.SWR).Annual
	yearsFromNow := float64(retirementYear - projection.StartDate.Year())
	if yearsFromNow < 0 {
		yearsFromNow = 0
	}
	return decimalmath.Deflate(nominal, scenario.InflationRate, yearsFromNow)
}

// milestoneTargetValue expresses the milestone as a net worth target where
// that is well defined; runway and retirement-income milestones keep their
// raw thresholds.
func (e *Engine) milestoneTargetValue(ms MilestoneSpec, scenario *domain.Scenario, fiTargetNow decimal.Decimal, retirementYear int, projection *domain.ProjectionResult) decimal.Decimal {
	switch ms.Type {
	case domain.MilestonePercentage:
		return fiTargetNow.Mul(ms.Target).Div(decimalHundred)

	case domain.MilestoneLifestyle:
		return FITarget(ms.Target, scenario.SWR)

	case domain.MilestoneCoast:
		return e.coastTargetNetWorth(scenario, retirementYear, projection)

	case domain.MilestoneSpecial:
		if ms.ID == "fat-fi" {
			return fiTargetNow.Mul(ms.Target).Div(decimalHundred)
		}
		return decimal.Zero

	default:
		return ms.Target
	}
}

// coastTargetNetWorth solves for the net worth needed today so that pure
// compounding reaches the FI target at retirement age. With G the growth
// factor to retirement, B the inflation-adjusted annual base budget at
// retirement, s the spending growth rate, and w the SWR:
//
//	need*G >= B/(w/100) + need*G*(s/w)  =>  need = B*100/w / (G*(1-s/w))
//
// Not computable (zero) when the SWR is zero or spending growth meets or
// exceeds the SWR, since the target then grows at least as fast as the
// portfolio.
func (e *Engine) coastTargetNetWorth(scenario *domain.Scenario, retirementYear int, projection *domain.ProjectionResult) decimal.Decimal {
	if scenario.SWR.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if scenario.SpendingGrowthRate.GreaterThanOrEqual(scenario.SWR) {
		return decimal.Zero
	}
	years := float64(retirementYear - projection.StartDate.Year())
	if years < 0 {
		years = 0
	}
	growth := decimalmath.GrowthFactor(scenario.CurrentRate, years)
	if growth.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	baseAnnual := decimalmath.Compound(scenario.BaseMonthlyBudget, scenario.InflationRate, years).Mul(decimalTwelve)
	targetBase := baseAnnual.Div(scenario.SWR.Div(decimalHundred))
	denom := growth.Mul(decimal.NewFromInt(1).Sub(scenario.SpendingGrowthRate.Div(scenario.SWR)))
	if denom.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return targetBase.Div(denom)
}
