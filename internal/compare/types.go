package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/calculation"
)

// ComparisonResult represents a single scenario comparison with calculated metrics
type ComparisonResult struct {
	ScenarioName string                      `json:"scenarioName"`
	Result       *calculation.ScenarioResult `json:"-"`

	// Key Metrics
	YearsToFI     *int            `json:"yearsToFi,omitempty"` // nil when FI is never reached
	FITarget      decimal.Decimal `json:"fiTarget"`
	FIProgress    decimal.Decimal `json:"fiProgress"`
	NetWorthAt10  decimal.Decimal `json:"netWorthAt10"`
	NetWorthAt20  decimal.Decimal `json:"netWorthAt20"`
	NetWorthAt30  decimal.Decimal `json:"netWorthAt30"`
	FinalNetWorth decimal.Decimal `json:"finalNetWorth"`
	LifetimeTax   decimal.Decimal `json:"lifetimeTax"`
	NextMilestone string          `json:"nextMilestone,omitempty"`

	// Comparison to Base
	YearsToFIDiff    *int            `json:"yearsToFiDiff,omitempty"`
	NetWorthDiffAt30 decimal.Decimal `json:"netWorthDiffAt30"`
	NetWorthPctAt30  decimal.Decimal `json:"netWorthPctAt30"`
	TaxDiffFromBase  decimal.Decimal `json:"taxDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	PlanPath           string             `json:"planPath,omitempty"`
}

// MetricsCalculator extracts key metrics from scenario results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a scenario result
func (mc *MetricsCalculator) CalculateMetrics(result *calculation.ScenarioResult) ComparisonResult {
	cr := ComparisonResult{
		ScenarioName:  result.Scenario.Name,
		Result:        result,
		NetWorthAt10:  result.Projection.NetWorthAtYear(10),
		NetWorthAt20:  result.Projection.NetWorthAtYear(20),
		NetWorthAt30:  result.Projection.NetWorthAtYear(30),
		FinalNetWorth: result.Projection.FinalNetWorth(),
		LifetimeTax:   result.Projection.LifetimeTax(),
	}

	if len(result.Projection.YearlyRows) > 0 {
		first := result.Projection.YearlyRows[0]
		cr.FITarget = first.FITarget
		cr.FIProgress = first.FIProgress
	}

	if fi := result.Projection.FiRow(); fi != nil {
		years := int(fi.YearsFromNow.IntPart())
		cr.YearsToFI = &years
	}

	if result.Milestones != nil && result.Milestones.NextMilestone != nil {
		cr.NextMilestone = result.Milestones.NextMilestone.ShortName
	}

	return cr
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetWorthDiffAt30 = scenario.NetWorthAt30.Sub(base.NetWorthAt30)

	if !base.NetWorthAt30.IsZero() {
		scenario.NetWorthPctAt30 = scenario.NetWorthDiffAt30.
			Div(base.NetWorthAt30).
			Mul(decimal.NewFromInt(100))
	}

	if scenario.YearsToFI != nil && base.YearsToFI != nil {
		diff := *scenario.YearsToFI - *base.YearsToFI
		scenario.YearsToFIDiff = &diff
	}

	scenario.TaxDiffFromBase = scenario.LifetimeTax.Sub(base.LifetimeTax)

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find earliest FI
	fastest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.YearsToFI == nil {
			continue
		}
		if fastest.YearsToFI == nil || *alt.YearsToFI < *fastest.YearsToFI {
			fastest = alt
		}
	}

	if fastest != compSet.BaseResult && fastest.YearsToFI != nil {
		msg := "Earliest FI: " + fastest.ScenarioName
		if compSet.BaseResult.YearsToFI != nil {
			yearsSaved := *compSet.BaseResult.YearsToFI - *fastest.YearsToFI
			msg += fmt.Sprintf(" reaches financial independence %d years sooner than base", yearsSaved)
		} else {
			msg += fmt.Sprintf(" reaches financial independence in %d years; base never does", *fastest.YearsToFI)
		}
		recommendations = append(recommendations, msg)
	}

	// Find highest 30-year net worth
	richest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.NetWorthAt30.GreaterThan(richest.NetWorthAt30) {
			richest = alt
		}
	}

	if richest != compSet.BaseResult {
		diff := richest.NetWorthAt30.Sub(compSet.BaseResult.NetWorthAt30)
		recommendations = append(recommendations,
			"Highest Net Worth: "+richest.ScenarioName+" ends 30 years with $"+diff.StringFixed(0)+
				" more than base")
	}

	// Find lowest tax burden
	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.LifetimeTax.LessThan(lowestTax.LifetimeTax) {
			lowestTax = alt
		}
	}

	if lowestTax != compSet.BaseResult && !compSet.BaseResult.LifetimeTax.IsZero() {
		taxSavings := compSet.BaseResult.LifetimeTax.Sub(lowestTax.LifetimeTax)
		recommendations = append(recommendations,
			"Lowest Taxes: "+lowestTax.ScenarioName+" saves $"+taxSavings.StringFixed(0)+
				" in lifetime taxes")
	}

	return recommendations
}
