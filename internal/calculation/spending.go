package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
	"github.com/fiplan/fiplan/pkg/decimalmath"
)

var (
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// MonthlySpend computes the allowed monthly spending budget at a projection
// point: the inflation-indexed base budget plus a percentage-of-net-worth
// portion. It is evaluated independently at every point; there is no path
// dependence beyond the netWorth and yearsFromNow passed in.
//
// SpendingGrowthRate of zero gives pure inflation-indexed fixed spending;
// a zero base budget gives pure percentage-of-net-worth spending. Negative
// net worth propagates into a reduced (possibly negative) budget.
func MonthlySpend(netWorth decimal.Decimal, scenario *domain.Scenario, yearsFromNow float64) decimal.Decimal {
	base := decimalmath.Compound(scenario.BaseMonthlyBudget, scenario.InflationRate, yearsFromNow)
	netWorthPortion := netWorth.Mul(scenario.SpendingGrowthRate.Div(decimalHundred)).Div(decimalTwelve)
	return base.Add(netWorthPortion)
}

// AnnualSpend is MonthlySpend scaled to a year.
func AnnualSpend(netWorth decimal.Decimal, scenario *domain.Scenario, yearsFromNow float64) decimal.Decimal {
	return MonthlySpend(netWorth, scenario, yearsFromNow).Mul(decimalTwelve)
}
