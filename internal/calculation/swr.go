package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/pkg/dateutil"
)

// Divisors for breaking an annual withdrawal into shorter periods.
var (
	weeksPerYear = decimal.NewFromFloat(52.18)
	daysPerYear  = decimal.NewFromFloat(dateutil.DaysPerYear)
)

// SWRAmounts is a safe withdrawal amount expressed per period.
type SWRAmounts struct {
	Annual  decimal.Decimal `json:"annual"`
	Monthly decimal.Decimal `json:"monthly"`
	Weekly  decimal.Decimal `json:"weekly"`
	Daily   decimal.Decimal `json:"daily"`
}

// ComputeSWRAmounts returns the withdrawal a portfolio supports at the given
// safe withdrawal rate (percent).
func ComputeSWRAmounts(netWorth, swrPercent decimal.Decimal) SWRAmounts {
	annual := netWorth.Mul(swrPercent.Div(decimalHundred))
	return SWRAmounts{
		Annual:  annual,
		Monthly: annual.Div(decimalTwelve),
		Weekly:  annual.Div(weeksPerYear),
		Daily:   annual.Div(daysPerYear),
	}
}

// FITarget returns the net worth at which the safe withdrawal covers the
// given monthly spend. A zero SWR has no finite target; it is reported as
// zero to signal "not computable" rather than as an error.
func FITarget(monthlySpend, swrPercent decimal.Decimal) decimal.Decimal {
	if swrPercent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return monthlySpend.Mul(decimalTwelve).Div(swrPercent.Div(decimalHundred))
}

// FIProgress returns netWorth as a percentage of the FI target, zero when the
// target is not computable.
func FIProgress(netWorth, fiTarget decimal.Decimal) decimal.Decimal {
	if fiTarget.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return netWorth.Div(fiTarget).Mul(decimalHundred)
}
