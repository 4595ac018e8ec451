// Debug printout for spot-checking projection math against hand calculations.
package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/domain"
)

func main() {
	engine := calculation.NewEngine()
	start := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	profile := domain.Profile{BirthDate: time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)}

	fmt.Println("Baseline scenario, selected yearly rows:")
	result, err := engine.RunScenario(baselineScenario(), decimal.NewFromInt(200000), start, profile, 40)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, i := range []int{0, 1, 10, 20, 30, 40} {
		row := result.Projection.YearlyRows[i]
		fmt.Printf("year %2d: net worth %14s  interest %14s  spend/mo %9s  target %14s  progress %6s%%\n",
			i,
			row.NetWorth.StringFixed(2),
			row.Interest.StringFixed(2),
			row.MonthlySpend.StringFixed(2),
			row.FITarget.StringFixed(2),
			row.FIProgress.StringFixed(1))
	}

	if fi := result.Projection.FiRow(); fi != nil {
		fmt.Printf("\nFI at year offset %s (calendar %d), net worth %s\n",
			fi.YearsFromNow.StringFixed(0), fi.Year, fi.NetWorth.StringFixed(2))
	}
	if cross := result.Projection.CrossoverRow(); cross != nil {
		fmt.Printf("Crossover at year offset %s: interest %s vs contributed %s\n",
			cross.YearsFromNow.StringFixed(0), cross.Interest.StringFixed(2), cross.Contributed.StringFixed(2))
	}

	fmt.Println("\nIncome scenario, current-year tax breakdown:")
	tax := calculation.ComputeTax(
		decimal.NewFromInt(100000),
		domain.FilingSingle,
		"CA",
		domain.PreTaxContributions{Traditional401k: decimal.NewFromInt(23000)},
	)
	fmt.Printf("federal %s  state %s  fica %s  total %s (effective %s%%)\n",
		tax.FederalTax.StringFixed(2),
		tax.StateTax.StringFixed(2),
		tax.FICA.TotalFICATax.StringFixed(2),
		tax.TotalTax.StringFixed(2),
		tax.EffectiveTaxRate.StringFixed(2))
}

func baselineScenario() *domain.Scenario {
	return &domain.Scenario{
		ID:                 "baseline",
		Name:               "baseline",
		CurrentRate:        decimal.NewFromInt(7),
		SWR:                decimal.NewFromInt(4),
		InflationRate:      decimal.NewFromInt(3),
		BaseMonthlyBudget:  decimal.NewFromInt(3000),
		YearlyContribution: decimal.NewFromInt(12000),
	}
}
