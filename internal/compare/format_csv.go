package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	header := []string{
		"Scenario",
		"Type",
		"Years to FI",
		"FI Target",
		"FI Progress %",
		"Net Worth @ 10y",
		"Net Worth @ 20y",
		"Net Worth @ 30y",
		"Final Net Worth",
		"Lifetime Tax",
		"Net Worth Diff @ 30y",
		"Net Worth % Change",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// Write base scenario
	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	// Write alternative scenarios
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	yearsStr := ""
	if result.YearsToFI != nil {
		yearsStr = formatInt(*result.YearsToFI)
	}

	return []string{
		result.ScenarioName,
		scenarioType,
		yearsStr,
		result.FITarget.StringFixed(2),
		result.FIProgress.StringFixed(2),
		result.NetWorthAt10.StringFixed(2),
		result.NetWorthAt20.StringFixed(2),
		result.NetWorthAt30.StringFixed(2),
		result.FinalNetWorth.StringFixed(2),
		result.LifetimeTax.StringFixed(2),
		result.NetWorthDiffAt30.StringFixed(2),
		result.NetWorthPctAt30.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
	}
}

func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
