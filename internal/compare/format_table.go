package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("FI SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.PlanPath != "" {
		sb.WriteString(fmt.Sprintf("Plan: %s\n", compSet.PlanPath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 25
	numWidth := 13

	// Table header
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Years to FI",
		numWidth, "FI Target",
		numWidth, "NW @ 30y",
		numWidth, "Lifetime Tax"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	// Base scenario row
	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	// Alternative scenarios
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Comparison details (deltas from base)
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))

			if alt.YearsToFIDiff != nil && *alt.YearsToFIDiff != 0 {
				symbol := "+"
				if *alt.YearsToFIDiff < 0 {
					symbol = ""
				}
				sb.WriteString(fmt.Sprintf("  Years to FI:      %s%d years\n", symbol, *alt.YearsToFIDiff))
			}

			nwSymbol := tf.deltaSymbol(alt.NetWorthDiffAt30)
			sb.WriteString(fmt.Sprintf("  Net Worth @ 30y:  %s$%s (%s%%)\n",
				nwSymbol,
				tf.formatDecimal(alt.NetWorthDiffAt30.Abs()),
				alt.NetWorthPctAt30.StringFixed(1)))

			if !alt.TaxDiffFromBase.IsZero() {
				taxSymbol := tf.deltaSymbol(alt.TaxDiffFromBase.Neg()) // Lower taxes are better
				sb.WriteString(fmt.Sprintf("  Tax Impact:       %s$%s\n",
					taxSymbol,
					tf.formatDecimal(alt.TaxDiffFromBase.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	// Recommendations
	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	yearsStr := "never"
	if result.YearsToFI != nil {
		yearsStr = fmt.Sprintf("%d years", *result.YearsToFI)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, yearsStr,
		numWidth, "$"+tf.formatDecimal(result.FITarget),
		numWidth, "$"+tf.formatDecimal(result.NetWorthAt30),
		numWidth, "$"+tf.formatDecimal(result.LifetimeTax))
}

// formatDecimal formats a decimal for display (in thousands or millions)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return ""
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		nwChange := "="
		if alt.NetWorthDiffAt30.IsPositive() {
			nwChange = fmt.Sprintf("+$%s", tf.formatDecimal(alt.NetWorthDiffAt30))
		} else if alt.NetWorthDiffAt30.IsNegative() {
			nwChange = fmt.Sprintf("-$%s", tf.formatDecimal(alt.NetWorthDiffAt30.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, nwChange))
	}

	return sb.String()
}
