package output

import (
	"bytes"
	"fmt"

	"github.com/fiplan/fiplan/internal/calculation"
)

// ConsoleFormatter renders the yearly projection as a plain text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *calculation.ScenarioResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "PROJECTION: %s\n", result.Scenario.Name)
	fmt.Fprintf(&buf, "Start: %s  Net Worth: %s\n",
		result.Projection.StartDate.Format("2006-01-02"),
		FormatCurrency(result.Projection.StartValue))
	fmt.Fprintf(&buf, "Growth: %s  SWR: %s  Inflation: %s\n",
		FormatPercentage(result.Scenario.CurrentRate),
		FormatPercentage(result.Scenario.SWR),
		FormatPercentage(result.Scenario.InflationRate))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-6s %-5s %14s %12s %12s %11s %11s %8s %s\n",
		"Year", "Age", "Net Worth", "Interest", "Contrib", "Spend/mo", "SWR/mo", "FI %", "")
	fmt.Fprintln(&buf, "--------------------------------------------------------------------------------------")

	for i := range result.Projection.YearlyRows {
		row := &result.Projection.YearlyRows[i]

		age := "-"
		if row.Age > 0 {
			age = fmt.Sprintf("%d", row.Age)
		}

		marker := ""
		if row.IsFiYear {
			marker = " <- FI"
		} else if row.IsCrossover {
			marker = " <- crossover"
		}

		fmt.Fprintf(&buf, "%-6d %-5s %14s %12s %12s %11s %11s %7s%%%s\n",
			row.Year,
			age,
			FormatCurrency(row.NetWorth),
			FormatCurrency(row.Interest),
			FormatCurrency(row.Contributed),
			FormatCurrency(row.MonthlySpend),
			FormatCurrency(row.MonthlySWR),
			row.FIProgress.StringFixed(1),
			marker)
	}

	if fi := result.Projection.FiRow(); fi != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "FI target %s reached in %d (%s years from now)\n",
			FormatCurrency(fi.FITarget), fi.Year, fi.YearsFromNow.StringFixed(0))
	}

	if result.Milestones != nil && result.Milestones.NextMilestone != nil {
		next := result.Milestones.NextMilestone
		fmt.Fprintf(&buf, "Next milestone: %s (%s to go)\n",
			next.ShortName, FormatCurrency(result.Milestones.AmountToNext))
	}

	return buf.Bytes(), nil
}
