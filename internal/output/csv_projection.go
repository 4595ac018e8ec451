package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fiplan/fiplan/internal/calculation"
)

// CSVProjectionExporter writes the yearly projection, one row per year.
type CSVProjectionExporter struct{}

func (c CSVProjectionExporter) Name() string { return "csv" }

func (c CSVProjectionExporter) Format(result *calculation.ScenarioResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age", "NetWorth", "Interest", "Contributed", "MonthlySpend", "AnnualSpending", "AnnualSavings", "MonthlySWR", "AnnualSWR", "FITarget", "FIProgress", "IsFiYear", "IsCrossover", "GrossIncome", "TotalTax", "NetIncome"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range result.Projection.YearlyRows {
		row := &result.Projection.YearlyRows[i]
		age := ""
		if row.Age > 0 {
			age = fmt.Sprintf("%d", row.Age)
		}
		record := []string{
			fmt.Sprintf("%d", row.Year),
			age,
			row.NetWorth.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Contributed.StringFixed(2),
			row.MonthlySpend.StringFixed(2),
			row.AnnualSpending.StringFixed(2),
			row.AnnualSavings.StringFixed(2),
			row.MonthlySWR.StringFixed(2),
			row.AnnualSWR.StringFixed(2),
			row.FITarget.StringFixed(2),
			row.FIProgress.StringFixed(2),
			fmt.Sprintf("%t", row.IsFiYear),
			fmt.Sprintf("%t", row.IsCrossover),
			row.GrossIncome.StringFixed(2),
			row.TotalTax.StringFixed(2),
			row.NetIncome.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
