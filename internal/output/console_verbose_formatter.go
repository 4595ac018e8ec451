package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/domain"
)

// ConsoleVerboseFormatter renders the projection table plus the full tax
// breakdown and milestone list.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(result *calculation.ScenarioResult) ([]byte, error) {
	base, err := (ConsoleFormatter{}).Format(result)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(base)

	if result.Tax != nil {
		buf.WriteString("\n")
		writeTaxBreakdown(&buf, result.Tax)
	}

	if result.Milestones != nil {
		buf.WriteString("\n")
		writeMilestones(&buf, result.Milestones)
	}

	return buf.Bytes(), nil
}

// FormatTax renders just the tax breakdown, for callers that computed a
// breakdown without a projection.
func FormatTax(tax *domain.TaxCalculation) []byte {
	var buf bytes.Buffer
	writeTaxBreakdown(&buf, tax)
	return buf.Bytes()
}

func writeTaxBreakdown(buf *bytes.Buffer, tax *domain.TaxCalculation) {
	fmt.Fprintln(buf, "TAX BREAKDOWN")
	fmt.Fprintln(buf, strings.Repeat("-", 60))
	fmt.Fprintf(buf, "Gross Income:            %s\n", FormatCurrency(tax.GrossIncome))
	fmt.Fprintf(buf, "Pre-Tax Contributions:   %s\n", FormatCurrency(tax.TotalPreTaxContributions))
	fmt.Fprintf(buf, "AGI:                     %s\n", FormatCurrency(tax.AGI))
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "Federal (%s, std deduction %s):\n",
		tax.FilingStatus, FormatCurrency(tax.FederalStandardDeduction))
	for _, b := range tax.FederalBrackets {
		if b.TaxableInBracket.IsZero() {
			continue
		}
		fmt.Fprintf(buf, "  %5s%% on %12s = %s\n",
			b.Rate.StringFixed(1),
			FormatCurrency(b.TaxableInBracket),
			FormatCurrency(b.TaxFromBracket))
	}
	fmt.Fprintf(buf, "  Federal Tax:           %s (marginal %s, effective %s)\n",
		FormatCurrency(tax.FederalTax),
		FormatPercentage(tax.FederalMarginalRate),
		FormatPercentage(tax.FederalEffectiveRate))
	fmt.Fprintln(buf)

	if tax.StateTaxType != domain.StateTaxNone {
		fmt.Fprintf(buf, "State (%s, %s):\n", tax.StateCode, tax.StateTaxType)
		for _, b := range tax.StateBrackets {
			if b.TaxableInBracket.IsZero() {
				continue
			}
			fmt.Fprintf(buf, "  %5s%% on %12s = %s\n",
				b.Rate.StringFixed(2),
				FormatCurrency(b.TaxableInBracket),
				FormatCurrency(b.TaxFromBracket))
		}
		fmt.Fprintf(buf, "  State Tax:             %s (effective %s)\n",
			FormatCurrency(tax.StateTax),
			FormatPercentage(tax.StateEffectiveRate))
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, "FICA:")
	fmt.Fprintf(buf, "  Social Security:       %s (on %s, cap %s)\n",
		FormatCurrency(tax.FICA.SocialSecurityTax),
		FormatCurrency(tax.FICA.SocialSecurityWages),
		FormatCurrency(tax.FICA.SocialSecurityCap))
	fmt.Fprintf(buf, "  Medicare:              %s\n", FormatCurrency(tax.FICA.MedicareTax))
	if tax.FICA.AdditionalMedicareTax.IsPositive() {
		fmt.Fprintf(buf, "  Additional Medicare:   %s (over %s)\n",
			FormatCurrency(tax.FICA.AdditionalMedicareTax),
			FormatCurrency(tax.FICA.AdditionalMedicareThreshold))
	}
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "Total Tax:               %s (effective %s)\n",
		FormatCurrency(tax.TotalTax), FormatPercentage(tax.EffectiveTaxRate))
	fmt.Fprintf(buf, "Net Income:              %s (%s/month)\n",
		FormatCurrency(tax.NetIncome), FormatCurrency(tax.MonthlyNetIncome))
}

func writeMilestones(buf *bytes.Buffer, set *domain.MilestoneSet) {
	fmt.Fprintln(buf, "MILESTONES")
	fmt.Fprintln(buf, strings.Repeat("-", 60))
	for i := range set.Milestones {
		m := &set.Milestones[i]

		status := "      "
		when := ""
		if m.IsAchieved {
			status = "[done]"
			if m.Year != nil {
				when = fmt.Sprintf(" (%d)", *m.Year)
			}
		}

		target := ""
		if m.TargetValue.IsPositive() {
			target = " @ " + FormatCurrency(m.TargetValue)
		}

		fmt.Fprintf(buf, "%s %-24s%s%s\n", status, m.ShortName, target, when)
	}
}
