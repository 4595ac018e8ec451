package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a dollar amount with thousands separators and no cents.
func FormatCurrency(d decimal.Decimal) string {
	negative := d.IsNegative()
	s := d.Abs().StringFixed(0)

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	sb.WriteString("$")
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteString(",")
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}
