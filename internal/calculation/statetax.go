package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
)

// StateTaxInfo describes how one state taxes income: no income tax, a flat
// rate, or a progressive schedule. Flat states are represented as a single
// bracket so the same breakdown algorithm serves both kinds.
type StateTaxInfo struct {
	Code      string
	Type      domain.StateTaxType
	Brackets  []TaxBracket
	Deduction decimal.Decimal
	Exemption decimal.Decimal
}

func flatState(code string, rate float64, deduction, exemption int64) StateTaxInfo {
	return StateTaxInfo{
		Code:      code,
		Type:      domain.StateTaxFlat,
		Brackets:  []TaxBracket{bracket(0, 0, rate)},
		Deduction: decimal.NewFromInt(deduction),
		Exemption: decimal.NewFromInt(exemption),
	}
}

func progressiveState(code string, deduction, exemption int64, brackets ...TaxBracket) StateTaxInfo {
	return StateTaxInfo{
		Code:      code,
		Type:      domain.StateTaxProgressive,
		Brackets:  brackets,
		Deduction: decimal.NewFromInt(deduction),
		Exemption: decimal.NewFromInt(exemption),
	}
}

// stateTaxTable holds the 2024 state income tax parameters. States without
// an income tax are intentionally absent; LookupState reports them as
// StateTaxNone. Single-filer schedules are used throughout.
var stateTaxTable = map[string]StateTaxInfo{
	// Flat-rate states.
	"AZ": flatState("AZ", 0.025, 14600, 0),
	"CO": flatState("CO", 0.044, 14600, 0),
	"GA": flatState("GA", 0.0549, 12000, 0),
	"ID": flatState("ID", 0.058, 14600, 0),
	"IL": flatState("IL", 0.0495, 0, 2775),
	"IN": flatState("IN", 0.0305, 0, 1000),
	"KY": flatState("KY", 0.04, 3160, 0),
	"MA": flatState("MA", 0.05, 0, 4400),
	"MI": flatState("MI", 0.0425, 0, 5600),
	"NC": flatState("NC", 0.045, 12750, 0),
	"PA": flatState("PA", 0.0307, 0, 0),
	"UT": flatState("UT", 0.0465, 0, 0),

	// Progressive states.
	"CA": progressiveState("CA", 5540, 0,
		bracket(0, 10412, 0.01),
		bracket(10412, 24684, 0.02),
		bracket(24684, 38959, 0.04),
		bracket(38959, 54081, 0.06),
		bracket(54081, 68350, 0.08),
		bracket(68350, 349137, 0.093),
		bracket(349137, 418961, 0.103),
		bracket(418961, 698271, 0.113),
		bracket(698271, 0, 0.123),
	),
	"NY": progressiveState("NY", 8000, 0,
		bracket(0, 8500, 0.04),
		bracket(8500, 11700, 0.045),
		bracket(11700, 13900, 0.0525),
		bracket(13900, 80650, 0.055),
		bracket(80650, 215400, 0.06),
		bracket(215400, 1077550, 0.0685),
		bracket(1077550, 5000000, 0.0965),
		bracket(5000000, 25000000, 0.103),
		bracket(25000000, 0, 0.109),
	),
	"OR": progressiveState("OR", 2745, 0,
		bracket(0, 4300, 0.0475),
		bracket(4300, 10750, 0.0675),
		bracket(10750, 125000, 0.0875),
		bracket(125000, 0, 0.099),
	),
	"MN": progressiveState("MN", 14575, 0,
		bracket(0, 31690, 0.0535),
		bracket(31690, 104090, 0.068),
		bracket(104090, 193240, 0.0785),
		bracket(193240, 0, 0.0985),
	),
	"VA": progressiveState("VA", 8000, 0,
		bracket(0, 3000, 0.02),
		bracket(3000, 5000, 0.03),
		bracket(5000, 17000, 0.05),
		bracket(17000, 0, 0.0575),
	),
	"WI": progressiveState("WI", 13230, 0,
		bracket(0, 14320, 0.035),
		bracket(14320, 28640, 0.044),
		bracket(28640, 315310, 0.053),
		bracket(315310, 0, 0.0765),
	),
}

// LookupState returns the tax parameters for a two-letter state code. Empty
// or unknown codes, and states without an income tax, all come back as
// StateTaxNone so callers never need to special-case them.
func LookupState(stateCode string) StateTaxInfo {
	code := strings.ToUpper(strings.TrimSpace(stateCode))
	if info, ok := stateTaxTable[code]; ok {
		return info
	}
	return StateTaxInfo{Code: code, Type: domain.StateTaxNone}
}

// KnownStates returns the codes present in the state tax table, for
// validation messages.
func KnownStates() []string {
	codes := make([]string, 0, len(stateTaxTable))
	for code := range stateTaxTable {
		codes = append(codes, code)
	}
	return codes
}
