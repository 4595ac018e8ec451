package server

import (
	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
)

// ProjectRequest asks for a full projection of one scenario.
type ProjectRequest struct {
	Scenario        *domain.Scenario `json:"scenario"`
	CurrentNetWorth decimal.Decimal  `json:"currentNetWorth"`
	HorizonYears    int              `json:"horizonYears,omitempty"`
	BirthDate       string           `json:"birthDate,omitempty"` // YYYY-MM-DD
	IncludeMonthly  bool             `json:"includeMonthly,omitempty"`
}

// ProjectResponse mirrors the engine result. Monthly rows are stripped unless
// requested; they are twelve times the yearly payload.
type ProjectResponse struct {
	Scenario   *domain.Scenario         `json:"scenario"`
	Projection *domain.ProjectionResult `json:"projection"`
	Milestones *domain.MilestoneSet     `json:"milestones"`
	Tax        *domain.TaxCalculation   `json:"tax,omitempty"`
}

// TaxRequest asks for a standalone tax breakdown.
type TaxRequest struct {
	GrossIncome  decimal.Decimal            `json:"grossIncome"`
	FilingStatus domain.FilingStatus        `json:"filingStatus"`
	StateCode    string                     `json:"stateCode,omitempty"`
	PreTax       domain.PreTaxContributions `json:"preTaxContributions"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
