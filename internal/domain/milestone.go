package domain

import "github.com/shopspring/decimal"

// MilestoneType groups milestones by the formula used to evaluate them.
type MilestoneType string

const (
	MilestonePercentage       MilestoneType = "percentage"
	MilestoneRunway           MilestoneType = "runway"
	MilestoneCoast            MilestoneType = "coast"
	MilestoneLifestyle        MilestoneType = "lifestyle"
	MilestoneRetirementIncome MilestoneType = "retirement_income"
	MilestoneSpecial          MilestoneType = "special"
)

// FiMilestone is one milestone from the fixed catalog together with its
// evaluation against a projection. Year/Month/Age are nil when the milestone
// is not achieved within the projection horizon.
type FiMilestone struct {
	ID          string        `json:"id"`
	Type        MilestoneType `json:"type"`
	ShortName   string        `json:"shortName"`
	Description string        `json:"description"`

	// TargetValue is the net worth required for the milestone when that is
	// expressible; for runway and retirement-income milestones it is the raw
	// threshold (years of runway, real annual income).
	TargetValue decimal.Decimal `json:"targetValue"`
	Color       string          `json:"color"`

	Year         *int `json:"year,omitempty"`
	Month        *int `json:"month,omitempty"`
	Age          *int `json:"age,omitempty"`
	YearsFromNow *int `json:"yearsFromNow,omitempty"`

	IsAchieved          bool            `json:"isAchieved"`
	NetWorthAtMilestone decimal.Decimal `json:"netWorthAtMilestone"`
}

// MilestoneSet is the evaluated catalog for one scenario plus the primary
// progress indicator (the lowest unachieved percentage milestone).
type MilestoneSet struct {
	Milestones    []FiMilestone   `json:"milestones"`
	NextMilestone *FiMilestone    `json:"nextMilestone,omitempty"`
	AmountToNext  decimal.Decimal `json:"amountToNext"`
}

// Achieved returns the milestones already reached, in catalog order.
func (ms *MilestoneSet) Achieved() []FiMilestone {
	out := make([]FiMilestone, 0, len(ms.Milestones))
	for _, m := range ms.Milestones {
		if m.IsAchieved {
			out = append(out, m)
		}
	}
	return out
}
