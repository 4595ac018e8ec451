package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/domain"
	"github.com/fiplan/fiplan/internal/tui/components"
	"github.com/fiplan/fiplan/internal/tui/tuistyles"
)

// MilestonesModel represents the milestone overview scene
type MilestonesModel struct {
	set      *domain.MilestoneSet
	netWorth decimal.Decimal
	width    int
	height   int
}

// NewMilestonesModel creates a new milestones scene model
func NewMilestonesModel() *MilestonesModel {
	return &MilestonesModel{}
}

// SetMilestones updates the milestone set and the net worth used for
// per-milestone progress bars.
func (m *MilestonesModel) SetMilestones(set *domain.MilestoneSet, netWorth decimal.Decimal) {
	m.set = set
	m.netWorth = netWorth
}

// SetSize updates the scene dimensions
func (m *MilestonesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the milestones scene
func (m *MilestonesModel) Update(msg tea.Msg) (*MilestonesModel, tea.Cmd) {
	// Read-only scene; navigation handled by the parent
	return m, nil
}

// View renders the milestones scene
func (m *MilestonesModel) View() string {
	if m.set == nil {
		return `No milestones yet.

Select a scenario and press Enter to project it.

Press ESC to return to home.`
	}

	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render("Milestones"))
	content.WriteString("\n\n")

	if next := m.set.NextMilestone; next != nil {
		content.WriteString(tuistyles.MetricLabelStyle.Render("Next up: "))
		content.WriteString(tuistyles.MetricValueStyle.Render(next.ShortName))
		content.WriteString(tuistyles.MetricLabelStyle.Render(
			fmt.Sprintf("  (%s to go)", tuistyles.FormatCurrency(m.set.AmountToNext))))
		content.WriteString("\n\n")
	}

	for i := range m.set.Milestones {
		content.WriteString(m.renderMilestone(&m.set.Milestones[i]))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(tuistyles.StatusBarStyle.Render(
		fmt.Sprintf("%d of %d achieved • ESC back", len(m.set.Achieved()), len(m.set.Milestones))))

	return tuistyles.BorderStyle.Render(content.String())
}

// renderMilestone renders a single milestone with a progress bar toward its
// target where one exists.
func (m *MilestonesModel) renderMilestone(milestone *domain.FiMilestone) string {
	icon := "○"
	iconStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	if milestone.IsAchieved {
		icon = "●"
		iconStyle = lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	}

	line := iconStyle.Render(icon) + " " +
		tuistyles.MetricValueStyle.Render(fmt.Sprintf("%-24s", milestone.ShortName))

	if milestone.IsAchieved && milestone.Year != nil {
		when := fmt.Sprintf("%d", *milestone.Year)
		if milestone.Age != nil {
			when += fmt.Sprintf(" (age %d)", *milestone.Age)
		}
		line += tuistyles.MetricLabelStyle.Render(" " + when)
		return line
	}

	if milestone.TargetValue.IsPositive() {
		percent := m.netWorth.Div(milestone.TargetValue).Mul(decimal.NewFromInt(100))
		bar := components.NewProgressBar(percent).WithWidth(20)
		line += " " + bar.Render()
	}

	return line
}
