package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fiplan/fiplan/internal/domain"
	"github.com/fiplan/fiplan/internal/tui/tuimsg"
	"github.com/fiplan/fiplan/internal/tui/tuistyles"
)

// ScenariosModel represents the scenario browsing scene
type ScenariosModel struct {
	scenarios     []domain.Scenario
	selectedIndex int
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetScenarios updates the scenarios list
func (m *ScenariosModel) SetScenarios(scenarios []domain.Scenario) {
	m.scenarios = scenarios
	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the currently selected scenario name
func (m *ScenariosModel) SelectedScenario() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex].Name
	}
	return ""
}

// Update handles messages for the scenarios scene
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m *ScenariosModel) handleKeyPress(msg tea.KeyMsg) (*ScenariosModel, tea.Cmd) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		return m, m.selectScenario()

	case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
		m.selectedIndex = 0
		return m, nil

	case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
		m.selectedIndex = len(m.scenarios) - 1
		if m.selectedIndex < 0 {
			m.selectedIndex = 0
		}
		return m, nil
	}

	return m, nil
}

// selectScenario returns a command to select the current scenario
func (m *ScenariosModel) selectScenario() tea.Cmd {
	scenarioName := m.SelectedScenario()
	if scenarioName == "" {
		return nil
	}

	return func() tea.Msg {
		return tuimsg.ScenarioSelectedMsg{ScenarioName: scenarioName}
	}
}

// View renders the scenarios scene
func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return renderEmptyState()
	}

	leftPane := m.renderScenarioList()
	rightPane := renderScenarioDetails(&m.scenarios[m.selectedIndex])

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPane,
		"  ",
		rightPane,
	)

	content += "\n\n"
	content += renderScenariosHelp()

	return content
}

func renderEmptyState() string {
	return `No scenarios available.

Please load a plan file with scenarios defined.

Press ESC to return to home.`
}

func renderScenariosHelp() string {
	return "up/k • down/j • Enter project • g top • G bottom • ESC back"
}

// renderScenarioList renders the scenario list pane
func (m *ScenariosModel) renderScenarioList() string {
	listStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Width(34)

	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render("Scenarios"))
	content.WriteString("\n\n")

	for i := range m.scenarios {
		s := &m.scenarios[i]
		cursor := "  "
		style := tuistyles.UnselectedItemStyle
		if i == m.selectedIndex {
			cursor = "> "
			style = tuistyles.SelectedItemStyle
		}
		content.WriteString(cursor)
		content.WriteString(style.Render(s.Name))
		content.WriteString("\n")
	}

	return listStyle.Render(content.String())
}

// renderScenarioDetails renders detailed information about a scenario
func renderScenarioDetails(s *domain.Scenario) string {
	detailStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorPrimary).
		Padding(1, 2).
		Width(52)

	label := tuistyles.MetricLabelStyle
	value := tuistyles.MetricValueStyle

	var content strings.Builder
	content.WriteString(tuistyles.SelectedItemStyle.Render(s.Name))
	content.WriteString("\n\n")

	content.WriteString(label.Render("Growth rate:       "))
	content.WriteString(value.Render(s.CurrentRate.StringFixed(1) + "%"))
	content.WriteString("\n")

	content.WriteString(label.Render("Safe withdrawal:   "))
	content.WriteString(value.Render(s.SWR.StringFixed(1) + "%"))
	content.WriteString("\n")

	content.WriteString(label.Render("Inflation:         "))
	content.WriteString(value.Render(s.InflationRate.StringFixed(1) + "%"))
	content.WriteString("\n")

	content.WriteString(label.Render("Monthly budget:    "))
	content.WriteString(value.Render(tuistyles.FormatCurrency(s.BaseMonthlyBudget)))
	content.WriteString("\n")

	content.WriteString(label.Render("Yearly contrib:    "))
	content.WriteString(value.Render(tuistyles.FormatCurrency(s.YearlyContribution)))
	content.WriteString("\n")

	if s.HasIncome() {
		content.WriteString("\n")
		content.WriteString(label.Render("Gross income:      "))
		content.WriteString(value.Render(tuistyles.FormatCurrency(s.Income.GrossIncome)))
		content.WriteString("\n")
		content.WriteString(label.Render("Filing status:     "))
		content.WriteString(value.Render(string(s.Income.FilingStatus)))
		content.WriteString("\n")
		if s.Income.StateCode != "" {
			content.WriteString(label.Render("State:             "))
			content.WriteString(value.Render(s.Income.StateCode))
			content.WriteString("\n")
		}
	}

	content.WriteString("\n")
	hintStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorInfo).
		Italic(true)
	content.WriteString(hintStyle.Render("Press Enter to project this scenario"))

	return detailStyle.Render(content.String())
}

// formatInt formats an integer for display
func formatInt(n int) string {
	return fmt.Sprintf("%d", n)
}
