package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/tui/tuistyles"
)

// ResultsModel represents the projection results scene
type ResultsModel struct {
	result *calculation.ScenarioResult
	offset int // first visible yearly row
	width  int
	height int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{}
}

// SetResult updates the result to display and resets scrolling
func (m *ResultsModel) SetResult(result *calculation.ScenarioResult) {
	m.result = result
	m.offset = 0
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// visibleRows returns how many projection rows fit on screen.
func (m *ResultsModel) visibleRows() int {
	rows := m.height - 12
	if rows < 5 {
		rows = 5
	}
	return rows
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.result == nil {
		return m, nil
	}

	total := len(m.result.Projection.YearlyRows)
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.offset > 0 {
			m.offset--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.offset < total-m.visibleRows() {
			m.offset++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g"))):
		m.offset = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G"))):
		m.offset = total - m.visibleRows()
		if m.offset < 0 {
			m.offset = 0
		}
	}

	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.result == nil {
		return renderNoResultsState()
	}

	header := m.renderSummary()
	table := m.renderProjectionTable()
	help := tuistyles.StatusBarStyle.Render("up/k • down/j scroll • g top • G bottom • ESC back")

	return lipgloss.JoinVertical(lipgloss.Left, header, table, help)
}

func renderNoResultsState() string {
	return `No projection yet.

Select a scenario and press Enter to project it.

Press ESC to return to home.`
}

// renderSummary shows the headline numbers for the projection
func (m *ResultsModel) renderSummary() string {
	p := m.result.Projection
	label := tuistyles.MetricLabelStyle
	value := tuistyles.MetricValueStyle

	var parts []string
	parts = append(parts,
		label.Render("Scenario ")+value.Render(p.ScenarioName),
		label.Render("Start ")+value.Render(tuistyles.FormatCurrency(p.StartValue)))

	if len(p.YearlyRows) > 0 {
		first := p.YearlyRows[0]
		parts = append(parts,
			label.Render("FI target ")+value.Render(tuistyles.FormatCurrency(first.FITarget)),
			label.Render("Progress ")+value.Render(first.FIProgress.StringFixed(1)+"%"))
	}

	if fi := p.FiRow(); fi != nil {
		parts = append(parts,
			label.Render("FI in ")+tuistyles.TableHighlightStyle.Render(fi.YearsFromNow.StringFixed(0)+"y"))
	} else {
		parts = append(parts,
			label.Render("FI ")+tuistyles.ErrorStyle.Render("not reached"))
	}

	return tuistyles.BorderStyle.Render(strings.Join(parts, "   "))
}

// renderProjectionTable shows the scrollable yearly projection
func (m *ResultsModel) renderProjectionTable() string {
	var content strings.Builder

	content.WriteString(tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%-6s %-5s %12s %12s %11s %11s %8s",
			"Year", "Age", "Net Worth", "Contrib", "Spend/mo", "SWR/mo", "FI %")))
	content.WriteString("\n")

	rows := m.result.Projection.YearlyRows
	end := m.offset + m.visibleRows()
	if end > len(rows) {
		end = len(rows)
	}

	for i := m.offset; i < end; i++ {
		row := &rows[i]

		age := "-"
		if row.Age > 0 {
			age = formatInt(row.Age)
		}

		line := fmt.Sprintf("%-6d %-5s %12s %12s %11s %11s %7s%%",
			row.Year,
			age,
			tuistyles.FormatCurrency(row.NetWorth),
			tuistyles.FormatCurrency(row.Contributed),
			tuistyles.FormatCurrency(row.MonthlySpend),
			tuistyles.FormatCurrency(row.MonthlySWR),
			row.FIProgress.StringFixed(1))

		style := tuistyles.TableCellStyle
		if row.IsFiYear {
			style = tuistyles.TableHighlightStyle
			line += "  FI"
		} else if row.IsCrossover {
			line += "  crossover"
		}

		content.WriteString(style.Render(line))
		content.WriteString("\n")
	}

	if end < len(rows) {
		content.WriteString(tuistyles.StatusBarStyle.Render(
			fmt.Sprintf("... %d more years", len(rows)-end)))
	}

	return tuistyles.BorderStyle.Render(content.String())
}
