package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fiplan/fiplan/internal/tui/components"
	"github.com/fiplan/fiplan/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.renderHome()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneMilestones:
		content = m.milestonesModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)

	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("fiplan - FI Planning")

	breadcrumb := ""
	if m.selectedScenario != "" {
		breadcrumb = tuistyles.SubtitleStyle.Render(
			fmt.Sprintf("%s / %s", m.currentScene.String(), m.selectedScenario),
		)
	} else {
		breadcrumb = tuistyles.SubtitleStyle.Render(m.currentScene.String())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("s", "scenarios"),
		formatShortcut("r", "results"),
		formatShortcut("m", "milestones"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	if m.plan != nil {
		planName := tuistyles.SubtitleStyle.Render("Plan loaded")
		width := m.width - lipgloss.Width(statusText) - 4
		spacer := strings.Repeat(" ", max(0, width))
		statusText = statusText + spacer + planName
	}

	return tuistyles.StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

// renderLoading renders a loading message
func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}

	content := tuistyles.BorderStyle.Render(components.NewSpinner().WithMessage(message).Render())

	return m.renderApp(content)
}

// renderError renders an error message
func (m Model) renderError() string {
	errorMsg := "An error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	content := tuistyles.ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", errorMsg),
	)

	return m.renderApp(content)
}

// renderHome renders the home dashboard
func (m Model) renderHome() string {
	if m.plan == nil {
		return tuistyles.BorderStyle.Render(
			"Welcome to fiplan!\n\n" +
				"Loading plan...",
		)
	}

	label := tuistyles.MetricLabelStyle
	value := tuistyles.MetricValueStyle

	var content strings.Builder
	content.WriteString("Welcome to fiplan!\n\n")

	content.WriteString(label.Render("Current net worth: "))
	content.WriteString(value.Render(tuistyles.FormatCurrency(m.plan.CurrentNetWorth)))
	content.WriteString("\n")

	content.WriteString(label.Render("Horizon:           "))
	content.WriteString(value.Render(fmt.Sprintf("%d years", m.plan.HorizonYears)))
	content.WriteString("\n")

	content.WriteString(label.Render("Scenarios:         "))
	content.WriteString(value.Render(fmt.Sprintf("%d configured", len(m.plan.Scenarios))))
	content.WriteString("\n\n")

	hintStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true)
	content.WriteString(hintStyle.Render("Tip: Press 's' to browse scenarios and get started"))

	return tuistyles.BorderStyle.Render(content.String())
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
fiplan - FI Planning

KEYBOARD SHORTCUTS:
  h        Navigate to Home
  s        Navigate to Scenarios
  r        Navigate to Results
  m        Navigate to Milestones
  ?        Show this help
  ESC      Go back
  q/Ctrl+C Quit

NAVIGATION:
  Use arrow keys or j/k to navigate lists
  Enter to project the selected scenario
  g/G to jump to top/bottom
`

	return tuistyles.BorderStyle.Render(helpText)
}

// Helper function
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
