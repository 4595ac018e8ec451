package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fiplan/fiplan/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scenariosModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		m.milestonesModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case PlanLoadedMsg:
		m.plan = msg.Plan
		m.loading = false
		if msg.Plan != nil {
			m.scenariosModel.SetScenarios(msg.Plan.Scenarios)
			m.scenariosModel.SetSize(m.width, m.height)
		}
		return m, nil

	case tuimsg.ScenarioSelectedMsg:
		m.selectedScenario = msg.ScenarioName
		m.loading = true
		m.loadingMessage = "Projecting " + msg.ScenarioName + "..."
		return m, m.projectScenarioCmd(msg.ScenarioName)

	case CalculationStartedMsg:
		m.loading = true
		m.loadingMessage = "Projecting " + msg.ScenarioName + "..."
		return m, nil

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.selectedResult = msg.Result
		m.resultsModel.SetResult(msg.Result)
		m.milestonesModel.SetMilestones(msg.Result.Milestones, msg.Result.Projection.StartValue)
		return m, func() tea.Msg {
			return NavigateMsg{Scene: SceneResults}
		}
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A visible error is dismissed by any key
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		return m, navigateTo(SceneHelp)

	case "esc":
		if m.currentScene != SceneHome {
			target := SceneHome
			if m.previousScene != m.currentScene {
				target = m.previousScene
			}
			return m, navigateTo(target)
		}

	case "h":
		if m.currentScene != SceneHome {
			return m, navigateTo(SceneHome)
		}

	case "s":
		if m.currentScene != SceneScenarios {
			return m, navigateTo(SceneScenarios)
		}

	case "r":
		if m.currentScene != SceneResults {
			return m, navigateTo(SceneResults)
		}

	case "m":
		if m.currentScene != SceneMilestones {
			return m, navigateTo(SceneMilestones)
		}
	}

	return m.updateCurrentScene(msg)
}

func navigateTo(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneScenarios:
		updatedModel, cmd := m.scenariosModel.Update(msg)
		m.scenariosModel = updatedModel
		return m, cmd
	case SceneResults:
		updatedModel, cmd := m.resultsModel.Update(msg)
		m.resultsModel = updatedModel
		return m, cmd
	case SceneMilestones:
		updatedModel, cmd := m.milestonesModel.Update(msg)
		m.milestonesModel = updatedModel
		return m, cmd
	}

	return m, nil
}
