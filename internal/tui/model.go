package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/config"
	"github.com/fiplan/fiplan/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Plan data
	planPath string
	plan     *config.Plan

	// Calculation engine
	calcEngine *calculation.Engine

	// Current selections
	selectedScenario string
	selectedResult   *calculation.ScenarioResult

	// Scene models
	scenariosModel  *scenes.ScenariosModel
	resultsModel    *scenes.ResultsModel
	milestonesModel *scenes.MilestonesModel

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(planPath string) Model {
	return Model{
		currentScene:    SceneHome,
		planPath:        planPath,
		calcEngine:      calculation.NewEngine(),
		scenariosModel:  scenes.NewScenariosModel(),
		resultsModel:    scenes.NewResultsModel(),
		milestonesModel: scenes.NewMilestonesModel(),
		width:           80,
		height:          24,
		loading:         true,
		loadingMessage:  "Loading plan...",
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadPlanCmd(m.planPath)
}

// loadPlanCmd returns a command that loads the plan file
func loadPlanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return PlanLoadedMsg{Plan: plan}
	}
}

// projectScenarioCmd returns a command that projects a scenario
func (m Model) projectScenarioCmd(name string) tea.Cmd {
	plan := m.plan
	engine := m.calcEngine
	return func() tea.Msg {
		scenario := plan.FindScenario(name)
		if scenario == nil {
			return CalculationCompleteMsg{ScenarioName: name, Err: errScenarioNotFound(name)}
		}

		result, err := engine.RunScenario(scenario, plan.CurrentNetWorth, time.Now().UTC(), plan.Profile, plan.HorizonYears)
		return CalculationCompleteMsg{
			ScenarioName: name,
			Result:       result,
			Err:          err,
		}
	}
}

type errScenarioNotFound string

func (e errScenarioNotFound) Error() string {
	return "scenario not found: " + string(e)
}
