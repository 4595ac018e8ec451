package tui

import (
	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/config"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneScenarios
	SceneResults
	SceneMilestones
	SceneHelp
)

// Message types for the Bubble Tea update cycle

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// PlanLoadedMsg signals the plan file has been loaded
type PlanLoadedMsg struct {
	Plan *config.Plan
}

// CalculationStartedMsg signals a projection has begun
type CalculationStartedMsg struct {
	ScenarioName string
}

// CalculationCompleteMsg signals a projection has finished
type CalculationCompleteMsg struct {
	ScenarioName string
	Result       *calculation.ScenarioResult
	Err          error
}

// GetSceneName returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneScenarios:
		return "Scenarios"
	case SceneResults:
		return "Results"
	case SceneMilestones:
		return "Milestones"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
