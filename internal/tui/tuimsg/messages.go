// Package tuimsg holds messages shared between the tui package and its
// scenes, keeping the dependency one-directional.
package tuimsg

// ScenarioSelectedMsg signals a scenario has been selected for projection.
type ScenarioSelectedMsg struct {
	ScenarioName string
}
