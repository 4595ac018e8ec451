package output

import (
	json "github.com/goccy/go-json"

	"github.com/fiplan/fiplan/internal/calculation"
)

// JSONFormatter serializes the scenario result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *calculation.ScenarioResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
