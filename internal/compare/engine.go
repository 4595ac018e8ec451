package compare

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/config"
	"github.com/fiplan/fiplan/internal/domain"
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string    // Name of the base scenario to compare against
	AlternativeNames []string  // Scenarios to compare; empty means all other scenarios in the plan
	StartDate        time.Time // Projection start; zero means now
}

// Compare projects the base and alternative scenarios concurrently and
// computes deltas against the base. Alternatives keep their input order
// regardless of which projection finishes first.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	plan *config.Plan,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseScenario := plan.FindScenario(options.BaseScenarioName)
	if baseScenario == nil {
		return nil, fmt.Errorf("base scenario %s not found in plan", options.BaseScenarioName)
	}

	altNames := options.AlternativeNames
	if len(altNames) == 0 {
		for i := range plan.Scenarios {
			if plan.Scenarios[i].Name != options.BaseScenarioName {
				altNames = append(altNames, plan.Scenarios[i].Name)
			}
		}
	}

	altScenarios := make([]*domain.Scenario, len(altNames))
	for i, name := range altNames {
		s := plan.FindScenario(name)
		if s == nil {
			return nil, fmt.Errorf("alternative scenario %s not found in plan", name)
		}
		altScenarios[i] = s
	}

	start := options.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	horizon := plan.HorizonYears

	var baseRun *calculation.ScenarioResult
	altRuns := make([]*calculation.ScenarioResult, len(altScenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := ce.CalcEngine.RunScenario(baseScenario, plan.CurrentNetWorth, start, plan.Profile, horizon)
		if err != nil {
			return fmt.Errorf("failed to calculate base scenario: %w", err)
		}
		baseRun = result
		return nil
	})
	for i := range altScenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := ce.CalcEngine.RunScenario(altScenarios[i], plan.CurrentNetWorth, start, plan.Profile, horizon)
			if err != nil {
				return fmt.Errorf("failed to calculate scenario %s: %w", altScenarios[i].Name, err)
			}
			altRuns[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(baseRun)

	alternatives := make([]ComparisonResult, 0, len(altRuns))
	for _, run := range altRuns {
		altResult := ce.MetricsCalculator.CalculateMetrics(run)
		altResult = ce.MetricsCalculator.CalculateComparison(altResult, baseResult)
		alternatives = append(alternatives, altResult)
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   options.BaseScenarioName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
