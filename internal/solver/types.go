// Package solver answers "what would it take" questions: the smallest yearly
// contribution, the largest monthly budget, or the required withdrawal rate
// that reaches financial independence within a target number of years. Each
// question is a bisection over one scenario parameter, re-projecting at every
// probe.
package solver

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/domain"
)

// SolveTarget selects the scenario parameter to solve for.
type SolveTarget string

const (
	SolveContribution SolveTarget = "contribution" // smallest yearly contribution
	SolveBudget       SolveTarget = "budget"       // largest monthly budget
	SolveSWR          SolveTarget = "swr"          // smallest withdrawal rate
)

// SolveRequest describes one solver run.
type SolveRequest struct {
	Scenario        *domain.Scenario
	CurrentNetWorth decimal.Decimal
	Profile         domain.Profile
	HorizonYears    int

	Target SolveTarget

	// TargetYears is the number of years within which FI must be reached.
	TargetYears int

	MaxIterations int             // 0 picks the default
	Tolerance     decimal.Decimal // zero picks the default
}

// Validate checks the request is solvable.
func (req *SolveRequest) Validate() error {
	if req.Scenario == nil {
		return &SolverError{Operation: "validate", Message: "scenario is required"}
	}
	if req.TargetYears <= 0 {
		return &SolverError{Operation: "validate",
			Message: fmt.Sprintf("target years must be positive, got %d", req.TargetYears)}
	}
	if req.HorizonYears > 0 && req.TargetYears > req.HorizonYears {
		return &SolverError{Operation: "validate",
			Message: fmt.Sprintf("target years %d exceeds horizon %d", req.TargetYears, req.HorizonYears)}
	}
	return nil
}

// SolveResult is the outcome of a solver run.
type SolveResult struct {
	Success         bool
	Iterations      int
	ConvergenceInfo string

	// SolvedValue is the parameter value found: a yearly contribution, a
	// monthly budget, or an SWR percentage depending on the target.
	SolvedValue decimal.Decimal

	// YearsToFI is the projected years to FI at the solved value.
	YearsToFI int

	// Result is the full scenario result at the solved value.
	Result *calculation.ScenarioResult
}

// Options configures the bisection.
type Options struct {
	MaxIterations int
	Tolerance     decimal.Decimal
}

// DefaultOptions returns the default solver configuration: enough iterations
// to pin a dollar amount to the default tolerance over any plausible range.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 60,
		Tolerance:     decimal.NewFromInt(50),
	}
}

// SolverError describes a failed solver run.
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
