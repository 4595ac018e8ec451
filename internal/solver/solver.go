package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/transform"
)

// swrTolerance is the convergence tolerance for rate targets, in percentage
// points. Dollar targets use the request tolerance instead.
var swrTolerance = decimal.NewFromFloat(0.01)

// maxBracketDoublings bounds the upper-bracket search; 2^40 times the seed
// amount is beyond any meaningful plan.
const maxBracketDoublings = 40

// Solver finds scenario parameters that reach FI within a target year count.
type Solver struct {
	Engine  *calculation.Engine
	Options Options
}

// NewSolver creates a solver with the given options.
func NewSolver(engine *calculation.Engine, options Options) *Solver {
	return &Solver{Engine: engine, Options: options}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultOptions())
}

// Solve routes the request to the solver for its target parameter.
func (s *Solver) Solve(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	switch req.Target {
	case SolveContribution:
		return s.solveContribution(ctx, req)
	case SolveBudget:
		return s.solveBudget(ctx, req)
	case SolveSWR:
		return s.solveSWR(ctx, req)
	default:
		return nil, &SolverError{
			Operation: "solve",
			Message:   fmt.Sprintf("unsupported solve target: %s", req.Target),
		}
	}
}

// probe projects the scenario with one transform applied and reports whether
// FI is reached within the target years.
func (s *Solver) probe(req SolveRequest, t transform.ScenarioTransform) (bool, int, *calculation.ScenarioResult, error) {
	modified, err := transform.ApplyTransforms(req.Scenario, []transform.ScenarioTransform{t})
	if err != nil {
		return false, 0, nil, &SolverError{Operation: "probe", Message: "failed to apply transform", Cause: err}
	}

	result, err := s.Engine.RunScenario(modified, req.CurrentNetWorth, time.Time{}, req.Profile, req.HorizonYears)
	if err != nil {
		return false, 0, nil, &SolverError{Operation: "probe", Message: "failed to project scenario", Cause: err}
	}

	fiRow := result.Projection.FiRow()
	if fiRow == nil {
		return false, 0, result, nil
	}
	years := int(fiRow.YearsFromNow.IntPart())
	return years <= req.TargetYears, years, result, nil
}

// solveContribution finds the smallest yearly contribution that reaches FI
// within the target years. Feasibility is monotone increasing in the
// contribution, so a doubling bracket search followed by bisection converges.
func (s *Solver) solveContribution(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	iterations := 0

	feasible, years, result, err := s.probe(req, &transform.SetContribution{Amount: decimal.Zero})
	if err != nil {
		return nil, err
	}
	iterations++
	if feasible {
		return &SolveResult{
			Success:         true,
			Iterations:      iterations,
			ConvergenceInfo: "already on track with no further contributions",
			SolvedValue:     decimal.Zero,
			YearsToFI:       years,
			Result:          result,
		}, nil
	}

	// Bracket upward from the current contribution (or a modest seed).
	lo := decimal.Zero
	hi := req.Scenario.YearlyContribution
	if hi.LessThanOrEqual(decimal.Zero) {
		hi = decimal.NewFromInt(10000)
	}

	var hiYears int
	var hiResult *calculation.ScenarioResult
	bracketed := false
	for d := 0; d < maxBracketDoublings; d++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++
		feasible, years, result, err = s.probe(req, &transform.SetContribution{Amount: hi})
		if err != nil {
			return nil, err
		}
		if feasible {
			hiYears, hiResult = years, result
			bracketed = true
			break
		}
		lo = hi
		hi = hi.Mul(decimal.NewFromInt(2))
	}
	if !bracketed {
		return nil, &SolverError{
			Operation: "solve_contribution",
			Message:   fmt.Sprintf("FI within %d years is not reachable by contributions alone", req.TargetYears),
		}
	}

	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		feasible, years, result, err = s.probe(req, &transform.SetContribution{Amount: mid})
		if err != nil {
			return nil, err
		}
		if feasible {
			hi, hiYears, hiResult = mid, years, result
		} else {
			lo = mid
		}
	}

	return &SolveResult{
		Success:         true,
		Iterations:      iterations,
		ConvergenceInfo: fmt.Sprintf("converged within $%s after %d iterations", req.Tolerance.StringFixed(0), iterations),
		SolvedValue:     hi,
		YearsToFI:       hiYears,
		Result:          hiResult,
	}, nil
}

// solveBudget finds the largest monthly budget that still reaches FI within
// the target years. Feasibility is monotone decreasing in the budget.
func (s *Solver) solveBudget(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	iterations := 0

	// Even a zero budget can miss the target when the withdrawal rate trails
	// the percentage-of-net-worth spending.
	feasible, years, result, err := s.probe(req, &transform.SetMonthlyBudget{Amount: decimal.Zero})
	if err != nil {
		return nil, err
	}
	iterations++
	if !feasible {
		return nil, &SolverError{
			Operation: "solve_budget",
			Message:   fmt.Sprintf("FI within %d years is not reachable at any budget", req.TargetYears),
		}
	}

	lo := decimal.Zero
	loYears, loResult := years, result

	// Bracket upward until the budget breaks the target.
	hi := req.Scenario.BaseMonthlyBudget
	if hi.LessThanOrEqual(decimal.Zero) {
		hi = decimal.NewFromInt(2000)
	}
	for d := 0; d < maxBracketDoublings; d++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++
		feasible, years, result, err = s.probe(req, &transform.SetMonthlyBudget{Amount: hi})
		if err != nil {
			return nil, err
		}
		if !feasible {
			break
		}
		lo, loYears, loResult = hi, years, result
		hi = hi.Mul(decimal.NewFromInt(2))
	}

	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		feasible, years, result, err = s.probe(req, &transform.SetMonthlyBudget{Amount: mid})
		if err != nil {
			return nil, err
		}
		if feasible {
			lo, loYears, loResult = mid, years, result
		} else {
			hi = mid
		}
	}

	return &SolveResult{
		Success:         true,
		Iterations:      iterations,
		ConvergenceInfo: fmt.Sprintf("converged within $%s after %d iterations", req.Tolerance.StringFixed(0), iterations),
		SolvedValue:     lo,
		YearsToFI:       loYears,
		Result:          loResult,
	}, nil
}

// solveSWR finds the smallest withdrawal rate that reaches FI within the
// target years. A higher rate shrinks the FI target, so feasibility is
// monotone increasing in the rate.
func (s *Solver) solveSWR(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	iterations := 0

	lo := decimal.NewFromFloat(0.1)
	hi := decimal.NewFromInt(20)

	feasible, years, result, err := s.probe(req, &transform.SetSWR{Percent: hi})
	if err != nil {
		return nil, err
	}
	iterations++
	if !feasible {
		return nil, &SolverError{
			Operation: "solve_swr",
			Message:   fmt.Sprintf("FI within %d years is not reachable at any withdrawal rate", req.TargetYears),
		}
	}
	hiYears, hiResult := years, result

	iterations++
	feasible, years, result, err = s.probe(req, &transform.SetSWR{Percent: lo})
	if err != nil {
		return nil, err
	}
	if feasible {
		return &SolveResult{
			Success:         true,
			Iterations:      iterations,
			ConvergenceInfo: "on track even at a 0.1% withdrawal rate",
			SolvedValue:     lo,
			YearsToFI:       years,
			Result:          result,
		}, nil
	}

	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(swrTolerance) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		feasible, years, result, err = s.probe(req, &transform.SetSWR{Percent: mid})
		if err != nil {
			return nil, err
		}
		if feasible {
			hi, hiYears, hiResult = mid, years, result
		} else {
			lo = mid
		}
	}

	return &SolveResult{
		Success:         true,
		Iterations:      iterations,
		ConvergenceInfo: fmt.Sprintf("converged within %s points after %d iterations", swrTolerance, iterations),
		SolvedValue:     hi,
		YearsToFI:       hiYears,
		Result:          hiResult,
	}, nil
}
