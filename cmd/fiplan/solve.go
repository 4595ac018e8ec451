package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fiplan/fiplan/internal/config"
	"github.com/fiplan/fiplan/internal/output"
	"github.com/fiplan/fiplan/internal/solver"
)

func initSolveCommand() {
	solveCmd := &cobra.Command{
		Use:   "solve [plan-file]",
		Short: "Solve for the contribution, budget, or SWR that hits an FI deadline",
		Long: `Find the scenario parameter needed to reach financial independence
within a target number of years.

Examples:
  fiplan solve plan.yaml --years 15 --for contribution
  fiplan solve plan.yaml --years 20 --for budget --scenario baseline
  fiplan solve plan.yaml --years 20 --for swr
`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			parser := config.NewInputParser()
			plan, err := parser.LoadFromFile(args[0])
			if err != nil {
				log.Fatal(err)
			}

			scenarioName, _ := cmd.Flags().GetString("scenario")
			targetStr, _ := cmd.Flags().GetString("for")
			targetYears, _ := cmd.Flags().GetInt("years")

			scenario := plan.SelectedScenarios()[0]
			if scenarioName != "" {
				scenario = plan.FindScenario(scenarioName)
				if scenario == nil {
					log.Fatalf("scenario %q not found in %s", scenarioName, args[0])
				}
			}

			s := solver.NewDefaultSolver(newEngine(cmd))
			result, err := s.Solve(context.Background(), solver.SolveRequest{
				Scenario:        scenario,
				CurrentNetWorth: plan.CurrentNetWorth,
				Profile:         plan.Profile,
				HorizonYears:    plan.HorizonYears,
				Target:          solver.SolveTarget(targetStr),
				TargetYears:     targetYears,
			})
			if err != nil {
				log.Fatalf("Solve failed: %v", err)
			}

			fmt.Printf("SOLVE: %s, FI within %d years\n", scenario.Name, targetYears)
			switch solver.SolveTarget(targetStr) {
			case solver.SolveContribution:
				fmt.Printf("Required yearly contribution: %s\n", output.FormatCurrency(result.SolvedValue))
			case solver.SolveBudget:
				fmt.Printf("Maximum monthly budget:       %s\n", output.FormatCurrency(result.SolvedValue))
			case solver.SolveSWR:
				fmt.Printf("Required withdrawal rate:     %s%%\n", result.SolvedValue.StringFixed(2))
			}
			fmt.Printf("Projected years to FI:        %d\n", result.YearsToFI)
			if fiRow := result.Result.Projection.FiRow(); fiRow != nil {
				fmt.Printf("Net worth at FI:              %s\n", output.FormatCurrency(fiRow.NetWorth))
			}
			fmt.Printf("(%s)\n", result.ConvergenceInfo)
		},
	}

	solveCmd.Flags().StringP("scenario", "s", "", "Scenario to solve against (default: first selected)")
	solveCmd.Flags().String("for", "contribution", "Parameter to solve for (contribution, budget, swr)")
	solveCmd.Flags().Int("years", 0, "Years within which FI must be reached (required)")
	solveCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	_ = solveCmd.MarkFlagRequired("years")

	rootCmd.AddCommand(solveCmd)
}
