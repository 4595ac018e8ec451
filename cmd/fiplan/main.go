package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/compare"
	"github.com/fiplan/fiplan/internal/config"
	"github.com/fiplan/fiplan/internal/domain"
	"github.com/fiplan/fiplan/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fiplan",
	Short: "FI Planning CLI",
	Long:  "Net worth projection and financial independence planning calculator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; environment variables win either way
		_ = godotenv.Load()
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "fiplan %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

// newEngine builds a calculation engine honoring the --debug flag.
func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	debugMode, _ := cmd.Flags().GetBool("debug")
	if debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [plan-file]",
	Short: "Project scenarios from a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		scenarioName, _ := cmd.Flags().GetString("scenario")
		outputFormat, _ := cmd.Flags().GetString("format")

		scenarios := plan.SelectedScenarios()
		if scenarioName != "" {
			s := plan.FindScenario(scenarioName)
			if s == nil {
				log.Fatalf("scenario %q not found in %s", scenarioName, args[0])
			}
			scenarios = []*domain.Scenario{s}
		}

		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unknown output format %q (valid: %s)",
				outputFormat, strings.Join(output.AvailableFormatterNames(), ", "))
		}

		engine := newEngine(cmd)
		for _, s := range scenarios {
			result, err := engine.RunScenario(s, plan.CurrentNetWorth, time.Now().UTC(), plan.Profile, plan.HorizonYears)
			if err != nil {
				log.Fatal(err)
			}

			data, err := f.Format(result)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(string(data))
			fmt.Println()
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Plan file %s is valid (%d scenarios)\n", args[0], len(plan.Scenarios))
	},
}

var taxCmd = &cobra.Command{
	Use:   "tax",
	Short: "Compute a tax breakdown for a gross income",
	Long: `Compute federal, state, and FICA taxes for a gross annual income.

Examples:
  fiplan tax --income 100000 --status single --state CA
  fiplan tax --income 180000 --status married_jointly --pretax 23000
`,
	Run: func(cmd *cobra.Command, args []string) {
		incomeStr, _ := cmd.Flags().GetString("income")
		statusStr, _ := cmd.Flags().GetString("status")
		state, _ := cmd.Flags().GetString("state")
		pretaxStr, _ := cmd.Flags().GetString("pretax")

		income, err := decimal.NewFromString(incomeStr)
		if err != nil {
			log.Fatalf("invalid --income: %v", err)
		}

		status := domain.FilingStatus(statusStr)
		if !status.Valid() {
			log.Fatalf("invalid --status %q (valid: single, married_jointly, married_separately, head_of_household)", statusStr)
		}

		var pretax domain.PreTaxContributions
		if pretaxStr != "" {
			amount, err := decimal.NewFromString(pretaxStr)
			if err != nil {
				log.Fatalf("invalid --pretax: %v", err)
			}
			pretax.Traditional401k = amount
		}

		tax := calculation.ComputeTax(income, status, state, pretax)
		fmt.Print(string(output.FormatTax(tax)))
	},
}

var milestonesCmd = &cobra.Command{
	Use:   "milestones [plan-file]",
	Short: "Evaluate the milestone catalog for a scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		scenarioName, _ := cmd.Flags().GetString("scenario")
		scenario := plan.SelectedScenarios()[0]
		if scenarioName != "" {
			scenario = plan.FindScenario(scenarioName)
			if scenario == nil {
				log.Fatalf("scenario %q not found in %s", scenarioName, args[0])
			}
		}

		engine := newEngine(cmd)
		result, err := engine.RunScenario(scenario, plan.CurrentNetWorth, time.Now().UTC(), plan.Profile, plan.HorizonYears)
		if err != nil {
			log.Fatal(err)
		}

		set := result.Milestones
		fmt.Printf("MILESTONES: %s\n", scenario.Name)
		fmt.Println(strings.Repeat("=", 60))
		for i := range set.Milestones {
			m := &set.Milestones[i]
			mark := "[ ]"
			when := ""
			if m.IsAchieved {
				mark = "[x]"
				if m.Year != nil {
					when = fmt.Sprintf("  %d", *m.Year)
					if m.Age != nil {
						when += fmt.Sprintf(" (age %d)", *m.Age)
					}
				}
			}
			target := ""
			if m.TargetValue.IsPositive() {
				target = "  @ $" + m.TargetValue.StringFixed(0)
			}
			fmt.Printf("%s %-24s%s%s\n", mark, m.ShortName, target, when)
		}

		fmt.Println()
		fmt.Printf("%d of %d achieved\n", len(set.Achieved()), len(set.Milestones))
		if set.NextMilestone != nil {
			fmt.Printf("Next: %s ($%s to go)\n", set.NextMilestone.ShortName, set.AmountToNext.StringFixed(0))
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [plan-file]",
	Short: "Compare scenarios against a base scenario",
	Long: `Compare a base scenario against alternatives from the same plan.

Examples:
  fiplan compare plan.yaml --base baseline
  fiplan compare plan.yaml --base baseline --with aggressive,frugal --format csv
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		baseScenarioName, _ := cmd.Flags().GetString("base")
		withStr, _ := cmd.Flags().GetString("with")
		outputFormat, _ := cmd.Flags().GetString("format")

		if baseScenarioName == "" {
			log.Fatal("--base flag is required to specify the base scenario name")
		}

		var alternatives []string
		if withStr != "" {
			for _, name := range strings.Split(withStr, ",") {
				if trimmed := strings.TrimSpace(name); trimmed != "" {
					alternatives = append(alternatives, trimmed)
				}
			}
		}

		compareEngine := compare.NewCompareEngine(newEngine(cmd))

		comparisonSet, err := compareEngine.Compare(context.Background(), plan, compare.CompareOptions{
			BaseScenarioName: baseScenarioName,
			AlternativeNames: alternatives,
		})
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}

		comparisonSet.PlanPath = args[0]

		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(out)

		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Print(out)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(comparisonSet))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, console-verbose, csv, json)")
	calculateCmd.Flags().StringP("scenario", "s", "", "Project only the named scenario")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	taxCmd.Flags().String("income", "0", "Gross annual income")
	taxCmd.Flags().String("status", "single", "Filing status")
	taxCmd.Flags().String("state", "", "Two-letter state code")
	taxCmd.Flags().String("pretax", "", "Pre-tax retirement contributions")

	milestonesCmd.Flags().StringP("scenario", "s", "", "Evaluate only the named scenario")
	milestonesCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	compareCmd.Flags().String("base", "", "Base scenario name to compare against (required)")
	compareCmd.Flags().String("with", "", "Comma-separated alternative scenario names (default: all others)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(taxCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd())

	initStoreCommands()
	initServeCommand()
	initSolveCommand()
	initWhatIfCommand()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
