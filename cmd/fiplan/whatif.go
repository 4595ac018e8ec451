package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fiplan/fiplan/internal/compare"
	"github.com/fiplan/fiplan/internal/config"
	"github.com/fiplan/fiplan/internal/transform"
)

func initWhatIfCommand() {
	whatifCmd := &cobra.Command{
		Use:   "whatif [plan-file]",
		Short: "Compare a scenario against template-derived variants",
		Long: `Derive variants of a scenario from built-in what-if templates and
compare them against the original.

Examples:
  fiplan whatif plan.yaml
  fiplan whatif plan.yaml --scenario baseline --template double_savings,tighten_belt_10
  fiplan whatif plan.yaml --list
`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			registry := transform.BuiltInTemplates()

			if list, _ := cmd.Flags().GetBool("list"); list {
				fmt.Println("Available templates:")
				for _, name := range registry.List() {
					tpl, _ := registry.Get(name)
					fmt.Printf("  %-18s %s\n", name, tpl.Description)
				}
				return
			}

			parser := config.NewInputParser()
			plan, err := parser.LoadFromFile(args[0])
			if err != nil {
				log.Fatal(err)
			}

			scenarioName, _ := cmd.Flags().GetString("scenario")
			templatesStr, _ := cmd.Flags().GetString("template")

			base := plan.SelectedScenarios()[0]
			if scenarioName != "" {
				base = plan.FindScenario(scenarioName)
				if base == nil {
					log.Fatalf("scenario %q not found in %s", scenarioName, args[0])
				}
			}

			templateNames := registry.List()
			if templatesStr != "" {
				templateNames = nil
				for _, name := range strings.Split(templatesStr, ",") {
					if trimmed := strings.TrimSpace(name); trimmed != "" {
						templateNames = append(templateNames, trimmed)
					}
				}
			}

			var alternatives []string
			for _, name := range templateNames {
				tpl, ok := registry.Get(name)
				if !ok {
					log.Fatalf("unknown template %q (run with --list to see templates)", name)
				}

				derived, err := transform.ApplyTransforms(base, tpl.Transforms)
				if err != nil {
					log.Fatalf("template %s: %v", name, err)
				}
				derived.ID = tpl.Name
				derived.Name = tpl.Name
				derived.Selected = false

				if plan.FindScenario(derived.Name) != nil {
					log.Fatalf("template name %q collides with a plan scenario", derived.Name)
				}
				plan.Scenarios = append(plan.Scenarios, *derived)
				alternatives = append(alternatives, derived.Name)
			}

			compareEngine := compare.NewCompareEngine(newEngine(cmd))
			comparisonSet, err := compareEngine.Compare(context.Background(), plan, compare.CompareOptions{
				BaseScenarioName: base.Name,
				AlternativeNames: alternatives,
			})
			if err != nil {
				log.Fatalf("Comparison failed: %v", err)
			}
			comparisonSet.PlanPath = args[0]

			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(comparisonSet))
		},
	}

	whatifCmd.Flags().StringP("scenario", "s", "", "Base scenario (default: first selected)")
	whatifCmd.Flags().String("template", "", "Comma-separated template names (default: all)")
	whatifCmd.Flags().Bool("list", false, "List available templates and exit")
	whatifCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(whatifCmd)
}
