package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fiplan/fiplan/internal/calculation"
	"github.com/fiplan/fiplan/internal/config"
	"github.com/fiplan/fiplan/internal/store"
)

// dbPath resolves the database location: --db flag, FIPLAN_DB env, then the
// default under the user home directory.
func dbPath(cmd *cobra.Command) string {
	if flag, _ := cmd.Flags().GetString("db"); flag != "" {
		return flag
	}
	if env := os.Getenv("FIPLAN_DB"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fiplan.db"
	}
	return filepath.Join(home, ".fiplan", "fiplan.db")
}

func openRepo(cmd *cobra.Command) *store.SQLiteRepository {
	repo, err := store.NewSQLiteRepository(dbPath(cmd))
	if err != nil {
		log.Fatal(err)
	}
	return repo
}

func initStoreCommands() {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage net worth entries",
	}

	entryAddCmd := &cobra.Command{
		Use:   "add [amount]",
		Short: "Record a net worth snapshot",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				log.Fatalf("invalid amount: %v", err)
			}

			recordedAt := time.Now().UTC()
			if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
				recordedAt, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					log.Fatalf("invalid --date, want YYYY-MM-DD: %v", err)
				}
			}

			repo := openRepo(cmd)
			defer repo.Close()

			entry, err := repo.AddEntry(context.Background(), amount, recordedAt)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Recorded entry %d: $%s at %s\n",
				entry.ID, entry.Amount.StringFixed(2), entry.Timestamp.Format("2006-01-02"))
		},
	}
	entryAddCmd.Flags().String("date", "", "Entry date (YYYY-MM-DD, default today)")

	entryListCmd := &cobra.Command{
		Use:   "list",
		Short: "List net worth entries",
		Run: func(cmd *cobra.Command, args []string) {
			repo := openRepo(cmd)
			defer repo.Close()

			entries, err := repo.ListEntries(context.Background())
			if err != nil {
				log.Fatal(err)
			}
			if len(entries) == 0 {
				fmt.Println("No entries recorded yet. Use 'fiplan entry add <amount>'.")
				return
			}

			fmt.Printf("%-6s %-12s %s\n", "ID", "Date", "Amount")
			for _, e := range entries {
				fmt.Printf("%-6d %-12s $%s\n", e.ID, e.Timestamp.Format("2006-01-02"), e.Amount.StringFixed(2))
			}
		},
	}

	entryRmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a net worth entry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				log.Fatalf("invalid id: %v", err)
			}

			repo := openRepo(cmd)
			defer repo.Close()

			if err := repo.RemoveEntry(context.Background(), id); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Removed entry %d\n", id)
		},
	}

	entryCmd.AddCommand(entryAddCmd, entryListCmd, entryRmCmd)

	scenarioCmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage stored scenarios",
	}

	scenarioImportCmd := &cobra.Command{
		Use:   "import [plan-file]",
		Short: "Import scenarios from a plan file into the database",
		Long: `Import scenarios from a plan file. For scenarios with an income
profile, the yearly contribution and effective tax rate are derived from the
income before saving.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			parser := config.NewInputParser()
			plan, err := parser.LoadFromFile(args[0])
			if err != nil {
				log.Fatal(err)
			}

			repo := openRepo(cmd)
			defer repo.Close()
			ctx := context.Background()

			netWorth := plan.CurrentNetWorth
			if latest, err := repo.LatestEntry(ctx); err == nil {
				netWorth = latest.Amount
			}

			engine := calculation.NewEngine()
			for i := range plan.Scenarios {
				s := &plan.Scenarios[i]
				if s.ID == "" {
					s.ID = s.Name
				}
				engine.RecomputeContribution(s, netWorth)
				if err := repo.SaveScenario(ctx, s); err != nil {
					log.Fatal(err)
				}
				fmt.Printf("Imported scenario %q\n", s.Name)
			}

			if plan.Profile.HasBirthDate() {
				if err := repo.SaveProfile(ctx, plan.Profile); err != nil {
					log.Fatal(err)
				}
			}
		},
	}

	scenarioListCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			repo := openRepo(cmd)
			defer repo.Close()

			scenarios, err := repo.Scenarios(context.Background())
			if err != nil {
				log.Fatal(err)
			}
			if len(scenarios) == 0 {
				fmt.Println("No scenarios stored. Use 'fiplan scenario import <plan-file>'.")
				return
			}

			fmt.Printf("%-20s %8s %8s %10s %14s\n", "Name", "Growth", "SWR", "Budget/mo", "Contrib/yr")
			for _, s := range scenarios {
				fmt.Printf("%-20s %7s%% %7s%% %10s %14s\n",
					s.Name,
					s.CurrentRate.StringFixed(1),
					s.SWR.StringFixed(1),
					"$"+s.BaseMonthlyBudget.StringFixed(0),
					"$"+s.YearlyContribution.StringFixed(0))
			}
		},
	}

	scenarioRmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a stored scenario",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			repo := openRepo(cmd)
			defer repo.Close()

			if err := repo.DeleteScenario(context.Background(), args[0]); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Deleted scenario %s\n", args[0])
		},
	}

	scenarioCmd.AddCommand(scenarioImportCmd, scenarioListCmd, scenarioRmCmd)

	for _, c := range []*cobra.Command{entryCmd, scenarioCmd} {
		c.PersistentFlags().String("db", "", "Database path (default $FIPLAN_DB or ~/.fiplan/fiplan.db)")
		rootCmd.AddCommand(c)
	}
}
