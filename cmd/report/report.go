// Package report handles the budget report command.
package report

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"paisatrack/budget-csv/cmd/root"
	"paisatrack/budget-csv/internal/budgetcycle"
	"paisatrack/budget-csv/internal/report"
	"paisatrack/budget-csv/internal/store"
)

var (
	month  int
	year   int
	asJSON bool
)

// Cmd represents the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Show the budget report for a cycle",
	Long: `Aggregate persisted expenses against the budget configuration for
one budget cycle. Without --month/--year the current cycle is reported,
resolved against the configured salary credit day.`,
	RunE: reportFunc,
}

// Init initializes the report command flags.
func Init() {
	Cmd.Flags().IntVarP(&month, "month", "m", 0, "Budget cycle month (1-12)")
	Cmd.Flags().IntVarP(&year, "year", "y", 0, "Budget cycle year")
	Cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	logger := root.Log
	cfg := root.Config()

	settingsStore := store.NewSettingsStore(cfg.Store.SettingsFile, cfg.Store.ExpensesFile, logger)
	settings, err := settingsStore.LoadSettings()
	if err != nil {
		return err
	}
	if !settings.Salary.IsPositive() {
		return fmt.Errorf("no budget settings configured; create settings.yaml first")
	}

	expenses, err := settingsStore.LoadExpenses()
	if err != nil {
		return err
	}

	var r report.BudgetReport
	switch {
	case month == 0 && year == 0:
		r = report.BuildCurrent(settings, expenses, time.Now(), logger)
	case month >= 1 && month <= 12 && year > 0:
		r = report.Build(settings, expenses, budgetcycle.Cycle{Month: month, Year: year}, logger)
	default:
		return fmt.Errorf("--month and --year must be given together (month 1-12)")
	}

	if asJSON {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printReport(cmd, r)
	return nil
}

func printReport(cmd *cobra.Command, r report.BudgetReport) {
	cmd.Printf("Budget cycle %d-%02d\n", r.Cycle.Year, r.Cycle.Month)
	cmd.Printf("Salary:         %s\n", r.Salary.StringFixed(2))
	cmd.Printf("Fixed total:    %s\n", r.FixedTotal.StringFixed(2))
	cmd.Printf("Distributable:  %s\n", r.Distributable.StringFixed(2))
	cmd.Println()

	cmd.Printf("%-20s %12s %12s %12s %6s\n", "Category", "Limit", "Spent", "Remaining", "Used")
	for _, c := range r.Categories {
		cmd.Printf("%-20s %12s %12s %12s %5d%%\n",
			c.Name, c.Limit.StringFixed(2), c.Spent.StringFixed(2),
			c.Remaining.StringFixed(2), c.PercentUsed)
	}

	cmd.Println()
	cmd.Printf("Total budgeted: %s\n", r.TotalBudgeted.StringFixed(2))
	cmd.Printf("Total spent:    %s\n", r.TotalSpent.StringFixed(2))
	cmd.Printf("Savings:        %s\n", r.CurrentSavings.StringFixed(2))
}
