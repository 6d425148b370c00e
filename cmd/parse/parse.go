// Package parse handles the CSV statement import command.
package parse

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"paisatrack/budget-csv/cmd/root"
	"paisatrack/budget-csv/internal/categorizer"
	"paisatrack/budget-csv/internal/common"
	"paisatrack/budget-csv/internal/csvparser"
	"paisatrack/budget-csv/internal/fileutils"
	"paisatrack/budget-csv/internal/store"
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a CSV bank statement into a review CSV",
	Long: `Parse a delimited-text bank statement, auto-categorize the
transactions and write a review CSV for the user to correct before
reconciliation.`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	logger := root.Log
	cfg := root.Config()

	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("--input is required")
	}
	output := root.SharedFlags.Output
	if output == "" {
		output = strings.TrimSuffix(input, ".csv") + ".review.csv"
	}

	if err := fileutils.CheckStatementFile(input, cfg.Import.MaxFileSizeBytes); err != nil {
		return err
	}

	txns, stats, err := csvparser.ParseFile(input, logger)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		return fmt.Errorf("no transactions found in %s", input)
	}

	settings, err := store.NewSettingsStore(cfg.Store.SettingsFile, cfg.Store.ExpensesFile, logger).LoadSettings()
	if err != nil {
		return err
	}
	categorizer.CategorizeAll(txns, settings.Categories, logger)

	if err := common.WriteReviewCSV(txns, output, logger); err != nil {
		return err
	}

	summary := common.Summarize(txns)
	cmd.Printf("Parsed %d transactions (%d rows, %d skipped)\n", stats.Parsed, stats.Rows, stats.Skipped)
	cmd.Printf("Debits:  %d totaling %s\n", summary.Debits, summary.TotalDebitAmount.StringFixed(2))
	cmd.Printf("Credits: %d totaling %s\n", summary.Credits, summary.TotalCreditAmount.StringFixed(2))
	cmd.Printf("Review CSV written to %s\n", output)
	return nil
}
