// Package pdf handles the PDF statement import command.
package pdf

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"paisatrack/budget-csv/cmd/root"
	"paisatrack/budget-csv/internal/categorizer"
	"paisatrack/budget-csv/internal/common"
	"paisatrack/budget-csv/internal/fileutils"
	"paisatrack/budget-csv/internal/pdfparser"
	"paisatrack/budget-csv/internal/store"
)

// Cmd represents the pdf command.
var Cmd = &cobra.Command{
	Use:   "pdf",
	Short: "Parse a PDF bank statement into a review CSV",
	Long: `Extract transactions from a PDF bank statement using text-mining
heuristics, auto-categorize them and write a review CSV.

Direction cannot be recovered from PDF statements: every extracted
transaction is marked as a debit and credits must be corrected during
review. Requires pdftotext (poppler-utils) to be installed.`,
	RunE: pdfFunc,
}

func pdfFunc(cmd *cobra.Command, args []string) error {
	logger := root.Log
	cfg := root.Config()

	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("--input is required")
	}
	output := root.SharedFlags.Output
	if output == "" {
		output = strings.TrimSuffix(input, ".pdf") + ".review.csv"
	}

	if err := fileutils.CheckStatementFile(input, cfg.Import.MaxFileSizeBytes); err != nil {
		return err
	}

	txns, stats, err := pdfparser.ParseFile(input, pdfparser.NewPdftotextExtractor(), logger)
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
	cmd.Printf("Extracted %d transactions (%d lines, %d skipped)\n", stats.Parsed, stats.Rows, stats.Skipped)
	cmd.Printf("All extracted transactions are marked as debits; correct credits during review.\n")
	cmd.Printf("Total amount: %s\n", summary.TotalDebitAmount.StringFixed(2))
	cmd.Printf("Review CSV written to %s\n", output)
	return nil
}
