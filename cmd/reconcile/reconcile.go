// Package reconcile handles the command that turns a reviewed CSV into
// persisted expense records.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"paisatrack/budget-csv/cmd/root"
	"paisatrack/budget-csv/internal/common"
	"paisatrack/budget-csv/internal/models"
	"paisatrack/budget-csv/internal/reconcile"
	"paisatrack/budget-csv/internal/store"
)

var includeCredits bool

// Cmd represents the reconcile command.
var Cmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a reviewed CSV into expense records",
	Long: `Read a user-reviewed CSV, validate the whole batch and persist the
resulting expense records stamped with their budget cycle. The operation is
all-or-nothing: one invalid row rejects the entire batch.

Credits are excluded by default since budget tracking concerns spending;
pass --include-credits to keep them.`,
	RunE: reconcileFunc,
}

// Init initializes the reconcile command flags.
func Init() {
	Cmd.Flags().BoolVar(&includeCredits, "include-credits", false, "Also reconcile credit rows")
}

func reconcileFunc(cmd *cobra.Command, args []string) error {
	logger := root.Log
	cfg := root.Config()

	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("--input is required")
	}

	rows, err := common.ReadReviewCSV(input, logger)
	if err != nil {
		return err
	}

	batch := make([]reconcile.ConfirmedTransaction, 0, len(rows))
	for _, row := range rows {
		if !includeCredits && strings.EqualFold(row.Direction, string(models.DirectionCredit)) {
			continue
		}
		batch = append(batch, reconcile.ConfirmedTransaction{
			Date:        row.Date,
			Description: row.Description,
			Amount:      row.Amount,
			Category:    row.Category,
			Tags:        common.SplitTags(row.Tags),
		})
	}
	if len(batch) == 0 {
		return fmt.Errorf("no rows to reconcile in %s", input)
	}

	settingsStore := store.NewSettingsStore(cfg.Store.SettingsFile, cfg.Store.ExpensesFile, logger)
	settings, err := settingsStore.LoadSettings()
	if err != nil {
		return err
	}

	expenses, err := reconcile.ReconcileBatch(batch, settings.SalaryCreditDay, logger)
	if err != nil {
		return err
	}

	if err := settingsStore.AppendExpenses(expenses); err != nil {
		return err
	}

	if output := root.SharedFlags.Output; output != "" {
		if err := common.WriteExpensesCSV(expenses, output, logger); err != nil {
			return err
		}
		cmd.Printf("Expenses CSV written to %s\n", output)
	}

	cmd.Printf("Reconciled %d expenses\n", len(expenses))
	return nil
}
