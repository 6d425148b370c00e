// Package cycle handles the budget cycle lookup command.
package cycle

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"paisatrack/budget-csv/cmd/root"
	"paisatrack/budget-csv/internal/budgetcycle"
	"paisatrack/budget-csv/internal/dateutils"
	"paisatrack/budget-csv/internal/store"
	"paisatrack/budget-csv/internal/validation"
)

var (
	dateStr         string
	salaryCreditDay int
)

// Cmd represents the cycle command.
var Cmd = &cobra.Command{
	Use:   "cycle",
	Short: "Show which budget cycle a date belongs to",
	Long: `Resolve a date against the salary credit day. Dates before the
salary credit belong to the previous month's budget cycle.`,
	RunE: cycleFunc,
}

// Init initializes the cycle command flags.
func Init() {
	Cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Date to resolve (default: today)")
	Cmd.Flags().IntVar(&salaryCreditDay, "salary-credit-day", 0,
		"Salary credit day (default: from settings)")
}

func cycleFunc(cmd *cobra.Command, args []string) error {
	logger := root.Log
	cfg := root.Config()

	date := time.Now()
	if dateStr != "" {
		parsed, ok := dateutils.ParseInputDate(dateStr)
		if !ok {
			return fmt.Errorf("unparsable date %q", dateStr)
		}
		date = parsed
	}

	day := salaryCreditDay
	if day == 0 {
		settings, err := store.NewSettingsStore(cfg.Store.SettingsFile, cfg.Store.ExpensesFile, logger).LoadSettings()
		if err != nil {
			return err
		}
		day = settings.SalaryCreditDay
	}
	if err := validation.ValidateSalaryCreditDay(day); err != nil {
		return err
	}

	c := budgetcycle.Resolve(date, day)
	cmd.Printf("%s belongs to budget cycle %d-%02d (salary credit day %d)\n",
		dateutils.ToISODate(date), c.Year, c.Month, day)
	return nil
}
