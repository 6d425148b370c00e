// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"

	"paisatrack/budget-csv/internal/common"
	"paisatrack/budget-csv/internal/config"
	"paisatrack/budget-csv/internal/csvparser"
	"paisatrack/budget-csv/internal/logging"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands. It is replaced with
	// the configured logger in PersistentPreRun.
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags holds common flag values accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "budget-csv",
		Short: "Parse bank statements, categorize spending and track a salary-anchored budget.",
		Long: `budget-csv turns raw bank statements (CSV or PDF) into categorized
expense records and budget reports.

The pipeline: parse a statement into a review CSV, let the user correct
categories and directions, then reconcile the confirmed rows into expense
records stamped with their budget cycle. Budget months are anchored on the
salary credit day, not the calendar month.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Error("Failed to load configuration")
				return
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			csvparser.SetHeaderScanRows(cfg.Import.MaxHeaderScanRows)
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// Config returns the loaded configuration, falling back to defaults when
// the root command's PersistentPreRun has not executed (e.g. in tests).
func Config() *config.Config {
	if Cfg != nil {
		return Cfg
	}
	cfg, err := config.InitializeConfig()
	if err != nil {
		Log.WithError(err).Error("Failed to load configuration")
		cfg = &config.Config{}
		cfg.Import.MaxFileSizeBytes = 5 * 1024 * 1024
	}
	Cfg = cfg
	return cfg
}
