// Package categorize handles the one-off description categorization command.
package categorize

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"paisatrack/budget-csv/cmd/root"
	"paisatrack/budget-csv/internal/categorizer"
	"paisatrack/budget-csv/internal/models"
	"paisatrack/budget-csv/internal/store"
)

var (
	description string
	useAI       bool
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Categorize a single transaction description using the keyword
table. With --suggest, descriptions the table cannot place are sent to the
configured AI model for a suggestion (requires GEMINI_API_KEY).`,
	RunE: categorizeFunc,
}

// Init initializes the categorize command flags.
func Init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().BoolVar(&useAI, "suggest", false, "Ask the AI model when the keyword table has no match")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	logger := root.Log
	cfg := root.Config()

	if description == "" {
		return fmt.Errorf("--description is required")
	}

	settings, err := store.NewSettingsStore(cfg.Store.SettingsFile, cfg.Store.ExpensesFile, logger).LoadSettings()
	if err != nil {
		return err
	}

	category := categorizer.Categorize(description, settings.Categories)
	if category != models.CategoryUncategorized || !useAI {
		cmd.Printf("Category: %s\n", category)
		return nil
	}

	if !cfg.AI.Enabled {
		return fmt.Errorf("AI suggestions are disabled; set BUDGET_AI_ENABLED=true and GEMINI_API_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
	defer cancel()

	suggester, err := categorizer.NewGeminiSuggester(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := suggester.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close AI client")
		}
	}()

	suggestion, err := suggester.Suggest(ctx, description, settings.Categories)
	if err != nil {
		return err
	}

	cmd.Printf("Category: %s (AI suggestion)\n", suggestion)
	return nil
}
