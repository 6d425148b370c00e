// Package store persists the user's budget settings and reconciled expenses
// as YAML files on disk. Amounts are stored as decimal strings and dates as
// ISO dates so the files stay hand-editable and round-trip exactly.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
	"paisatrack/budget-csv/internal/validation"
)

const (
	defaultSettingsFile = "settings.yaml"
	defaultExpensesFile = "expenses.yaml"
)

// SettingsStore manages loading and saving of budget configuration and
// expense data.
type SettingsStore struct {
	SettingsFile string
	ExpensesFile string
	logger       logging.Logger
}

// NewSettingsStore creates a store. Empty file names fall back to the
// defaults resolved against the standard config locations.
func NewSettingsStore(settingsFile, expensesFile string, logger logging.Logger) *SettingsStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &SettingsStore{
		SettingsFile: settingsFile,
		ExpensesFile: expensesFile,
		logger:       logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations:
// the current directory, ./config/, and ~/.config/budget-csv/.
func (s *SettingsStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "budget-csv", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadSettings loads the budget settings. A missing file is not an error:
// it yields zero-value settings with the salary credit day defaulted, which
// lets first-run commands work before any configuration exists.
func (s *SettingsStore) LoadSettings() (models.Settings, error) {
	filename := s.SettingsFile
	if filename == "" {
		filename = defaultSettingsFile
	}

	defaults := models.Settings{SalaryCreditDay: models.MinSalaryCreditDay}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Settings file not found, using defaults",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return defaults, nil
		}
		return defaults, fmt.Errorf("error resolving settings file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from config resolution
	if err != nil {
		return defaults, fmt.Errorf("error reading settings file: %w", err)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return models.Settings{}, fmt.Errorf("error parsing settings file: %w", err)
	}

	settings, err := file.toModel()
	if err != nil {
		return models.Settings{}, fmt.Errorf("error parsing settings file: %w", err)
	}
	if settings.SalaryCreditDay == 0 {
		settings.SalaryCreditDay = models.MinSalaryCreditDay
	}

	s.logger.Debug("Loaded settings",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(settings.Categories)})

	return settings, nil
}

// SaveSettings validates and writes the budget settings. Invalid settings
// are never written.
func (s *SettingsStore) SaveSettings(settings models.Settings) error {
	if err := validation.ValidateSettings(settings); err != nil {
		return err
	}

	filename := s.SettingsFile
	if filename == "" {
		filename = defaultSettingsFile
	}

	return s.writeYAML(filename, settingsToFile(settings))
}

// LoadExpenses loads the persisted expense records. A missing file yields
// an empty slice.
func (s *SettingsStore) LoadExpenses() ([]models.Expense, error) {
	filename := s.ExpensesFile
	if filename == "" {
		filename = defaultExpensesFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Expense{}, nil
		}
		return nil, fmt.Errorf("error resolving expenses file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from config resolution
	if err != nil {
		return nil, fmt.Errorf("error reading expenses file: %w", err)
	}

	var rows []expenseRecord
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("error parsing expenses file: %w", err)
	}

	expenses := make([]models.Expense, 0, len(rows))
	for i, row := range rows {
		e, err := row.toModel()
		if err != nil {
			return nil, fmt.Errorf("error parsing expenses file: record %d: %w", i, err)
		}
		expenses = append(expenses, e)
	}

	s.logger.Debug("Loaded expenses",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})

	return expenses, nil
}

// AppendExpenses persists a reconciled batch by appending it to the stored
// expense records.
func (s *SettingsStore) AppendExpenses(batch []models.Expense) error {
	existing, err := s.LoadExpenses()
	if err != nil {
		return err
	}

	filename := s.ExpensesFile
	if filename == "" {
		filename = defaultExpensesFile
	}

	rows := make([]expenseRecord, 0, len(existing)+len(batch))
	for _, e := range append(existing, batch...) {
		rows = append(rows, expenseToRecord(e))
	}

	return s.writeYAML(filename, rows)
}

// writeYAML marshals v and writes it to the resolved location for filename,
// creating the file in the current directory when none exists yet.
func (s *SettingsStore) writeYAML(filename string, v interface{}) error {
	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("error resolving %s: %w", filename, err)
		}
		filePath = filename
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", filename, err)
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", filename, err)
		}
	}

	if err := os.WriteFile(filePath, data, 0o600); err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	s.logger.Info("Saved file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	return nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q", field, value)
	}
	return d, nil
}
