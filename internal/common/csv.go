// Package common provides the CSV artifacts shared by the pipeline stages:
// the review CSV written after parsing and read back for reconciliation,
// and the final expenses CSV export.
package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"paisatrack/budget-csv/internal/dateutils"
	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
)

// Delimiter is the output CSV delimiter, configurable for locales where a
// comma collides with decimal notation.
var Delimiter rune = ','

// tagSeparator joins multiple tags inside a single CSV cell.
const tagSeparator = "|"

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ReviewRow is one line of the review CSV handed to the user after parsing.
// Everything is a string so the user can edit the file freely; validation
// happens at reconciliation.
type ReviewRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Direction   string `csv:"Direction"`
	Category    string `csv:"Category"`
	Tags        string `csv:"Tags"`
}

// ExpenseRow is one line of the final expenses CSV export.
type ExpenseRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Category    string `csv:"Category"`
	Amount      string `csv:"Amount"`
	Description string `csv:"Description"`
	Tags        string `csv:"Tags"`
	Month       int    `csv:"Month"`
	Year        int    `csv:"Year"`
}

// ReviewRowsFromTransactions converts parsed transactions into review rows
// with ISO dates.
func ReviewRowsFromTransactions(txns []models.CanonicalTransaction) []ReviewRow {
	rows := make([]ReviewRow, 0, len(txns))
	for _, tx := range txns {
		rows = append(rows, ReviewRow{
			Date:        dateutils.ToISODate(tx.Date),
			Description: tx.Description,
			Amount:      tx.Amount.String(),
			Direction:   string(tx.Direction),
			Category:    tx.Category,
			Tags:        JoinTags(tx.Tags),
		})
	}
	return rows
}

// ExpenseRowsFromExpenses converts reconciled expenses into export rows.
func ExpenseRowsFromExpenses(expenses []models.Expense) []ExpenseRow {
	rows := make([]ExpenseRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, ExpenseRow{
			ID:          e.ID,
			Date:        dateutils.ToISODate(e.Date),
			Category:    e.Category,
			Amount:      e.Amount.String(),
			Description: e.Description,
			Tags:        JoinTags(e.Tags),
			Month:       e.Month,
			Year:        e.Year,
		})
	}
	return rows
}

// JoinTags flattens a tag list into a single CSV cell.
func JoinTags(tags []string) string {
	return strings.Join(tags, tagSeparator)
}

// SplitTags undoes JoinTags, dropping empty entries.
func SplitTags(cell string) []string {
	parts := strings.Split(cell, tagSeparator)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// WriteCSVFile writes rows to a CSV file using gocsv, creating parent
// directories as needed.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}

	logger.Info("Writing CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool writes to user-provided paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	return nil
}

// ReadCSVFile reads a CSV file into a slice of row structs using gocsv.
func ReadCSVFile[TCSVRow any](csvFile string, logger logging.Logger) ([]TCSVRow, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Info("Reading CSV file",
		logging.Field{Key: logging.FieldInputFile, Value: csvFile})

	file, err := os.Open(csvFile) // #nosec G304 -- CLI tool operates on user-provided paths
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.Info("Read CSV data",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// WriteReviewCSV writes the review artifact for a parsed statement.
func WriteReviewCSV(txns []models.CanonicalTransaction, csvFile string, logger logging.Logger) error {
	return WriteCSVFile(ReviewRowsFromTransactions(txns), csvFile, logger)
}

// ReadReviewCSV reads a (possibly user-edited) review CSV back in.
func ReadReviewCSV(csvFile string, logger logging.Logger) ([]ReviewRow, error) {
	return ReadCSVFile[ReviewRow](csvFile, logger)
}

// WriteExpensesCSV writes the final expenses export.
func WriteExpensesCSV(expenses []models.Expense, csvFile string, logger logging.Logger) error {
	return WriteCSVFile(ExpenseRowsFromExpenses(expenses), csvFile, logger)
}
