// Package csvparser turns a delimited-text bank statement into canonical
// transactions. Statements are noisy: rows with unparsable dates or zero
// amounts are skipped silently and the user reviews the result before
// anything is persisted. Structural problems (undecodable input, no data
// rows, unresolved required columns) fail the whole parse.
package csvparser

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"paisatrack/budget-csv/internal/dateutils"
	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
	"paisatrack/budget-csv/internal/moneyutils"
	"paisatrack/budget-csv/internal/parsererror"
	"paisatrack/budget-csv/internal/textutils"
)

const parserName = "CSV"

// headerScanRows bounds the search for the header row. Bank exports often
// prepend account metadata above the actual column header.
var headerScanRows = 10

// SetHeaderScanRows sets how many leading rows are searched for the header.
func SetHeaderScanRows(n int) {
	if n > 0 {
		headerScanRows = n
	}
}

// Parse reads a delimited-text statement and returns the canonical
// transactions it contains.
func Parse(r io.Reader, logger logging.Logger) ([]models.CanonicalTransaction, models.ParseStats, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		logger.WithError(err).Error("Failed to decode statement CSV")
		return nil, models.ParseStats{}, &parsererror.ParseError{
			Parser: parserName,
			Reason: "failed to decode statement",
			Err:    err,
		}
	}

	rows = dropBlankRows(rows)
	if len(rows) < 2 {
		return nil, models.ParseStats{}, &parsererror.ParseError{
			Parser: parserName,
			Reason: "statement has no data rows",
		}
	}

	headerIdx := findHeaderRow(rows)
	cols := ResolveColumns(rows[headerIdx])

	if cols.Date == -1 {
		return nil, models.ParseStats{}, &parsererror.ParseError{
			Parser: parserName,
			Reason: "could not find Date column",
		}
	}
	if cols.Debit == -1 && cols.Credit == -1 {
		return nil, models.ParseStats{}, &parsererror.ParseError{
			Parser: parserName,
			Reason: "could not find Debit/Credit columns",
		}
	}

	var transactions []models.CanonicalTransaction
	stats := models.ParseStats{Rows: len(rows) - headerIdx - 1}

	for _, row := range rows[headerIdx+1:] {
		tx, ok := convertRow(row, cols)
		if !ok {
			stats.Skipped++
			continue
		}
		transactions = append(transactions, tx)
		stats.Parsed++
	}

	logger.Info("Parsed statement CSV",
		logging.Field{Key: logging.FieldParser, Value: parserName},
		logging.Field{Key: logging.FieldRows, Value: stats.Rows},
		logging.Field{Key: logging.FieldCount, Value: stats.Parsed},
		logging.Field{Key: logging.FieldSkipped, Value: stats.Skipped})

	return transactions, stats, nil
}

// ParseBytes parses a statement held in memory, e.g. an uploaded buffer.
func ParseBytes(data []byte, logger logging.Logger) ([]models.CanonicalTransaction, models.ParseStats, error) {
	return Parse(bytes.NewReader(data), logger)
}

// ParseFile parses a statement CSV on disk.
func ParseFile(filePath string, logger logging.Logger) ([]models.CanonicalTransaction, models.ParseStats, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Info("Parsing statement CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool operates on user-provided paths
	if err != nil {
		return nil, models.ParseStats{}, &parsererror.ParseError{
			Parser: parserName,
			Reason: "failed to open statement file",
			Err:    err,
		}
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close statement file")
		}
	}()

	return Parse(file, logger)
}

// convertRow turns one data row into a canonical transaction. It returns
// ok=false when the row must be skipped: invalid date, or neither a debit
// nor a credit amount.
func convertRow(row []string, cols ColumnIndices) (models.CanonicalTransaction, bool) {
	date, ok := dateutils.ParseStatementDate(cell(row, cols.Date))
	if !ok {
		return models.CanonicalTransaction{}, false
	}

	debit := moneyutils.ParseAmount(cell(row, cols.Debit))
	credit := moneyutils.ParseAmount(cell(row, cols.Credit))

	amount := debit
	direction := models.DirectionDebit
	if !moneyutils.IsPositive(debit) {
		if !moneyutils.IsPositive(credit) {
			return models.CanonicalTransaction{}, false
		}
		amount = credit
		direction = models.DirectionCredit
	}

	return models.CanonicalTransaction{
		Date:        date,
		Description: textutils.NormalizeDescription(cell(row, cols.Description), models.DefaultDescription),
		Amount:      amount,
		Direction:   direction,
	}, true
}

// cell returns the value at idx, tolerating short rows and unresolved
// columns (idx == -1).
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// findHeaderRow scans the first few rows for the one containing a "date"
// cell, defaulting to the first row.
func findHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		for _, c := range rows[i] {
			if strings.Contains(strings.ToLower(c), "date") {
				return i
			}
		}
	}
	return 0
}

func dropBlankRows(rows [][]string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if !blank {
			kept = append(kept, row)
		}
	}
	return kept
}
