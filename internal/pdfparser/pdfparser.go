// Package pdfparser extracts canonical transactions from non-tabular bank
// statements. The document's text is pulled out by a TextExtractor and then
// mined line by line with pattern heuristics. The inputs are lossy by
// nature: direction cannot be determined (everything is assumed to be a
// debit, which the user corrects during review) and the transaction amount
// is guessed as the largest number on the line, on the observation that the
// running balance and reference numbers printed alongside are usually
// smaller-grained. That heuristic is deliberate and documented, not
// guaranteed correct.
package pdfparser

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"paisatrack/budget-csv/internal/dateutils"
	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
	"paisatrack/budget-csv/internal/moneyutils"
	"paisatrack/budget-csv/internal/parsererror"
	"paisatrack/budget-csv/internal/textutils"
)

const parserName = "PDF"

var (
	// dateRe matches the D{1,2}[/-]D{1,2}[/-]D{4} shapes that mark a
	// transaction line.
	dateRe = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{4}`)

	// amountRe matches Indian-grouped amounts ("1,23,456.78") as well as
	// plain and Western-grouped numbers.
	amountRe = regexp.MustCompile(`\d{1,3}(?:,\d{2,3})*(?:\.\d{1,2})?`)

	// descRe captures the text between the date and the first amount-like
	// token on the line.
	descRe = regexp.MustCompile(`^\s*(.+?)\s+[\d,]+`)
)

// Parse extracts transactions from a PDF document provided as an io.Reader,
// using the given extractor for the text-extraction step. An extraction
// failure is surfaced as a parse failure carrying the underlying message;
// malformed lines never raise errors and are simply skipped.
func Parse(r io.Reader, extractor TextExtractor, logger logging.Logger) ([]models.CanonicalTransaction, models.ParseStats, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	tempFile, err := os.CreateTemp("", "*.pdf")
	if err != nil {
		return nil, models.ParseStats{}, &parsererror.ParseError{
			Parser: parserName,
			Reason: "failed to create temporary file",
			Err:    err,
		}
	}
	defer func() {
		if err := os.Remove(tempFile.Name()); err != nil {
			logger.WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempFile.Name()})
		}
	}()

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		return nil, models.ParseStats{}, &parsererror.ParseError{
			Parser: parserName,
			Reason: "failed to buffer document",
			Err:    err,
		}
	}
	if err := tempFile.Close(); err != nil {
		logger.WithError(err).Warn("Failed to close temporary file")
	}

	text, err := extractor.ExtractText(tempFile.Name())
	if err != nil {
		return nil, models.ParseStats{}, &parsererror.ParseError{
			Parser: parserName,
			Reason: "text extraction failed",
			Err:    &parsererror.ExtractionError{Source: tempFile.Name(), Err: err},
		}
	}

	txns, stats := ParseText(text, logger)
	return txns, stats, nil
}

// ParseFile extracts transactions from a PDF file on disk.
func ParseFile(filePath string, extractor TextExtractor, logger logging.Logger) ([]models.CanonicalTransaction, models.ParseStats, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Info("Parsing PDF statement file",
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

	return Parse(file, extractor, logger)
}

// ParseText mines already-extracted statement text for transactions. Every
// line carrying a parsable date and at least one positive amount yields one
// transaction; all other lines are skipped.
func ParseText(text string, logger logging.Logger) ([]models.CanonicalTransaction, models.ParseStats) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var transactions []models.CanonicalTransaction
	stats := models.ParseStats{}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.Rows++

		tx, ok := parseLine(line)
		if !ok {
			stats.Skipped++
			continue
		}
		transactions = append(transactions, tx)
		stats.Parsed++
	}

	logger.Info("Parsed PDF statement text",
		logging.Field{Key: logging.FieldParser, Value: parserName},
		logging.Field{Key: logging.FieldRows, Value: stats.Rows},
		logging.Field{Key: logging.FieldCount, Value: stats.Parsed},
		logging.Field{Key: logging.FieldSkipped, Value: stats.Skipped})

	return transactions, stats
}

func parseLine(line string) (models.CanonicalTransaction, bool) {
	loc := dateRe.FindStringIndex(line)
	if loc == nil {
		return models.CanonicalTransaction{}, false
	}

	date, ok := dateutils.ParseStatementDate(line[loc[0]:loc[1]])
	if !ok {
		return models.CanonicalTransaction{}, false
	}

	// Only the text after the date is mined for amounts, so the date's own
	// digit groups never masquerade as amounts.
	rest := line[loc[1]:]

	amount, found := largestAmount(rest)
	if !found {
		return models.CanonicalTransaction{}, false
	}

	description := models.DefaultDescription
	if m := descRe.FindStringSubmatch(rest); m != nil {
		description = textutils.NormalizeDescription(m[1], models.DefaultDescription)
	}
	description = textutils.TruncateRunes(description, models.MaxDescriptionLength)

	return models.CanonicalTransaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		// Direction cannot be recovered from unstructured statements; the
		// user flips credits during review.
		Direction: models.DirectionDebit,
	}, true
}

// largestAmount returns the maximum positive amount-like value found in s.
func largestAmount(s string) (decimal.Decimal, bool) {
	max := decimal.Zero
	found := false

	for _, m := range amountRe.FindAllString(s, -1) {
		val := moneyutils.ParseAmount(m)
		if !moneyutils.IsPositive(val) {
			continue
		}
		if !found || val.GreaterThan(max) {
			max = val
			found = true
		}
	}

	return max, found
}
