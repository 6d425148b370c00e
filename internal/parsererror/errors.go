// Package parsererror defines the error taxonomy shared by the statement
// parsers and the reconciliation stage.
package parsererror

import "fmt"

// ParseError represents a structural failure while parsing a statement:
// undecodable input, too few rows, or unresolved required columns.
// Per-row problems never produce a ParseError; noisy rows are skipped.
type ParseError struct {
	Parser string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Parser, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Parser, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExtractionError represents a failure of the upstream text-extraction
// dependency for unstructured documents.
type ExtractionError struct {
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed for %s: %v", e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ValidationError represents a per-record validation failure in a confirmed
// batch. The whole batch is rejected; Index identifies the offending record.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("transaction %d: invalid %s: %s", e.Index, e.Field, e.Reason)
}

// InvalidFormatError represents an input file that does not conform to the
// expected statement format at all.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
