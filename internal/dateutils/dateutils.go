// Package dateutils provides date parsing and formatting for statement data.
package dateutils

import (
	"regexp"
	"strings"
	"time"
)

// DateLayoutISO is the canonical output format (YYYY-MM-DD).
const DateLayoutISO = "2006-01-02"

// statementLayouts are the shapes bank statements are expected to carry:
// DD/MM/YYYY and DD-MM-YYYY with 1-2 digit day/month, and DD MMM YYYY with a
// three-letter month abbreviation. Anything else is treated as "no date".
var statementLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2 Jan 2006",
}

// inputLayouts are accepted for confirmed transactions coming back from user
// review, where dates may already be in canonical form.
var inputLayouts = []string{
	DateLayoutISO,
	time.RFC3339,
	"2/1/2006",
	"2-1-2006",
	"2 Jan 2006",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims a date string and collapses runs of whitespace.
func CleanDateString(dateStr string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseStatementDate parses a date cell from a bank statement. It returns
// ok=false for unrecognized shapes and for shapes that resolve to an invalid
// calendar date (e.g. 31/02/2025), causing the caller to skip the row.
func ParseStatementDate(dateStr string) (time.Time, bool) {
	return parseWith(statementLayouts, dateStr)
}

// ParseInputDate parses a date from a user-confirmed transaction. Canonical
// ISO dates are accepted in addition to the statement shapes.
func ParseInputDate(dateStr string) (time.Time, bool) {
	return parseWith(inputLayouts, dateStr)
}

func parseWith(layouts []string, dateStr string) (time.Time, bool) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToISODate formats a time as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Truncate strips the time-of-day component, leaving a pure calendar date.
func Truncate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
