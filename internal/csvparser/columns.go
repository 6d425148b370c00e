package csvparser

import "strings"

// ColumnIndices holds the best-guess 0-based positions of the semantic
// columns in a statement header row. Unresolved roles are -1.
type ColumnIndices struct {
	Date        int
	Description int
	Debit       int
	Credit      int
}

// HasRequired reports whether enough columns were resolved to parse the
// statement: a date column plus at least one of debit/credit.
func (c ColumnIndices) HasRequired() bool {
	return c.Date != -1 && (c.Debit != -1 || c.Credit != -1)
}

// Keyword sets per semantic role. Bank exports disagree on header wording,
// so matching is case-insensitive substring search.
var (
	dateKeywords        = []string{"date"}
	descriptionKeywords = []string{"description", "narration", "particular"}
	debitKeywords       = []string{"debit", "withdrawal"}
	creditKeywords      = []string{"credit", "deposit"}
)

// ResolveColumns locates the semantic columns in a header row. Columns are
// scanned left to right and the first match wins per role; once a role is
// assigned it is never reassigned even if a later column also matches.
func ResolveColumns(header []string) ColumnIndices {
	indices := ColumnIndices{Date: -1, Description: -1, Debit: -1, Credit: -1}

	for i, cell := range header {
		lower := strings.ToLower(strings.TrimSpace(cell))

		if indices.Date == -1 && matchesAny(lower, dateKeywords) {
			indices.Date = i
		}
		if indices.Description == -1 && matchesAny(lower, descriptionKeywords) {
			indices.Description = i
		}
		if indices.Debit == -1 && matchesAny(lower, debitKeywords) {
			indices.Debit = i
		}
		if indices.Credit == -1 && matchesAny(lower, creditKeywords) {
			indices.Credit = i
		}
	}

	return indices
}

func matchesAny(cell string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(cell, kw) {
			return true
		}
	}
	return false
}
