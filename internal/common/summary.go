package common

import (
	"github.com/shopspring/decimal"

	"paisatrack/budget-csv/internal/models"
)

// ImportSummary totals a parsed statement for display before review.
type ImportSummary struct {
	Total             int
	Debits            int
	Credits           int
	TotalDebitAmount  decimal.Decimal
	TotalCreditAmount decimal.Decimal
}

// Summarize computes the import summary for a parsed statement.
func Summarize(txns []models.CanonicalTransaction) ImportSummary {
	summary := ImportSummary{
		Total:             len(txns),
		TotalDebitAmount:  decimal.Zero,
		TotalCreditAmount: decimal.Zero,
	}

	for _, tx := range txns {
		if tx.IsDebit() {
			summary.Debits++
			summary.TotalDebitAmount = summary.TotalDebitAmount.Add(tx.Amount)
		} else {
			summary.Credits++
			summary.TotalCreditAmount = summary.TotalCreditAmount.Add(tx.Amount)
		}
	}

	return summary
}
