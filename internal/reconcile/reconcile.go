// Package reconcile turns a user-confirmed batch of transactions into
// persistable expenses. The operation is all-or-nothing: any invalid record
// rejects the entire batch and nothing is emitted, so the caller never has
// to undo a partial commit.
package reconcile

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"paisatrack/budget-csv/internal/budgetcycle"
	"paisatrack/budget-csv/internal/dateutils"
	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
	"paisatrack/budget-csv/internal/moneyutils"
	"paisatrack/budget-csv/internal/parsererror"
	"paisatrack/budget-csv/internal/textutils"
	"paisatrack/budget-csv/internal/validation"
)

// ConfirmedTransaction is one reviewed row coming back from the user. All
// fields arrive as text because the review artifact is a CSV the user may
// have edited by hand.
type ConfirmedTransaction struct {
	Date        string
	Description string
	Amount      string
	Category    string
	Tags        []string
}

// ReconcileBatch validates and normalizes a confirmed batch, stamping each
// expense with its budget cycle and a fresh ID. It returns a
// *parsererror.ValidationError naming the first offending record when the
// batch must be rejected.
func ReconcileBatch(txns []ConfirmedTransaction, salaryCreditDay int, logger logging.Logger) ([]models.Expense, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	if err := validation.ValidateSalaryCreditDay(salaryCreditDay); err != nil {
		return nil, err
	}

	expenses := make([]models.Expense, 0, len(txns))

	for i, tx := range txns {
		date, ok := dateutils.ParseInputDate(tx.Date)
		if !ok {
			return nil, &parsererror.ValidationError{
				Index:  i,
				Field:  "date",
				Reason: "unparsable date " + strconv.Quote(tx.Date),
			}
		}

		cycle := budgetcycle.Resolve(date, salaryCreditDay)

		category := strings.TrimSpace(tx.Category)
		if category == "" {
			category = models.CategoryUncategorized
		}

		description := textutils.NormalizeDescription(tx.Description, models.DefaultDescription)
		description = textutils.TruncateRunes(description, models.MaxDescriptionLength)

		expenses = append(expenses, models.Expense{
			ID:          uuid.New().String(),
			Date:        dateutils.Truncate(date),
			Category:    category,
			Amount:      moneyutils.ParseAmount(tx.Amount),
			Description: description,
			Tags:        validation.NormalizeTags(tx.Tags),
			Month:       cycle.Month,
			Year:        cycle.Year,
		})
	}

	// Amounts are checked after the whole batch is built so the reported
	// index always refers to the original record, and a bad amount late in
	// the batch still commits nothing.
	for i, e := range expenses {
		if !moneyutils.IsPositive(e.Amount) {
			return nil, &parsererror.ValidationError{
				Index:  i,
				Field:  "amount",
				Reason: "amount must be greater than 0",
			}
		}
	}

	logger.Info("Reconciled confirmed batch",
		logging.Field{Key: logging.FieldCount, Value: len(expenses)})

	return expenses, nil
}
