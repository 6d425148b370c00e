package reconcile

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
	"paisatrack/budget-csv/internal/parsererror"
)

func reconcileBatch(t *testing.T, txns []ConfirmedTransaction, salaryCreditDay int) ([]models.Expense, error) {
	t.Helper()
	return ReconcileBatch(txns, salaryCreditDay, &logging.MockLogger{})
}

func TestReconcileBatchHappyPath(t *testing.T) {
	txns := []ConfirmedTransaction{
		{
			Date:        "2025-01-10",
			Description: "Zomato Order",
			Amount:      "250",
			Category:    "Food",
			Tags:        []string{"Lunch", "Office"},
		},
	}

	expenses, err := reconcileBatch(t, txns, 5)
	require.NoError(t, err)
	require.Len(t, expenses, 1)

	e := expenses[0]
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), e.Date)
	assert.Equal(t, "Food", e.Category)
	assert.True(t, e.Amount.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, []string{"lunch", "office"}, e.Tags)
	assert.Equal(t, 1, e.Month)
	assert.Equal(t, 2025, e.Year)
}

func TestReconcileBatchCycleRollback(t *testing.T) {
	// An expense on the 3rd with salary credited on the 5th belongs to the
	// previous budget month.
	txns := []ConfirmedTransaction{
		{Date: "2025-01-03", Description: "Rent", Amount: "15000", Category: "Rent"},
	}

	expenses, err := reconcileBatch(t, txns, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, expenses[0].Month)
	assert.Equal(t, 2024, expenses[0].Year)
}

func TestReconcileBatchDefaults(t *testing.T) {
	txns := []ConfirmedTransaction{
		{Date: "2025-02-10", Description: "   ", Amount: "99.50", Category: "  "},
	}

	expenses, err := reconcileBatch(t, txns, 1)
	require.NoError(t, err)

	e := expenses[0]
	assert.Equal(t, models.DefaultDescription, e.Description)
	assert.Equal(t, models.CategoryUncategorized, e.Category)
	assert.NotNil(t, e.Tags)
	assert.Empty(t, e.Tags)
}

func TestReconcileBatchLongDescriptionTruncated(t *testing.T) {
	txns := []ConfirmedTransaction{
		{Date: "2025-02-10", Description: strings.Repeat("x", 400), Amount: "10"},
	}

	expenses, err := reconcileBatch(t, txns, 1)
	require.NoError(t, err)
	assert.Len(t, []rune(expenses[0].Description), models.MaxDescriptionLength)
}

func TestReconcileBatchTagNormalization(t *testing.T) {
	tags := []string{" Food ", "food", "FOOD", "", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	txns := []ConfirmedTransaction{
		{Date: "2025-02-10", Description: "x", Amount: "10", Tags: tags},
	}

	expenses, err := reconcileBatch(t, txns, 1)
	require.NoError(t, err)

	got := expenses[0].Tags
	assert.Len(t, got, models.MaxTags)
	assert.Equal(t, "food", got[0])
	for i, tag := range got {
		for j, other := range got {
			if i != j {
				assert.NotEqual(t, tag, other)
			}
		}
	}
}

func TestReconcileBatchBadDateRejectsWholeBatch(t *testing.T) {
	txns := []ConfirmedTransaction{
		{Date: "2025-01-10", Description: "ok", Amount: "10"},
		{Date: "not-a-date", Description: "bad", Amount: "10"},
	}

	expenses, err := reconcileBatch(t, txns, 1)
	require.Error(t, err)
	assert.Nil(t, expenses)

	var vErr *parsererror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 1, vErr.Index)
	assert.Equal(t, "date", vErr.Field)
}

func TestReconcileBatchBadAmountRejectsWholeBatch(t *testing.T) {
	// The bad amount is last; earlier valid records must not leak out.
	txns := []ConfirmedTransaction{
		{Date: "2025-01-10", Description: "ok", Amount: "10"},
		{Date: "2025-01-11", Description: "zero", Amount: "0"},
	}

	expenses, err := reconcileBatch(t, txns, 1)
	require.Error(t, err)
	assert.Nil(t, expenses)

	var vErr *parsererror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 1, vErr.Index)
	assert.Equal(t, "amount", vErr.Field)
}

func TestReconcileBatchUnparsableAmountRejected(t *testing.T) {
	// Unparsable amounts normalize to zero and fail the positivity check.
	txns := []ConfirmedTransaction{
		{Date: "2025-01-10", Description: "x", Amount: "abc"},
	}

	_, err := reconcileBatch(t, txns, 1)
	require.Error(t, err)
}

func TestReconcileBatchInvalidSalaryCreditDay(t *testing.T) {
	txns := []ConfirmedTransaction{
		{Date: "2025-01-10", Description: "x", Amount: "10"},
	}

	_, err := reconcileBatch(t, txns, 0)
	require.Error(t, err)
	_, err = reconcileBatch(t, txns, 32)
	require.Error(t, err)
}

func TestReconcileBatchIdempotentOverOwnOutput(t *testing.T) {
	txns := []ConfirmedTransaction{
		{
			Date:        "2025-01-10",
			Description: "Zomato Order",
			Amount:      "250.00",
			Category:    "Food",
			Tags:        []string{"lunch"},
		},
	}

	first, err := reconcileBatch(t, txns, 5)
	require.NoError(t, err)

	// Feed the output back in as a confirmed batch; everything but the
	// generated ID must be identical.
	roundTrip := []ConfirmedTransaction{
		{
			Date:        first[0].Date.Format("2006-01-02"),
			Description: first[0].Description,
			Amount:      first[0].Amount.String(),
			Category:    first[0].Category,
			Tags:        first[0].Tags,
		},
	}

	second, err := reconcileBatch(t, roundTrip, 5)
	require.NoError(t, err)

	assert.Equal(t, first[0].Date, second[0].Date)
	assert.Equal(t, first[0].Description, second[0].Description)
	assert.True(t, first[0].Amount.Equal(second[0].Amount))
	assert.Equal(t, first[0].Category, second[0].Category)
	assert.Equal(t, first[0].Tags, second[0].Tags)
	assert.Equal(t, first[0].Month, second[0].Month)
	assert.Equal(t, first[0].Year, second[0].Year)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestReconcileBatchEmpty(t *testing.T) {
	expenses, err := reconcileBatch(t, nil, 5)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}
