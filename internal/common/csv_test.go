package common

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
)

func sampleTransactions() []models.CanonicalTransaction {
	return []models.CanonicalTransaction{
		{
			Date:        time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			Description: "Zomato Order",
			Amount:      decimal.NewFromInt(250),
			Direction:   models.DirectionDebit,
			Category:    "Food",
			Tags:        []string{"lunch", "office"},
		},
		{
			Date:        time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
			Description: "Salary",
			Amount:      decimal.RequireFromString("80000.00"),
			Direction:   models.DirectionCredit,
		},
	}
}

func TestReviewCSVRoundTrip(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "review.csv")

	require.NoError(t, WriteReviewCSV(sampleTransactions(), csvFile, &logging.MockLogger{}))

	rows, err := ReadReviewCSV(csvFile, &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "2025-01-01", rows[0].Date)
	assert.Equal(t, "Zomato Order", rows[0].Description)
	assert.Equal(t, "250", rows[0].Amount)
	assert.Equal(t, "debit", rows[0].Direction)
	assert.Equal(t, "Food", rows[0].Category)
	assert.Equal(t, "lunch|office", rows[0].Tags)

	assert.Equal(t, "credit", rows[1].Direction)
	assert.Equal(t, "", rows[1].Tags)
}

func TestWriteExpensesCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "expenses.csv")
	expenses := []models.Expense{
		{
			ID:          "e1",
			Date:        time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC),
			Category:    "Rent",
			Amount:      decimal.NewFromInt(15000),
			Description: "House Rent",
			Tags:        []string{"home"},
			Month:       12,
			Year:        2024,
		},
	}

	require.NoError(t, WriteExpensesCSV(expenses, csvFile, &logging.MockLogger{}))

	rows, err := ReadCSVFile[ExpenseRow](csvFile, &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "e1", rows[0].ID)
	assert.Equal(t, 12, rows[0].Month)
	assert.Equal(t, 2024, rows[0].Year)
	assert.Equal(t, "home", rows[0].Tags)
}

func TestWriteCSVFileNilRows(t *testing.T) {
	err := WriteCSVFile[ReviewRow](nil, filepath.Join(t.TempDir(), "x.csv"), &logging.MockLogger{})
	require.Error(t, err)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitTags("a|b"))
	assert.Equal(t, []string{"a"}, SplitTags("a"))
	assert.Empty(t, SplitTags(""))
	assert.Equal(t, []string{"a", "b"}, SplitTags("a| |b|"))
}

func TestSummarize(t *testing.T) {
	summary := Summarize(sampleTransactions())

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Debits)
	assert.Equal(t, 1, summary.Credits)
	assert.True(t, summary.TotalDebitAmount.Equal(decimal.NewFromInt(250)))
	assert.True(t, summary.TotalCreditAmount.Equal(decimal.RequireFromString("80000")))
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.Total)
	assert.True(t, summary.TotalDebitAmount.IsZero())
	assert.True(t, summary.TotalCreditAmount.IsZero())
}
