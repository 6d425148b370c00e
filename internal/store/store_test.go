package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
)

func testStore(t *testing.T) *SettingsStore {
	t.Helper()
	dir := t.TempDir()
	return NewSettingsStore(
		filepath.Join(dir, "settings.yaml"),
		filepath.Join(dir, "expenses.yaml"),
		&logging.MockLogger{},
	)
}

func validSettings() models.Settings {
	return models.Settings{
		Salary:          decimal.NewFromInt(80000),
		SalaryCreditDay: 5,
		FixedDeductions: []models.FixedDeduction{
			{Name: "SIP", Amount: decimal.NewFromInt(10000), DeductionDate: 7},
		},
		Categories: []models.CategoryConfig{
			{Name: "Food", MonthlyLimit: decimal.NewFromInt(8000), Type: models.CategoryTypeVariable},
			{Name: "Rent", MonthlyLimit: decimal.NewFromInt(15000), Type: models.CategoryTypeFixed},
		},
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	s := testStore(t)
	original := validSettings()

	require.NoError(t, s.SaveSettings(original))

	loaded, err := s.LoadSettings()
	require.NoError(t, err)

	assert.True(t, loaded.Salary.Equal(original.Salary))
	assert.Equal(t, original.SalaryCreditDay, loaded.SalaryCreditDay)
	require.Len(t, loaded.Categories, 2)
	assert.Equal(t, "Food", loaded.Categories[0].Name)
	assert.True(t, loaded.Categories[0].MonthlyLimit.Equal(decimal.NewFromInt(8000)))
	require.Len(t, loaded.FixedDeductions, 1)
	assert.Equal(t, "SIP", loaded.FixedDeductions[0].Name)
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s := testStore(t)

	settings, err := s.LoadSettings()
	require.NoError(t, err)
	assert.True(t, settings.Salary.IsZero())
	assert.Equal(t, models.MinSalaryCreditDay, settings.SalaryCreditDay)
	assert.Empty(t, settings.Categories)
}

func TestSaveSettingsRejectsInvalid(t *testing.T) {
	s := testStore(t)

	invalid := validSettings()
	invalid.Salary = decimal.Zero
	require.Error(t, s.SaveSettings(invalid))

	// Nothing was written.
	_, err := os.Stat(s.SettingsFile)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveSettingsRejectsDuplicateCategoryNames(t *testing.T) {
	s := testStore(t)

	dup := validSettings()
	dup.Categories = append(dup.Categories, models.CategoryConfig{
		Name: "food", MonthlyLimit: decimal.NewFromInt(100), Type: models.CategoryTypeVariable,
	})

	require.Error(t, s.SaveSettings(dup))
}

func TestAppendAndLoadExpenses(t *testing.T) {
	s := testStore(t)

	first := []models.Expense{
		{
			ID:          "a1",
			Date:        time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
			Category:    "Food",
			Amount:      decimal.NewFromInt(250),
			Description: "Zomato Order",
			Tags:        []string{"lunch"},
			Month:       1,
			Year:        2025,
		},
	}
	second := []models.Expense{
		{
			ID:       "b2",
			Date:     time.Date(2025, time.January, 11, 0, 0, 0, 0, time.UTC),
			Category: "Transport",
			Amount:   decimal.NewFromInt(120),
			Month:    1,
			Year:     2025,
		},
	}

	require.NoError(t, s.AppendExpenses(first))
	require.NoError(t, s.AppendExpenses(second))

	loaded, err := s.LoadExpenses()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "a1", loaded[0].ID)
	assert.Equal(t, "b2", loaded[1].ID)
	assert.True(t, loaded[0].Amount.Equal(decimal.NewFromInt(250)))
}

func TestLoadExpensesMissingFile(t *testing.T) {
	s := testStore(t)

	expenses, err := s.LoadExpenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestFindConfigFileAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("salary: 100\n"), 0o600))

	s := NewSettingsStore("", "", &logging.MockLogger{})

	found, err := s.FindConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = s.FindConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, os.IsNotExist(err))
}
