package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"paisatrack/budget-csv/internal/models"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"lowercase and trim", []string{" Food ", "UPI"}, []string{"food", "upi"}},
		{"drop empties", []string{"", "  ", "a"}, []string{"a"}},
		{"dedup after normalization", []string{"Food", "food", "FOOD "}, []string{"food"}},
		{"order preserved", []string{"b", "a", "b"}, []string{"b", "a"}},
		{"nil input", nil, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeTags(tc.input))
		})
	}
}

func TestNormalizeTagsCap(t *testing.T) {
	input := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		input = append(input, string(rune('a'+i)))
	}
	assert.Len(t, NormalizeTags(input), models.MaxTags)
}

func TestValidateSalaryCreditDay(t *testing.T) {
	assert.NoError(t, ValidateSalaryCreditDay(1))
	assert.NoError(t, ValidateSalaryCreditDay(31))
	assert.Error(t, ValidateSalaryCreditDay(0))
	assert.Error(t, ValidateSalaryCreditDay(32))
}

func validSettings() models.Settings {
	return models.Settings{
		Salary:          decimal.NewFromInt(50000),
		SalaryCreditDay: 3,
		FixedDeductions: []models.FixedDeduction{
			{Name: "SIP", Amount: decimal.NewFromInt(5000), DeductionDate: 5},
		},
		Categories: []models.CategoryConfig{
			{Name: "Food", MonthlyLimit: decimal.NewFromInt(8000), Type: models.CategoryTypeVariable},
			{Name: "Rent", MonthlyLimit: decimal.NewFromInt(15000), Type: models.CategoryTypeFixed},
		},
	}
}

func TestValidateSettings(t *testing.T) {
	assert.NoError(t, ValidateSettings(validSettings()))
}

func TestValidateSettingsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Settings)
	}{
		{"zero salary", func(s *models.Settings) { s.Salary = decimal.Zero }},
		{"credit day out of range", func(s *models.Settings) { s.SalaryCreditDay = 0 }},
		{"deduction without name", func(s *models.Settings) { s.FixedDeductions[0].Name = " " }},
		{"deduction amount zero", func(s *models.Settings) { s.FixedDeductions[0].Amount = decimal.Zero }},
		{"deduction date out of range", func(s *models.Settings) { s.FixedDeductions[0].DeductionDate = 40 }},
		{"category without name", func(s *models.Settings) { s.Categories[0].Name = "" }},
		{"category limit zero", func(s *models.Settings) { s.Categories[0].MonthlyLimit = decimal.Zero }},
		{"category bad type", func(s *models.Settings) { s.Categories[0].Type = "weekly" }},
		{"duplicate category case-insensitive", func(s *models.Settings) { s.Categories[1].Name = "FOOD" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validSettings()
			tc.mutate(&s)
			assert.Error(t, ValidateSettings(s))
		})
	}
}
