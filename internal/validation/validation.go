// Package validation holds the invariant checks applied to user-supplied
// budget configuration and confirmed transaction data.
package validation

import (
	"fmt"
	"strings"

	"paisatrack/budget-csv/internal/models"
)

// NormalizeTags lowercases and trims each tag, drops empties, removes
// duplicates while preserving first occurrence order, and caps the result
// at models.MaxTags.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))

	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
		if len(normalized) == models.MaxTags {
			break
		}
	}

	return normalized
}

// ValidateSalaryCreditDay checks the user-configured salary credit day.
func ValidateSalaryCreditDay(day int) error {
	if day < models.MinSalaryCreditDay || day > models.MaxSalaryCreditDay {
		return fmt.Errorf("salary credit day must be between %d and %d, got %d",
			models.MinSalaryCreditDay, models.MaxSalaryCreditDay, day)
	}
	return nil
}

// ValidateCategory checks a single category configuration.
func ValidateCategory(c models.CategoryConfig) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("category name is required")
	}
	if !c.MonthlyLimit.IsPositive() {
		return fmt.Errorf("category %q: monthly limit must be greater than 0", c.Name)
	}
	if c.Type != models.CategoryTypeFixed && c.Type != models.CategoryTypeVariable {
		return fmt.Errorf("category %q: type must be %q or %q, got %q",
			c.Name, models.CategoryTypeFixed, models.CategoryTypeVariable, c.Type)
	}
	return nil
}

// ValidateSettings checks the whole settings aggregate. Category names must
// be unique case-insensitively so that auto-categorization lookups are
// unambiguous.
func ValidateSettings(s models.Settings) error {
	if !s.Salary.IsPositive() {
		return fmt.Errorf("salary must be greater than 0")
	}
	if err := ValidateSalaryCreditDay(s.SalaryCreditDay); err != nil {
		return err
	}

	for _, d := range s.FixedDeductions {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("deduction name is required")
		}
		if !d.Amount.IsPositive() {
			return fmt.Errorf("deduction %q: amount must be greater than 0", d.Name)
		}
		if d.DeductionDate < models.MinSalaryCreditDay || d.DeductionDate > models.MaxSalaryCreditDay {
			return fmt.Errorf("deduction %q: deduction date must be between %d and %d",
				d.Name, models.MinSalaryCreditDay, models.MaxSalaryCreditDay)
		}
	}

	seen := make(map[string]struct{}, len(s.Categories))
	for _, c := range s.Categories {
		if err := ValidateCategory(c); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate category name %q", c.Name)
		}
		seen[key] = struct{}{}
	}

	return nil
}
