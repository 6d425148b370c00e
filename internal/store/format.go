package store

import (
	"fmt"

	"paisatrack/budget-csv/internal/dateutils"
	"paisatrack/budget-csv/internal/models"
)

// settingsFile is the on-disk shape of models.Settings. Decimal fields are
// strings because the YAML codec has no text-unmarshal hook for
// decimal.Decimal.
type settingsFile struct {
	Salary          string                `yaml:"salary"`
	SalaryCreditDay int                   `yaml:"salary_credit_day"`
	FixedDeductions []fixedDeductionEntry `yaml:"fixed_deductions,omitempty"`
	Categories      []categoryEntry       `yaml:"categories,omitempty"`
}

type fixedDeductionEntry struct {
	Name          string `yaml:"name"`
	Amount        string `yaml:"amount"`
	DeductionDate int    `yaml:"deduction_date"`
}

type categoryEntry struct {
	Name         string `yaml:"name"`
	MonthlyLimit string `yaml:"monthly_limit"`
	Type         string `yaml:"type"`
}

// expenseRecord is the on-disk shape of models.Expense, with an ISO date.
type expenseRecord struct {
	ID          string   `yaml:"id"`
	Date        string   `yaml:"date"`
	Category    string   `yaml:"category"`
	Amount      string   `yaml:"amount"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags,omitempty"`
	Month       int      `yaml:"month"`
	Year        int      `yaml:"year"`
}

func settingsToFile(s models.Settings) settingsFile {
	file := settingsFile{
		Salary:          s.Salary.String(),
		SalaryCreditDay: s.SalaryCreditDay,
	}
	for _, d := range s.FixedDeductions {
		file.FixedDeductions = append(file.FixedDeductions, fixedDeductionEntry{
			Name:          d.Name,
			Amount:        d.Amount.String(),
			DeductionDate: d.DeductionDate,
		})
	}
	for _, c := range s.Categories {
		file.Categories = append(file.Categories, categoryEntry{
			Name:         c.Name,
			MonthlyLimit: c.MonthlyLimit.String(),
			Type:         c.Type,
		})
	}
	return file
}

func (f settingsFile) toModel() (models.Settings, error) {
	salary, err := parseDecimal("salary", f.Salary)
	if err != nil {
		return models.Settings{}, err
	}

	settings := models.Settings{
		Salary:          salary,
		SalaryCreditDay: f.SalaryCreditDay,
	}

	for _, d := range f.FixedDeductions {
		amount, err := parseDecimal("deduction amount", d.Amount)
		if err != nil {
			return models.Settings{}, err
		}
		settings.FixedDeductions = append(settings.FixedDeductions, models.FixedDeduction{
			Name:          d.Name,
			Amount:        amount,
			DeductionDate: d.DeductionDate,
		})
	}

	for _, c := range f.Categories {
		limit, err := parseDecimal("monthly limit", c.MonthlyLimit)
		if err != nil {
			return models.Settings{}, err
		}
		settings.Categories = append(settings.Categories, models.CategoryConfig{
			Name:         c.Name,
			MonthlyLimit: limit,
			Type:         c.Type,
		})
	}

	return settings, nil
}

func expenseToRecord(e models.Expense) expenseRecord {
	return expenseRecord{
		ID:          e.ID,
		Date:        dateutils.ToISODate(e.Date),
		Category:    e.Category,
		Amount:      e.Amount.String(),
		Description: e.Description,
		Tags:        e.Tags,
		Month:       e.Month,
		Year:        e.Year,
	}
}

func (r expenseRecord) toModel() (models.Expense, error) {
	date, ok := dateutils.ParseInputDate(r.Date)
	if !ok {
		return models.Expense{}, fmt.Errorf("invalid date %q", r.Date)
	}
	amount, err := parseDecimal("amount", r.Amount)
	if err != nil {
		return models.Expense{}, err
	}

	return models.Expense{
		ID:          r.ID,
		Date:        date,
		Category:    r.Category,
		Amount:      amount,
		Description: r.Description,
		Tags:        r.Tags,
		Month:       r.Month,
		Year:        r.Year,
	}, nil
}
