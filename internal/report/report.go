// Package report aggregates persisted expenses against the budget
// configuration for one budget cycle.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"paisatrack/budget-csv/internal/budgetcycle"
	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// CategoryReport is the per-category slice of a budget report.
type CategoryReport struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Limit       decimal.Decimal `json:"limit"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed int             `json:"percentUsed"`
}

// BudgetReport summarizes one budget cycle. Distributable is the salary
// minus fixed deductions; CurrentSavings is salary minus everything spent
// in the cycle, including spending outside any configured category.
type BudgetReport struct {
	Cycle          budgetcycle.Cycle `json:"cycle"`
	Salary         decimal.Decimal   `json:"salary"`
	FixedTotal     decimal.Decimal   `json:"fixedTotal"`
	Distributable  decimal.Decimal   `json:"distributable"`
	Categories     []CategoryReport  `json:"categories"`
	TotalBudgeted  decimal.Decimal   `json:"totalBudgeted"`
	TotalSpent     decimal.Decimal   `json:"totalSpent"`
	CurrentSavings decimal.Decimal   `json:"currentSavings"`
}

// Build computes the budget report for the given cycle. Expenses belong to
// the cycle when their stamped Month/Year match; category attribution is by
// exact name, so categorization must have produced the user's stored
// spelling.
func Build(settings models.Settings, expenses []models.Expense, cycle budgetcycle.Cycle, logger logging.Logger) BudgetReport {
	if logger == nil {
		logger = logging.GetLogger()
	}

	fixedTotal := settings.TotalFixedDeductions()

	report := BudgetReport{
		Cycle:         cycle,
		Salary:        settings.Salary,
		FixedTotal:    fixedTotal,
		Distributable: settings.Salary.Sub(fixedTotal),
	}

	spentByCategory := make(map[string]decimal.Decimal, len(settings.Categories))
	totalSpent := decimal.Zero
	for _, e := range expenses {
		if e.Month != cycle.Month || e.Year != cycle.Year {
			continue
		}
		spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount)
		totalSpent = totalSpent.Add(e.Amount)
	}

	for _, c := range settings.Categories {
		spent := spentByCategory[c.Name]
		report.Categories = append(report.Categories, CategoryReport{
			Name:        c.Name,
			Type:        c.Type,
			Limit:       c.MonthlyLimit,
			Spent:       spent,
			Remaining:   c.MonthlyLimit.Sub(spent),
			PercentUsed: percentUsed(spent, c.MonthlyLimit),
		})
		report.TotalBudgeted = report.TotalBudgeted.Add(c.MonthlyLimit)
	}

	report.TotalSpent = totalSpent
	report.CurrentSavings = settings.Salary.Sub(totalSpent)

	logger.Debug("Built budget report",
		logging.Field{Key: logging.FieldMonth, Value: cycle.Month},
		logging.Field{Key: logging.FieldYear, Value: cycle.Year},
		logging.Field{Key: logging.FieldCount, Value: len(report.Categories)})

	return report
}

// BuildCurrent computes the report for the cycle the given moment falls in,
// resolved against the configured salary credit day.
func BuildCurrent(settings models.Settings, expenses []models.Expense, today time.Time, logger logging.Logger) BudgetReport {
	cycle := budgetcycle.ResolveCurrent(today, settings.SalaryCreditDay)
	return Build(settings, expenses, cycle, logger)
}

// percentUsed is spent/limit as a whole percentage, rounded half away from
// zero. A zero limit reports zero rather than dividing.
func percentUsed(spent, limit decimal.Decimal) int {
	if limit.IsZero() {
		return 0
	}
	return int(spent.Div(limit).Mul(oneHundred).Round(0).IntPart())
}
