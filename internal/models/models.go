// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether a transaction moves money out of (debit) or
// into (credit) the account.
type Direction string

// CanonicalTransaction is the normalized intermediate representation produced
// by any statement parser, prior to categorization and user review. It is
// never emitted without a valid date and a positive amount; rows that fail
// either check are skipped during parsing.
type CanonicalTransaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   Direction       `json:"direction"`
	Category    string          `json:"category,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// IsDebit returns true if the transaction moves money out of the account.
func (t *CanonicalTransaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction moves money into the account.
func (t *CanonicalTransaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// ParseStats reports how lenient row skipping played out during a parse.
// Skipped rows are not errors.
type ParseStats struct {
	Rows    int
	Parsed  int
	Skipped int
}

// Expense is the persistable record emitted by the reconciliation stage.
// Month and Year hold the budget cycle the expense belongs to, which may
// differ from the calendar month of Date when the expense predates the
// salary credit.
type Expense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
}

// CategoryConfig is a user-defined spending bucket with a monthly limit and
// a type (fixed or variable). Names are unique per user, case-insensitively.
type CategoryConfig struct {
	Name         string          `yaml:"name" json:"name"`
	MonthlyLimit decimal.Decimal `yaml:"monthly_limit" json:"monthlyLimit"`
	Type         string          `yaml:"type" json:"type"`
}

// FixedDeduction is a recurring amount subtracted from salary before the
// distributable budget is computed.
type FixedDeduction struct {
	Name          string          `yaml:"name" json:"name"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"`
	DeductionDate int             `yaml:"deduction_date" json:"deductionDate"`
}

// Settings is the user's budget configuration aggregate.
type Settings struct {
	Salary          decimal.Decimal  `yaml:"salary" json:"salary"`
	SalaryCreditDay int              `yaml:"salary_credit_day" json:"salaryCreditDay"`
	FixedDeductions []FixedDeduction `yaml:"fixed_deductions" json:"fixedDeductions"`
	Categories      []CategoryConfig `yaml:"categories" json:"categories"`
}

// TotalFixedDeductions sums all configured fixed deductions.
func (s *Settings) TotalFixedDeductions() decimal.Decimal {
	total := decimal.Zero
	for _, d := range s.FixedDeductions {
		total = total.Add(d.Amount)
	}
	return total
}

// CategoryNames returns the configured category names in definition order.
func (s *Settings) CategoryNames() []string {
	names := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		names = append(names, c.Name)
	}
	return names
}
