// Package budgetcycle maps calendar dates onto the user's budget month
// cycle. A budget month is anchored on the day the salary is credited rather
// than on the calendar month boundary: an expense dated before the salary
// credit day still belongs to the previous month's budget.
package budgetcycle

import "time"

// Cycle identifies a budget month. Month is 1-12.
type Cycle struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Resolve computes the budget cycle an expense on the given date belongs to.
// If the day-of-month precedes salaryCreditDay the expense predates that
// period's salary credit and rolls back into the previous calendar month,
// with December/year rollover at the January boundary. The comparison is
// against the day number only, so salaryCreditDay values beyond a short
// month's length need no clamping.
func Resolve(date time.Time, salaryCreditDay int) Cycle {
	day := date.Day()
	month := int(date.Month())
	year := date.Year()

	if day < salaryCreditDay {
		month--
		if month == 0 {
			month = 12
			year--
		}
	}

	return Cycle{Month: month, Year: year}
}

// ResolveCurrent computes the budget cycle the given moment falls in. It is
// the entry point used for live "current report" lookups.
func ResolveCurrent(today time.Time, salaryCreditDay int) Cycle {
	return Resolve(today, salaryCreditDay)
}
