package models

// Transaction directions
const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Category types
const (
	CategoryTypeFixed    = "fixed"
	CategoryTypeVariable = "variable"
)

// Sentinels and defaults
const (
	CategoryUncategorized = "Uncategorized"
	DefaultDescription    = "Bank Transaction"
)

// Limits applied during reconciliation
const (
	MaxTags              = 10
	MaxDescriptionLength = 200
	MinSalaryCreditDay   = 1
	MaxSalaryCreditDay   = 31
)
