// Package categorizer assigns spending categories to transactions. The
// core is a deterministic ordered keyword table: the same description
// always yields the same category, which keeps imports reproducible. An
// optional AI suggester exists for descriptions the table cannot place,
// but it never runs on the import path.
package categorizer

import (
	"strings"

	"paisatrack/budget-csv/internal/logging"
	"paisatrack/budget-csv/internal/models"
)

// keywordRule maps a lowercase keyword to a built-in category label.
// Rules are evaluated in order and the first hit wins, so more specific
// merchants sit above generic terms.
type keywordRule struct {
	Keyword  string
	Category string
}

// Built-in category labels.
const (
	LabelFood          = "Food"
	LabelTransport     = "Transport"
	LabelShopping      = "Shopping"
	LabelEntertainment = "Entertainment"
	LabelBills         = "Bills"
	LabelRent          = "Rent"
	LabelHealth        = "Health"
)

var keywordRules = []keywordRule{
	{"zomato", LabelFood},
	{"swiggy", LabelFood},
	{"food", LabelFood},
	{"restaurant", LabelFood},
	{"dominos", LabelFood},
	{"pizza", LabelFood},
	{"cafe", LabelFood},
	{"dining", LabelFood},
	{"petrol", LabelTransport},
	{"diesel", LabelTransport},
	{"uber", LabelTransport},
	{"ola", LabelTransport},
	{"rapido", LabelTransport},
	{"metro", LabelTransport},
	{"irctc", LabelTransport},
	{"railway", LabelTransport},
	{"fuel", LabelTransport},
	{"amazon", LabelShopping},
	{"flipkart", LabelShopping},
	{"myntra", LabelShopping},
	{"ajio", LabelShopping},
	{"meesho", LabelShopping},
	{"shopping", LabelShopping},
	{"mall", LabelShopping},
	{"netflix", LabelEntertainment},
	{"hotstar", LabelEntertainment},
	{"spotify", LabelEntertainment},
	{"movie", LabelEntertainment},
	{"pvr", LabelEntertainment},
	{"inox", LabelEntertainment},
	{"jio", LabelBills},
	{"airtel", LabelBills},
	{"vodafone", LabelBills},
	{"electricity", LabelBills},
	{"broadband", LabelBills},
	{"recharge", LabelBills},
	{"bill", LabelBills},
	{"rent", LabelRent},
	{"society", LabelRent},
	{"maintenance", LabelRent},
	{"hospital", LabelHealth},
	{"medical", LabelHealth},
	{"pharmacy", LabelHealth},
	{"apollo", LabelHealth},
	{"doctor", LabelHealth},
	{"medicine", LabelHealth},
	{"gym", LabelHealth},
}

// Categorize maps a transaction description to a category name. When the
// matched built-in label corresponds (case-insensitively) to one of the
// user's configured categories, the user's stored spelling is returned so
// report aggregation matches exactly. Descriptions with no keyword hit
// fall back to the Uncategorized sentinel.
func Categorize(description string, categories []models.CategoryConfig) string {
	lower := strings.ToLower(description)

	for _, rule := range keywordRules {
		if !strings.Contains(lower, rule.Keyword) {
			continue
		}
		if name, ok := matchUserCategory(rule.Category, categories); ok {
			return name
		}
		return rule.Category
	}

	return models.CategoryUncategorized
}

// CategorizeAll assigns a category to every transaction in place.
func CategorizeAll(txns []models.CanonicalTransaction, categories []models.CategoryConfig, logger logging.Logger) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	for i := range txns {
		txns[i].Category = Categorize(txns[i].Description, categories)
		logger.Debug("Categorized transaction",
			logging.Field{Key: logging.FieldDescription, Value: txns[i].Description},
			logging.Field{Key: logging.FieldCategory, Value: txns[i].Category})
	}
}

func matchUserCategory(label string, categories []models.CategoryConfig) (string, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, label) {
			return c.Name, true
		}
	}
	return "", false
}
