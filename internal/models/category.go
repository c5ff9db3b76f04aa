package models

// Closed category sets enforced on the write path (transaction create/confirm
// and AI-suggestion acceptance). The calculation core treats category as an
// opaque grouping key and never consults these.

var ExpenseCategories = []string{
	"Food & Drinks",
	"Transport",
	"Data & Airtime",
	"Rent & Housing",
	"Bills & Utilities",
	"Shopping",
	"Health",
	"Education",
	"Entertainment",
	"Family & Friends",
	"Other",
}

var IncomeCategories = []string{
	"Salary",
	"Business",
	"Freelance",
	"Gift",
	"Investment",
	"Other",
}

// ValidCategory reports whether category belongs to the closed set for the
// given transaction type.
func ValidCategory(txnType, category string) bool {
	var set []string
	switch txnType {
	case TypeExpense:
		set = ExpenseCategories
	case TypeIncome:
		set = IncomeCategories
	default:
		return false
	}
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}
