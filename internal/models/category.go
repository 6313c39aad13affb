package models

// SuggestedExpenseCategories are offered to every owner before they add
// labels of their own.
var SuggestedExpenseCategories = []string{
	"Food",
	"Entertainment",
	"Groceries",
	"Dress",
	"Fuel",
	"Medicine",
	"Apparel",
	"Rent",
	"Transportation",
	DefaultExpenseCategory,
}

// CategorySet is the list of category labels visible to an owner.
type CategorySet struct {
	Suggested []string `json:"suggested"`
	Custom    []string `json:"custom"`
}
