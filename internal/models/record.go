package models

import (
	"github.com/shopspring/decimal"
)

// Kind distinguishes the two record collections.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Default categories applied when a draft leaves the category blank.
const (
	DefaultIncomeCategory  = "Salary"
	DefaultExpenseCategory = "Other"
)

// ValueField is the raw-tree field carrying the numeric value: incomes
// store "amount", expenses store "cost".
func (k Kind) ValueField() string {
	if k == KindExpense {
		return "cost"
	}
	return "amount"
}

// DefaultCategory returns the category a record of this kind gets when none
// is given.
func (k Kind) DefaultCategory() string {
	if k == KindExpense {
		return DefaultExpenseCategory
	}
	return DefaultIncomeCategory
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Record is one income or expense entry.
type Record struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	Timestamp string          `json:"timestamp"`

	// ParseErr is set when the stored value could not be decoded. Such a
	// record is still listed but contributes nothing to sums.
	ParseErr error `json:"-"`
}

// Tree returns the record in its stored form. The id is the child key and
// is not part of the value.
func (r Record) Tree() map[string]any {
	return map[string]any{
		"name":              r.Name,
		r.Kind.ValueField(): r.Amount.InexactFloat64(),
		"category":          r.Category,
		"date":              r.Date,
		"timestamp":         r.Timestamp,
	}
}
