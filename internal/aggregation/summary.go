package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// Input is everything a summary is derived from.
type Input struct {
	Incomes       []models.Record
	Expenses      []models.Record
	MonthlyBudget decimal.Decimal
	HasBudget     bool
}

// Summary is the derived view shared by every surface.
//
// Household figures (totals, remaining, alert) cover all records; the
// expense list, its total and the category breakdown honour the selection.
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpense  decimal.Decimal `json:"total_expense"`
	Remaining     decimal.Decimal `json:"remaining"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	SpendingGoal  decimal.Decimal `json:"spending_goal"`
	HasBudget     bool            `json:"has_budget"`
	Alert         *Alert          `json:"alert,omitempty"`

	Selection     Selection                  `json:"selection"`
	Expenses      []models.Record            `json:"expenses"`
	FilteredTotal decimal.Decimal            `json:"filtered_total"`
	ByCategory    map[string]decimal.Decimal `json:"by_category"`

	// Unreadable counts records excluded from sums because their value
	// could not be decoded.
	Unreadable int `json:"unreadable"`
}

// Summarize computes the summary of in under sel at now.
func Summarize(in Input, sel Selection, now time.Time) Summary {
	filtered := Filter(in.Expenses, sel, now)

	s := Summary{
		TotalIncome:   Total(in.Incomes),
		TotalExpense:  Total(in.Expenses),
		Remaining:     Remaining(in.Incomes, in.Expenses),
		MonthlyBudget: in.MonthlyBudget,
		SpendingGoal:  SpendingGoal(in.MonthlyBudget),
		HasBudget:     in.HasBudget,
		Selection:     sel,
		Expenses:      filtered,
		FilteredTotal: Total(filtered),
		ByCategory:    ByCategory(filtered),
		Unreadable:    countUnreadable(in.Incomes) + countUnreadable(in.Expenses),
	}
	if in.HasBudget {
		if alert, ok := CheckBudget(s.TotalExpense, s.SpendingGoal, now); ok {
			s.Alert = &alert
		}
	}
	return s
}

func countUnreadable(records []models.Record) int {
	n := 0
	for _, r := range records {
		if r.ParseErr != nil {
			n++
		}
	}
	return n
}

// FromTrees decodes collection snapshots into an Input. An unreadable budget
// is treated as unset and reported through err; the Input is usable either
// way.
func FromTrees(incomes, expenses, budget map[string]any) (in Input, err error) {
	in.Incomes = DecodeRecords(models.KindIncome, incomes)
	in.Expenses = DecodeRecords(models.KindExpense, expenses)
	in.MonthlyBudget, in.HasBudget, err = DecodeBudget(budget)
	return in, err
}
