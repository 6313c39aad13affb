package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/models"
)

// AlertMessage is shown while a budget alert is active.
const AlertMessage = "Alert: Total expenses have exceeded the spending goal!"

// AlertDisplayWindow is how long a raised alert stays visible.
const AlertDisplayWindow = 5 * time.Second

var goalFraction = decimal.RequireFromString("0.8")

// Total sums the values of records. Records that failed to decode are
// skipped.
func Total(records []models.Record) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range records {
		if r.ParseErr != nil {
			continue
		}
		sum = sum.Add(r.Amount)
	}
	return sum
}

// ByCategory sums values per category label. Labels are used verbatim.
func ByCategory(records []models.Record) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, r := range records {
		if r.ParseErr != nil {
			continue
		}
		out[r.Category] = out[r.Category].Add(r.Amount)
	}
	return out
}

// Remaining is total income minus total expense. It may be negative.
func Remaining(incomes, expenses []models.Record) decimal.Decimal {
	return Total(incomes).Sub(Total(expenses))
}

// SpendingGoal is 80% of the monthly budget.
func SpendingGoal(monthlyBudget decimal.Decimal) decimal.Decimal {
	return monthlyBudget.Mul(goalFraction)
}

// Alert is a transient budget warning.
type Alert struct {
	Message   string    `json:"message"`
	RaisedAt  time.Time `json:"raised_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Active reports whether the alert is still inside its display window.
func (a Alert) Active(now time.Time) bool {
	return now.Before(a.ExpiresAt)
}

// CheckBudget raises an alert when totalExpense exceeds goal.
func CheckBudget(totalExpense, goal decimal.Decimal, now time.Time) (Alert, bool) {
	if !totalExpense.GreaterThan(goal) {
		return Alert{}, false
	}
	return Alert{
		Message:   AlertMessage,
		RaisedAt:  now,
		ExpiresAt: now.Add(AlertDisplayWindow),
	}, true
}

// Display renders an amount with two decimals.
func Display(d decimal.Decimal) string {
	return d.StringFixed(2)
}
