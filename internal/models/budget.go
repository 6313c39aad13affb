package models

import "github.com/shopspring/decimal"

// MonthlyBudgetField is the single field of the budget node.
const MonthlyBudgetField = "monthlyBudget"

// Budget is the owner's monthly budget together with the spending goal
// derived from it.
type Budget struct {
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	SpendingGoal  decimal.Decimal `json:"spending_goal"`
}
