package services

import (
	"context"

	"spendwise/internal/aggregation"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/store"
	"spendwise/internal/validator"
)

// budgetService handles the owner's monthly budget.
type budgetService struct {
	store store.Store
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(st store.Store) BudgetServicer {
	return &budgetService{store: st}
}

// Set validates and overwrites the monthly budget.
func (s *budgetService) Set(ctx context.Context, owner string, value any) (*models.Budget, error) {
	amount, err := validator.ValidateBudget(value)
	if err != nil {
		return nil, err
	}

	tree := store.RawTree{models.MonthlyBudgetField: amount.InexactFloat64()}
	if err := s.store.Set(ctx, store.PathOf(owner, store.Budget), tree); err != nil {
		return nil, err
	}
	return &models.Budget{
		MonthlyBudget: amount,
		SpendingGoal:  aggregation.SpendingGoal(amount),
	}, nil
}

// Get returns the monthly budget and its spending goal.
func (s *budgetService) Get(ctx context.Context, owner string) (*models.Budget, error) {
	tree, err := s.store.ReadOnce(ctx, store.PathOf(owner, store.Budget))
	if err != nil {
		return nil, err
	}
	amount, ok, err := aggregation.DecodeBudget(tree)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrBudgetNotFound
	}
	return &models.Budget{
		MonthlyBudget: amount,
		SpendingGoal:  aggregation.SpendingGoal(amount),
	}, nil
}
