package services

import (
	"context"

	"spendwise/internal/aggregation"
	"spendwise/internal/models"
	"spendwise/internal/store"
	"spendwise/internal/validator"
)

// categoryService handles expense category labels.
type categoryService struct {
	store store.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(st store.Store) CategoryServicer {
	return &categoryService{store: st}
}

// List returns the suggested labels and the owner's own labels.
func (s *categoryService) List(ctx context.Context, owner string) (*models.CategorySet, error) {
	tree, err := s.store.ReadOnce(ctx, store.PathOf(owner, store.Categories))
	if err != nil {
		return nil, err
	}
	suggested := make([]string, len(models.SuggestedExpenseCategories))
	copy(suggested, models.SuggestedExpenseCategories)
	return &models.CategorySet{
		Suggested: suggested,
		Custom:    aggregation.DecodeCategories(tree),
	}, nil
}

// Add stores label unless a suggested or custom label already matches it
// verbatim.
func (s *categoryService) Add(ctx context.Context, owner, label string) (string, bool, error) {
	label, err := validator.ValidateCategory(label)
	if err != nil {
		return "", false, err
	}

	set, err := s.List(ctx, owner)
	if err != nil {
		return "", false, err
	}
	for _, existing := range append(set.Suggested, set.Custom...) {
		if existing == label {
			return label, false, nil
		}
	}

	if _, err := s.store.Append(ctx, store.PathOf(owner, store.Categories), label); err != nil {
		return "", false, err
	}
	return label, true, nil
}
