package services

import (
	"context"

	"spendwise/internal/models"
	"spendwise/internal/store"
)

type profileService struct {
	store store.Store
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(st store.Store) ProfileServicer {
	return &profileService{store: st}
}

// Get returns the stored profile. An owner who never saved one gets an
// empty profile.
func (s *profileService) Get(ctx context.Context, owner string) (*models.Profile, error) {
	tree, err := s.store.ReadOnce(ctx, store.PathOf(owner, store.Profile))
	if err != nil {
		return nil, err
	}
	p := models.ProfileFromTree(tree)
	return &p, nil
}

// Update overwrites the whole profile.
func (s *profileService) Update(ctx context.Context, owner string, p models.Profile) (*models.Profile, error) {
	if err := s.store.Set(ctx, store.PathOf(owner, store.Profile), p.Tree()); err != nil {
		return nil, err
	}
	return &p, nil
}
