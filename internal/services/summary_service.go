package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"spendwise/internal/aggregation"
	"spendwise/internal/logger"
	"spendwise/internal/store"
)

type summaryService struct {
	store store.Store
	loc   *time.Location
	now   func() time.Time
	log   *zap.SugaredLogger
}

// NewSummaryService creates a new SummaryServicer evaluating date filters in
// loc.
func NewSummaryService(st store.Store, loc *time.Location) SummaryServicer {
	if loc == nil {
		loc = time.Local
	}
	return &summaryService{store: st, loc: loc, now: time.Now, log: logger.Named("summary")}
}

// Summary reads the owner's incomes, expenses and budget concurrently and
// derives the household view.
func (s *summaryService) Summary(ctx context.Context, owner string, sel aggregation.Selection) (*aggregation.Summary, error) {
	var incomes, expenses, budget store.RawTree

	g, gctx := errgroup.WithContext(ctx)
	read := func(c store.Collection, dst *store.RawTree) {
		g.Go(func() error {
			tree, err := s.store.ReadOnce(gctx, store.PathOf(owner, c))
			*dst = tree
			return err
		})
	}
	read(store.Incomes, &incomes)
	read(store.Expenses, &expenses)
	read(store.Budget, &budget)
	if err := g.Wait(); err != nil {
		return nil, err
	}

	in, err := aggregation.FromTrees(incomes, expenses, budget)
	if err != nil {
		s.log.Warnw("budget unreadable, treating as unset", "owner", owner, "error", err)
	}
	summary := aggregation.Summarize(in, sel, s.now().In(s.loc))
	return &summary, nil
}
