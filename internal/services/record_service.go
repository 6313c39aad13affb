package services

import (
	"context"
	"strings"
	"time"

	"spendwise/internal/aggregation"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/store"
	"spendwise/internal/validator"
)

// recordService handles one record collection. Incomes and expenses share
// it and differ only in kind.
type recordService struct {
	kind       models.Kind
	collection store.Collection
	notFound   *apperrors.AppError
	store      store.Store
	categories CategoryServicer
	loc        *time.Location
	now        func() time.Time
}

// NewIncomeService creates a RecordServicer for incomes.
func NewIncomeService(st store.Store, loc *time.Location) RecordServicer {
	return newRecordService(models.KindIncome, st, nil, loc)
}

// NewExpenseService creates a RecordServicer for expenses. New category
// labels requested through the sentinel are added with categories.
func NewExpenseService(st store.Store, categories CategoryServicer, loc *time.Location) RecordServicer {
	return newRecordService(models.KindExpense, st, categories, loc)
}

func newRecordService(kind models.Kind, st store.Store, categories CategoryServicer, loc *time.Location) *recordService {
	if loc == nil {
		loc = time.Local
	}
	s := &recordService{
		kind:       kind,
		collection: store.Incomes,
		notFound:   apperrors.ErrIncomeNotFound,
		store:      st,
		categories: categories,
		loc:        loc,
		now:        time.Now,
	}
	if kind == models.KindExpense {
		s.collection = store.Expenses
		s.notFound = apperrors.ErrExpenseNotFound
	}
	return s
}

func (s *recordService) Kind() models.Kind { return s.kind }

func (s *recordService) path(owner string) store.Path {
	return store.PathOf(owner, s.collection)
}

// Create validates in and appends it. Nothing is written when validation
// fails.
func (s *recordService) Create(ctx context.Context, owner string, in RecordInput) (*models.Record, error) {
	rec, err := s.prepare(ctx, owner, in, "")
	if err != nil {
		return nil, err
	}

	id, err := s.store.Append(ctx, s.path(owner), rec.Tree())
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

// List returns one page of the records passing sel, newest first.
func (s *recordService) List(ctx context.Context, owner string, sel aggregation.Selection, page pagination.PageRequest) (*RecordList, error) {
	tree, err := s.store.ReadOnce(ctx, s.path(owner))
	if err != nil {
		return nil, err
	}
	records := aggregation.DecodeRecords(s.kind, tree)
	filtered := aggregation.Filter(records, sel, s.now().In(s.loc))

	return &RecordList{
		PageResponse:  pagination.Slice(filtered, page),
		FilteredTotal: aggregation.Total(filtered),
	}, nil
}

// Get returns a single record.
func (s *recordService) Get(ctx context.Context, owner, id string) (*models.Record, error) {
	tree, err := s.store.ReadOnce(ctx, s.path(owner))
	if err != nil {
		return nil, err
	}
	raw, ok := tree[id]
	if !ok {
		return nil, s.notFound
	}
	decoded := aggregation.DecodeRecords(s.kind, map[string]any{id: raw})
	if len(decoded) == 0 {
		return nil, s.notFound
	}
	return &decoded[0], nil
}

// Update overwrites an existing record, keeping its creation timestamp.
func (s *recordService) Update(ctx context.Context, owner, id string, in RecordInput) (*models.Record, error) {
	existing, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	rec, err := s.prepare(ctx, owner, in, existing.Timestamp)
	if err != nil {
		return nil, err
	}

	if err := s.store.Replace(ctx, s.path(owner), id, rec.Tree()); err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

// Delete removes a record. Deleting a record that no longer exists succeeds.
func (s *recordService) Delete(ctx context.Context, owner, id string) error {
	return s.store.Remove(ctx, s.path(owner), id)
}

// prepare validates in and resolves the new-category sentinel. The category
// label is only added once the record itself has passed validation.
func (s *recordService) prepare(ctx context.Context, owner string, in RecordInput, timestamp string) (models.Record, error) {
	draft := validator.Draft{
		Name:      in.Name,
		Value:     in.Value,
		Category:  in.Category,
		Date:      in.Date,
		Timestamp: timestamp,
	}
	rec, err := validator.ValidateRecord(s.kind, draft, owner, s.now().In(s.loc))
	if err != nil {
		return models.Record{}, err
	}

	if s.kind == models.KindExpense && s.categories != nil &&
		validator.IsNewCategorySentinel(rec.Category) && strings.TrimSpace(in.NewCategory) != "" {
		label, _, err := s.categories.Add(ctx, owner, in.NewCategory)
		if err != nil {
			return models.Record{}, err
		}
		rec.Category = label
	}
	return rec, nil
}
