package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/notify"
	"spendwise/internal/store"
)

func newTestStore(t *testing.T) *spyStore {
	t.Helper()
	broker := notify.NewLocal()
	t.Cleanup(func() { _ = broker.Close() })
	return &spyStore{Store: store.NewMemory(broker)}
}

// spyStore counts writes and can be made to fail reads.
type spyStore struct {
	store.Store
	appends  atomic.Int32
	replaces atomic.Int32
	failRead atomic.Bool
}

var errUnavailable = errors.New("backend unavailable")

func (s *spyStore) Append(ctx context.Context, p store.Path, value any) (string, error) {
	s.appends.Add(1)
	return s.Store.Append(ctx, p, value)
}

func (s *spyStore) Replace(ctx context.Context, p store.Path, id string, value any) error {
	s.replaces.Add(1)
	return s.Store.Replace(ctx, p, id, value)
}

func (s *spyStore) ReadOnce(ctx context.Context, p store.Path) (store.RawTree, error) {
	if s.failRead.Load() {
		return nil, apperrors.Wrap(apperrors.ErrStore, errUnavailable)
	}
	return s.Store.ReadOnce(ctx, p)
}
