package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/notify"
)

const (
	defaultRetryMin = 250 * time.Millisecond
	defaultRetryMax = 10 * time.Second
)

// feed turns broker signals into snapshot callbacks. Both backends embed it.
type feed struct {
	broker notify.Broker
	log    *zap.SugaredLogger

	// Bounds of the backoff between attempts after a failed read.
	retryMin, retryMax time.Duration
}

// changed announces a mutation of p. The mutation itself has succeeded, so
// a failed announcement is logged rather than returned.
func (f feed) changed(ctx context.Context, p Path) {
	if err := f.broker.Publish(ctx, p.String()); err != nil {
		f.log.Warnw("change notification failed", "path", p.String(), "error", err)
	}
}

func (f feed) backoff(prev time.Duration) time.Duration {
	lo, hi := f.retryMin, f.retryMax
	if lo <= 0 {
		lo = defaultRetryMin
	}
	if hi < lo {
		hi = max(defaultRetryMax, lo)
	}
	if prev <= 0 {
		return lo
	}
	return min(prev*2, hi)
}

// subscribe runs one goroutine per subscription. A failed read is reported
// through onError and retried until a snapshot gets through, so a
// subscriber is never left without its initial snapshot.
func (f feed) subscribe(ctx context.Context, p Path, read func(context.Context, Path) (RawTree, error), onSnapshot func(RawTree), onError func(error)) (Unsubscribe, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	signals, cancelSignals, err := f.broker.Subscribe(ctx, p.String())
	if err != nil {
		return nil, storeError("subscribe", p, err)
	}

	wctx, stop := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer cancelSignals()

		var (
			retry  *time.Timer
			retryC <-chan time.Time
			wait   time.Duration
		)
		stopRetry := func() {
			if retry != nil {
				retry.Stop()
			}
			retry, retryC = nil, nil
		}
		defer stopRetry()

		deliver := func() {
			tree, err := read(wctx, p)
			if wctx.Err() != nil {
				return
			}
			if err != nil {
				f.log.Warnw("snapshot read failed", "path", p.String(), "error", err)
				if onError != nil {
					if !errors.Is(err, apperrors.ErrStore) {
						err = storeError("read", p, err)
					}
					onError(err)
				}
				stopRetry()
				wait = f.backoff(wait)
				retry = time.NewTimer(wait)
				retryC = retry.C
				return
			}
			stopRetry()
			wait = 0
			onSnapshot(tree)
		}

		deliver()
		for {
			select {
			case <-wctx.Done():
				return
			case <-retryC:
				retry, retryC = nil, nil
				deliver()
			case _, ok := <-signals:
				if !ok {
					return
				}
				deliver()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			stop()
			<-done
		})
	}, nil
}
