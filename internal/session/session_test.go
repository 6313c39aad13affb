package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"spendwise/internal/aggregation"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/identity"
	"spendwise/internal/notify"
	"spendwise/internal/store"
	"spendwise/internal/testutil"
)

const waitFor = 2 * time.Second

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newStore(t *testing.T) (*store.Memory, *notify.Local) {
	t.Helper()
	b := notify.NewLocal()
	t.Cleanup(func() { _ = b.Close() })
	return store.NewMemory(b), b
}

func testOptions() Options {
	return Options{Location: time.UTC, Now: func() time.Time { return fixedNow }}
}

// nextView reads views until one satisfies cond.
func nextView(t *testing.T, l *Live, desc string, cond func(View) bool) View {
	t.Helper()
	deadline := time.After(waitFor)
	for {
		select {
		case v, ok := <-l.Views():
			if !ok {
				t.Fatalf("views closed while waiting for %s", desc)
			}
			if cond(v) {
				return v
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", desc)
		}
	}
}

func subscribers(b *notify.Local, owner string) int {
	n := 0
	for _, c := range watched {
		n += b.Subscribers(store.PathOf(owner, c).String())
	}
	return n
}

func expense(name string, cost float64, category, date string) map[string]any {
	return map[string]any{
		"name": name, "cost": cost, "category": category, "date": date,
		"timestamp": "2024-06-15T12:00:00.000Z",
	}
}

func TestLive(t *testing.T) {
	ctx := context.Background()

	t.Run("renders initial view", func(t *testing.T) {
		st, _ := newStore(t)
		owner := testutil.OwnerID()
		_, err := st.Append(ctx, store.PathOf(owner, store.Incomes), map[string]any{"name": "Pay", "amount": "200"})
		testutil.AssertNoError(t, err)
		_, err = st.Append(ctx, store.PathOf(owner, store.Expenses), expense("Food", 150, "Food", "2024-06-15"))
		testutil.AssertNoError(t, err)

		l, err := Open(ctx, st, owner, testOptions())
		testutil.AssertNoError(t, err)
		defer l.Close()

		v := nextView(t, l, "initial view", func(View) bool { return true })
		if v.Summary.Remaining.String() != "50" {
			t.Errorf("expected remaining 50, got %s", v.Summary.Remaining)
		}
		if v.Owner != owner {
			t.Errorf("expected owner %s, got %s", owner, v.Owner)
		}
		if len(v.Categories.Suggested) == 0 {
			t.Error("expected suggested categories")
		}
	})

	t.Run("re-renders on push", func(t *testing.T) {
		st, _ := newStore(t)
		owner := testutil.OwnerID()

		l, err := Open(ctx, st, owner, testOptions())
		testutil.AssertNoError(t, err)
		defer l.Close()
		nextView(t, l, "initial view", func(View) bool { return true })

		_, err = st.Append(ctx, store.PathOf(owner, store.Expenses), expense("Fuel", 40, "Fuel", "2024-06-15"))
		testutil.AssertNoError(t, err)
		nextView(t, l, "expense pushed", func(v View) bool { return v.Summary.TotalExpense.String() == "40" })

		_, err = st.Append(ctx, store.PathOf(owner, store.Categories), "Pets")
		testutil.AssertNoError(t, err)
		nextView(t, l, "category pushed", func(v View) bool {
			return len(v.Categories.Custom) == 1 && v.Categories.Custom[0] == "Pets"
		})
	})

	t.Run("selection filters the expense list", func(t *testing.T) {
		st, _ := newStore(t)
		owner := testutil.OwnerID()
		p := store.PathOf(owner, store.Expenses)
		_, _ = st.Append(ctx, p, expense("Old", 100, "Rent", "2024-01-01"))
		_, _ = st.Append(ctx, p, expense("New", 50, "Food", "2024-06-15"))

		l, err := Open(ctx, st, owner, testOptions())
		testutil.AssertNoError(t, err)
		defer l.Close()
		nextView(t, l, "initial view", func(v View) bool { return len(v.Summary.Expenses) == 2 })

		l.SetSelection(aggregation.Selection{Date: aggregation.DateToday})
		v := nextView(t, l, "filtered view", func(v View) bool { return len(v.Summary.Expenses) == 1 })
		if v.Summary.FilteredTotal.String() != "50" {
			t.Errorf("expected filtered total 50, got %s", v.Summary.FilteredTotal)
		}
		if v.Summary.TotalExpense.String() != "150" {
			t.Errorf("expected household total 150, got %s", v.Summary.TotalExpense)
		}
	})

	t.Run("alert clears after its window", func(t *testing.T) {
		st, _ := newStore(t)
		owner := testutil.OwnerID()
		testutil.AssertNoError(t, st.Set(ctx, store.PathOf(owner, store.Budget), store.RawTree{"monthlyBudget": 1000.0}))

		opts := testOptions()
		opts.AlertWindow = 200 * time.Millisecond
		l, err := Open(ctx, st, owner, opts)
		testutil.AssertNoError(t, err)
		defer l.Close()
		nextView(t, l, "initial view", func(v View) bool { return v.Summary.HasBudget })

		_, err = st.Append(ctx, store.PathOf(owner, store.Expenses), expense("Rent", 850, "Rent", "2024-06-01"))
		testutil.AssertNoError(t, err)

		raised := nextView(t, l, "alert", func(v View) bool { return v.Summary.Alert != nil })
		if raised.Summary.Alert.Message != aggregation.AlertMessage {
			t.Errorf("unexpected alert message %q", raised.Summary.Alert.Message)
		}
		nextView(t, l, "cleared alert", func(v View) bool { return v.Summary.Alert == nil })
	})

	t.Run("no alert below the goal", func(t *testing.T) {
		st, _ := newStore(t)
		owner := testutil.OwnerID()
		testutil.AssertNoError(t, st.Set(ctx, store.PathOf(owner, store.Budget), store.RawTree{"monthlyBudget": 1000.0}))
		_, _ = st.Append(ctx, store.PathOf(owner, store.Expenses), expense("Rent", 700, "Rent", "2024-06-01"))

		l, err := Open(ctx, st, owner, testOptions())
		testutil.AssertNoError(t, err)
		defer l.Close()

		v := nextView(t, l, "initial view", func(View) bool { return true })
		if v.Summary.Alert != nil {
			t.Errorf("expected no alert, got %+v", v.Summary.Alert)
		}
	})

	t.Run("close releases subscriptions", func(t *testing.T) {
		st, b := newStore(t)
		owner := testutil.OwnerID()

		l, err := Open(ctx, st, owner, testOptions())
		testutil.AssertNoError(t, err)
		nextView(t, l, "initial view", func(View) bool { return true })
		if n := subscribers(b, owner); n != len(watched) {
			t.Fatalf("expected %d subscriptions, got %d", len(watched), n)
		}

		l.Close()
		l.Close()

		if n := subscribers(b, owner); n != 0 {
			t.Errorf("expected no subscriptions after close, got %d", n)
		}
		for range l.Views() {
		}
		l.SetSelection(aggregation.Selection{Category: "Food"})
	})

	t.Run("open fails on invalid owner", func(t *testing.T) {
		st, _ := newStore(t)

		_, err := Open(ctx, st, "", testOptions())
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

type liveRecorder struct {
	mu    sync.Mutex
	lives []*Live
}

func (r *liveRecorder) record(l *Live) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lives = append(r.lives, l)
}

func (r *liveRecorder) last() *Live {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lives) == 0 {
		return nil
	}
	return r.lives[len(r.lives)-1]
}

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("follows identity changes", func(t *testing.T) {
		st, b := newStore(t)
		hub := identity.NewHub()
		rec := &liveRecorder{}
		m := NewManager(ctx, st, testOptions(), rec.record)
		defer m.Close()

		m.Bind(hub)
		if m.Current() != nil {
			t.Fatal("expected no session while signed out")
		}

		hub.SignIn(identity.Identity{UID: "alice"})
		first := m.Current()
		if first == nil || first.Owner() != "alice" {
			t.Fatalf("expected session for alice, got %v", first)
		}
		if n := subscribers(b, "alice"); n != len(watched) {
			t.Errorf("expected %d subscriptions for alice, got %d", len(watched), n)
		}

		hub.SignIn(identity.Identity{UID: "bob"})
		if n := subscribers(b, "alice"); n != 0 {
			t.Errorf("expected alice's subscriptions to be released, got %d", n)
		}
		if m.Current() == nil || m.Current().Owner() != "bob" {
			t.Fatalf("expected session for bob")
		}

		hub.SignOut()
		if m.Current() != nil {
			t.Error("expected no session after sign out")
		}
		if n := subscribers(b, "bob"); n != 0 {
			t.Errorf("expected bob's subscriptions to be released, got %d", n)
		}
		if rec.last() != nil {
			t.Error("expected sign out to be reported as nil")
		}
	})

	t.Run("same identity keeps the session", func(t *testing.T) {
		st, _ := newStore(t)
		hub := identity.NewHub()
		m := NewManager(ctx, st, testOptions(), nil)
		defer m.Close()
		m.Bind(hub)

		hub.SignIn(identity.Identity{UID: "alice"})
		first := m.Current()
		hub.SignIn(identity.Identity{UID: "alice", Email: "alice@example.com"})
		if m.Current() != first {
			t.Error("expected session to be kept for the same owner")
		}
	})

	t.Run("binding while signed in opens immediately", func(t *testing.T) {
		st, _ := newStore(t)
		hub := identity.NewHub()
		hub.SignIn(identity.Identity{UID: "carol"})

		m := NewManager(ctx, st, testOptions(), nil)
		defer m.Close()
		m.Bind(hub)

		live := m.Current()
		if live == nil {
			t.Fatal("expected session")
		}
		nextView(t, live, "initial view", func(View) bool { return true })
	})

	t.Run("close releases everything", func(t *testing.T) {
		st, b := newStore(t)
		hub := identity.NewHub()
		m := NewManager(ctx, st, testOptions(), nil)
		m.Bind(hub)
		hub.SignIn(identity.Identity{UID: "dave"})

		m.Close()
		m.Close()
		if n := subscribers(b, "dave"); n != 0 {
			t.Errorf("expected no subscriptions after close, got %d", n)
		}

		hub.SignIn(identity.Identity{UID: "erin"})
		if m.Current() != nil {
			t.Error("expected closed manager to ignore identity changes")
		}
	})
}

// unreadableStore fails the initial read of one collection until heal is
// closed, then subscribes it normally.
type unreadableStore struct {
	store.Store
	broken store.Collection
	heal   chan struct{}
}

func (s *unreadableStore) Subscribe(ctx context.Context, p store.Path, onSnapshot func(store.RawTree), onError func(error)) (store.Unsubscribe, error) {
	if p.Collection != s.broken {
		return s.Store.Subscribe(ctx, p, onSnapshot, onError)
	}

	sctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	var inner store.Unsubscribe
	go func() {
		defer close(done)
		onError(apperrors.Wrap(apperrors.ErrStore, errors.New("read timeout")))
		select {
		case <-s.heal:
		case <-sctx.Done():
			return
		}
		inner, _ = s.Store.Subscribe(sctx, p, onSnapshot, onError)
	}()
	return func() {
		cancel()
		<-done
		if inner != nil {
			inner()
		}
	}, nil
}

func TestLive_store_failures(t *testing.T) {
	ctx := context.Background()

	t.Run("failed initial read emits a notice, then the view", func(t *testing.T) {
		mem, _ := newStore(t)
		st := &unreadableStore{Store: mem, broken: store.Budget, heal: make(chan struct{})}
		owner := testutil.OwnerID()
		_, err := st.Append(ctx, store.PathOf(owner, store.Expenses), expense("Food", 20, "Food", "2024-06-15"))
		testutil.AssertNoError(t, err)

		l, err := Open(ctx, st, owner, testOptions())
		testutil.AssertNoError(t, err)
		defer l.Close()

		v := nextView(t, l, "notice", func(v View) bool { return v.Notice != "" })
		if !v.Loading {
			t.Error("expected view to be marked as loading")
		}
		if v.Notice != apperrors.ErrStore.Message {
			t.Errorf("expected store error message, got %q", v.Notice)
		}
		if v.Owner != owner {
			t.Errorf("expected owner %s, got %s", owner, v.Owner)
		}

		close(st.heal)
		v = nextView(t, l, "recovered view", func(v View) bool { return !v.Loading })
		if v.Notice != "" {
			t.Errorf("expected notice to clear, got %q", v.Notice)
		}
		if got := v.Summary.TotalExpense.String(); got != "20" {
			t.Errorf("expected total expense 20, got %s", got)
		}
	})

	t.Run("failure after load keeps figures and flags them", func(t *testing.T) {
		st, _ := newStore(t)
		owner := testutil.OwnerID()
		_, err := st.Append(ctx, store.PathOf(owner, store.Expenses), expense("Food", 20, "Food", "2024-06-15"))
		testutil.AssertNoError(t, err)

		l, err := Open(ctx, st, owner, testOptions())
		testutil.AssertNoError(t, err)
		defer l.Close()
		nextView(t, l, "initial view", func(View) bool { return true })

		l.onError(store.Expenses)(apperrors.ErrStore)
		v := nextView(t, l, "flagged view", func(v View) bool { return v.Notice != "" })
		if v.Loading {
			t.Error("expected a full view")
		}
		if got := v.Summary.TotalExpense.String(); got != "20" {
			t.Errorf("expected last known total 20, got %s", got)
		}

		_, err = st.Append(ctx, store.PathOf(owner, store.Expenses), expense("Bus", 5, "Transportation", "2024-06-15"))
		testutil.AssertNoError(t, err)
		v = nextView(t, l, "fresh view", func(v View) bool { return v.Summary.TotalExpense.String() == "25" })
		if v.Notice != "" {
			t.Errorf("expected notice to clear, got %q", v.Notice)
		}
	})
}
