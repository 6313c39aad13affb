// Package session keeps a live, push-driven view of one owner's household
// and rebinds it whenever the signed-in identity changes.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"spendwise/internal/aggregation"
	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/store"
)

// watched are the collections a Live subscribes to.
var watched = []store.Collection{store.Incomes, store.Expenses, store.Categories, store.Budget}

// View is one rendering of an owner's household.
//
// Notice is set while a collection cannot be read. If that happens before
// every collection has loaded, Loading is true and Summary is empty.
type View struct {
	Owner      string              `json:"owner"`
	Summary    aggregation.Summary `json:"summary"`
	Categories models.CategorySet  `json:"categories"`
	Notice     string              `json:"notice,omitempty"`
	Loading    bool                `json:"loading,omitempty"`
}

// Options tune a Live. The zero value is usable.
type Options struct {
	Selection aggregation.Selection
	// Location is where date filters are evaluated. Defaults to time.Local.
	Location *time.Location
	// AlertWindow is how long a raised alert stays visible. Defaults to
	// aggregation.AlertDisplayWindow.
	AlertWindow time.Duration
	Now         func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.AlertWindow <= 0 {
		o.AlertWindow = aggregation.AlertDisplayWindow
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Live renders a View after every push on any of the owner's collections.
// Views are only ever derived from store snapshots; a mutation shows up
// once its push arrives.
type Live struct {
	owner string
	opts  Options
	log   *zap.SugaredLogger
	views chan View

	mu         sync.Mutex
	trees      map[store.Collection]store.RawTree
	failures   map[store.Collection]error
	sel        aggregation.Selection
	alert      *aggregation.Alert
	alertTimer *time.Timer
	unsubs     []store.Unsubscribe
	closed     bool
}

// Open subscribes to owner's collections. The first View is emitted once
// every collection has delivered its initial snapshot.
func Open(ctx context.Context, st store.Store, owner string, opts Options) (*Live, error) {
	opts = opts.withDefaults()
	l := &Live{
		owner:    owner,
		opts:     opts,
		log:      logger.Named("session").With("owner", owner),
		views:    make(chan View, 1),
		trees:    make(map[store.Collection]store.RawTree, len(watched)),
		failures: make(map[store.Collection]error),
		sel:      opts.Selection,
	}

	unsubs := make([]store.Unsubscribe, 0, len(watched))
	for _, c := range watched {
		unsub, err := st.Subscribe(ctx, store.PathOf(owner, c), l.onSnapshot(c), l.onError(c))
		if err != nil {
			for _, u := range unsubs {
				u()
			}
			l.mu.Lock()
			l.closed = true
			close(l.views)
			l.mu.Unlock()
			return nil, err
		}
		unsubs = append(unsubs, unsub)
	}

	l.mu.Lock()
	l.unsubs = unsubs
	l.mu.Unlock()
	l.log.Debugw("session opened")
	return l, nil
}

// Owner returns the owner this session renders.
func (l *Live) Owner() string { return l.owner }

// Views delivers rendered views. Only the latest undelivered view is kept;
// a slow reader skips intermediate ones. The channel is closed by Close.
func (l *Live) Views() <-chan View { return l.views }

// SetSelection changes the filters and re-renders without raising a new
// alert.
func (l *Live) SetSelection(sel aggregation.Selection) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.sel = sel
	l.render(false)
}

// Close releases every subscription and stops the alert timer. It is safe to
// call more than once but must not be called while receiving a snapshot
// callback of this session.
func (l *Live) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	if l.alertTimer != nil {
		l.alertTimer.Stop()
	}
	unsubs := l.unsubs
	l.unsubs = nil
	close(l.views)
	l.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
	l.log.Debugw("session closed")
}

func (l *Live) onSnapshot(c store.Collection) func(store.RawTree) {
	return func(tree store.RawTree) {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed {
			return
		}
		l.trees[c] = tree
		delete(l.failures, c)
		l.render(true)
	}
}

// onError keeps the last rendered figures and flags them with a notice.
// The store retries the read, and the next snapshot clears the notice.
func (l *Live) onError(c store.Collection) func(error) {
	return func(err error) {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed {
			return
		}
		l.log.Warnw("collection unreadable", "collection", c, "error", err)
		l.failures[c] = err
		l.render(false)
	}
}

// notice must be called with l.mu held.
func (l *Live) notice() string {
	for _, c := range watched {
		if err, ok := l.failures[c]; ok {
			return err.Error()
		}
	}
	return ""
}

// render must be called with l.mu held.
func (l *Live) render(raise bool) {
	if len(l.trees) < len(watched) {
		if n := l.notice(); n != "" {
			l.publish(View{Owner: l.owner, Notice: n, Loading: true})
		}
		return
	}

	now := l.opts.Now().In(l.opts.Location)
	in, err := aggregation.FromTrees(l.trees[store.Incomes], l.trees[store.Expenses], l.trees[store.Budget])
	if err != nil {
		l.log.Warnw("budget unreadable, treating as unset", "error", err)
	}
	summary := aggregation.Summarize(in, l.sel, now)

	switch {
	case summary.Alert == nil:
		l.clearAlert()
	case l.alert != nil:
		// Already showing.
	case raise:
		l.raiseAlert(*summary.Alert, now)
	}
	summary.Alert = l.alert

	suggested := make([]string, len(models.SuggestedExpenseCategories))
	copy(suggested, models.SuggestedExpenseCategories)

	l.publish(View{
		Owner:   l.owner,
		Summary: summary,
		Categories: models.CategorySet{
			Suggested: suggested,
			Custom:    aggregation.DecodeCategories(l.trees[store.Categories]),
		},
		Notice: l.notice(),
	})
}

func (l *Live) raiseAlert(a aggregation.Alert, now time.Time) {
	a.RaisedAt = now
	a.ExpiresAt = now.Add(l.opts.AlertWindow)
	l.alert = &a
	l.alertTimer = time.AfterFunc(l.opts.AlertWindow, l.expireAlert(l.alert))
}

func (l *Live) clearAlert() {
	if l.alertTimer != nil {
		l.alertTimer.Stop()
		l.alertTimer = nil
	}
	l.alert = nil
}

// expireAlert hides a when its window ends, unless it has been replaced or
// cleared in the meantime.
func (l *Live) expireAlert(a *aggregation.Alert) func() {
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed || l.alert != a {
			return
		}
		l.alertTimer = nil
		l.alert = nil
		l.render(false)
	}
}

// publish replaces any undelivered view with v. Called with l.mu held.
func (l *Live) publish(v View) {
	select {
	case <-l.views:
	default:
	}
	select {
	case l.views <- v:
	default:
	}
}
