package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"spendwise/internal/identity"
	"spendwise/internal/logger"
	"spendwise/internal/store"
)

// Manager keeps exactly one Live bound to the current identity. Signing out
// leaves no subscriptions behind.
type Manager struct {
	ctx   context.Context
	store store.Store
	opts  Options
	log   *zap.SugaredLogger

	// onLive is told about every newly opened session, and nil after
	// sign-out or a failed open.
	onLive func(*Live)

	mu          sync.Mutex
	live        *Live
	unsubscribe func()
	closed      bool
}

// NewManager creates a Manager that opens sessions on st with opts.
func NewManager(ctx context.Context, st store.Store, opts Options, onLive func(*Live)) *Manager {
	if onLive == nil {
		onLive = func(*Live) {}
	}
	return &Manager{
		ctx:    ctx,
		store:  st,
		opts:   opts,
		log:    logger.Named("session.manager"),
		onLive: onLive,
	}
}

// Bind starts following p. The current identity is applied before Bind
// returns.
func (m *Manager) Bind(p identity.Provider) {
	unsubscribe := p.Subscribe(m.onIdentity)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		unsubscribe()
		return
	}
	m.unsubscribe = unsubscribe
}

// Current returns the open session, or nil when nobody is signed in.
func (m *Manager) Current() *Live {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live
}

// Close stops following the identity provider and closes the open session.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	live, unsubscribe := m.live, m.unsubscribe
	m.live, m.unsubscribe = nil, nil
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if live != nil {
		live.Close()
	}
}

func (m *Manager) onIdentity(id *identity.Identity) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	prev := m.live
	if prev != nil && id != nil && prev.Owner() == id.UID {
		m.mu.Unlock()
		return
	}
	m.live = nil
	m.mu.Unlock()

	if prev != nil {
		prev.Close()
		m.log.Infow("session released", "owner", prev.Owner())
	}
	if id == nil {
		m.onLive(nil)
		return
	}

	live, err := Open(m.ctx, m.store, id.UID, m.opts)
	if err != nil {
		m.log.Errorw("failed to open session", "owner", id.UID, "error", err)
		m.onLive(nil)
		return
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		live.Close()
		return
	}
	m.live = live
	m.mu.Unlock()

	m.log.Infow("session opened", "owner", id.UID)
	m.onLive(live)
}
