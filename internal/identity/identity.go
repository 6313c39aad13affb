// Package identity tracks who is signed in and tells interested parties when
// that changes.
package identity

import (
	"sync"
)

// Identity is an authenticated user. UID scopes every store path the user
// may touch.
type Identity struct {
	UID   string
	Email string
}

// Provider reports the current identity and every change to it.
type Provider interface {
	// Subscribe calls onChange with the current identity (nil when signed
	// out) and again after each change, until the returned function is called.
	Subscribe(onChange func(*Identity)) (unsubscribe func())
}

// Hub is an in-process Provider. The zero value is not usable; call NewHub.
type Hub struct {
	mu        sync.Mutex
	current   *Identity
	listeners map[int]func(*Identity)
	nextID    int

	// notifyMu keeps change deliveries in order across concurrent
	// SignIn/SignOut calls.
	notifyMu sync.Mutex
}

var _ Provider = (*Hub)(nil)

// NewHub returns a Hub with nobody signed in.
func NewHub() *Hub {
	return &Hub{listeners: make(map[int]func(*Identity))}
}

// Subscribe implements Provider. Callbacks run on the goroutine that caused
// the change and must not call Subscribe or the returned unsubscribe.
func (h *Hub) Subscribe(onChange func(*Identity)) func() {
	h.notifyMu.Lock()
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = onChange
	cur := copyOf(h.current)
	h.mu.Unlock()

	onChange(cur)
	h.notifyMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

// SignIn makes id the current identity.
func (h *Hub) SignIn(id Identity) {
	h.set(&id)
}

// SignOut clears the current identity. Signing out while nobody is signed in
// notifies nobody.
func (h *Hub) SignOut() {
	h.set(nil)
}

// Current returns the signed-in identity, or nil.
func (h *Hub) Current() *Identity {
	h.mu.Lock()
	defer h.mu.Unlock()
	return copyOf(h.current)
}

func (h *Hub) set(next *Identity) {
	h.notifyMu.Lock()
	defer h.notifyMu.Unlock()

	h.mu.Lock()
	if next == nil && h.current == nil {
		h.mu.Unlock()
		return
	}
	h.current = next
	listeners := make([]func(*Identity), 0, len(h.listeners))
	for _, fn := range h.listeners {
		listeners = append(listeners, fn)
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(copyOf(next))
	}
}

func copyOf(id *Identity) *Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
