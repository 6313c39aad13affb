package notify

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by a broker after Close.
var ErrClosed = errors.New("notify: broker closed")

// Local is an in-process Broker.
type Local struct {
	mu     sync.Mutex
	subs   map[string]map[chan struct{}]struct{}
	closed bool
}

// NewLocal creates an in-process broker.
func NewLocal() *Local {
	return &Local{subs: make(map[string]map[chan struct{}]struct{})}
}

// Publish implements Broker.
func (l *Local) Publish(_ context.Context, topic string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	for ch := range l.subs[topic] {
		signal(ch)
	}
	return nil
}

// Subscribe implements Broker.
func (l *Local) Subscribe(_ context.Context, topic string) (<-chan struct{}, func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil, nil, ErrClosed
	}

	ch := make(chan struct{}, 1)
	if l.subs[topic] == nil {
		l.subs[topic] = make(map[chan struct{}]struct{})
	}
	l.subs[topic][ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if _, ok := l.subs[topic][ch]; !ok {
				return
			}
			delete(l.subs[topic], ch)
			if len(l.subs[topic]) == 0 {
				delete(l.subs, topic)
			}
			close(ch)
		})
	}
	return ch, cancel, nil
}

// Subscribers returns the number of live subscriptions on topic.
func (l *Local) Subscribers(topic string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs[topic])
}

// Close closes every subscription channel. Later calls fail with ErrClosed.
func (l *Local) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	for topic, chans := range l.subs {
		for ch := range chans {
			close(ch)
		}
		delete(l.subs, topic)
	}
	return nil
}
