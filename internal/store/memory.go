package store

import (
	"context"
	"sync"

	"spendwise/internal/logger"
	"spendwise/internal/notify"
	"spendwise/internal/uuid"
)

// Memory is an in-process Store.
type Memory struct {
	feed

	mu    sync.RWMutex
	nodes map[Path]RawTree
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-process store announcing changes on broker.
func NewMemory(broker notify.Broker) *Memory {
	return &Memory{
		feed:  feed{broker: broker, log: logger.Named("store.memory")},
		nodes: make(map[Path]RawTree),
	}
}

// Subscribe implements Store.
func (m *Memory) Subscribe(ctx context.Context, p Path, onSnapshot func(RawTree), onError func(error)) (Unsubscribe, error) {
	return m.subscribe(ctx, p, m.ReadOnce, onSnapshot, onError)
}

// Append implements Store.
func (m *Memory) Append(ctx context.Context, p Path, value any) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", storeError("append", p, err)
	}
	v, err := normalize(value)
	if err != nil {
		return "", err
	}

	id := uuid.New()
	m.mu.Lock()
	node := m.nodes[p]
	if node == nil {
		node = make(RawTree)
		m.nodes[p] = node
	}
	node[id] = v
	m.mu.Unlock()

	m.changed(ctx, p)
	return id, nil
}

// Replace implements Store.
func (m *Memory) Replace(ctx context.Context, p Path, id string, value any) error {
	if err := validateChild(p, id); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return storeError("replace", p, err)
	}
	v, err := normalize(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	node := m.nodes[p]
	if node == nil {
		node = make(RawTree)
		m.nodes[p] = node
	}
	node[id] = v
	m.mu.Unlock()

	m.changed(ctx, p)
	return nil
}

// Remove implements Store.
func (m *Memory) Remove(ctx context.Context, p Path, id string) error {
	if err := validateChild(p, id); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return storeError("remove", p, err)
	}

	m.mu.Lock()
	_, existed := m.nodes[p][id]
	delete(m.nodes[p], id)
	m.mu.Unlock()

	if existed {
		m.changed(ctx, p)
	}
	return nil
}

// Set implements Store.
func (m *Memory) Set(ctx context.Context, p Path, tree RawTree) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return storeError("set", p, err)
	}
	v, err := normalize(tree)
	if err != nil {
		return err
	}
	node, _ := v.(map[string]any)

	m.mu.Lock()
	if len(node) == 0 {
		delete(m.nodes, p)
	} else {
		m.nodes[p] = node
	}
	m.mu.Unlock()

	m.changed(ctx, p)
	return nil
}

// ReadOnce implements Store.
func (m *Memory) ReadOnce(ctx context.Context, p Path) (RawTree, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, storeError("read", p, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return clone(m.nodes[p]), nil
}
