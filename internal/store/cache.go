package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
)

// SnapshotCache keeps recent ReadOnce results keyed by path. Every mutation
// bumps the path's generation, and a read only populates the cache if no
// mutation happened while it was in flight. Entries expire after ttl when
// it is positive.
type SnapshotCache struct {
	cache *ristretto.Cache
	ttl   time.Duration

	mu          sync.Mutex
	generations map[string]uint64
}

// NewSnapshotCache creates a cache admitting up to maxCost children across
// all cached snapshots. A ttl of zero keeps entries until evicted.
func NewSnapshotCache(maxCost int64, ttl time.Duration) (*SnapshotCache, error) {
	if maxCost <= 0 {
		return nil, fmt.Errorf("cache max cost must be positive, got %d", maxCost)
	}
	if ttl < 0 {
		return nil, fmt.Errorf("cache ttl must not be negative, got %s", ttl)
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot cache: %w", err)
	}
	return &SnapshotCache{cache: c, ttl: ttl, generations: make(map[string]uint64)}, nil
}

// Generation returns the current generation of key. Capture it before
// reading the backing store and hand it to Put.
func (s *SnapshotCache) Generation(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[key]
}

// Get returns a copy of the cached snapshot for key.
func (s *SnapshotCache) Get(key string) (RawTree, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	tree, ok := v.(RawTree)
	if !ok {
		return nil, false
	}
	return clone(tree), true
}

// Put caches tree for key unless key was invalidated after gen was taken.
func (s *SnapshotCache) Put(key string, gen uint64, tree RawTree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[key] != gen {
		return
	}
	s.cache.SetWithTTL(key, clone(tree), int64(len(tree))+1, s.ttl)
}

// Invalidate drops key and advances its generation.
func (s *SnapshotCache) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[key]++
	s.cache.Del(key)
}

// Wait blocks until buffered writes have been applied.
func (s *SnapshotCache) Wait() {
	s.cache.Wait()
}

// Close stops the cache's background goroutines.
func (s *SnapshotCache) Close() {
	s.cache.Close()
}
