package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ReferenceCache holds a built reference table.
type ReferenceCache struct {
	// Reference is the built lookup table.
	Reference *Reference

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *ReferenceCache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// referenceStore holds reference caches keyed by source name.
type referenceStore struct {
	mu     sync.RWMutex
	caches map[string]*ReferenceCache
	sf     singleflight.Group
}

var globalReferenceStore = &referenceStore{
	caches: make(map[string]*ReferenceCache),
}

// BuildReference loads the source and builds a reference table.
// It does NOT store the result; use GetOrBuildReference for that.
func BuildReference(ctx context.Context, source ReferenceSource, ttl time.Duration) (*ReferenceCache, error) {
	identities, err := source.LoadReference(ctx)
	if err != nil {
		return nil, err
	}
	return &ReferenceCache{
		Reference: NewReference(identities),
		Built:     time.Now(),
		TTL:       ttl,
	}, nil
}

// GetOrBuildReference returns the cached reference for source, building it when
// missing or expired. Concurrent callers share a single build.
func GetOrBuildReference(ctx context.Context, source ReferenceSource, ttl time.Duration) (*Reference, error) {
	key := source.Name()

	globalReferenceStore.mu.RLock()
	cache, exists := globalReferenceStore.caches[key]
	globalReferenceStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache.Reference, nil
	}

	result, err, _ := globalReferenceStore.sf.Do(key, func() (interface{}, error) {
		globalReferenceStore.mu.RLock()
		cache, exists := globalReferenceStore.caches[key]
		globalReferenceStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache, nil
		}

		built, err := BuildReference(ctx, source, ttl)
		if err != nil {
			return nil, err
		}

		globalReferenceStore.mu.Lock()
		globalReferenceStore.caches[key] = built
		globalReferenceStore.mu.Unlock()

		return built, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*ReferenceCache).Reference, nil
}

// InvalidateReference drops the cached reference for source.
func InvalidateReference(source ReferenceSource) {
	globalReferenceStore.mu.Lock()
	delete(globalReferenceStore.caches, source.Name())
	globalReferenceStore.mu.Unlock()
}
