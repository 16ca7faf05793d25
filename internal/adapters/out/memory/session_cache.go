package memory

import (
	"context"
	"maps"
	"sync"

	"deliverydesk/internal/core/ports"
)

// SessionCache is the in-process session cache backend.
type SessionCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewSessionCache creates an empty cache.
func NewSessionCache() *SessionCache {
	return &SessionCache{entries: make(map[string]string)}
}

// Get returns the value stored under key.
func (c *SessionCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	return v, ok, nil
}

// Set stores value under key.
func (c *SessionCache) Set(_ context.Context, key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = value
	return nil
}

func (c *SessionCache) apply(pending map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	maps.Copy(c.entries, pending)
}

// CacheUnitOfWorkFactory creates units of work that write several cache
// entries at once.
type CacheUnitOfWorkFactory struct {
	cache *SessionCache
}

// NewCacheUnitOfWorkFactory creates a factory over cache.
func NewCacheUnitOfWorkFactory(cache *SessionCache) *CacheUnitOfWorkFactory {
	return &CacheUnitOfWorkFactory{cache: cache}
}

// Create returns a new, inactive unit of work.
func (f *CacheUnitOfWorkFactory) Create() ports.CacheUnitOfWork {
	return &CacheUnitOfWork{cache: f.cache}
}

// CacheUnitOfWork buffers Set calls and applies them together on Commit.
// Outside Begin the bound cache writes straight through.
type CacheUnitOfWork struct {
	cache   *SessionCache
	pending map[string]string
}

// Begin starts buffering. Calling it again while active is a no-op.
func (uow *CacheUnitOfWork) Begin(_ context.Context) error {
	if uow.pending == nil {
		uow.pending = make(map[string]string)
	}
	return nil
}

// Commit applies every buffered write.
func (uow *CacheUnitOfWork) Commit(_ context.Context) error {
	if uow.pending == nil {
		return ErrUnitOfWorkIsNotActive
	}

	uow.cache.apply(uow.pending)
	uow.pending = nil
	return nil
}

// Rollback drops every buffered write.
func (uow *CacheUnitOfWork) Rollback(_ context.Context) error {
	if uow.pending == nil {
		return ErrUnitOfWorkIsNotActive
	}

	uow.pending = nil
	return nil
}

// SessionCache returns a cache view that sees the buffered writes.
func (uow *CacheUnitOfWork) SessionCache() ports.SessionCache {
	return &stagedCache{uow: uow}
}

type stagedCache struct {
	uow *CacheUnitOfWork
}

func (s *stagedCache) Get(ctx context.Context, key string) (string, bool, error) {
	if s.uow.pending != nil {
		if v, ok := s.uow.pending[key]; ok {
			return v, true, nil
		}
	}
	return s.uow.cache.Get(ctx, key)
}

func (s *stagedCache) Set(ctx context.Context, key string, value string) error {
	if s.uow.pending == nil {
		return s.uow.cache.Set(ctx, key, value)
	}

	s.uow.pending[key] = value
	return nil
}
