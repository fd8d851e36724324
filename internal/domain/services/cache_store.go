package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"resident-records-service/pkg/logger"
)

// InterfaceCacheStore holds rendered responses keyed by request.
type InterfaceCacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Purge(ctx context.Context, prefix string)
}

// MemoryCacheStore is a process local cache store.
type MemoryCacheStore struct {
	mu    sync.RWMutex
	items map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	content    []byte
	expiration time.Time
}

func NewMemoryCacheStore() *MemoryCacheStore {
	return &MemoryCacheStore{items: make(map[string]memoryCacheEntry)}
}

func (m *MemoryCacheStore) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, found := m.items[key]
	m.mu.RUnlock()

	if !found || !entry.expiration.After(time.Now()) {
		return nil, false
	}
	return entry.content, true
}

func (m *MemoryCacheStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// drop expired entries while holding the lock anyway
	now := time.Now()
	for k, e := range m.items {
		if !e.expiration.After(now) {
			delete(m.items, k)
		}
	}
	m.items[key] = memoryCacheEntry{content: value, expiration: now.Add(ttl)}
}

func (m *MemoryCacheStore) Purge(_ context.Context, prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}
}

// Len returns the number of stored entries, expired ones included.
func (m *MemoryCacheStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// RedisCacheStore keeps responses in redis so replicas share them. Redis
// failures degrade to cache misses.
type RedisCacheStore struct {
	Redis InterfaceRedisService
}

func NewRedisCacheStore(redis InterfaceRedisService) *RedisCacheStore {
	return &RedisCacheStore{Redis: redis}
}

func (r *RedisCacheStore) Get(ctx context.Context, key string) ([]byte, bool) {
	value, found, err := r.Redis.GetBytes(ctx, key)
	if err != nil {
		logger.Warning("cache get %s: %v", key, err)
		return nil, false
	}
	return value, found
}

func (r *RedisCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := r.Redis.SetBytes(ctx, key, value, ttl); err != nil {
		logger.Warning("cache set %s: %v", key, err)
	}
}

func (r *RedisCacheStore) Purge(ctx context.Context, prefix string) {
	if _, err := r.Redis.DeleteByPrefix(ctx, prefix); err != nil {
		logger.Warning("cache purge %s: %v", prefix, err)
	}
}
