package states

import (
	"reflect"
	"sync"
)

// CacheKind separates the kinds of metadata stored per entity type.
type CacheKind string

const (
	CacheLocalePath CacheKind = "path"
	CacheValueSet   CacheKind = "values"
)

// CacheKey addresses one cached entry. Type is the entity's Go type with
// pointers removed; Constant is set for value sets only.
type CacheKey struct {
	Type     reflect.Type
	Kind     CacheKind
	Constant string
}

// MetadataCache stores per-type metadata (locale paths and value lists).
// Implementations must be safe for concurrent use.
type MetadataCache interface {
	Get(key CacheKey) (any, bool)
	Set(key CacheKey, value any)
}

// WithMetadataCache replaces the default in-memory cache. A nil cache disables
// caching.
func WithMetadataCache(cache MetadataCache) Option {
	return func(cfg *resolverConfig) {
		cfg.cache = cache
	}
}

// WithoutMetadataCache disables caching; every request recomputes metadata.
func WithoutMetadataCache() Option {
	return WithMetadataCache(nil)
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[CacheKey]any
}

// NewMetadataCache constructs the read-mostly cache used by default.
func NewMetadataCache() MetadataCache {
	return &memoryCache{entries: make(map[CacheKey]any)}
}

func (c *memoryCache) Get(key CacheKey) (any, bool) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()
	return value, ok
}

func (c *memoryCache) Set(key CacheKey, value any) {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
}

// entityType returns the dereferenced Go type of entity, or nil.
func entityType(entity any) reflect.Type {
	t := reflect.TypeOf(entity)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
