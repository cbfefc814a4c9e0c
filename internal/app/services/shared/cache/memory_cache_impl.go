package cache

import (
	"context"
	"strings"
	"sync"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type memoryRequestCache struct {
	mu      sync.RWMutex
	entries map[string]string
	Log     *zap.Logger
}

func NewMemoryRequestCache(logger *zap.Logger) contracts.RequestCache {
	return &memoryRequestCache{
		entries: make(map[string]string),
		Log:     logger,
	}
}

func (c *memoryRequestCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()

	c.Log.Debug("memoryRequestCache.Get",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCacheKeyKey, key),
		zap.Bool(constvars.LoggingCacheHitKey, ok),
	)
	return value, ok, nil
}

func (c *memoryRequestCache) Set(ctx context.Context, key string, value string) error {
	c.mu.Lock()
	c.entries[key] = value
	c.mu.Unlock()
	return nil
}

func (c *memoryRequestCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

func (c *memoryRequestCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.mu.Unlock()

	c.Log.Debug("memoryRequestCache.Clear succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return nil
}

func (c *memoryRequestCache) ClearMatchingPrefixes(ctx context.Context, prefixes []string) error {
	c.mu.Lock()
	deleted := 0
	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				deleted++
				break
			}
		}
	}
	c.mu.Unlock()

	c.Log.Debug("memoryRequestCache.ClearMatchingPrefixes succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Strings(constvars.LoggingCachePrefixesKey, prefixes),
		zap.Int(constvars.LoggingCacheDeletedKey, deleted),
	)
	return nil
}
