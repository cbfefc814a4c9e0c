package cache

import (
	"context"
	"errors"
	"strings"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"
	"transactions-client/internal/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisScanCount = 100

type redisRequestCache struct {
	client    *redis.Client
	namespace string
	Log       *zap.Logger
}

// NewRedisRequestCache stores entries in Redis under namespace. Entries are
// written without expiry and only removed by the clear operations, which
// never touch keys outside the namespace. An empty namespace spans the whole
// database, so config validation requires one for the Redis store.
func NewRedisRequestCache(client *redis.Client, namespace string, logger *zap.Logger) contracts.RequestCache {
	return &redisRequestCache{
		client:    client,
		namespace: namespace,
		Log:       logger,
	}
}

func (r *redisRequestCache) key(key string) string {
	return r.namespace + key
}

func (r *redisRequestCache) Get(ctx context.Context, key string) (string, bool, error) {
	requestID := utils.GetRequestID(ctx)

	data, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		r.Log.Debug("redisRequestCache.Get miss",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, key),
		)
		return "", false, nil
	}
	if err != nil {
		r.Log.Error("redisRequestCache.Get error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, key),
			zap.Error(err),
		)
		return "", false, exceptions.ErrCacheGet(err, key)
	}

	r.Log.Debug("redisRequestCache.Get hit",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheKeyKey, key),
	)
	return data, true, nil
}

func (r *redisRequestCache) Set(ctx context.Context, key string, value string) error {
	err := r.client.Set(ctx, r.key(key), value, 0).Err()
	if err != nil {
		r.Log.Error("redisRequestCache.Set error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKeyKey, key),
			zap.Error(err),
		)
		return exceptions.ErrCacheSet(err, key)
	}
	return nil
}

func (r *redisRequestCache) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.key(key)).Err()
	if err != nil {
		r.Log.Error("redisRequestCache.Delete error",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCacheKeyKey, key),
			zap.Error(err),
		)
		return exceptions.ErrCacheDelete(err)
	}
	return nil
}

func (r *redisRequestCache) Clear(ctx context.Context) error {
	return r.ClearMatchingPrefixes(ctx, []string{""})
}

func (r *redisRequestCache) ClearMatchingPrefixes(ctx context.Context, prefixes []string) error {
	requestID := utils.GetRequestID(ctx)

	var deleted int64
	for _, prefix := range prefixes {
		keys, err := r.scanKeys(ctx, escapeGlob(r.key(prefix))+"*")
		if err != nil {
			r.Log.Error("redisRequestCache.ClearMatchingPrefixes error scanning keys",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCachePrefixesKey, prefix),
				zap.Error(err),
			)
			return exceptions.ErrCacheScan(err)
		}
		if len(keys) == 0 {
			continue
		}

		n, err := r.client.Del(ctx, keys...).Result()
		if err != nil {
			r.Log.Error("redisRequestCache.ClearMatchingPrefixes error deleting keys",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCachePrefixesKey, prefix),
				zap.Error(err),
			)
			return exceptions.ErrCacheDelete(err)
		}
		deleted += n
	}

	r.Log.Debug("redisRequestCache.ClearMatchingPrefixes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingCachePrefixesKey, prefixes),
		zap.Int64(constvars.LoggingCacheDeletedKey, deleted),
	)
	return nil
}

func (r *redisRequestCache) scanKeys(ctx context.Context, match string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, match, redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// escapeGlob quotes the characters Redis MATCH patterns treat specially, so
// cache keys holding JSON are matched literally.
func escapeGlob(pattern string) string {
	var b strings.Builder
	for _, c := range pattern {
		switch c {
		case '*', '?', '[', ']', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
