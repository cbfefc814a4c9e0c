package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRedisCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, client
}

func TestRedisRequestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Key Is A Miss Not An Error", func(t *testing.T) {
		_, client := newTestRedisCache(t)
		requestCache := NewRedisRequestCache(client, "test:", zap.NewNop())

		_, found, err := requestCache.Get(ctx, "employees")

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Set Writes Under The Namespace Without Expiry", func(t *testing.T) {
		server, client := newTestRedisCache(t)
		requestCache := NewRedisRequestCache(client, "test:", zap.NewNop())

		require.NoError(t, requestCache.Set(ctx, `paginatedTransactions@{"page":0}`, `{"data":[],"nextPage":null}`))

		stored, err := server.Get(`test:paginatedTransactions@{"page":0}`)
		assert.NoError(t, err)
		assert.Equal(t, `{"data":[],"nextPage":null}`, stored)
		assert.Zero(t, server.TTL(`test:paginatedTransactions@{"page":0}`), "entries should never expire")

		value, found, err := requestCache.Get(ctx, `paginatedTransactions@{"page":0}`)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, stored, value)
	})

	t.Run("Clear Matching Prefixes Deletes Only Matching Keys", func(t *testing.T) {
		server, client := newTestRedisCache(t)
		requestCache := NewRedisRequestCache(client, "test:", zap.NewNop())
		requestCache.Set(ctx, `paginatedTransactions@{"page":0}`, "{}")
		requestCache.Set(ctx, `paginatedTransactions@{"page":1}`, "{}")
		requestCache.Set(ctx, `transactionsByEmployee@{"employeeId":"e1"}`, "[]")

		require.NoError(t, requestCache.ClearMatchingPrefixes(ctx, []string{"paginatedTransactions"}))

		assert.False(t, server.Exists(`test:paginatedTransactions@{"page":0}`))
		assert.False(t, server.Exists(`test:paginatedTransactions@{"page":1}`))
		assert.True(t, server.Exists(`test:transactionsByEmployee@{"employeeId":"e1"}`))
	})

	t.Run("Clear Leaves Keys Outside The Namespace", func(t *testing.T) {
		server, client := newTestRedisCache(t)
		requestCache := NewRedisRequestCache(client, "test:", zap.NewNop())
		requestCache.Set(ctx, "employees", "[]")
		server.Set("other:employees", "[]")

		require.NoError(t, requestCache.Clear(ctx))

		assert.False(t, server.Exists("test:employees"))
		assert.True(t, server.Exists("other:employees"), "foreign keys should survive a full clear")
	})

	t.Run("Delete Removes The Key", func(t *testing.T) {
		server, client := newTestRedisCache(t)
		requestCache := NewRedisRequestCache(client, "test:", zap.NewNop())
		requestCache.Set(ctx, "employees", "[]")

		require.NoError(t, requestCache.Delete(ctx, "employees"))

		assert.False(t, server.Exists("test:employees"))
	})

	t.Run("Unreachable Server Reports An Error", func(t *testing.T) {
		server, client := newTestRedisCache(t)
		requestCache := NewRedisRequestCache(client, "test:", zap.NewNop())
		server.Close()

		_, found, err := requestCache.Get(ctx, "employees")

		assert.Error(t, err)
		assert.False(t, found)
	})
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `a\*b\?c\[d\]e\\f`, escapeGlob(`a*b?c[d]e\f`))
	assert.Equal(t, `paginatedTransactions@{"page":0}`, escapeGlob(`paginatedTransactions@{"page":0}`))
}
