package transactions

import (
	"context"
	"sync"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/app/services/shared/cache"
	"transactions-client/internal/app/services/shared/fetcher"
	"transactions-client/internal/app/services/shared/requester"

	"go.uber.org/zap"
)

// scriptedAPI answers each endpoint from a fixed body and counts the calls.
// A non-nil gate makes every call wait for a value before answering.
type scriptedAPI struct {
	mu      sync.Mutex
	bodies  map[string][]byte
	err     error
	calls   []interface{}
	started chan struct{}
	gate    chan struct{}
}

func newScriptedAPI() *scriptedAPI {
	return &scriptedAPI{bodies: make(map[string][]byte)}
}

func (a *scriptedAPI) on(key string, body string) *scriptedAPI {
	a.bodies[key] = []byte(body)
	return a
}

func (a *scriptedAPI) Fetch(ctx context.Context, endpoint models.Endpoint, params interface{}) ([]byte, error) {
	a.mu.Lock()
	a.calls = append(a.calls, params)
	started, gate, err := a.started, a.gate, a.err
	a.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}

	key, keyErr := cache.BuildCacheKey(endpoint, params)
	if keyErr != nil {
		return nil, keyErr
	}
	return a.bodies[key], nil
}

func (a *scriptedAPI) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.calls)
}

func newTestFetcher(api contracts.TransactionsAPI) contracts.CachedFetcher {
	return fetcher.NewCachedFetcher(cache.NewMemoryRequestCache(zap.NewNop()), api, requester.NewRequestExecutor(), zap.NewNop())
}
