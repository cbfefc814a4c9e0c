package contracts

import (
	"context"
	"transactions-client/internal/app/models"
)

// TransactionsAPI is the backend collaborator. Fetch returns the raw JSON
// body for endpoint called with params (nil when the endpoint takes none).
type TransactionsAPI interface {
	Fetch(ctx context.Context, endpoint models.Endpoint, params interface{}) ([]byte, error)
}

type CachedFetcher interface {
	// FetchWithCache decodes into out the cached response for endpoint and
	// params, fetching and caching it on a miss.
	FetchWithCache(ctx context.Context, endpoint models.Endpoint, params interface{}, out interface{}) error
	// FetchWithoutCache always calls the backend and never touches the cache.
	FetchWithoutCache(ctx context.Context, endpoint models.Endpoint, params interface{}, out interface{}) error
	ClearCache(ctx context.Context) error
	ClearCacheByEndpoint(ctx context.Context, endpoints []models.Endpoint) error
	Loading() bool
}
