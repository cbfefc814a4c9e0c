package fetcher

import (
	"context"
	"reflect"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/app/services/shared/cache"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"
	"transactions-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type cachedFetcher struct {
	Cache    contracts.RequestCache
	API      contracts.TransactionsAPI
	Executor contracts.RequestExecutor
	Log      *zap.Logger
}

// NewCachedFetcher builds a fetcher over a shared cache. Every fetcher owns
// its executor, so Loading reports only the requests issued through it.
func NewCachedFetcher(
	requestCache contracts.RequestCache,
	api contracts.TransactionsAPI,
	executor contracts.RequestExecutor,
	logger *zap.Logger,
) contracts.CachedFetcher {
	return &cachedFetcher{
		Cache:    requestCache,
		API:      api,
		Executor: executor,
		Log:      logger,
	}
}

func (f *cachedFetcher) FetchWithCache(ctx context.Context, endpoint models.Endpoint, params interface{}, out interface{}) error {
	requestID := utils.GetRequestID(ctx)

	err := validateParams(endpoint, params)
	if err != nil {
		f.Log.Error("cachedFetcher.FetchWithCache invalid params",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
			zap.Error(err),
		)
		return err
	}

	cacheKey, err := cache.BuildCacheKey(endpoint, params)
	if err != nil {
		f.Log.Error("cachedFetcher.FetchWithCache error building cache key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
			zap.Error(err),
		)
		return err
	}

	return f.Executor.Run(ctx, func(ctx context.Context) error {
		cached, found, err := f.Cache.Get(ctx, cacheKey)
		if err != nil {
			f.Log.Warn("cachedFetcher.FetchWithCache cache unavailable, fetching from backend",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKeyKey, cacheKey),
				zap.Error(err),
			)
			found = false
		}

		if found {
			err = json.Unmarshal([]byte(cached), out)
			if err != nil {
				f.Log.Error("cachedFetcher.FetchWithCache error decoding cache entry",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingCacheKeyKey, cacheKey),
					zap.Error(err),
				)
				if deleteErr := f.Cache.Delete(ctx, cacheKey); deleteErr != nil {
					f.Log.Warn("cachedFetcher.FetchWithCache error evicting corrupt cache entry",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.String(constvars.LoggingCacheKeyKey, cacheKey),
						zap.Error(deleteErr),
					)
				}
				return exceptions.ErrCacheDecode(err, cacheKey)
			}

			f.Log.Info("cachedFetcher.FetchWithCache served from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKeyKey, cacheKey),
			)
			return nil
		}

		body, err := f.fetchAndDecode(ctx, endpoint, params, out)
		if err != nil {
			return err
		}

		err = f.Cache.Set(ctx, cacheKey, string(body))
		if err != nil {
			f.Log.Warn("cachedFetcher.FetchWithCache error storing cache entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKeyKey, cacheKey),
				zap.Error(err),
			)
		}

		f.Log.Info("cachedFetcher.FetchWithCache fetched from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheKeyKey, cacheKey),
		)
		return nil
	})
}

func (f *cachedFetcher) FetchWithoutCache(ctx context.Context, endpoint models.Endpoint, params interface{}, out interface{}) error {
	err := validateParams(endpoint, params)
	if err != nil {
		f.Log.Error("cachedFetcher.FetchWithoutCache invalid params",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
			zap.Error(err),
		)
		return err
	}

	return f.Executor.Run(ctx, func(ctx context.Context) error {
		_, err := f.fetchAndDecode(ctx, endpoint, params, out)
		return err
	})
}

func (f *cachedFetcher) ClearCache(ctx context.Context) error {
	return f.Cache.Clear(ctx)
}

func (f *cachedFetcher) ClearCacheByEndpoint(ctx context.Context, endpoints []models.Endpoint) error {
	return f.Cache.ClearMatchingPrefixes(ctx, cache.EndpointPrefixes(endpoints))
}

func (f *cachedFetcher) Loading() bool {
	return f.Executor.Loading()
}

// fetchAndDecode returns the raw body only once it decoded cleanly, so a
// payload that cannot be read back is never cached.
func (f *cachedFetcher) fetchAndDecode(ctx context.Context, endpoint models.Endpoint, params interface{}, out interface{}) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)

	body, err := f.API.Fetch(ctx, endpoint, params)
	if err != nil {
		f.Log.Error("cachedFetcher.fetchAndDecode error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
			zap.Error(err),
		)
		return nil, err
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		f.Log.Error("cachedFetcher.fetchAndDecode error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, endpoint.String())
	}
	return body, nil
}

func validateParams(endpoint models.Endpoint, params interface{}) error {
	if params == nil {
		return nil
	}
	value := reflect.ValueOf(params)
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	err := utils.ValidateStruct(params)
	if err != nil {
		return exceptions.ErrInvalidFetchParams(err, endpoint.String())
	}
	return nil
}
