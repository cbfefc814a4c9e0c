package transactions

import (
	"context"
	"sync"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type paginatedTransactionsUsecase struct {
	Fetcher contracts.CachedFetcher
	Log     *zap.Logger

	// fetchMu serializes FetchAll so two callers never request the same cursor.
	fetchMu    sync.Mutex
	mu         sync.RWMutex
	data       *models.PaginatedTransactions
	generation uint64
}

func NewPaginatedTransactionsUsecase(fetcher contracts.CachedFetcher, logger *zap.Logger) contracts.PaginatedTransactionsUsecase {
	return &paginatedTransactionsUsecase{
		Fetcher: fetcher,
		Log:     logger,
	}
}

// FetchAll requests the page after the last one loaded, or page 0 when
// nothing is loaded yet. It is a no-op once the last page is in.
func (uc *paginatedTransactionsUsecase) FetchAll(ctx context.Context) error {
	uc.fetchMu.Lock()
	defer uc.fetchMu.Unlock()

	requestID := utils.GetRequestID(ctx)

	uc.mu.RLock()
	generation := uc.generation
	page := 0
	if uc.data != nil {
		page = uc.data.NextPage
	}
	uc.mu.RUnlock()

	if page == constvars.PageCursorTerminal {
		uc.Log.Debug("paginatedTransactionsUsecase.FetchAll last page already loaded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}

	uc.Log.Info("paginatedTransactionsUsecase.FetchAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
	)

	var response *models.PaginatedResponse
	err := uc.Fetcher.FetchWithCache(
		ctx,
		models.EndpointPaginatedTransactions,
		models.PaginatedRequestParams{Page: page},
		&response,
	)
	if err != nil {
		uc.Log.Error("paginatedTransactionsUsecase.FetchAll error fetching page",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingPageKey, page),
			zap.Error(err),
		)
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.generation != generation {
		uc.Log.Info("paginatedTransactionsUsecase.FetchAll discarding page fetched before invalidation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingPageKey, page),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil
	}

	uc.data = mergePage(uc.data, response)

	nextPage := constvars.PageCursorTerminal
	transactionCount := 0
	if uc.data != nil {
		nextPage = uc.data.NextPage
		transactionCount = len(uc.data.Data)
	}
	uc.Log.Info("paginatedTransactionsUsecase.FetchAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
		zap.Int(constvars.LoggingNextPageKey, nextPage),
		zap.Int(constvars.LoggingTransactionCountKey, transactionCount),
	)
	return nil
}

// InvalidateData drops the accumulated pages. A fetch still in flight will
// not write its page back.
func (uc *paginatedTransactionsUsecase) InvalidateData() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.data = nil
	uc.generation++
}

func (uc *paginatedTransactionsUsecase) Data() *models.PaginatedTransactions {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.data == nil {
		return nil
	}
	return &models.PaginatedTransactions{
		Data:     append([]models.Transaction{}, uc.data.Data...),
		NextPage: uc.data.NextPage,
	}
}

func (uc *paginatedTransactionsUsecase) Loading() bool {
	return uc.Fetcher.Loading()
}

// mergePage appends response to current. A null response resets the listing
// and a missing next page marks it complete.
func mergePage(current *models.PaginatedTransactions, response *models.PaginatedResponse) *models.PaginatedTransactions {
	if response == nil {
		return nil
	}

	nextPage := constvars.PageCursorTerminal
	if response.NextPage != nil {
		nextPage = *response.NextPage
	}

	if current == nil {
		data := response.Data
		if data == nil {
			data = []models.Transaction{}
		}
		return &models.PaginatedTransactions{
			Data:     data,
			NextPage: nextPage,
		}
	}

	data := make([]models.Transaction, 0, len(current.Data)+len(response.Data))
	data = append(data, current.Data...)
	data = append(data, response.Data...)
	return &models.PaginatedTransactions{
		Data:     data,
		NextPage: nextPage,
	}
}
