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

type transactionsByEmployeeUsecase struct {
	Fetcher contracts.CachedFetcher
	Log     *zap.Logger

	mu   sync.RWMutex
	data []models.Transaction
	// generation moves on every FetchByID and InvalidateData call.
	generation uint64
}

func NewTransactionsByEmployeeUsecase(fetcher contracts.CachedFetcher, logger *zap.Logger) contracts.TransactionsByEmployeeUsecase {
	return &transactionsByEmployeeUsecase{
		Fetcher: fetcher,
		Log:     logger,
	}
}

// FetchByID replaces the held transactions with those of employeeID. On
// failure the previous value is kept. When calls overlap only the latest one
// is applied.
func (uc *transactionsByEmployeeUsecase) FetchByID(ctx context.Context, employeeID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("transactionsByEmployeeUsecase.FetchByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
	)

	uc.mu.Lock()
	uc.generation++
	generation := uc.generation
	uc.mu.Unlock()

	var transactions []models.Transaction
	err := uc.Fetcher.FetchWithCache(
		ctx,
		models.EndpointTransactionsByEmployee,
		models.TransactionsByEmployeeParams{EmployeeID: employeeID},
		&transactions,
	)
	if err != nil {
		uc.Log.Error("transactionsByEmployeeUsecase.FetchByID error fetching transactions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
			zap.Error(err),
		)
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.generation != generation {
		uc.Log.Info("transactionsByEmployeeUsecase.FetchByID discarding superseded result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return nil
	}

	uc.data = transactions

	uc.Log.Info("transactionsByEmployeeUsecase.FetchByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
		zap.Int(constvars.LoggingTransactionCountKey, len(transactions)),
	)
	return nil
}

func (uc *transactionsByEmployeeUsecase) InvalidateData() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.data = nil
	uc.generation++
}

func (uc *transactionsByEmployeeUsecase) Data() []models.Transaction {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.data == nil {
		return nil
	}
	return append([]models.Transaction{}, uc.data...)
}

func (uc *transactionsByEmployeeUsecase) Loading() bool {
	return uc.Fetcher.Loading()
}
