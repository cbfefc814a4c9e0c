package employees

import (
	"context"
	"sync"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type employeeUsecase struct {
	Fetcher contracts.CachedFetcher
	Log     *zap.Logger

	mu   sync.RWMutex
	data []models.Employee
}

func NewEmployeeUsecase(fetcher contracts.CachedFetcher, logger *zap.Logger) contracts.EmployeeUsecase {
	return &employeeUsecase{
		Fetcher: fetcher,
		Log:     logger,
	}
}

// FetchAll always asks the backend, the employee list is never cached.
func (uc *employeeUsecase) FetchAll(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("employeeUsecase.FetchAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var employees []models.Employee
	err := uc.Fetcher.FetchWithoutCache(ctx, models.EndpointEmployees, nil, &employees)
	if err != nil {
		uc.Log.Error("employeeUsecase.FetchAll error fetching employees",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.mu.Lock()
	uc.data = employees
	uc.mu.Unlock()

	uc.Log.Info("employeeUsecase.FetchAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingEmployeeCountKey, len(employees)),
	)
	return nil
}

func (uc *employeeUsecase) Data() []models.Employee {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.data == nil {
		return nil
	}
	return append([]models.Employee{}, uc.data...)
}

func (uc *employeeUsecase) Loading() bool {
	return uc.Fetcher.Loading()
}
