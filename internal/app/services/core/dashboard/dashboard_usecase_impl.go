package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"
	"transactions-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	PaginatedTransactions  contracts.PaginatedTransactionsUsecase
	TransactionsByEmployee contracts.TransactionsByEmployeeUsecase
	Employees              contracts.EmployeeUsecase
	Fetcher                contracts.CachedFetcher
	Log                    *zap.Logger

	// sequenceMu runs each invalidate-then-fetch sequence on its own.
	sequenceMu       sync.Mutex
	mu               sync.RWMutex
	selectedEmployee *models.Employee
	started          atomic.Bool
}

// NewDashboardUsecase coordinates the paginated listing and the by-employee
// listing so that at most one of them holds data. fetcher is only used to
// clear the shared cache.
func NewDashboardUsecase(
	paginatedTransactions contracts.PaginatedTransactionsUsecase,
	transactionsByEmployee contracts.TransactionsByEmployeeUsecase,
	employees contracts.EmployeeUsecase,
	fetcher contracts.CachedFetcher,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		PaginatedTransactions:  paginatedTransactions,
		TransactionsByEmployee: transactionsByEmployee,
		Employees:              employees,
		Fetcher:                fetcher,
		Log:                    logger,
	}
}

// Start loads every employee's transactions when no employee list is present
// and none is loading. A failed start may be retried by the next call.
func (uc *dashboardUsecase) Start(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	if uc.Employees.Data() != nil || uc.Employees.Loading() {
		uc.Log.Debug("dashboardUsecase.Start employees already present",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}
	if !uc.started.CompareAndSwap(false, true) {
		return nil
	}

	uc.Log.Info("dashboardUsecase.Start called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	err := uc.SelectAllEmployees(ctx)
	if err != nil && uc.Employees.Data() == nil {
		uc.started.Store(false)
	}
	return err
}

// SelectAllEmployees drops the by-employee listing, refreshes the employee
// list and loads the next page of all transactions. A failed employee fetch
// does not stop the page fetch; both errors are reported together.
func (uc *dashboardUsecase) SelectAllEmployees(ctx context.Context) error {
	uc.sequenceMu.Lock()
	defer uc.sequenceMu.Unlock()

	return uc.selectAllEmployees(ctx)
}

func (uc *dashboardUsecase) selectAllEmployees(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("dashboardUsecase.SelectAllEmployees called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	uc.mu.Lock()
	uc.selectedEmployee = nil
	uc.mu.Unlock()

	uc.TransactionsByEmployee.InvalidateData()

	employeesErr := uc.Employees.FetchAll(ctx)
	if employeesErr != nil {
		uc.Log.Error("dashboardUsecase.SelectAllEmployees error fetching employees",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(employeesErr),
		)
	}

	transactionsErr := uc.PaginatedTransactions.FetchAll(ctx)
	if transactionsErr != nil {
		uc.Log.Error("dashboardUsecase.SelectAllEmployees error fetching transactions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(transactionsErr),
		)
	}

	if employeesErr == nil && transactionsErr == nil {
		uc.Log.Info("dashboardUsecase.SelectAllEmployees succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}
	return errors.Join(employeesErr, transactionsErr)
}

// SelectEmployee drops the paginated listing and loads every transaction of
// employeeID. The empty id stands for "all employees".
func (uc *dashboardUsecase) SelectEmployee(ctx context.Context, employeeID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("dashboardUsecase.SelectEmployee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
	)

	uc.sequenceMu.Lock()
	defer uc.sequenceMu.Unlock()

	if employeeID == models.EmptyEmployee.ID {
		return uc.selectAllEmployees(ctx)
	}

	employee, err := uc.resolveEmployee(employeeID)
	if err != nil {
		uc.Log.Error("dashboardUsecase.SelectEmployee unknown employee",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
			zap.Error(err),
		)
		return err
	}

	uc.mu.Lock()
	uc.selectedEmployee = employee
	uc.mu.Unlock()

	uc.PaginatedTransactions.InvalidateData()

	err = uc.TransactionsByEmployee.FetchByID(ctx, employeeID)
	if err != nil {
		uc.Log.Error("dashboardUsecase.SelectEmployee error fetching transactions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmployeeIDKey, employeeID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("dashboardUsecase.SelectEmployee succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, employeeID),
	)
	return nil
}

// LoadMore re-fetches the selected employee's full listing, or appends the
// next page when no employee is selected.
func (uc *dashboardUsecase) LoadMore(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	uc.sequenceMu.Lock()
	defer uc.sequenceMu.Unlock()

	uc.mu.RLock()
	selected := uc.selectedEmployee
	uc.mu.RUnlock()

	if selected != nil {
		uc.Log.Info("dashboardUsecase.LoadMore called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingActiveSourceKey, string(models.ActiveSourceByEmployee)),
			zap.String(constvars.LoggingEmployeeIDKey, selected.ID),
		)
		return uc.TransactionsByEmployee.FetchByID(ctx, selected.ID)
	}

	uc.Log.Info("dashboardUsecase.LoadMore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingActiveSourceKey, string(models.ActiveSourcePaginatedAll)),
	)
	return uc.PaginatedTransactions.FetchAll(ctx)
}

func (uc *dashboardUsecase) Snapshot() models.DashboardState {
	uc.mu.RLock()
	var selected *models.Employee
	if uc.selectedEmployee != nil {
		employee := *uc.selectedEmployee
		selected = &employee
	}
	uc.mu.RUnlock()

	state := models.DashboardState{
		SelectedEmployee:    selected,
		ActiveSource:        models.ActiveSourceNone,
		EmployeesLoading:    uc.Employees.Loading(),
		TransactionsLoading: uc.PaginatedTransactions.Loading() || uc.TransactionsByEmployee.Loading(),
	}

	if employees := uc.Employees.Data(); employees != nil {
		state.Employees = append([]models.Employee{models.EmptyEmployee}, employees...)
	}

	// Paginated data wins if both sources ever hold data.
	if paginated := uc.PaginatedTransactions.Data(); paginated != nil {
		state.Transactions = paginated.Data
		state.ActiveSource = models.ActiveSourcePaginatedAll
		state.HasMore = paginated.NextPage != constvars.PageCursorTerminal
		return state
	}
	if byEmployee := uc.TransactionsByEmployee.Data(); byEmployee != nil {
		state.Transactions = byEmployee
		state.ActiveSource = models.ActiveSourceByEmployee
	}
	return state
}

func (uc *dashboardUsecase) ClearCache(ctx context.Context) error {
	uc.Log.Info("dashboardUsecase.ClearCache called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return uc.Fetcher.ClearCache(ctx)
}

func (uc *dashboardUsecase) ClearCacheByEndpoint(ctx context.Context, endpoints []models.Endpoint) error {
	requestID := utils.GetRequestID(ctx)
	prefixes := make([]string, 0, len(endpoints))
	for _, endpoint := range endpoints {
		if !endpoint.IsRegistered() {
			uc.Log.Error("dashboardUsecase.ClearCacheByEndpoint unknown endpoint",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, endpoint.String()),
			)
			return exceptions.ErrUnknownEndpoint(nil, endpoint.String())
		}
		prefixes = append(prefixes, endpoint.String())
	}

	uc.Log.Info("dashboardUsecase.ClearCacheByEndpoint called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingCachePrefixesKey, prefixes),
	)
	return uc.Fetcher.ClearCacheByEndpoint(ctx, endpoints)
}

// resolveEmployee looks employeeID up in the loaded employee list. Before the
// list is loaded any id is accepted with an empty name.
func (uc *dashboardUsecase) resolveEmployee(employeeID string) (*models.Employee, error) {
	employees := uc.Employees.Data()
	if employees == nil {
		return &models.Employee{ID: employeeID}, nil
	}
	for _, employee := range employees {
		if employee.ID == employeeID {
			found := employee
			return &found, nil
		}
	}
	return nil, exceptions.ErrEmployeeNotFound(nil, employeeID)
}
