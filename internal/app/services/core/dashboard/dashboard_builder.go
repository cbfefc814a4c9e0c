package dashboard

import (
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/services/core/employees"
	"transactions-client/internal/app/services/core/transactions"
	"transactions-client/internal/app/services/shared/fetcher"
	"transactions-client/internal/app/services/shared/requester"

	"go.uber.org/zap"
)

// BuildDashboardUsecase wires the three sources over one shared cache. Each
// source gets its own fetcher and executor so their loading flags stay apart.
func BuildDashboardUsecase(requestCache contracts.RequestCache, api contracts.TransactionsAPI, logger *zap.Logger) contracts.DashboardUsecase {
	paginatedFetcher := fetcher.NewCachedFetcher(requestCache, api, requester.NewRequestExecutor(), logger)
	byEmployeeFetcher := fetcher.NewCachedFetcher(requestCache, api, requester.NewRequestExecutor(), logger)
	employeeFetcher := fetcher.NewCachedFetcher(requestCache, api, requester.NewRequestExecutor(), logger)

	return NewDashboardUsecase(
		transactions.NewPaginatedTransactionsUsecase(paginatedFetcher, logger),
		transactions.NewTransactionsByEmployeeUsecase(byEmployeeFetcher, logger),
		employees.NewEmployeeUsecase(employeeFetcher, logger),
		paginatedFetcher,
		logger,
	)
}
