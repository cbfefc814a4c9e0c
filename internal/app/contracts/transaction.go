package contracts

import (
	"context"
	"transactions-client/internal/app/models"
)

type PaginatedTransactionsUsecase interface {
	// FetchAll loads the next page and appends it to the accumulated data.
	FetchAll(ctx context.Context) error
	InvalidateData()
	Data() *models.PaginatedTransactions
	Loading() bool
}

type TransactionsByEmployeeUsecase interface {
	FetchByID(ctx context.Context, employeeID string) error
	InvalidateData()
	Data() []models.Transaction
	Loading() bool
}
