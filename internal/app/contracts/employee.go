package contracts

import (
	"context"
	"transactions-client/internal/app/models"
)

type EmployeeUsecase interface {
	FetchAll(ctx context.Context) error
	Data() []models.Employee
	Loading() bool
}
