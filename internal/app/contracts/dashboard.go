package contracts

import (
	"context"
	"transactions-client/internal/app/models"
)

type DashboardUsecase interface {
	Start(ctx context.Context) error
	SelectAllEmployees(ctx context.Context) error
	SelectEmployee(ctx context.Context, employeeID string) error
	LoadMore(ctx context.Context) error
	Snapshot() models.DashboardState
	ClearCache(ctx context.Context) error
	ClearCacheByEndpoint(ctx context.Context, endpoints []models.Endpoint) error
}
