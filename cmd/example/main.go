package main

import (
	"context"
	"fmt"
	"log"
	"transactions-client/internal/app/models"
	"transactions-client/internal/app/services/backend"
	"transactions-client/internal/app/services/core/dashboard"
	"transactions-client/internal/app/services/shared/cache"
	"transactions-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

// main walks the dashboard through the filter flow against the fixture
// backend and prints what the UI would show after each step.
func main() {
	fmt.Printf("Version: %s\n", Version)
	fmt.Printf("Tag: %s\n", Tag)

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	defer logger.Sync()

	employees := backend.SeedEmployees()
	api := backend.NewInMemoryBackend(employees, backend.SeedTransactions(employees, 12), 5, 0, logger)
	requestCache := cache.NewMemoryRequestCache(logger)
	dashboardUsecase := dashboard.BuildDashboardUsecase(requestCache, api, logger)

	ctx := utils.WithRequestID(context.Background(), "")

	steps := []struct {
		name string
		run  func() error
	}{
		{"start", func() error { return dashboardUsecase.Start(ctx) }},
		{"load more", func() error { return dashboardUsecase.LoadMore(ctx) }},
		{"select " + employees[0].FullName(), func() error { return dashboardUsecase.SelectEmployee(ctx, employees[0].ID) }},
		{"select all employees", func() error { return dashboardUsecase.SelectAllEmployees(ctx) }},
		{"load more", func() error { return dashboardUsecase.LoadMore(ctx) }},
		{"load more", func() error { return dashboardUsecase.LoadMore(ctx) }},
	}

	requestID := utils.GetRequestID(ctx)
	for _, step := range steps {
		err := utils.LogOperation(logger, step.name, requestID, step.run)
		if err != nil {
			log.Fatalf("%s failed: %v", step.name, err)
		}
		printState(step.name, dashboardUsecase.Snapshot())
	}
}

func printState(step string, state models.DashboardState) {
	selected := models.EmptyEmployee.FullName()
	if state.SelectedEmployee != nil {
		selected = state.SelectedEmployee.FullName()
	}
	fmt.Printf("\n== %s ==\n", step)
	fmt.Printf("filter: %s, source: %s, transactions: %d, has more: %t\n",
		selected, state.ActiveSource, len(state.Transactions), state.HasMore)
	for _, transaction := range state.Transactions {
		fmt.Printf("  %s  %-22s %-20s %8.2f\n",
			transaction.Date, transaction.Employee.FullName(), transaction.MerchantName, transaction.Amount)
	}
}
