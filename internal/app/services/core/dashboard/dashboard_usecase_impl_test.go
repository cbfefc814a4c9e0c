package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/app/services/backend"
	"transactions-client/internal/app/services/shared/cache"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingAPI struct {
	contracts.TransactionsAPI
	mu    sync.Mutex
	calls map[models.Endpoint]int
	errs  map[models.Endpoint]error

	// gate, when set, holds employee fetches until it is closed.
	gate        chan struct{}
	gateReached chan struct{}
	gateOnce    sync.Once
}

func (a *countingAPI) Fetch(ctx context.Context, endpoint models.Endpoint, params interface{}) ([]byte, error) {
	a.mu.Lock()
	a.calls[endpoint]++
	err := a.errs[endpoint]
	a.mu.Unlock()

	if a.gate != nil && endpoint == models.EndpointEmployees {
		a.gateOnce.Do(func() { close(a.gateReached) })
		select {
		case <-a.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return a.TransactionsAPI.Fetch(ctx, endpoint, params)
}

func (a *countingAPI) failWith(endpoint models.Endpoint, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err == nil {
		delete(a.errs, endpoint)
		return
	}
	a.errs[endpoint] = err
}

func (a *countingAPI) count(endpoint models.Endpoint) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[endpoint]
}

var errBackendDown = errors.New("backend down")

var testEmployees = []models.Employee{
	{ID: "e1", FirstName: "James", LastName: "Smith"},
	{ID: "e2", FirstName: "Mary", LastName: "Johnson"},
}

func newTestDashboard(t *testing.T, transactionCount int) (contracts.DashboardUsecase, *countingAPI, contracts.RequestCache) {
	t.Helper()
	api := &countingAPI{
		TransactionsAPI: backend.NewInMemoryBackend(testEmployees, backend.SeedTransactions(testEmployees, transactionCount), 5, 0, zap.NewNop()),
		calls:           make(map[models.Endpoint]int),
		errs:            make(map[models.Endpoint]error),
	}
	requestCache := cache.NewMemoryRequestCache(zap.NewNop())
	return BuildDashboardUsecase(requestCache, api, zap.NewNop()), api, requestCache
}

func TestDashboardUsecase_FilterScenario(t *testing.T) {
	ctx := context.Background()
	dashboard, api, requestCache := newTestDashboard(t, 12)

	state := dashboard.Snapshot()
	assert.Equal(t, models.ActiveSourceNone, state.ActiveSource)
	assert.Nil(t, state.Transactions)
	assert.Nil(t, state.Employees)

	require.NoError(t, dashboard.SelectAllEmployees(ctx))

	assert.Equal(t, 1, api.count(models.EndpointEmployees))
	assert.Equal(t, 1, api.count(models.EndpointPaginatedTransactions))
	_, found, _ := requestCache.Get(ctx, `paginatedTransactions@{"page":0}`)
	assert.True(t, found, "first page should be cached under its key")
	_, found, _ = requestCache.Get(ctx, "employees")
	assert.False(t, found, "employee list is never cached")

	state = dashboard.Snapshot()
	assert.Equal(t, models.ActiveSourcePaginatedAll, state.ActiveSource)
	assert.Len(t, state.Transactions, 5)
	assert.True(t, state.HasMore)
	assert.Nil(t, state.SelectedEmployee)
	assert.Equal(t, append([]models.Employee{models.EmptyEmployee}, testEmployees...), state.Employees)

	require.NoError(t, dashboard.SelectEmployee(ctx, "e1"))

	assert.Equal(t, 1, api.count(models.EndpointTransactionsByEmployee))
	state = dashboard.Snapshot()
	assert.Equal(t, models.ActiveSourceByEmployee, state.ActiveSource)
	assert.Equal(t, "James Smith", state.SelectedEmployee.FullName())
	assert.False(t, state.HasMore)
	assert.Len(t, state.Transactions, 6)
	for _, transaction := range state.Transactions {
		assert.Equal(t, "e1", transaction.Employee.ID)
	}

	require.NoError(t, dashboard.SelectAllEmployees(ctx))

	assert.Equal(t, 1, api.count(models.EndpointPaginatedTransactions), "first page should be served from the cache")
	assert.Equal(t, 2, api.count(models.EndpointEmployees), "employee list is refetched every time")
	state = dashboard.Snapshot()
	assert.Equal(t, models.ActiveSourcePaginatedAll, state.ActiveSource)
	assert.Len(t, state.Transactions, 5)
}

func TestDashboardUsecase_LoadMore(t *testing.T) {
	ctx := context.Background()

	t.Run("Advances The Paginated Listing To The End", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)
		require.NoError(t, dashboard.SelectAllEmployees(ctx))

		require.NoError(t, dashboard.LoadMore(ctx))
		assert.Len(t, dashboard.Snapshot().Transactions, 10)
		assert.True(t, dashboard.Snapshot().HasMore)

		require.NoError(t, dashboard.LoadMore(ctx))
		assert.Len(t, dashboard.Snapshot().Transactions, 12)
		assert.False(t, dashboard.Snapshot().HasMore)

		require.NoError(t, dashboard.LoadMore(ctx))
		assert.Equal(t, 3, api.count(models.EndpointPaginatedTransactions), "no fetch after the last page")
	})

	t.Run("Refetches The Selected Employee", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)
		require.NoError(t, dashboard.SelectAllEmployees(ctx))
		require.NoError(t, dashboard.SelectEmployee(ctx, "e2"))

		require.NoError(t, dashboard.LoadMore(ctx))

		state := dashboard.Snapshot()
		assert.Equal(t, models.ActiveSourceByEmployee, state.ActiveSource)
		assert.Len(t, state.Transactions, 6)
		assert.Equal(t, 1, api.count(models.EndpointPaginatedTransactions), "paginated source stays untouched")
	})
}

func TestDashboardUsecase_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads Only Once", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)

		require.NoError(t, dashboard.Start(ctx))
		require.NoError(t, dashboard.Start(ctx))

		assert.Equal(t, 1, api.count(models.EndpointEmployees), "start only loads once")
		assert.Equal(t, 1, api.count(models.EndpointPaginatedTransactions))
		assert.Equal(t, models.ActiveSourcePaginatedAll, dashboard.Snapshot().ActiveSource)
	})

	t.Run("Failed Start Is Retried", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)
		api.failWith(models.EndpointEmployees, errBackendDown)

		err := dashboard.Start(ctx)

		assert.ErrorIs(t, err, errBackendDown)
		assert.Nil(t, dashboard.Snapshot().Employees)

		api.failWith(models.EndpointEmployees, nil)

		require.NoError(t, dashboard.Start(ctx))
		assert.Equal(t, 2, api.count(models.EndpointEmployees), "second start fetches the employees again")
		assert.Equal(t, append([]models.Employee{models.EmptyEmployee}, testEmployees...), dashboard.Snapshot().Employees)

		require.NoError(t, dashboard.Start(ctx))
		assert.Equal(t, 2, api.count(models.EndpointEmployees), "a successful start is not repeated")
	})
}

func TestDashboardUsecase_SelectAllEmployees(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed Employee Fetch Still Loads Transactions", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)
		api.failWith(models.EndpointEmployees, errBackendDown)

		err := dashboard.SelectAllEmployees(ctx)

		assert.ErrorIs(t, err, errBackendDown)
		assert.Equal(t, 1, api.count(models.EndpointPaginatedTransactions))
		state := dashboard.Snapshot()
		assert.Equal(t, models.ActiveSourcePaginatedAll, state.ActiveSource)
		assert.Len(t, state.Transactions, 5)
		assert.Nil(t, state.Employees)
	})

	t.Run("Both Failures Are Reported", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)
		pageErr := errors.New("page unavailable")
		api.failWith(models.EndpointEmployees, errBackendDown)
		api.failWith(models.EndpointPaginatedTransactions, pageErr)

		err := dashboard.SelectAllEmployees(ctx)

		assert.ErrorIs(t, err, errBackendDown)
		assert.ErrorIs(t, err, pageErr)
		assert.Equal(t, models.ActiveSourceNone, dashboard.Snapshot().ActiveSource)
	})

	t.Run("Employee Selected Mid Load Is Applied After It", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)
		api.gate = make(chan struct{})
		api.gateReached = make(chan struct{})

		var wg sync.WaitGroup
		var selectAllErr, selectEmployeeErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			selectAllErr = dashboard.SelectAllEmployees(ctx)
		}()
		<-api.gateReached

		wg.Add(1)
		go func() {
			defer wg.Done()
			selectEmployeeErr = dashboard.SelectEmployee(ctx, "e1")
		}()

		assert.Never(t, func() bool {
			return api.count(models.EndpointTransactionsByEmployee) > 0
		}, 50*time.Millisecond, 5*time.Millisecond, "selection waits for the running load")

		close(api.gate)
		wg.Wait()

		require.NoError(t, selectAllErr)
		require.NoError(t, selectEmployeeErr)

		uc := dashboard.(*dashboardUsecase)
		assert.Nil(t, uc.PaginatedTransactions.Data(), "paginated source is reset by the later selection")
		assert.NotNil(t, uc.TransactionsByEmployee.Data())

		state := dashboard.Snapshot()
		assert.Equal(t, models.ActiveSourceByEmployee, state.ActiveSource)
		require.NotNil(t, state.SelectedEmployee)
		assert.Equal(t, "e1", state.SelectedEmployee.ID)
	})
}

func TestDashboardUsecase_SelectEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Id Selects All Employees", func(t *testing.T) {
		dashboard, _, _ := newTestDashboard(t, 12)
		require.NoError(t, dashboard.SelectAllEmployees(ctx))
		require.NoError(t, dashboard.SelectEmployee(ctx, "e1"))

		require.NoError(t, dashboard.SelectEmployee(ctx, models.EmptyEmployee.ID))

		state := dashboard.Snapshot()
		assert.Equal(t, models.ActiveSourcePaginatedAll, state.ActiveSource)
		assert.Nil(t, state.SelectedEmployee)
	})

	t.Run("Unknown Employee Is Rejected Once The List Is Loaded", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)
		require.NoError(t, dashboard.SelectAllEmployees(ctx))

		err := dashboard.SelectEmployee(ctx, "missing")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, 0, api.count(models.EndpointTransactionsByEmployee))
		assert.Equal(t, models.ActiveSourcePaginatedAll, dashboard.Snapshot().ActiveSource, "state is unchanged")
	})

	t.Run("Any Id Is Accepted Before The List Is Loaded", func(t *testing.T) {
		dashboard, _, _ := newTestDashboard(t, 12)

		require.NoError(t, dashboard.SelectEmployee(ctx, "e1"))

		assert.Equal(t, models.ActiveSourceByEmployee, dashboard.Snapshot().ActiveSource)
	})
}

func TestDashboardUsecase_ClearCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Cleared Endpoint Is Fetched Again", func(t *testing.T) {
		dashboard, api, _ := newTestDashboard(t, 12)
		require.NoError(t, dashboard.SelectAllEmployees(ctx))
		require.NoError(t, dashboard.ClearCacheByEndpoint(ctx, []models.Endpoint{models.EndpointPaginatedTransactions}))

		require.NoError(t, dashboard.SelectEmployee(ctx, "e1"))
		require.NoError(t, dashboard.SelectAllEmployees(ctx))

		assert.Equal(t, 2, api.count(models.EndpointPaginatedTransactions))
	})

	t.Run("Unknown Endpoint Is Rejected", func(t *testing.T) {
		dashboard, _, _ := newTestDashboard(t, 12)

		err := dashboard.ClearCacheByEndpoint(ctx, []models.Endpoint{"transactions"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Full Clear Empties The Cache", func(t *testing.T) {
		dashboard, _, requestCache := newTestDashboard(t, 12)
		require.NoError(t, dashboard.SelectAllEmployees(ctx))

		require.NoError(t, dashboard.ClearCache(ctx))

		_, found, _ := requestCache.Get(ctx, `paginatedTransactions@{"page":0}`)
		assert.False(t, found)
	})
}

type stubPaginated struct {
	contracts.PaginatedTransactionsUsecase
	data *models.PaginatedTransactions
}

func (s *stubPaginated) Data() *models.PaginatedTransactions { return s.data }
func (s *stubPaginated) Loading() bool                       { return false }

type stubByEmployee struct {
	contracts.TransactionsByEmployeeUsecase
	data []models.Transaction
}

func (s *stubByEmployee) Data() []models.Transaction { return s.data }
func (s *stubByEmployee) Loading() bool              { return true }

type stubEmployees struct {
	contracts.EmployeeUsecase
}

func (s *stubEmployees) Data() []models.Employee { return nil }
func (s *stubEmployees) Loading() bool           { return false }

func TestDashboardUsecase_Snapshot(t *testing.T) {
	t.Run("Paginated Data Wins When Both Sources Hold Data", func(t *testing.T) {
		dashboard := NewDashboardUsecase(
			&stubPaginated{data: &models.PaginatedTransactions{Data: []models.Transaction{{ID: "p1"}}, NextPage: constvars.PageCursorTerminal}},
			&stubByEmployee{data: []models.Transaction{{ID: "b1"}}},
			&stubEmployees{},
			nil,
			zap.NewNop(),
		)

		state := dashboard.Snapshot()

		assert.Equal(t, models.ActiveSourcePaginatedAll, state.ActiveSource)
		assert.Equal(t, []models.Transaction{{ID: "p1"}}, state.Transactions)
		assert.False(t, state.HasMore)
		assert.True(t, state.TransactionsLoading, "loading merges both sources")
		assert.Nil(t, state.Employees)
	})

	t.Run("By Employee Data Shows When Paginated Is Empty", func(t *testing.T) {
		dashboard := NewDashboardUsecase(
			&stubPaginated{},
			&stubByEmployee{data: []models.Transaction{{ID: "b1"}}},
			&stubEmployees{},
			nil,
			zap.NewNop(),
		)

		state := dashboard.Snapshot()

		assert.Equal(t, models.ActiveSourceByEmployee, state.ActiveSource)
		assert.Equal(t, []models.Transaction{{ID: "b1"}}, state.Transactions)
	})
}
