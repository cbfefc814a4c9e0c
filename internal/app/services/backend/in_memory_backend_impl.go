package backend

import (
	"context"
	"errors"
	"time"
	"transactions-client/internal/app/contracts"
	"transactions-client/internal/app/models"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"
	"transactions-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	errMissingPage       = errors.New("page is required")
	errNegativePage      = errors.New("page cannot be negative")
	errMissingEmployeeID = errors.New("employee id cannot be empty")
)

type inMemoryBackend struct {
	employees    []models.Employee
	transactions []models.Transaction
	pageSize     int
	latency      time.Duration
	Log          *zap.Logger
}

// NewInMemoryBackend serves the backend contract from fixed data. Pages hold
// pageSize transactions and every response waits latency first.
func NewInMemoryBackend(
	employees []models.Employee,
	transactions []models.Transaction,
	pageSize int,
	latency time.Duration,
	logger *zap.Logger,
) contracts.TransactionsAPI {
	if pageSize <= 0 {
		pageSize = 5
	}
	return &inMemoryBackend{
		employees:    employees,
		transactions: transactions,
		pageSize:     pageSize,
		latency:      latency,
		Log:          logger,
	}
}

func (b *inMemoryBackend) Fetch(ctx context.Context, endpoint models.Endpoint, params interface{}) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	b.Log.Debug("inMemoryBackend.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, endpoint.String()),
	)

	err := b.wait(ctx)
	if err != nil {
		return nil, exceptions.ErrServerDeadlineExceeded(err)
	}

	var response interface{}
	switch endpoint {
	case models.EndpointEmployees:
		response = b.employees

	case models.EndpointPaginatedTransactions:
		var request *models.PaginatedRequestParams
		err = decodeParams(params, &request)
		if err != nil {
			return nil, exceptions.ErrInvalidFetchParams(err, endpoint.String())
		}
		if request == nil {
			return nil, exceptions.ErrInvalidFetchParams(errMissingPage, endpoint.String())
		}
		if request.Page < 0 {
			return nil, exceptions.ErrInvalidFetchParams(errNegativePage, endpoint.String())
		}
		response = b.paginate(request.Page)

	case models.EndpointTransactionsByEmployee:
		var request *models.TransactionsByEmployeeParams
		err = decodeParams(params, &request)
		if err != nil {
			return nil, exceptions.ErrInvalidFetchParams(err, endpoint.String())
		}
		if request == nil || request.EmployeeID == "" {
			return nil, exceptions.ErrInvalidFetchParams(errMissingEmployeeID, endpoint.String())
		}
		response = b.byEmployee(request.EmployeeID)

	default:
		b.Log.Error("inMemoryBackend.Fetch unknown endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint.String()),
		)
		return nil, exceptions.ErrUnknownEndpoint(nil, endpoint.String())
	}

	body, err := json.Marshal(response)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return body, nil
}

// paginate returns an empty last page for any page past the data, before
// page*pageSize can overflow.
func (b *inMemoryBackend) paginate(page int) models.PaginatedResponse {
	if page > len(b.transactions)/b.pageSize {
		return models.PaginatedResponse{Data: []models.Transaction{}}
	}

	start := page * b.pageSize
	end := start + b.pageSize
	if start > len(b.transactions) {
		start = len(b.transactions)
	}
	if end > len(b.transactions) {
		end = len(b.transactions)
	}

	response := models.PaginatedResponse{
		Data: append([]models.Transaction{}, b.transactions[start:end]...),
	}
	if end < len(b.transactions) {
		nextPage := page + 1
		response.NextPage = &nextPage
	}
	return response
}

func (b *inMemoryBackend) byEmployee(employeeID string) []models.Transaction {
	transactions := []models.Transaction{}
	for _, transaction := range b.transactions {
		if transaction.Employee.ID == employeeID {
			transactions = append(transactions, transaction)
		}
	}
	return transactions
}

func (b *inMemoryBackend) wait(ctx context.Context) error {
	if b.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decodeParams copies params of any shape into dst through their JSON form.
func decodeParams(params interface{}, dst interface{}) error {
	if params == nil {
		return nil
	}
	serialized, err := json.Marshal(params)
	if err != nil {
		return err
	}
	return json.Unmarshal(serialized, dst)
}
