package models

// Endpoint identifies one kind of backend operation. It is also the prefix of
// every cache key built for it.
type Endpoint string

const (
	EndpointPaginatedTransactions  Endpoint = "paginatedTransactions"
	EndpointTransactionsByEmployee Endpoint = "transactionsByEmployee"
	EndpointEmployees              Endpoint = "employees"
)

var RegisteredEndpoints = []Endpoint{
	EndpointPaginatedTransactions,
	EndpointTransactionsByEmployee,
	EndpointEmployees,
}

func (e Endpoint) String() string {
	return string(e)
}

func (e Endpoint) IsRegistered() bool {
	for _, endpoint := range RegisteredEndpoints {
		if endpoint == e {
			return true
		}
	}
	return false
}
