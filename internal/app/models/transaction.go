package models

type Transaction struct {
	ID           string   `json:"id"`
	Amount       float64  `json:"amount"`
	Employee     Employee `json:"employee"`
	MerchantName string   `json:"merchant"`
	Date         string   `json:"date"`
	Approved     bool     `json:"approved"`
}

// PaginatedResponse is one page as returned by the backend. A nil NextPage
// means the page is the last one.
type PaginatedResponse struct {
	Data     []Transaction `json:"data"`
	NextPage *int          `json:"nextPage"`
}

// PaginatedTransactions is the accumulated listing of every page fetched so
// far. NextPage is constvars.PageCursorTerminal once the last page is in.
type PaginatedTransactions struct {
	Data     []Transaction `json:"data"`
	NextPage int           `json:"nextPage"`
}

type PaginatedRequestParams struct {
	Page int `json:"page" validate:"gte=0"`
}

type TransactionsByEmployeeParams struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}
