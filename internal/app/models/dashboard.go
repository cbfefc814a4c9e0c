package models

type ActiveSource string

const (
	ActiveSourceNone         ActiveSource = "none"
	ActiveSourcePaginatedAll ActiveSource = "paginated_all"
	ActiveSourceByEmployee   ActiveSource = "by_employee"
)

// DashboardState is the read model handed to the UI boundary.
type DashboardState struct {
	Transactions        []Transaction `json:"transactions"`
	Employees           []Employee    `json:"employees"`
	SelectedEmployee    *Employee     `json:"selectedEmployee"`
	ActiveSource        ActiveSource  `json:"activeSource"`
	EmployeesLoading    bool          `json:"employeesLoading"`
	TransactionsLoading bool          `json:"transactionsLoading"`
	HasMore             bool          `json:"hasMore"`
}
