package requests

// SelectFilter picks the employee whose transactions are listed. An empty
// EmployeeID selects all employees.
type SelectFilter struct {
	EmployeeID string `json:"employeeId" validate:"max=64"`
}
