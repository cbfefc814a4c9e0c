package models

type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// EmptyEmployee is the "no filter" entry of the employee selector. Its id is
// reserved and never used by a real employee.
var EmptyEmployee = Employee{
	ID:        "",
	FirstName: "All",
	LastName:  "Employees",
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
