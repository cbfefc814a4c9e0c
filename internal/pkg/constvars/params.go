package constvars

const (
	URLParamEndpoint = "endpoint"
)

const (
	URLQueryParamPage       = "page"
	URLQueryParamEmployeeID = "employeeId"
)
