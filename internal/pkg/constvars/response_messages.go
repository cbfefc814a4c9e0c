package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Dashboard messages
	GetDashboardSuccessMessage         = "get dashboard successfully"
	SelectFilterSuccessMessage         = "filter applied successfully"
	LoadMoreTransactionsSuccessMessage = "more transactions loaded successfully"

	// Cache messages
	ClearCacheSuccessMessage           = "cache cleared successfully"
	ClearCacheByEndpointSuccessMessage = "cache cleared for endpoint successfully"
)
