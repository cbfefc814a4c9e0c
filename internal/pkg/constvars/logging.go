package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResponseLengthKey = "response_length"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingURLKey        = "url"

	LoggingCacheKeyKey         = "cache_key"
	LoggingCacheHitKey         = "cache_hit"
	LoggingCachePrefixesKey    = "cache_prefixes"
	LoggingCacheDeletedKey     = "cache_deleted"
	LoggingPageKey             = "page"
	LoggingNextPageKey         = "next_page"
	LoggingEmployeeIDKey       = "employee_id"
	LoggingTransactionCountKey = "transaction_count"
	LoggingEmployeeCountKey    = "employee_count"
	LoggingActiveSourceKey     = "active_source"
	LoggingGenerationKey       = "generation"
)
