package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"required_if": "is required",
	"min":         "must be at least %s",
	"max":         "must be at most %s",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lte":         "must be less than or equal to %s",
	"oneof":       "must be one of [%s]",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientBackendUnavailable            = "transactions are temporarily unavailable"
	ErrClientEmployeeNotFound              = "employee not found"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevReadResponseBody       = "failed to read response body"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	// Backend messages
	ErrDevBackendStatus    = "backend responded to %s with status %d"
	ErrDevDecodeResponse   = "failed to decode %s response"
	ErrDevUnknownEndpoint  = "unknown endpoint %q"
	ErrDevInvalidParams    = "invalid params for endpoint %s"
	ErrDevBackendRateLimit = "backend rate limiter wait failed"
	ErrDevEmployeeNotFound = "employee %q not found"

	// Cache messages
	ErrDevCacheGetData     = "failed to get cache entry %q"
	ErrDevCacheSetData     = "failed to set cache entry %q"
	ErrDevCacheDeleteData  = "failed to delete cache entries"
	ErrDevCacheDecodeEntry = "failed to decode cache entry %q"
	ErrDevCacheScanKeys    = "failed to scan cache keys"
)

// Validation tags whose message carries the tag parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}
