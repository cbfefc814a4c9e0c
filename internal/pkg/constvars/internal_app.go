package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TRX_CLIENT_"
)

// PageCursorTerminal marks a paginated source that has no further pages.
const PageCursorTerminal = -1

const (
	CacheKeySeparator = "@"
)

const (
	CacheStoreMemory = "memory"
	CacheStoreRedis  = "redis"
)

const (
	BackendModeHTTP   = "http"
	BackendModeMemory = "memory"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	ResourceDashboard = "dashboard"
	ResourceCache     = "cache"
	ResourceBackend   = "backend"
)
