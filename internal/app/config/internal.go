package config

type InternalConfig struct {
	App     App
	Backend Backend
	Cache   Cache
}

type App struct {
	Env                     string `validate:"oneof=development production"`
	Port                    string `validate:"required"`
	Version                 string `validate:"required"`
	EndpointPrefix          string `validate:"required"`
	MaxRequests             int    `validate:"gt=0"`
	ShutdownTimeout         int    `validate:"gt=0"`
	RequestTimeoutInSeconds int    `validate:"gt=0"`
}

// Backend selects where the underlying fetch goes. In memory mode the
// seeded fixture backend is used and BaseUrl is ignored.
type Backend struct {
	Mode                  string `validate:"oneof=http memory"`
	BaseUrl               string `validate:"required_if=Mode http"`
	PageSize              int    `validate:"gt=0"`
	LatencyInMilliseconds int    `validate:"gte=0"`
	MaxRequestsPerSecond  int    `validate:"gte=0"`
}

// Cache selects the request cache store. KeyPrefix namespaces every Redis
// key; clearing the cache only touches keys under it.
type Cache struct {
	Store     string `validate:"oneof=memory redis"`
	KeyPrefix string `validate:"required_if=Store redis"`
}
