package config

import (
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"
	"transactions-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                    utils.GetEnvString("APP_PORT", "8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Backend: Backend{
			Mode:                  utils.GetEnvString("BACKEND_MODE", constvars.BackendModeMemory),
			BaseUrl:               utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8080/backend"),
			PageSize:              utils.GetEnvInt("BACKEND_PAGE_SIZE", 5),
			LatencyInMilliseconds: utils.GetEnvInt("BACKEND_LATENCY_IN_MILLISECONDS", 0),
			MaxRequestsPerSecond:  utils.GetEnvInt("BACKEND_MAX_REQUESTS_PER_SECOND", 0),
		},
		Cache: Cache{
			Store:     utils.GetEnvString("CACHE_STORE", constvars.CacheStoreMemory),
			KeyPrefix: utils.GetEnvString("CACHE_KEY_PREFIX", "transactions-client:"),
		},
	}
}

// Validate checks both configs before any driver is opened. Redis settings
// are only checked when Redis backs the cache.
func Validate(driverConfig *DriverConfig, internalConfig *InternalConfig) error {
	err := utils.ValidateStruct(internalConfig)
	if err == nil {
		if internalConfig.Cache.Store == constvars.CacheStoreRedis {
			err = utils.ValidateStruct(driverConfig)
		} else {
			err = utils.ValidateStruct(driverConfig.Logger)
		}
	}
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
