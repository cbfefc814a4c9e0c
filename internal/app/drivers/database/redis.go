package database

import (
	"context"
	"fmt"
	"log"
	"time"
	"transactions-client/internal/app/config"

	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects to the cache Redis and pings it once.
func NewRedisClient(ctx context.Context, driverConfig *config.DriverConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	_, err := rdb.Ping(pingCtx).Result()
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s:%s: %w", driverConfig.Redis.Host, driverConfig.Redis.Port, err)
	}

	log.Printf("Successfully connected to Redis at %s:%s db %d", driverConfig.Redis.Host, driverConfig.Redis.Port, driverConfig.Redis.DB)
	return rdb, nil
}
