package config

import (
	"context"
	"log"
	"transactions-client/internal/app/contracts"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	Dashboard      contracts.DashboardUsecase
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	// Sync returns an error for console sinks on some platforms.
	err := b.Logger.Sync()
	if err != nil {
		log.Printf("Logger sync returned: %v", err)
	}
	log.Println("Successfully closing Logger")

	return nil
}
