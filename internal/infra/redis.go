package infra

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"closetshare/pkg/cache"
)

// InitAggregateStore wires the rating-aggregate cache: Redis when an address
// is configured, an in-process store otherwise.
func InitAggregateStore(cfg *Config, logger *zap.Logger) cache.AggregateStore {
	if cfg.RedisAddr == "" {
		logger.Info("No Redis address configured, using in-memory aggregate cache")
		return cache.NewMemoryAggregateStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	return cache.NewRedisAggregateStore(client)
}
