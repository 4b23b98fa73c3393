package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cartonworks/stockline/internal/shared/config"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

// NewRedisClient connects and pings. Callers decide whether a failure is fatal.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}

	log.Infow("redis connection established", "addr", cfg.GetAddr(), "db", cfg.DB)
	return client, nil
}
