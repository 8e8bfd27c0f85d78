package storage

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/grants-insight/configs"
)

type RedisConnector struct {
	client *redis.Client
	cfg    *config.RedisConfig
	ttl    time.Duration
}

var DEFAULT_REDIS_POOL_SIZE = 20

const redisKeyPrefix = "grants:source:"

func NewRedisConnector(cfg *config.RedisConfig, ttl time.Duration) (*RedisConnector, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = DEFAULT_REDIS_POOL_SIZE
	}

	options := &redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	}
	if cfg.EnableTLS {
		options.TLSConfig = &tls.Config{}
	}

	client := redis.NewClient(options)

	ctx := context.Background()
	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")
	return &RedisConnector{
		client: client,
		cfg:    cfg,
		ttl:    ttl,
	}, nil
}

// Get relies on redis key expiry for staleness.
func (r *RedisConnector) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached response: %w", err)
	}
	return value, true, nil
}

func (r *RedisConnector) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}
	return nil
}

func (r *RedisConnector) Close() error {
	return r.client.Close()
}
