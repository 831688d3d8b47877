package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/volcano-atlas/volcano_api/internal/config"
)

// Redis only backs best-effort paths (countries cache, idempotency, login
// throttling), so calls give up quickly.
const (
	redisDialTimeout = 2 * time.Second
	redisIOTimeout   = time.Second
)

// NewRedisClient builds the cache client from cfg and verifies connectivity.
func NewRedisClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	opt, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func redisOptions(cfg config.Config) (*redis.Options, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis url is required")
	}
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if opt.ClientName == "" {
		opt.ClientName = cfg.AppName
	}
	opt.DialTimeout = redisDialTimeout
	opt.ReadTimeout = redisIOTimeout
	opt.WriteTimeout = redisIOTimeout
	return opt, nil
}
