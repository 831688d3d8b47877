package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/volcano-atlas/volcano_api/internal/config"
)

const (
	pgConnectTimeout  = 5 * time.Second
	pgMaxConnIdleTime = 5 * time.Minute
	pgHealthCheck     = 30 * time.Second
)

// NewPostgresPool opens the volcano database pool sized from cfg and verifies it
// answers a ping.
func NewPostgresPool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pgConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return pool, nil
}

// poolConfig tags connections with the application name unless the URL already
// sets one.
func poolConfig(cfg config.Config) (*pgxpool.Config, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database url is required")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	if cfg.DBMaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.DBMaxConns)
	}
	if cfg.DBMinConns >= 0 && cfg.DBMinConns <= cfg.DBMaxConns {
		poolCfg.MinConns = int32(cfg.DBMinConns)
	}
	poolCfg.MaxConnIdleTime = pgMaxConnIdleTime
	poolCfg.HealthCheckPeriod = pgHealthCheck
	poolCfg.ConnConfig.ConnectTimeout = pgConnectTimeout
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok && cfg.AppName != "" {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = cfg.AppName
	}
	return poolCfg, nil
}
