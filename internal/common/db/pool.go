package db

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/workout-tracker/backend/internal/common/constants"
	"github.com/workout-tracker/backend/internal/common/logger"
)

// NewPool establishes the process-wide connection pool. It is created once at
// startup and shared by every in-flight request; pgxpool is safe for
// concurrent use.
func NewPool(ctx context.Context, log *logger.Logger, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = constants.DBPoolMaxOpenConns
	cfg.MinConns = constants.DBPoolMinOpenConns
	cfg.MaxConnLifetime = constants.DBPoolConnMaxLifetime
	cfg.MaxConnIdleTime = constants.DBPoolConnMaxIdleTime
	cfg.HealthCheckPeriod = constants.DBPoolHealthCheck
	cfg.ConnConfig.ConnectTimeout = constants.DBPoolConnectTimeout
	cfg.ConnConfig.RuntimeParams = map[string]string{
		"application_name": "workout-tracker-account",
	}

	pool, err := ConnectWithRetry(ctx, log, DefaultRetryConfig, func() (*pgxpool.Pool, error) {
		return pgxpool.ConnectConfig(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}

	log.Infof("database connection pool initialized: max=%d, min=%d", cfg.MaxConns, cfg.MinConns)
	StartPoolMetrics(pool, constants.DBPoolMetricsInterval)
	return pool, nil
}
