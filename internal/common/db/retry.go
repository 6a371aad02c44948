package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/workout-tracker/backend/internal/common/constants"
	"github.com/workout-tracker/backend/internal/common/logger"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

var DefaultRetryConfig = RetryConfig{
	MaxAttempts:  constants.DBPoolMaxAttempts,
	InitialDelay: constants.DBPoolRetryDelay,
	MaxDelay:     10 * time.Second,
	Multiplier:   2.0,
}

// ConnectWithRetry keeps calling connect with exponential backoff until it
// succeeds, the attempts are exhausted, or ctx is cancelled. It covers the
// startup window where the database is still coming up.
func ConnectWithRetry(
	ctx context.Context,
	log *logger.Logger,
	config RetryConfig,
	connect func() (*pgxpool.Pool, error),
) (*pgxpool.Pool, error) {
	var lastErr error
	delay := config.InitialDelay

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		pool, err := connect()
		if err == nil {
			if attempt > 1 {
				log.Infof("database connection succeeded after %d attempts", attempt)
			}
			return pool, nil
		}

		lastErr = err

		if attempt == config.MaxAttempts {
			break
		}

		log.Warnf("failed to connect to database (attempt %d/%d): %v, retrying in %v",
			attempt, config.MaxAttempts, err, delay)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during connect: %w", ctx.Err())
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * config.Multiplier)
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", config.MaxAttempts, lastErr)
}
