package config

import (
	"fmt"
	"os"
	"time"

	"github.com/workout-tracker/backend/internal/common/constants"
	commonerrors "github.com/workout-tracker/backend/internal/common/errors"
)

type AccountConfig struct {
	HTTPPort       string
	DatabaseURL    string
	RequestTimeout time.Duration
}

func LoadAccountConfig() (AccountConfig, error) {
	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return AccountConfig{}, err
	}

	return AccountConfig{
		HTTPPort:       getEnv("ACCOUNT_HTTP_PORT", constants.DefaultAccountHTTPPort),
		DatabaseURL:    databaseURL,
		RequestTimeout: getDurationEnv("ACCOUNT_REQUEST_TIMEOUT", constants.DefaultAccountRequestTimeout),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
