package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	accounthttp "github.com/workout-tracker/backend/internal/account/http"
	accountrepo "github.com/workout-tracker/backend/internal/account/repository"
	"github.com/workout-tracker/backend/internal/account/service"
	"github.com/workout-tracker/backend/internal/common/clock"
	"github.com/workout-tracker/backend/internal/common/config"
	commoncrypto "github.com/workout-tracker/backend/internal/common/crypto"
	"github.com/workout-tracker/backend/internal/common/db"
	commonhttp "github.com/workout-tracker/backend/internal/common/http"
	"github.com/workout-tracker/backend/internal/common/logger"
	srv "github.com/workout-tracker/backend/internal/common/server"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "account", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.LoadAccountConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	pool, err := db.NewPool(ctx, log, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer pool.Close()

	if err := accountrepo.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	repo := accountrepo.NewPgRepository(pool)
	accountService := service.NewAccountService(
		repo,
		&commoncrypto.BcryptHasher{},
		commoncrypto.NewUUIDGenerator(),
		clock.NewRealClock(),
		log,
	)

	handler := accounthttp.NewHandler(accountService, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("/metrics", promhttp.Handler())

	finalHandler := commonhttp.BuildBaseHandler(log, mux)

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort), finalHandler)
	srv.StartWithGracefulShutdown(server, log, "account")
}
