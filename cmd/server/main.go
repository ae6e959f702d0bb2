// Package main is the entry point for the taproom API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"taproom/internal/config"
	v1 "taproom/internal/infrastructure/http/v1"
	"taproom/internal/infrastructure/metrics"
	"taproom/internal/infrastructure/storage/postgres"
	"taproom/pkg/logger"
)

func main() {
	conf, err := config.Parse()
	if err != nil {
		fmt.Printf("failed to load configuration: %+v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       conf.Logger.Level,
		Development: conf.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithLogger(context.Background(), log)
	log.Infow("starting taproom server", "database", conf.Database.String())

	// --- Database ---
	if err := postgres.Bootstrap(ctx, conf.Database); err != nil {
		log.Fatalw("database bootstrap failed", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfigFrom(conf.Database))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	pool.LogStats(ctx)

	if err := metrics.RegisterPool(prometheus.DefaultRegisterer, pool.Pool); err != nil {
		log.Warnw("failed to register pool metrics", "error", err)
	}

	txManager := postgres.NewTxManager(pool, conf.Database.StatementTimeout)

	// --- Router ---
	handler := v1.NewHandler(v1.RouterConfig{
		Health:          pool,
		TxManager:       txManager,
		Logger:          log,
		DefaultPageSize: conf.API.DefaultPageSize,
		TaggedResults:   conf.API.TaggedResults,
		Gzip:            conf.HTTP.Gzip,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         conf.HTTP.Address,
		Handler:      handler,
		ReadTimeout:  conf.HTTP.ReadTimeout,
		WriteTimeout: conf.HTTP.WriteTimeout,
		IdleTimeout:  conf.HTTP.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "address", conf.HTTP.Address, "tagged_results", conf.API.TaggedResults)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
