package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/alfagnish/trading-app/internal/config"
	"github.com/alfagnish/trading-app/internal/feed"
	grpcserver "github.com/alfagnish/trading-app/internal/grpc"
	"github.com/alfagnish/trading-app/internal/server"
	"github.com/alfagnish/trading-app/internal/store"
)

func main() {
	// 1. Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("listen", cfg.ListenAddr),
		zap.String("grpc", cfg.GRPCAddr),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)

	// 2. Build the in-memory collections from the embedded seed data.
	st, err := store.Seeded()
	if err != nil {
		logger.Fatal("seed store", zap.Error(err))
	}

	// 3. Create the trade feed hub.
	hub := feed.NewHub(cfg.FeedBuffer)

	// 4. Set up the chi router with all handlers.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.New(cfg, st, hub, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// 5. Optionally start the gRPC health endpoint.
	var health *grpcserver.HealthServer
	if cfg.GRPCAddr != "" {
		health = grpcserver.NewHealthServer(logger)
		go func() {
			if err := health.ListenAndServe(cfg.GRPCAddr); err != nil {
				logger.Fatal("grpc server", zap.Error(err))
			}
		}()
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("http listening", zap.String("address", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if health != nil {
		health.MarkNotServing()
	}
	// Feed connections are hijacked, so Shutdown does not wait for them.
	hub.Close()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
	if health != nil {
		health.Stop(ctx)
	}

	logger.Info("shutdown complete")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
