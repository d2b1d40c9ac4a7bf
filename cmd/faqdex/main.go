package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/faqdex/internal/config"
	dbRedis "github.com/kailas-cloud/faqdex/internal/db/redis"
	"github.com/kailas-cloud/faqdex/internal/domain"
	"github.com/kailas-cloud/faqdex/internal/domain/faq/catalog"
	logpkg "github.com/kailas-cloud/faqdex/internal/logger"
	"github.com/kailas-cloud/faqdex/internal/metrics"
	faqrepo "github.com/kailas-cloud/faqdex/internal/repository/faq"
	prefsrepo "github.com/kailas-cloud/faqdex/internal/repository/preferences"
	chiTransport "github.com/kailas-cloud/faqdex/internal/transport/chi"
	faquc "github.com/kailas-cloud/faqdex/internal/usecase/faq"
	healthuc "github.com/kailas-cloud/faqdex/internal/usecase/health"
	prefsuc "github.com/kailas-cloud/faqdex/internal/usecase/preferences"
	seeduc "github.com/kailas-cloud/faqdex/internal/usecase/seed"
	"github.com/kailas-cloud/faqdex/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting faqdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("key_prefix", cfg.Storage.KeyPrefix),
	)

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("Failed to load FAQ catalog", zap.Error(err))
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	metrics.RegisterHTTPMetrics(prometheus.DefaultRegisterer)
	metrics.RegisterSearchMetrics(prometheus.DefaultRegisterer)
	recorder := metrics.Recorder{}

	faqRepo := faqrepo.New(store, cfg.Storage.KeyPrefix)
	prefsRepo := prefsrepo.New(store, cfg.Storage.KeyPrefix)

	seedSvc := seeduc.New(faqRepo, store, seeduc.LockKey(cfg.Storage.KeyPrefix), cat.Items, logger).
		WithRecorder(recorder)
	if cfg.Seed.OnStartup {
		seedOnStartup(ctx, seedSvc, logger)
	} else if err := faqRepo.EnsureIndex(ctx); err != nil {
		logger.Fatal("Failed to ensure FAQ index", zap.Error(err))
	}

	faqSvc := faquc.New(faqRepo, cat.Categories).
		WithLimits(cfg.Search.DefaultLimit, cfg.Search.ListDefaultLimit, cfg.Search.MaxLimit).
		WithRecorder(recorder)
	prefsSvc := prefsuc.New(prefsRepo)
	healthSvc := healthuc.New(store, faqRepo)

	server := chiTransport.NewServer(faqSvc, prefsSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.CORSMiddleware(cfg.HTTP.CORSAllowedOrigins))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// seedOnStartup fills an empty store. Another replica holding the lock is not an error.
func seedOnStartup(ctx context.Context, svc *seeduc.Service, logger *zap.Logger) {
	n, err := svc.Seed(ctx, false)
	switch {
	case errors.Is(err, domain.ErrSeedInProgress):
		logger.Info("Seed running elsewhere, skipping")
	case err != nil:
		logger.Error("Seeding failed", zap.Error(err))
	case n == 0:
		logger.Info("FAQ store already populated")
	}
}
