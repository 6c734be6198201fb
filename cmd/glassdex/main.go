package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/glassdex/internal/config"
	dbRedis "github.com/kailas-cloud/glassdex/internal/db/redis"
	"github.com/kailas-cloud/glassdex/internal/domain/catalog/manufacturer"
	"github.com/kailas-cloud/glassdex/internal/domain/search/filter"
	logpkg "github.com/kailas-cloud/glassdex/internal/logger"
	"github.com/kailas-cloud/glassdex/internal/metrics"
	catalogrepo "github.com/kailas-cloud/glassdex/internal/repository/catalog"
	enablementrepo "github.com/kailas-cloud/glassdex/internal/repository/enablement"
	chiTransport "github.com/kailas-cloud/glassdex/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/glassdex/internal/usecase/catalog"
	enablementuc "github.com/kailas-cloud/glassdex/internal/usecase/enablement"
	healthuc "github.com/kailas-cloud/glassdex/internal/usecase/health"
	"github.com/kailas-cloud/glassdex/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting glassdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	ctx := logpkg.ContextWithLogger(context.Background(), logger)

	registry, err := buildRegistry(cfg.Manufacturers)
	if err != nil {
		logger.Fatal("Invalid manufacturer overrides", zap.Error(err))
	}

	// Optional store: enablement persistence, catalog blob, inventory.
	var store *dbRedis.Store
	if cfg.Database.Enabled() {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
			DB:       cfg.Database.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database")
	}

	metrics.RegisterCatalogMetrics()

	var enablementRepo enablementuc.Repository
	if store != nil {
		enablementRepo = enablementrepo.New(store, cfg.Database.KeyPrefix+"manufacturers:enabled")
	}
	enablement, err := enablementuc.New(ctx, registry, cfg.Manufacturers.Enabled, enablementRepo)
	if err != nil {
		logger.Fatal("Failed to initialize manufacturer enablement", zap.Error(err))
	}
	defer enablement.Close()

	var source cataloguc.Source
	switch cfg.Catalog.Source {
	case "store":
		source = catalogrepo.NewStoreSource(store, cfg.Database.KeyPrefix+"catalog")
	default:
		source = catalogrepo.NewFileSource(cfg.Catalog.File)
	}

	// Pass nil interface (not typed nil pointer) when inventory is off.
	var inventory cataloguc.Inventory
	if cfg.Catalog.Inventory {
		inventory = catalogrepo.NewInventory(store, cfg.Database.KeyPrefix+"inventory")
	}

	catalogSvc, err := cataloguc.New(source, inventory, enablement, registry, cataloguc.Config{
		Thresholds:       filter.Thresholds{Low: cfg.Catalog.LowStockThreshold},
		Workers:          cfg.Catalog.Workers,
		ChunkSize:        cfg.Catalog.ChunkSize,
		ParallelMin:      cfg.Catalog.ParallelMin,
		HideDiscontinued: cfg.Catalog.HideDiscontinued,
	})
	if err != nil {
		logger.Fatal("Failed to create catalog service", zap.Error(err))
	}
	defer catalogSvc.Close()

	// A failed first load keeps the server up; /health reports it and
	// POST /catalog/reload can retry.
	if _, err := catalogSvc.Reload(ctx); err != nil {
		logger.Error("Initial catalog load failed", zap.Error(err))
	}

	var healthSvc *healthuc.Service
	if store != nil {
		healthSvc = healthuc.New(catalogSvc, store)
	} else {
		healthSvc = healthuc.New(catalogSvc, nil)
	}

	server := chiTransport.NewServer(catalogSvc, enablement, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
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

// buildRegistry layers config overrides on top of the built-in manufacturers.
func buildRegistry(cfg config.ManufacturersConfig) (*manufacturer.Registry, error) {
	ms := manufacturer.Defaults()

	codes := make([]string, 0, len(cfg.Overrides))
	for code := range cfg.Overrides {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		o := cfg.Overrides[code]
		m, err := manufacturer.New(code, o.Name, o.Classes)
		if err != nil {
			return nil, fmt.Errorf("manufacturer %q: %w", code, err)
		}
		ms = append(ms, m)
	}
	return manufacturer.NewRegistry(ms...), nil
}
