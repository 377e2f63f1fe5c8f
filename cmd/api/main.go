package main

import (
	"context"
	"net/http"
	"os"

	"github.com/dmoreira/workshop-backend/api/routes"
	"github.com/dmoreira/workshop-backend/internal/customers"
	"github.com/dmoreira/workshop-backend/internal/parts"
	"github.com/dmoreira/workshop-backend/internal/reports"
	"github.com/dmoreira/workshop-backend/internal/sales"
	"github.com/dmoreira/workshop-backend/internal/services"
	"github.com/dmoreira/workshop-backend/internal/settings"
	"github.com/dmoreira/workshop-backend/pkg/config"
	"github.com/dmoreira/workshop-backend/pkg/db"
	"github.com/dmoreira/workshop-backend/pkg/logger"
	"github.com/dmoreira/workshop-backend/pkg/metrics"
	"github.com/dmoreira/workshop-backend/pkg/migrate"
	"github.com/dmoreira/workshop-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	var cachePinger redis.Pinger
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		cachePinger = redisClient
	}

	conn := dbClient.DB()

	customersRepo := customers.NewRepository(conn)
	partsRepo := parts.NewRepository(conn)
	salesRepo := sales.NewRepository(conn)

	var settingsCache settings.Cache
	if redisClient != nil {
		settingsCache = redisClient
	}
	settingsService := settings.NewService(settings.NewRepository(conn), settingsCache, logg)

	if err := settingsService.EnsureDefaults(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to seed default settings", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.NewRouter(routes.Deps{
		Logger:    logg,
		DB:        dbClient,
		Cache:     cachePinger,
		Metrics:   metrics.NewHTTPMetrics(registry),
		MetricsH:  promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Customers: customers.NewService(customersRepo),
		Parts:     parts.NewService(partsRepo, settingsService),
		Services:  services.NewService(services.NewRepository(conn)),
		Sales:     sales.NewService(dbClient, salesRepo, partsRepo, customersRepo),
		Settings:  settingsService,
		Reports:   reports.NewService(salesRepo),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
