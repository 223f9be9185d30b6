package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/value-radar-service/internal/cache"
	"github.com/cypherlabdev/value-radar-service/internal/config"
	httpHandler "github.com/cypherlabdev/value-radar-service/internal/handler/http"
	"github.com/cypherlabdev/value-radar-service/internal/messaging"
	"github.com/cypherlabdev/value-radar-service/internal/providers"
	"github.com/cypherlabdev/value-radar-service/internal/providers/mock"
	"github.com/cypherlabdev/value-radar-service/internal/providers/oddsapi"
	"github.com/cypherlabdev/value-radar-service/internal/repository/postgres"
	"github.com/cypherlabdev/value-radar-service/internal/service"
	syncpkg "github.com/cypherlabdev/value-radar-service/internal/sync"
	"github.com/cypherlabdev/value-radar-service/pkg/analysis"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting value-radar-service")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to PostgreSQL
	store, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		QueryTimeout:    cfg.Database.QueryTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer store.Close()
	logger.Info().Msg("connected to PostgreSQL")

	// Create Redis cache
	redisCache := cache.NewRedisCache(
		cache.RedisCacheConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		},
		logger,
	)
	defer redisCache.Close()

	// Test Redis connection
	if err := redisCache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Create Kafka publisher
	publisher := messaging.NewKafkaPublisher(
		messaging.KafkaPublisherConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		},
		logger,
	)
	defer publisher.Close()

	// Create analysis engine
	engine := analysis.NewEngine(cfg.Analysis.ToParams(), logger)
	logger.Info().Msg("analysis engine initialized")

	// Create service layer
	analysisService := service.NewAnalysisService(store, redisCache, publisher, engine, logger)
	queryService := service.NewQueryService(store, redisCache, logger)
	logger.Info().Msg("services initialized")

	// Select providers
	oddsProvider, flowProvider, modelProvider := buildProviders(cfg.Providers, logger)
	logger.Info().Str("mode", cfg.Providers.Mode).Msg("providers initialized")

	// Create sync orchestrator
	orchestrator := syncpkg.NewOrchestrator(
		store, analysisService,
		oddsProvider, flowProvider, modelProvider,
		cfg.Sync.Window, logger,
	)

	// Initialize HTTP handler
	radarHandler := httpHandler.NewRadarHandler(
		analysisService, queryService, orchestrator,
		cfg.Sync.DefaultLimit, cfg.Sync.MaxLimit,
		logger,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health and monitoring endpoints
	r.Get("/health", healthHandler)
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, store, redisCache)
	})
	r.Handle("/metrics", promhttp.Handler())

	// Register API routes
	radarHandler.RegisterRoutes(r)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")
	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// buildProviders wires the configured provider variant. The HTTP odds feed
// only replaces the odds capability; public/cash and the model stay mocked
// until real feeds exist for them.
func buildProviders(cfg config.ProvidersConfig, logger zerolog.Logger) (providers.OddsProvider, providers.PublicCashProvider, providers.ModelProvider) {
	mocks := mock.New(cfg.MockTotal)

	if cfg.Mode == "http" {
		client := oddsapi.NewClient(oddsapi.Config{
			BaseURL:        cfg.OddsFeed.BaseURL,
			APIKey:         cfg.OddsFeed.APIKey,
			Timeout:        cfg.OddsFeed.Timeout,
			RequestsPerSec: cfg.OddsFeed.RequestsPerSec,
			Burst:          cfg.OddsFeed.Burst,
		}, logger)
		return client, mocks, mocks
	}

	return mocks, mocks, mocks
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "value-radar").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, store *postgres.Store, cache *cache.RedisCache) {
	if err := store.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("PostgreSQL unavailable"))
		return
	}
	if err := cache.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
