package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mohamedkhairy/ta-engine/internal/api"
	"github.com/mohamedkhairy/ta-engine/internal/config"
	"github.com/mohamedkhairy/ta-engine/internal/indicator"
	indicatorpkg "github.com/mohamedkhairy/ta-engine/pkg/indicator"
	"github.com/mohamedkhairy/ta-engine/pkg/logger"
	"github.com/mohamedkhairy/ta-engine/pkg/ta/candle"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting TA engine service",
		logger.Int("port", cfg.Server.Port),
		logger.Int("health_port", cfg.Server.HealthCheckPort),
	)

	// Candle settings
	settings := candle.DefaultSettings()
	if cfg.Engine.CandleSettingsFile != "" {
		settings, err = candle.LoadSettingsFile(cfg.Engine.CandleSettingsFile)
		if err != nil {
			logger.Fatal("Failed to load candle settings",
				logger.String("file", cfg.Engine.CandleSettingsFile),
				logger.ErrorField(err),
			)
		}
		logger.Info("Loaded candle settings", logger.String("file", cfg.Engine.CandleSettingsFile))
	}

	// Initialize indicator registry
	registry, err := indicatorpkg.NewDefaultRegistry()
	if err != nil {
		logger.Fatal("Failed to register indicators", logger.ErrorField(err))
	}

	// Initialize engine
	engineConfig := indicator.DefaultEngineConfig()
	engineConfig.CacheSize = cfg.Engine.CacheSize
	engineConfig.MaxBars = cfg.Engine.MaxBars
	engineConfig.Indicators = cfg.Engine.Indicators

	engine, err := indicator.NewEngine(engineConfig, registry, indicator.NewSettingsStore(settings))
	if err != nil {
		logger.Fatal("Failed to create indicator engine", logger.ErrorField(err))
	}

	logger.Info("Registered indicators",
		logger.Int("count", len(engine.Indicators())),
		logger.Int("cache_size", cfg.Engine.CacheSize),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ready atomic.Bool
	var wg sync.WaitGroup

	// API server
	middlewares := api.ChainMiddleware(
		api.CORSMiddleware(),
		api.RequestIDMiddleware(),
		api.LoggingMiddleware(),
		api.ErrorHandlingMiddleware(),
		api.RateLimitMiddleware(ctx, cfg.Server.RateLimitRPS),
	)
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      middlewares(api.NewRouter(engine)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting API server", logger.Int("port", cfg.Server.Port))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("API server failed", logger.ErrorField(err))
			ready.Store(false)
		}
	}()

	// Health and metrics server
	healthServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HealthCheckPort),
		Handler:      setupHealthAndMetricsServer(engine, &ready),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting health and metrics server", logger.Int("port", cfg.Server.HealthCheckPort))
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Health and metrics server failed", logger.ErrorField(err))
		}
	}()

	ready.Store(true)
	logger.Info("TA engine service started")

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	logger.Info("Shutting down TA engine service")
	ready.Store(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("API server shutdown failed", logger.ErrorField(err))
	}
	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Health server shutdown failed", logger.ErrorField(err))
	}
	cancel()

	wg.Wait()

	logger.Info("TA engine service stopped")
}

// setupHealthAndMetricsServer sets up HTTP endpoints for health checks and metrics
func setupHealthAndMetricsServer(engine *indicator.Engine, ready *atomic.Bool) *mux.Router {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		healthStatus := map[string]interface{}{
			"status":    "UP",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"checks": map[string]interface{}{
				"engine": map[string]interface{}{
					"status":           "ok",
					"indicators":       len(engine.Indicators()),
					"cached_results":   engine.CacheLen(),
					"settings_version": engine.Settings().Version(),
				},
				"api": map[string]interface{}{
					"running": ready.Load(),
				},
			},
		}

		if !ready.Load() {
			status = http.StatusServiceUnavailable
			healthStatus["status"] = "DOWN"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(healthStatus)
	}).Methods("GET")

	// Readiness probe
	router.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if ready.Load() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("READY"))
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
		}
	}).Methods("GET")

	// Liveness probe
	router.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("LIVE"))
	}).Methods("GET")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	return router
}
