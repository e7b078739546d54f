// API server entry point: configuration, logging, metrics, the optional
// structure cache and the HTTP route tree, with graceful shutdown.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appads "github.com/matgen-io/surfgen/internal/application/adsorption"
	appslab "github.com/matgen-io/surfgen/internal/application/slab"
	"github.com/matgen-io/surfgen/internal/config"
	rediscache "github.com/matgen-io/surfgen/internal/infrastructure/cache/redis"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/matgen-io/surfgen/internal/interfaces/http"
	"github.com/matgen-io/surfgen/internal/interfaces/http/handlers"
)

// Version is injected via ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "surfgen-api: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "surfgen-api: logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)
	logger.Info("starting surfgen api server",
		logging.String("version", Version),
		logging.Int("port", cfg.Server.Port),
	)

	// Metrics
	var metrics *prometheus.AppMetrics
	var collector prometheus.MetricsCollector
	if cfg.Metrics.Enabled {
		collector, err = prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: cfg.Metrics.EnableProcessMetrics,
			EnableGoMetrics:      cfg.Metrics.EnableGoMetrics,
		}, logger)
		if err != nil {
			logger.Fatal("metrics collector init failed", logging.Err(err))
		}
		metrics = prometheus.NewAppMetrics(collector)
	}

	// Optional structure cache.  A failed connection downgrades to no cache
	// rather than refusing to start; builds are deterministic anyway.
	var cache rediscache.Cache
	var healthCheckers []handlers.HealthChecker
	if cfg.Redis.Enabled {
		redisClient, err := rediscache.NewClient(cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, running without structure cache", logging.Err(err))
		} else {
			defer redisClient.Close()
			cache = rediscache.NewCache(redisClient, logger,
				rediscache.WithPrefix(cfg.Redis.KeyPrefix),
				rediscache.WithDefaultTTL(cfg.Redis.DefaultTTL),
			)
			healthCheckers = append(healthCheckers, redisChecker{client: redisClient})
		}
	}

	// Application services
	slabOpts := []appslab.Option{}
	if metrics != nil {
		slabOpts = append(slabOpts, appslab.WithMetrics(metrics))
	}
	if cache != nil {
		slabOpts = append(slabOpts, appslab.WithCache(cache, cfg.Redis.DefaultTTL))
	}
	slabSvc := appslab.NewService(cfg.Builder, logger, slabOpts...)

	adsOpts := []appads.Option{}
	if metrics != nil {
		adsOpts = append(adsOpts, appads.WithMetrics(metrics))
	}
	adsSvc := appads.NewService(cfg.Engine, slabSvc, logger, adsOpts...)

	// HTTP
	router := httpserver.NewRouter(httpserver.RouterConfig{
		SlabHandler:      handlers.NewSlabHandler(slabSvc),
		AnalysisHandler:  handlers.NewAnalysisHandler(adsSvc),
		HealthHandler:    handlers.NewHealthHandler(Version, healthCheckers...),
		Logger:           logger,
		Metrics:          metrics,
		MetricsCollector: collector,
		Mode:             cfg.Server.Mode,
	})
	srv := httpserver.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutdown signal received", logging.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", logging.Err(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Error("shutdown failed", logging.Err(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

// redisChecker adapts the redis client to the readiness probe.
type redisChecker struct {
	client *rediscache.Client
}

func (r redisChecker) Name() string { return "redis" }

func (r redisChecker) Check(ctx context.Context) error { return r.client.Ping(ctx) }
