// Package http assembles the gin route tree and the HTTP server around it.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/prometheus"
	"github.com/matgen-io/surfgen/internal/interfaces/http/handlers"
	"github.com/matgen-io/surfgen/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and infrastructure the route tree
// needs.  Nil handlers leave their routes unregistered, which keeps tests
// free to wire only the surface under test.
type RouterConfig struct {
	SlabHandler     *handlers.SlabHandler
	AnalysisHandler *handlers.AnalysisHandler
	HealthHandler   *handlers.HealthHandler

	Logger           logging.Logger
	Metrics          *prometheus.AppMetrics
	MetricsCollector prometheus.MetricsCollector

	Mode string // gin mode: "debug" | "release" | "test"
}

// NewRouter builds the complete route tree: global middleware, public
// probes, the metrics endpoint and the /api/v1 resources.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(middleware.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsCollector.Handler()))
	}

	api := r.Group("/api/v1")
	if cfg.SlabHandler != nil {
		api.POST("/slabs", cfg.SlabHandler.Build)
	}
	if cfg.AnalysisHandler != nil {
		api.POST("/analyses", cfg.AnalysisHandler.Analyze)
	}

	return r
}
