// Package adsorption implements the analyze use case: structure plus
// adsorbate in, ranked site list out.  Seed handling lives here so the
// domain engine itself stays free of clock access.
package adsorption

import (
	"context"
	"strings"
	"time"

	"github.com/matgen-io/surfgen/internal/config"
	domainads "github.com/matgen-io/surfgen/internal/domain/adsorption"
	domainslab "github.com/matgen-io/surfgen/internal/domain/slab"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/matgen-io/surfgen/pkg/errors"
	"github.com/matgen-io/surfgen/pkg/types/common"
)

// AnalyzeRequest carries one analysis invocation.  Seed is optional: nil
// defers to the configured default, or the wall clock when the configuration
// says so.
type AnalyzeRequest struct {
	Query     string `json:"query" binding:"required"`
	Adsorbate string `json:"adsorbate" binding:"required"`
	Seed      *int64 `json:"seed,omitempty"`
}

// SiteDTO is the transport form of one scored site.
type SiteDTO struct {
	ID          string      `json:"id"`
	SiteType    string      `json:"site_type"`
	Coordinates common.Vec3 `json:"coordinates"`
	Energy      float64     `json:"energy"`
	Description string      `json:"description"`
}

// AnalyzeResponse is the use-case result.
type AnalyzeResponse struct {
	Sites           []SiteDTO `json:"sites"`
	Summary         string    `json:"summary"`
	PotentialLabel  string    `json:"potential_label"`
	CalculationTime string    `json:"calculation_time"`
	SystemID        string    `json:"system_id,omitempty"`
	ModelName       string    `json:"model_name,omitempty"`
	Seed            int64     `json:"seed"`
}

// StructureProvider builds the slab a query describes.  The slab application
// service satisfies it.
type StructureProvider interface {
	BuildStructure(ctx context.Context, query string) (*domainslab.MaterialStructure, error)
}

// Service is the adsorption analysis use case.
type Service interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
	// AnalyzeStructure runs the engine on an already-built structure.
	AnalyzeStructure(ctx context.Context, s *domainslab.MaterialStructure, adsorbate string, seed *int64) (*AnalyzeResponse, error)
}

type service struct {
	engine    *domainads.Engine
	cfg       config.EngineConfig
	slabs     StructureProvider
	logger    logging.Logger
	metrics   *prometheus.AppMetrics
	clockSeed func() int64
}

// Option customizes a Service.
type Option func(*service)

// WithMetrics attaches the application metrics.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(s *service) { s.metrics = m }
}

// WithClockSeed overrides the clock-derived seed source, for tests.
func WithClockSeed(fn func() int64) Option {
	return func(s *service) { s.clockSeed = fn }
}

// NewService constructs the analysis service.  slabs provides structures for
// query-based requests.
func NewService(cfg config.EngineConfig, slabs StructureProvider, logger logging.Logger, opts ...Option) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &service{
		engine:    domainads.NewEngine(cfg, logger),
		cfg:       cfg,
		slabs:     slabs,
		logger:    logger.Named("analysis"),
		clockSeed: func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	if strings.TrimSpace(req.Adsorbate) == "" {
		return nil, apperrors.New(apperrors.ErrCodeAdsorbateInvalid, "adsorbate must not be blank")
	}
	structure, err := s.slabs.BuildStructure(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeStructure(ctx, structure, req.Adsorbate, req.Seed)
}

func (s *service) AnalyzeStructure(ctx context.Context, structure *domainslab.MaterialStructure, adsorbate string, seed *int64) (*AnalyzeResponse, error) {
	if strings.TrimSpace(adsorbate) == "" {
		return nil, apperrors.New(apperrors.ErrCodeAdsorbateInvalid, "adsorbate must not be blank")
	}

	effectiveSeed := s.resolveSeed(seed)
	started := time.Now()
	result, err := s.engine.Analyze(structure, adsorbate, domainads.NewSource(effectiveSeed))
	elapsed := time.Since(started)

	if err != nil {
		s.observeAnalysis("error", elapsed, 0)
		s.logger.Warn("analysis failed",
			logging.String("adsorbate", adsorbate),
			logging.Err(err),
		)
		return nil, err
	}

	s.observeAnalysis("ok", elapsed, len(result.Sites))
	s.logger.Info("analysis complete",
		logging.String("system", result.SystemID),
		logging.Int("sites", len(result.Sites)),
		logging.Int64("seed", effectiveSeed),
		logging.Duration("elapsed", elapsed),
	)

	return toAnalyzeResponse(result, effectiveSeed), nil
}

// resolveSeed picks the effective random seed: an explicit request seed
// wins, then the configured default, then the clock when the configuration
// opts in.
func (s *service) resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	if s.cfg.DefaultRandomSeed == 0 && s.cfg.SeedFromClockIfUnset {
		return s.clockSeed()
	}
	return s.cfg.DefaultRandomSeed
}

func (s *service) observeAnalysis(outcome string, elapsed time.Duration, sites int) {
	if s.metrics == nil {
		return
	}
	s.metrics.AnalysesTotal.WithLabelValues(outcome).Inc()
	s.metrics.AnalysisDuration.WithLabelValues().Observe(elapsed.Seconds())
	if outcome == "ok" {
		s.metrics.SitesReturned.WithLabelValues().Observe(float64(sites))
	}
}

func toAnalyzeResponse(r *domainads.AnalysisResult, seed int64) *AnalyzeResponse {
	sites := make([]SiteDTO, len(r.Sites))
	for i, site := range r.Sites {
		sites[i] = SiteDTO{
			ID:          site.ID,
			SiteType:    string(site.SiteType),
			Coordinates: site.Coordinates,
			Energy:      site.Energy,
			Description: site.Description,
		}
	}
	return &AnalyzeResponse{
		Sites:           sites,
		Summary:         r.Summary,
		PotentialLabel:  r.PotentialLabel,
		CalculationTime: r.CalculationTime,
		SystemID:        r.SystemID,
		ModelName:       r.ModelName,
		Seed:            seed,
	}
}
