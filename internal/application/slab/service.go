// Package slab implements the build use case: query in, structure DTO out.
// The domain builder stays total and pure; this layer adds validation, the
// optional cache, logging and metrics.
package slab

import (
	"context"
	"strings"
	"time"

	"github.com/matgen-io/surfgen/internal/config"
	domainslab "github.com/matgen-io/surfgen/internal/domain/slab"
	rediscache "github.com/matgen-io/surfgen/internal/infrastructure/cache/redis"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/prometheus"
	apperrors "github.com/matgen-io/surfgen/pkg/errors"
	"github.com/matgen-io/surfgen/pkg/types/common"
)

// BondInferenceScale multiplies the sum of covalent radii when deciding
// whether two atoms are drawn bonded.
const BondInferenceScale = 1.3

// BuildRequest carries one build invocation.
type BuildRequest struct {
	Query string `json:"query" binding:"required"`
}

// AtomDTO is the transport form of one atom.
type AtomDTO struct {
	ID       int         `json:"id"`
	Element  string      `json:"element"`
	Position common.Vec3 `json:"position"`
	Color    string      `json:"color"`
	Radius   float64     `json:"radius"`
}

// BondDTO is an atom index pair for rendering.
type BondDTO struct {
	A int `json:"a"`
	B int `json:"b"`
}

// StructureDTO is the transport form of a built slab.
type StructureDTO struct {
	Formula         string         `json:"formula"`
	ReferenceID     string         `json:"reference_id"`
	MillerIndex     string         `json:"miller_index"`
	Description     string         `json:"description"`
	FormationEnergy float64        `json:"formation_energy"`
	BandGap         float64        `json:"band_gap"`
	SymmetryGroup   string         `json:"symmetry_group"`
	Atoms           []AtomDTO      `json:"atoms"`
	LatticeVectors  [3]common.Vec3 `json:"lattice_vectors"`
	Bonds           []BondDTO      `json:"bonds"`
}

// BuildResponse is the use-case result.  Cached reports whether the
// structure came from the cache rather than a fresh build.
type BuildResponse struct {
	Structure StructureDTO `json:"structure"`
	Cached    bool         `json:"cached"`
}

// Service is the slab build use case.
type Service interface {
	Build(ctx context.Context, req BuildRequest) (*BuildResponse, error)
	// BuildStructure returns the domain structure for in-process callers
	// such as the analysis service and the CLI.
	BuildStructure(ctx context.Context, query string) (*domainslab.MaterialStructure, error)
}

type service struct {
	builder *domainslab.Builder
	cache   rediscache.Cache
	logger  logging.Logger
	metrics *prometheus.AppMetrics
	ttl     time.Duration
}

// Option customizes a Service.
type Option func(*service)

// WithCache attaches the structure cache.  Without it every build computes.
func WithCache(c rediscache.Cache, ttl time.Duration) Option {
	return func(s *service) {
		s.cache = c
		s.ttl = ttl
	}
}

// WithMetrics attaches the application metrics.
func WithMetrics(m *prometheus.AppMetrics) Option {
	return func(s *service) { s.metrics = m }
}

// NewService constructs the build service around the given builder
// parameters.
func NewService(cfg config.BuilderConfig, logger logging.Logger, opts ...Option) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &service{
		builder: domainslab.NewBuilder(domainslab.Params{
			RepeatsInPlane111: cfg.RepeatsInPlane111,
			Layers111:         cfg.Layers111,
			RepeatsInPlane100: cfg.RepeatsInPlane100,
			Layers100:         cfg.Layers100,
			VacuumGap:         cfg.VacuumGap,
			FallbackElement:   cfg.FallbackElement,
		}),
		logger: logger.Named("slab"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Build(ctx context.Context, req BuildRequest) (*BuildResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, apperrors.New(apperrors.ErrCodeSlabQueryInvalid, "query must not be blank")
	}

	started := time.Now()
	structure, cached, err := s.buildOrFetch(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(started)

	_, miller := s.builder.ParseQuery(req.Query)
	s.observeBuild(miller, cached, elapsed, structure.AtomCount())
	s.logger.Info("slab built",
		logging.String("query", req.Query),
		logging.String("formula", structure.Formula),
		logging.String("miller", structure.MillerIndex),
		logging.Int("atoms", structure.AtomCount()),
		logging.Bool("cached", cached),
		logging.Duration("elapsed", elapsed),
	)

	dto := toStructureDTO(structure)
	return &BuildResponse{Structure: dto, Cached: cached}, nil
}

func (s *service) BuildStructure(ctx context.Context, query string) (*domainslab.MaterialStructure, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.New(apperrors.ErrCodeSlabQueryInvalid, "query must not be blank")
	}
	structure, _, err := s.buildOrFetch(ctx, query)
	return structure, err
}

// buildOrFetch consults the cache when present.  Cache failures degrade to a
// plain build; generation is deterministic so correctness never depends on
// the cache.
func (s *service) buildOrFetch(ctx context.Context, query string) (*domainslab.MaterialStructure, bool, error) {
	if s.cache == nil {
		return s.builder.Build(query), false, nil
	}

	key := rediscache.NormalizeQuery(query)
	computed := false
	var structure domainslab.MaterialStructure
	err := s.cache.GetOrSet(ctx, key, &structure, s.ttl,
		func(ctx context.Context) (interface{}, error) {
			computed = true
			return s.builder.Build(query), nil
		})
	if err != nil {
		s.logger.Warn("structure cache unavailable, building directly",
			logging.String("key", key), logging.Err(err))
		return s.builder.Build(query), false, nil
	}

	if s.metrics != nil {
		if computed {
			s.metrics.CacheMissesTotal.WithLabelValues("structure").Inc()
		} else {
			s.metrics.CacheHitsTotal.WithLabelValues("structure").Inc()
		}
	}
	return &structure, !computed, nil
}

func (s *service) observeBuild(miller string, cached bool, elapsed time.Duration, atoms int) {
	if s.metrics == nil {
		return
	}
	source := "computed"
	if cached {
		source = "cache"
	}
	s.metrics.SlabBuildsTotal.WithLabelValues(miller, source).Inc()
	s.metrics.SlabBuildDuration.WithLabelValues(miller).Observe(elapsed.Seconds())
	s.metrics.SlabAtomCount.WithLabelValues(miller).Observe(float64(atoms))
}

func toStructureDTO(m *domainslab.MaterialStructure) StructureDTO {
	atoms := make([]AtomDTO, len(m.Atoms))
	for i, a := range m.Atoms {
		atoms[i] = AtomDTO{
			ID:       a.ID,
			Element:  a.Element,
			Position: a.Position,
			Color:    a.DisplayColor,
			Radius:   a.DisplayRadius,
		}
	}

	bonds := make([]BondDTO, 0)
	for _, b := range domainslab.InferBonds(m, BondInferenceScale) {
		bonds = append(bonds, BondDTO{A: b.A, B: b.B})
	}

	return StructureDTO{
		Formula:         m.Formula,
		ReferenceID:     m.ReferenceID,
		MillerIndex:     m.MillerIndex,
		Description:     m.Description,
		FormationEnergy: m.FormationEnergy,
		BandGap:         m.BandGap,
		SymmetryGroup:   m.SymmetryGroup,
		Atoms:           atoms,
		LatticeVectors:  m.LatticeVectors,
		Bonds:           bonds,
	}
}
