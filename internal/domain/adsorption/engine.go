package adsorption

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/matgen-io/surfgen/internal/config"
	"github.com/matgen-io/surfgen/internal/domain/materials"
	"github.com/matgen-io/surfgen/internal/domain/slab"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
	apperrors "github.com/matgen-io/surfgen/pkg/errors"
	"github.com/matgen-io/surfgen/pkg/types/common"
)

// PotentialLabel names the scoring heuristic so result consumers can tell
// which model produced the energies.
const PotentialLabel = "pauling-dx-heuristic/v1"

// Adsorbate electronegativity buckets, Pauling scale.  The label is matched
// by substring after stripping digits; the oxygen rule is checked first so
// mixed labels such as "NO" and "NO2" resolve to the oxygen value.
const (
	ElectronegativityOxygen   = 3.44
	ElectronegativityNitrogen = 3.04
	ElectronegativityDefault  = 2.55
)

// Source supplies the uniform randomness used for candidate sampling and
// energy jitter.  Implementations must return values in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source seeded with the given value.
// Identical seeds reproduce identical Analyze results.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Engine discovers and scores adsorption sites on a built slab.  It holds
// only configuration and a logger, so one instance may serve concurrent
// Analyze calls as long as each call gets its own Source.
type Engine struct {
	cfg    config.EngineConfig
	logger logging.Logger
}

// NewEngine returns an Engine using the given tuning parameters.  A nil
// logger falls back to a no-op logger.
func NewEngine(cfg config.EngineConfig, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{cfg: cfg, logger: logger.Named("adsorption")}
}

// Analyze enumerates top, bridge and hollow candidates on the surface of s,
// scores each with the electronegativity-difference heuristic, and returns
// the sites sorted ascending by energy, truncated to the configured maximum.
//
// Analyze fails only on geometric degeneracy: a structure with no atoms, or
// one whose surface band contains no atoms.  Every other irregular input,
// including an unrecognized adsorbate label, degrades to a default instead
// of erroring.
func (e *Engine) Analyze(s *slab.MaterialStructure, adsorbate string, src Source) (*AnalysisResult, error) {
	started := time.Now()

	if s == nil || len(s.Atoms) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeStructureEmpty,
			"cannot analyze a structure with no atoms")
	}
	if src == nil {
		src = NewSource(e.cfg.DefaultRandomSeed)
	}

	surface := e.surfaceAtoms(s)
	if len(surface) == 0 {
		return nil, apperrors.Newf(apperrors.ErrCodeNoSurfaceAtoms,
			"no atoms within %.2f A of the surface plane", e.cfg.SurfaceBand)
	}

	metalChi := materials.Lookup(s.Formula).Electronegativity
	adsChi := AdsorbateElectronegativity(adsorbate)
	base := -e.cfg.ElectronegativityK * math.Abs(metalChi-adsChi)

	var sites []Site
	sites = append(sites, e.topSites(surface, base, src)...)
	sites = append(sites, e.bridgeSites(surface, base, src)...)
	sites = append(sites, e.hollowSites(surface, base, src)...)

	if len(sites) < e.cfg.MinSites {
		sites = append(sites, e.fallbackHollow(surface[0], base, src, len(sites)))
	}

	// Ascending energy; ID breaks exact ties so the order is total.
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].Energy != sites[j].Energy {
			return sites[i].Energy < sites[j].Energy
		}
		return sites[i].ID < sites[j].ID
	})
	if len(sites) > e.cfg.MaxSites {
		sites = sites[:e.cfg.MaxSites]
	}

	elapsed := time.Since(started)
	result := &AnalysisResult{
		Sites:           sites,
		Summary:         summarize(sites, adsorbate, s.Formula),
		PotentialLabel:  PotentialLabel,
		CalculationTime: formatCalculationTime(elapsed),
		SystemID:        fmt.Sprintf("%s%s+%s", s.Formula, s.MillerIndex, adsorbate),
		ModelName:       "surfgen-heuristic",
	}

	e.logger.Debug("analysis complete",
		logging.String("formula", s.Formula),
		logging.String("adsorbate", adsorbate),
		logging.Int("surface_atoms", len(surface)),
		logging.Int("sites", len(sites)),
		logging.Duration("elapsed", elapsed),
	)
	return result, nil
}

// surfaceAtoms returns the atoms whose normal coordinate lies within the
// surface band below the topmost atom.
func (e *Engine) surfaceAtoms(s *slab.MaterialStructure) []slab.Atom {
	maxZ, ok := s.MaxZ()
	if !ok {
		return nil
	}
	var surface []slab.Atom
	for _, a := range s.Atoms {
		if a.Position.Z >= maxZ-e.cfg.SurfaceBand {
			surface = append(surface, a)
		}
	}
	return surface
}

func (e *Engine) topSites(surface []slab.Atom, base float64, src Source) []Site {
	var sites []Site
	for _, a := range surface {
		if src.Float64() >= e.cfg.TopSampleRate {
			continue
		}
		pos := a.Position.Add(common.Vec3{Z: e.cfg.TopSiteHeight})
		sites = append(sites, Site{
			ID:          fmt.Sprintf("top-%d", len(sites)),
			SiteType:    SiteTop,
			Coordinates: pos,
			Energy:      base + e.cfg.TopSiteOffset + e.jitter(src),
			Description: fmt.Sprintf("atop %s atom %d", a.Element, a.ID),
		})
	}
	return sites
}

func (e *Engine) bridgeSites(surface []slab.Atom, base float64, src Source) []Site {
	var sites []Site
	for i := 0; i < len(surface); i++ {
		for j := i + 1; j < len(surface); j++ {
			if !e.isNeighborDistance(surface[i].Position.DistanceTo(surface[j].Position)) {
				continue
			}
			if src.Float64() >= e.cfg.BridgeSampleRate {
				continue
			}
			pos := surface[i].Position.Midpoint(surface[j].Position).
				Add(common.Vec3{Z: e.cfg.BridgeSiteHeight})
			sites = append(sites, Site{
				ID:          fmt.Sprintf("bridge-%d", len(sites)),
				SiteType:    SiteBridge,
				Coordinates: pos,
				Energy:      base + e.cfg.BridgeSiteOffset + e.jitter(src),
				Description: fmt.Sprintf("bridging atoms %d and %d", surface[i].ID, surface[j].ID),
			})
		}
	}
	return sites
}

// hollowSites runs the three-atom centroid search: every surface-atom triple
// whose three pairwise separations all fall inside the nearest-neighbor
// window contributes one hollow candidate above the triangle centroid.
// Sampling uses the bridge rate so hollow counts stay proportionate.
func (e *Engine) hollowSites(surface []slab.Atom, base float64, src Source) []Site {
	var sites []Site
	for i := 0; i < len(surface); i++ {
		for j := i + 1; j < len(surface); j++ {
			dij := surface[i].Position.DistanceTo(surface[j].Position)
			if !e.isNeighborDistance(dij) {
				continue
			}
			for k := j + 1; k < len(surface); k++ {
				if !e.isNeighborDistance(surface[i].Position.DistanceTo(surface[k].Position)) ||
					!e.isNeighborDistance(surface[j].Position.DistanceTo(surface[k].Position)) {
					continue
				}
				if src.Float64() >= e.cfg.BridgeSampleRate {
					continue
				}
				pos := common.Centroid(surface[i].Position, surface[j].Position, surface[k].Position).
					Add(common.Vec3{Z: e.cfg.HollowSiteHeight})
				sites = append(sites, Site{
					ID:          fmt.Sprintf("hollow-%d", len(sites)),
					SiteType:    SiteHollow,
					Coordinates: pos,
					Energy:      base + e.cfg.HollowSiteOffset + e.jitter(src),
					Description: fmt.Sprintf("hollow over atoms %d, %d, %d", surface[i].ID, surface[j].ID, surface[k].ID),
				})
			}
		}
	}
	return sites
}

// fallbackHollow guarantees a non-empty result when the candidate classes
// together stay below the minimum.  The site sits next to the first surface
// atom, offset into the open in-plane direction.
func (e *Engine) fallbackHollow(anchor slab.Atom, base float64, src Source, ordinal int) Site {
	pos := anchor.Position.Add(common.Vec3{
		X: e.cfg.NeighborMinDistance / 2,
		Y: e.cfg.NeighborMinDistance / 2,
		Z: e.cfg.HollowSiteHeight,
	})
	return Site{
		ID:          fmt.Sprintf("hollow-fallback-%d", ordinal),
		SiteType:    SiteHollow,
		Coordinates: pos,
		Energy:      base + e.cfg.HollowSiteOffset + e.jitter(src),
		Description: fmt.Sprintf("synthesized hollow near atom %d", anchor.ID),
	}
}

func (e *Engine) isNeighborDistance(d float64) bool {
	return d > e.cfg.NeighborMinDistance && d < e.cfg.NeighborMaxDistance
}

// jitter returns a uniform perturbation in [-amplitude, +amplitude].
func (e *Engine) jitter(src Source) float64 {
	return (src.Float64()*2 - 1) * e.cfg.JitterAmplitude
}

// AdsorbateElectronegativity resolves the heuristic electronegativity for an
// adsorbate label.  Digits are stripped first, then the label is matched by
// substring with the oxygen rule taking precedence over nitrogen, so "NO2"
// resolves to the oxygen value.  Unmatched labels get the default bucket.
func AdsorbateElectronegativity(label string) float64 {
	stripped := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, label)
	upper := strings.ToUpper(stripped)
	switch {
	case strings.Contains(upper, "O"):
		return ElectronegativityOxygen
	case strings.Contains(upper, "N"):
		return ElectronegativityNitrogen
	default:
		return ElectronegativityDefault
	}
}

func summarize(sites []Site, adsorbate, formula string) string {
	if len(sites) == 0 {
		return fmt.Sprintf("no adsorption sites found for %s on %s", adsorbate, formula)
	}
	best := sites[0]
	return fmt.Sprintf("%d candidate sites for %s on %s; most stable is a %s site at %.3f eV",
		len(sites), adsorbate, formula, best.SiteType, best.Energy)
}

// formatCalculationTime renders the elapsed wall time as a display string.
// Sub-millisecond runs are reported as "<1 ms" so the dashboard never shows
// a zero.
func formatCalculationTime(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1 {
		return "<1 ms"
	}
	return fmt.Sprintf("%d ms", ms)
}
