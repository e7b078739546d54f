// Package adsorption discovers candidate adsorption sites on a slab surface
// and scores them with a heuristic electronegativity-difference potential.
// The engine is pure geometry plus arithmetic: it reads an immutable
// structure, emits an immutable result, and keeps all randomness behind an
// injectable source so a fixed seed reproduces a fixed result.
package adsorption

import (
	"github.com/matgen-io/surfgen/pkg/types/common"
)

// SiteType classifies an adsorption site by coordination geometry.
type SiteType string

const (
	// SiteTop sits directly above a single surface atom.
	SiteTop SiteType = "top"
	// SiteBridge sits above the midpoint of a nearest-neighbor pair.
	SiteBridge SiteType = "bridge"
	// SiteHollow sits above the centroid of a nearest-neighbor triangle.
	SiteHollow SiteType = "hollow"

	// SiteHollowFCC and SiteHollowHCP are reserved refinements of
	// SiteHollow.  The engine does not yet distinguish whether a hollow
	// sits over a third-layer atom, so neither value is emitted today.
	SiteHollowFCC SiteType = "fcc"
	SiteHollowHCP SiteType = "hcp"
)

// Site is one scored adsorption candidate.  Energy is in eV with the usual
// sign convention: more negative means more stable.  Instances are immutable
// once the engine returns them.
type Site struct {
	ID          string      `json:"id"`
	SiteType    SiteType    `json:"site_type"`
	Coordinates common.Vec3 `json:"coordinates"`
	Energy      float64     `json:"energy"`
	Description string      `json:"description"`
}

// AnalysisResult is the full outcome of one Analyze call.  Sites are sorted
// ascending by energy, so Sites[0] is always the most stable candidate.
type AnalysisResult struct {
	Sites           []Site `json:"sites"`
	Summary         string `json:"summary"`
	PotentialLabel  string `json:"potential_label"`
	CalculationTime string `json:"calculation_time"`
	SystemID        string `json:"system_id,omitempty"`
	ModelName       string `json:"model_name,omitempty"`
}

// MostStable returns the lowest-energy site and whether any site exists.
func (r *AnalysisResult) MostStable() (Site, bool) {
	if len(r.Sites) == 0 {
		return Site{}, false
	}
	return r.Sites[0], true
}

// CountByType returns the number of sites per SiteType.
func (r *AnalysisResult) CountByType() map[SiteType]int {
	counts := make(map[SiteType]int, 3)
	for _, s := range r.Sites {
		counts[s.SiteType]++
	}
	return counts
}
