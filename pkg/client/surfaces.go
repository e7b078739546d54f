package client

import (
	"context"

	"github.com/matgen-io/surfgen/pkg/types/common"
)

// Atom is one atom of a built slab.
type Atom struct {
	ID       int         `json:"id"`
	Element  string      `json:"element"`
	Position common.Vec3 `json:"position"`
	Color    string      `json:"color"`
	Radius   float64     `json:"radius"`
}

// Bond is an atom index pair for rendering.
type Bond struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Structure is a built slab.
type Structure struct {
	Formula         string         `json:"formula"`
	ReferenceID     string         `json:"reference_id"`
	MillerIndex     string         `json:"miller_index"`
	Description     string         `json:"description"`
	FormationEnergy float64        `json:"formation_energy"`
	BandGap         float64        `json:"band_gap"`
	SymmetryGroup   string         `json:"symmetry_group"`
	Atoms           []Atom         `json:"atoms"`
	LatticeVectors  [3]common.Vec3 `json:"lattice_vectors"`
	Bonds           []Bond         `json:"bonds"`
}

// BuildResult is the outcome of BuildSlab.
type BuildResult struct {
	Structure Structure `json:"structure"`
	Cached    bool      `json:"cached"`
}

// Site is one scored adsorption site.
type Site struct {
	ID          string      `json:"id"`
	SiteType    string      `json:"site_type"`
	Coordinates common.Vec3 `json:"coordinates"`
	Energy      float64     `json:"energy"`
	Description string      `json:"description"`
}

// AnalyzeRequest asks the server to build a slab for Query and rank sites
// for Adsorbate on it.  Seed, when set, makes the result reproducible.
type AnalyzeRequest struct {
	Query     string `json:"query"`
	Adsorbate string `json:"adsorbate"`
	Seed      *int64 `json:"seed,omitempty"`
}

// AnalysisResult is the outcome of Analyze.  Sites are sorted ascending by
// energy.
type AnalysisResult struct {
	Sites           []Site `json:"sites"`
	Summary         string `json:"summary"`
	PotentialLabel  string `json:"potential_label"`
	CalculationTime string `json:"calculation_time"`
	SystemID        string `json:"system_id,omitempty"`
	ModelName       string `json:"model_name,omitempty"`
	Seed            int64  `json:"seed"`
}

// BuildSlab builds the slab the query describes.
func (c *Client) BuildSlab(ctx context.Context, query string) (*BuildResult, error) {
	var result BuildResult
	err := c.post(ctx, "/api/v1/slabs", map[string]string{"query": query}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Analyze ranks adsorption sites for an adsorbate on the queried surface.
func (c *Client) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalysisResult, error) {
	var result AnalysisResult
	if err := c.post(ctx, "/api/v1/analyses", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
