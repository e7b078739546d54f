package slab

import (
	"fmt"
	"math"
	"regexp"

	"github.com/matgen-io/surfgen/internal/domain/materials"
	"github.com/matgen-io/surfgen/pkg/types/common"
)

var (
	// elementPattern matches the leading element symbol: one uppercase letter
	// optionally followed by one lowercase letter.
	elementPattern = regexp.MustCompile(`[A-Z][a-z]?`)

	// millerPattern matches a 3-digit Miller index in parentheses.
	millerPattern = regexp.MustCompile(`\((\d{3})\)`)
)

// Params controls slab generation.  Zero values are not meaningful; use
// DefaultParams and override fields as needed.
type Params struct {
	// RepeatsInPlane111 and Layers111 set the (111) supercell: in-plane
	// repeats per axis and atomic layer count.
	RepeatsInPlane111 int
	Layers111         int

	// RepeatsInPlane100 and Layers100 set the grid for (100) and every other
	// termination.
	RepeatsInPlane100 int
	Layers100         int

	// VacuumGap is appended to the surface-normal lattice vector, in Å.
	VacuumGap float64

	// FallbackElement is used when the query contains no parseable symbol.
	FallbackElement string
}

// DefaultParams returns the canonical demo parameters: 3x3x4 for (111),
// 4x4x4 for (100), 10 Å vacuum, gold fallback.
func DefaultParams() Params {
	return Params{
		RepeatsInPlane111: 3,
		Layers111:         4,
		RepeatsInPlane100: 4,
		Layers100:         4,
		VacuumGap:         10.0,
		FallbackElement:   "Au",
	}
}

// Builder turns surface queries into materialized slabs.  It is stateless
// apart from its parameters and safe for concurrent use.
type Builder struct {
	params Params
}

// NewBuilder constructs a Builder with the given parameters.
func NewBuilder(params Params) *Builder {
	return &Builder{params: params}
}

// ParseQuery extracts the element symbol and Miller index from a free-text
// query.  Unmatched parts degrade to defaults: the configured fallback
// element and index "111".  This totality is deliberate; a garbled query
// still produces a usable slab.
func (b *Builder) ParseQuery(query string) (element, miller string) {
	element = b.params.FallbackElement
	if m := elementPattern.FindString(query); m != "" {
		element = m
	}

	miller = "111"
	if m := millerPattern.FindStringSubmatch(query); m != nil {
		miller = m[1]
	}
	return element, miller
}

// Build constructs a MaterialStructure from a free-text query.  It is total
// and deterministic: identical input always yields an identical structure,
// and unrecognized input degrades to defaults rather than erroring.
func (b *Builder) Build(query string) *MaterialStructure {
	element, miller := b.ParseQuery(query)
	rec := materials.Lookup(element)

	var atoms []Atom
	var lattice [3]common.Vec3
	switch miller {
	case "111":
		atoms, lattice = b.buildFCC111(element, rec.LatticeConstant)
	default:
		atoms, lattice = b.buildFCC100(element, rec.LatticeConstant)
	}

	return &MaterialStructure{
		Formula:         element,
		ReferenceID:     rec.ReferenceID,
		MillerIndex:     "(" + miller + ")",
		Description:     b.describe(element, miller, len(atoms)),
		FormationEnergy: rec.FormationEnergy,
		BandGap:         rec.BandGap,
		SymmetryGroup:   rec.SymmetryGroup,
		Atoms:           atoms,
		LatticeVectors:  lattice,
	}
}

// buildFCC111 places a close-packed (111) slab.  The orthogonal in-plane
// spacings derive from the cubic lattice constant (x = a/√2, y = a·√6/2) and
// each grid cell carries a rectangular two-atom basis.  Layers cycle through
// ABC stacking shifts (k mod 3) and in-plane positions wrap into the
// supercell footprint.
func (b *Builder) buildFCC111(element string, a float64) ([]Atom, [3]common.Vec3) {
	nx := b.params.RepeatsInPlane111
	ny := b.params.RepeatsInPlane111
	nz := b.params.Layers111

	xs := a / math.Sqrt2
	ys := a * math.Sqrt(6) / 2
	zs := a / math.Sqrt(3)

	width := float64(nx) * xs
	depth := float64(ny) * ys

	atoms := make([]Atom, 0, 2*nx*ny*nz)
	id := 0
	for k := 0; k < nz; k++ {
		shiftX, shiftY := stackingShift111(k, xs, ys)
		z := float64(k) * zs
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				x := math.Mod(float64(i)*xs+shiftX, width)
				y := math.Mod(float64(j)*ys+shiftY, depth)
				atoms = append(atoms, newAtom(id, element, common.Vec3{X: x, Y: y, Z: z}))
				id++

				// Second basis atom, offset by half the in-plane spacings.
				x2 := math.Mod(x+xs/2, width)
				y2 := math.Mod(y+ys/2, depth)
				atoms = append(atoms, newAtom(id, element, common.Vec3{X: x2, Y: y2, Z: z}))
				id++
			}
		}
	}

	lattice := [3]common.Vec3{
		{X: width},
		{Y: depth},
		{Z: float64(nz-1)*zs + b.params.VacuumGap},
	}
	return atoms, lattice
}

// stackingShift111 returns the in-plane offset for layer k.  Layer 0 sits on
// the grid, layer 1 shifts half a step in x plus a third of a row in y, and
// layer 2 shifts two thirds of a row in y, approximating ABC stacking.
func stackingShift111(k int, xs, ys float64) (float64, float64) {
	switch k % 3 {
	case 1:
		return xs / 2, ys / 3
	case 2:
		return 0, 2 * ys / 3
	default:
		return 0, 0
	}
}

// buildFCC100 places an AB-stacked (100)-style slab, used for every
// termination other than 111.  One atom per grid cell with spacing a/√2,
// alternate layers (k mod 2) shifted by half a spacing in both in-plane
// axes, and inter-layer spacing a/2.
func (b *Builder) buildFCC100(element string, a float64) ([]Atom, [3]common.Vec3) {
	n := b.params.RepeatsInPlane100
	nz := b.params.Layers100

	d := a / math.Sqrt2
	zs := a / 2
	width := float64(n) * d

	atoms := make([]Atom, 0, n*n*nz)
	id := 0
	for k := 0; k < nz; k++ {
		var shift float64
		if k%2 == 1 {
			shift = d / 2
		}
		z := float64(k) * zs
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				x := math.Mod(float64(i)*d+shift, width)
				y := math.Mod(float64(j)*d+shift, width)
				atoms = append(atoms, newAtom(id, element, common.Vec3{X: x, Y: y, Z: z}))
				id++
			}
		}
	}

	lattice := [3]common.Vec3{
		{X: width},
		{Y: width},
		{Z: float64(nz-1)*zs + b.params.VacuumGap},
	}
	return atoms, lattice
}

func (b *Builder) describe(element, miller string, atomCount int) string {
	return fmt.Sprintf("%s fcc(%s) slab, %d atoms, %.0f Å vacuum",
		element, miller, atomCount, b.params.VacuumGap)
}
