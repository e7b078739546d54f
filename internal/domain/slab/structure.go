// Package slab provides the crystal slab domain model and the procedural
// builder that turns a free-text surface query such as "Au(111)" into a
// finite FCC slab with vacuum padding.
package slab

import (
	"github.com/matgen-io/surfgen/internal/domain/materials"
	"github.com/matgen-io/surfgen/pkg/types/common"
)

// Atom is a single lattice site.  IDs are assigned sequentially at
// construction time and are unique within one structure.  Display color and
// radius are copied from the element display table when the atom is created
// and never recomputed.
type Atom struct {
	ID            int         `json:"id"`
	Element       string      `json:"element"`
	Position      common.Vec3 `json:"position"`
	DisplayColor  string      `json:"display_color"`
	DisplayRadius float64     `json:"display_radius"`
}

// MaterialStructure is a fully materialized slab: scalar element properties
// copied from the physical table, the ordered atom list (insertion order is
// generation order), and the three lattice vectors spanning the supercell
// including vacuum on the surface-normal axis.  Instances are produced whole
// by one Build call and treated as immutable afterwards.
type MaterialStructure struct {
	Formula         string         `json:"formula"`
	ReferenceID     string         `json:"reference_id"`
	MillerIndex     string         `json:"miller_index"`
	Description     string         `json:"description"`
	FormationEnergy float64        `json:"formation_energy"`
	BandGap         float64        `json:"band_gap"`
	SymmetryGroup   string         `json:"symmetry_group"`
	Atoms           []Atom         `json:"atoms"`
	LatticeVectors  [3]common.Vec3 `json:"lattice_vectors"`
}

// AtomCount returns the number of atoms in the structure.
func (s *MaterialStructure) AtomCount() int {
	return len(s.Atoms)
}

// MaxZ returns the largest surface-normal coordinate and whether the
// structure has any atoms at all.
func (s *MaterialStructure) MaxZ() (float64, bool) {
	if len(s.Atoms) == 0 {
		return 0, false
	}
	max := s.Atoms[0].Position.Z
	for _, a := range s.Atoms[1:] {
		if a.Position.Z > max {
			max = a.Position.Z
		}
	}
	return max, true
}

// Bond is an index pair into MaterialStructure.Atoms, produced for rendering
// collaborators that draw sticks between nearby atoms.
type Bond struct {
	A int `json:"a"`
	B int `json:"b"`
}

// InferBonds returns the atom index pairs whose separation is below
// scale * (rA + rB), with radii taken from the atoms' display records.  A
// scale around 1.3 reproduces the usual covalent-bond visual; this is a
// rendering aid, not a chemistry claim.
func InferBonds(s *MaterialStructure, scale float64) []Bond {
	var bonds []Bond
	for i := 0; i < len(s.Atoms); i++ {
		for j := i + 1; j < len(s.Atoms); j++ {
			cutoff := scale * (s.Atoms[i].DisplayRadius + s.Atoms[j].DisplayRadius)
			if s.Atoms[i].Position.DistanceTo(s.Atoms[j].Position) < cutoff {
				bonds = append(bonds, Bond{A: i, B: j})
			}
		}
	}
	return bonds
}

// newAtom copies the display constants for element at creation time.
func newAtom(id int, element string, pos common.Vec3) Atom {
	disp := materials.LookupDisplay(element)
	return Atom{
		ID:            id,
		Element:       element,
		Position:      pos,
		DisplayColor:  disp.Color,
		DisplayRadius: disp.CovalentRadius,
	}
}
