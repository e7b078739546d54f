// Package materials provides the static element property tables used by the
// slab builder and the adsorption engine.  Two tables exist: a physical table
// (lattice constant, energies, symmetry, electronegativity) and a display
// table (color, covalent radius) consumed by rendering collaborators.  Both
// lookups are total: an untabulated symbol resolves to the designated
// unknown-element record rather than failing.
package materials

// FallbackSymbol is the sentinel key shared by both tables.  Lookups for any
// symbol absent from a table return the record stored under this key.
const FallbackSymbol = "X"

// ElementRecord holds the physical constants for one element.  Values are
// demo-grade reference data, not authoritative: lattice constants in Å,
// energies in eV, electronegativity on the Pauling scale.
type ElementRecord struct {
	Symbol            string  `json:"symbol"`
	LatticeConstant   float64 `json:"lattice_constant"`
	ReferenceID       string  `json:"reference_id"`
	FormationEnergy   float64 `json:"formation_energy"`
	BandGap           float64 `json:"band_gap"`
	SymmetryGroup     string  `json:"symmetry_group"`
	Electronegativity float64 `json:"electronegativity"`
}

// DisplayRecord holds the rendering constants for one element: CSS hex color
// and covalent radius in Å.
type DisplayRecord struct {
	Symbol         string  `json:"symbol"`
	Color          string  `json:"color"`
	CovalentRadius float64 `json:"covalent_radius"`
}

// Lookup resolves the physical record for symbol, falling back to the
// unknown-element record when the symbol is not tabulated.  It never fails.
func Lookup(symbol string) ElementRecord {
	if rec, ok := physicalTable[symbol]; ok {
		return rec
	}
	return physicalTable[FallbackSymbol]
}

// LookupDisplay resolves the display record for symbol with the same
// fallback behavior as Lookup.
func LookupDisplay(symbol string) DisplayRecord {
	if rec, ok := displayTable[symbol]; ok {
		return rec
	}
	return displayTable[FallbackSymbol]
}

// IsTabulated reports whether symbol has a real (non-fallback) physical
// record.
func IsTabulated(symbol string) bool {
	_, ok := physicalTable[symbol]
	return ok && symbol != FallbackSymbol
}

// Symbols returns all tabulated element symbols excluding the fallback
// sentinel.  Order is unspecified.
func Symbols() []string {
	out := make([]string, 0, len(physicalTable)-1)
	for sym := range physicalTable {
		if sym != FallbackSymbol {
			out = append(out, sym)
		}
	}
	return out
}
