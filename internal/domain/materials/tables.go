package materials

// physicalTable is keyed by element symbol.  Reference IDs imitate a
// materials-database identifier scheme; formation energies are per atom
// relative to the elemental reference, so the pure metals sit at zero.
var physicalTable = map[string]ElementRecord{
	"Au": {
		Symbol:            "Au",
		LatticeConstant:   4.078,
		ReferenceID:       "mp-81",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 2.54,
	},
	"Ag": {
		Symbol:            "Ag",
		LatticeConstant:   4.085,
		ReferenceID:       "mp-124",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 1.93,
	},
	"Cu": {
		Symbol:            "Cu",
		LatticeConstant:   3.615,
		ReferenceID:       "mp-30",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 1.90,
	},
	"Pt": {
		Symbol:            "Pt",
		LatticeConstant:   3.924,
		ReferenceID:       "mp-126",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 2.28,
	},
	"Pd": {
		Symbol:            "Pd",
		LatticeConstant:   3.891,
		ReferenceID:       "mp-2",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 2.20,
	},
	"Ni": {
		Symbol:            "Ni",
		LatticeConstant:   3.524,
		ReferenceID:       "mp-23",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 1.91,
	},
	"Al": {
		Symbol:            "Al",
		LatticeConstant:   4.046,
		ReferenceID:       "mp-134",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 1.61,
	},
	"Rh": {
		Symbol:            "Rh",
		LatticeConstant:   3.803,
		ReferenceID:       "mp-74",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 2.28,
	},
	"Ir": {
		Symbol:            "Ir",
		LatticeConstant:   3.839,
		ReferenceID:       "mp-101",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 2.20,
	},
	"Pb": {
		Symbol:            "Pb",
		LatticeConstant:   4.950,
		ReferenceID:       "mp-20483",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 2.33,
	},
	FallbackSymbol: {
		Symbol:            FallbackSymbol,
		LatticeConstant:   4.0,
		ReferenceID:       "mp-0",
		FormationEnergy:   0.0,
		BandGap:           0.0,
		SymmetryGroup:     "Fm-3m",
		Electronegativity: 2.0,
	},
}

// displayTable colors roughly follow the CPK/Jmol convention.
var displayTable = map[string]DisplayRecord{
	"Au":           {Symbol: "Au", Color: "#FFD123", CovalentRadius: 1.36},
	"Ag":           {Symbol: "Ag", Color: "#C0C0C0", CovalentRadius: 1.45},
	"Cu":           {Symbol: "Cu", Color: "#C88033", CovalentRadius: 1.32},
	"Pt":           {Symbol: "Pt", Color: "#D0D0E0", CovalentRadius: 1.36},
	"Pd":           {Symbol: "Pd", Color: "#006985", CovalentRadius: 1.39},
	"Ni":           {Symbol: "Ni", Color: "#50D050", CovalentRadius: 1.24},
	"Al":           {Symbol: "Al", Color: "#BFA6A6", CovalentRadius: 1.21},
	"Rh":           {Symbol: "Rh", Color: "#0A7D8C", CovalentRadius: 1.42},
	"Ir":           {Symbol: "Ir", Color: "#175487", CovalentRadius: 1.41},
	"Pb":           {Symbol: "Pb", Color: "#575961", CovalentRadius: 1.46},
	FallbackSymbol: {Symbol: FallbackSymbol, Color: "#FF00FF", CovalentRadius: 1.0},
}
