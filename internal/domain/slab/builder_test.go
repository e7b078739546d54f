package slab

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func newDefaultBuilder() *Builder {
	return NewBuilder(DefaultParams())
}

func TestParseQuery(t *testing.T) {
	b := newDefaultBuilder()

	tests := []struct {
		name        string
		query       string
		wantElement string
		wantMiller  string
	}{
		{"gold_111", "Au(111)", "Au", "111"},
		{"copper_100", "Cu(100)", "Cu", "100"},
		{"no_miller_defaults_111", "Pt", "Pt", "111"},
		{"garbage_defaults_entirely", "garbage", "Au", "111"},
		{"whitespace_and_noise", "  slab of Ni(100) please ", "Ni", "100"},
		{"single_letter_element", "W(110)", "W", "110"},
		{"empty_query", "", "Au", "111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			element, miller := b.ParseQuery(tt.query)
			assert.Equal(t, tt.wantElement, element)
			assert.Equal(t, tt.wantMiller, miller)
		})
	}
}

func TestBuild_111AtomCount(t *testing.T) {
	b := newDefaultBuilder()

	// 2 basis atoms x 3x3 in-plane x 4 layers = 72, for any element.
	for _, q := range []string{"Au(111)", "Cu(111)", "Zz(111)", "garbage"} {
		s := b.Build(q)
		assert.Equal(t, 72, s.AtomCount(), "query %q", q)
	}
}

func TestBuild_100AtomCountAndSpacing(t *testing.T) {
	b := newDefaultBuilder()
	s := b.Build("Cu(100)")

	assert.Equal(t, "Cu", s.Formula)
	assert.Equal(t, "(100)", s.MillerIndex)
	require.Equal(t, 64, s.AtomCount())

	// Inter-layer spacing is a/2 = 1.8075 for Cu (a = 3.615): the second
	// layer's z must sit exactly there.
	layerZ := map[float64]bool{}
	for _, a := range s.Atoms {
		layerZ[a.Position.Z] = true
	}
	assert.True(t, layerZ[0.0])
	found := false
	for z := range layerZ {
		if math.Abs(z-1.8075) < 1e-9 {
			found = true
		}
	}
	assert.True(t, found, "expected a layer at z = 1.8075, got %v", layerZ)
}

func TestBuild_Deterministic(t *testing.T) {
	b := newDefaultBuilder()
	s1 := b.Build("Au(111)")
	s2 := b.Build("Au(111)")
	assert.True(t, reflect.DeepEqual(s1, s2))
}

func TestBuild_LatticeVectors(t *testing.T) {
	b := newDefaultBuilder()

	t.Run("fcc111", func(t *testing.T) {
		s := b.Build("Au(111)")
		a := 4.078
		zs := a / math.Sqrt(3)

		assert.InDelta(t, 3*a/math.Sqrt2, s.LatticeVectors[0].X, epsilon)
		assert.InDelta(t, 3*a*math.Sqrt(6)/2, s.LatticeVectors[1].Y, epsilon)
		// Normal axis exceeds the stacked layer height by exactly the vacuum.
		assert.InDelta(t, 3*zs+10.0, s.LatticeVectors[2].Z, epsilon)
	})

	t.Run("fcc100", func(t *testing.T) {
		s := b.Build("Cu(100)")
		a := 3.615
		assert.InDelta(t, 4*a/math.Sqrt2, s.LatticeVectors[0].X, epsilon)
		assert.InDelta(t, 3*a/2+10.0, s.LatticeVectors[2].Z, epsilon)
	})
}

func TestBuild_AtomsWrappedIntoFootprint(t *testing.T) {
	b := newDefaultBuilder()
	for _, q := range []string{"Au(111)", "Cu(100)"} {
		s := b.Build(q)
		for _, atom := range s.Atoms {
			assert.GreaterOrEqual(t, atom.Position.X, 0.0)
			assert.Less(t, atom.Position.X, s.LatticeVectors[0].X)
			assert.GreaterOrEqual(t, atom.Position.Y, 0.0)
			assert.Less(t, atom.Position.Y, s.LatticeVectors[1].Y)
		}
	}
}

func TestBuild_SequentialIDs(t *testing.T) {
	s := newDefaultBuilder().Build("Pt(111)")
	for i, atom := range s.Atoms {
		assert.Equal(t, i, atom.ID)
	}
}

func TestBuild_DisplayPropertiesCopied(t *testing.T) {
	s := newDefaultBuilder().Build("Au(111)")
	for _, atom := range s.Atoms {
		assert.Equal(t, "#FFD123", atom.DisplayColor)
		assert.InDelta(t, 1.36, atom.DisplayRadius, epsilon)
	}

	// Untabulated symbols carry the fallback display record.
	s = newDefaultBuilder().Build("Zz(111)")
	assert.Equal(t, "Zz", s.Formula)
	assert.Equal(t, "#FF00FF", s.Atoms[0].DisplayColor)
	assert.Equal(t, 1.0, s.Atoms[0].DisplayRadius)
}

func TestBuild_ScalarFieldsFromPhysicalTable(t *testing.T) {
	s := newDefaultBuilder().Build("Cu(111)")
	assert.Equal(t, "mp-30", s.ReferenceID)
	assert.Equal(t, "Fm-3m", s.SymmetryGroup)
	assert.Contains(t, s.Description, "Cu")
	assert.Contains(t, s.Description, "111")
}

func TestBuild_LayerStackingShifts111(t *testing.T) {
	s := newDefaultBuilder().Build("Au(111)")
	a := 4.078
	zs := a / math.Sqrt(3)

	// Collect the minimum y per layer: layers 1 and 2 (k mod 3 != 0) are
	// shifted off the grid rows, layer 3 (k mod 3 == 0) realigns with layer 0.
	minY := map[int]float64{}
	for _, atom := range s.Atoms {
		k := int(math.Round(atom.Position.Z / zs))
		if cur, ok := minY[k]; !ok || atom.Position.Y < cur {
			minY[k] = atom.Position.Y
		}
	}
	require.Len(t, minY, 4)
	assert.InDelta(t, minY[0], minY[3], epsilon)
	assert.Greater(t, math.Abs(minY[0]-minY[1]), 1e-3)
	assert.Greater(t, math.Abs(minY[1]-minY[2]), 1e-3)
}

func TestInferBonds(t *testing.T) {
	s := newDefaultBuilder().Build("Au(111)")
	bonds := InferBonds(s, 1.3)
	assert.NotEmpty(t, bonds)
	for _, bd := range bonds {
		assert.Less(t, bd.A, bd.B)
		d := s.Atoms[bd.A].Position.DistanceTo(s.Atoms[bd.B].Position)
		assert.Less(t, d, 1.3*(s.Atoms[bd.A].DisplayRadius+s.Atoms[bd.B].DisplayRadius))
	}
}

func TestMaxZ(t *testing.T) {
	s := newDefaultBuilder().Build("Au(111)")
	z, ok := s.MaxZ()
	require.True(t, ok)
	assert.InDelta(t, 3*4.078/math.Sqrt(3), z, epsilon)

	empty := &MaterialStructure{}
	_, ok = empty.MaxZ()
	assert.False(t, ok)
}
