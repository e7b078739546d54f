package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 6, Z: 8}

	assert.Equal(t, Vec3{X: 5, Y: 8, Z: 11}, a.Add(b))
	assert.Equal(t, Vec3{X: 3, Y: 4, Z: 5}, b.Sub(a))
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
}

func TestVec3_NormAndDistance(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, v.Norm(), epsilon)
	assert.InDelta(t, 5.0, Vec3{}.DistanceTo(v), epsilon)
}

func TestVec3_Midpoint(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 2, Y: 4, Z: 6}
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, a.Midpoint(b))
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, Vec3{}, Centroid())

	c := Centroid(
		Vec3{X: 0, Y: 0, Z: 0},
		Vec3{X: 3, Y: 0, Z: 0},
		Vec3{X: 0, Y: 3, Z: 0},
	)
	assert.InDelta(t, 1.0, c.X, epsilon)
	assert.InDelta(t, 1.0, c.Y, epsilon)
	assert.InDelta(t, 0.0, c.Z, epsilon)
}
