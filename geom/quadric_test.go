package geom_test

import (
	"testing"

	"github.com/quadra-mesh/quadra/geom"
	"github.com/stretchr/testify/require"
)

func TestPlaneQuadric_RankOne(t *testing.T) {
	t.Parallel()

	n := geom.Vec3{0, 0, 1}
	p := geom.Vec3{0, 0, 2}
	q := geom.PlaneQuadric(n, p)

	// The plane z=2 contributes d = -2, so pi = (0,0,1,-2).
	// A point already on the plane has zero quadric error.
	require.InDelta(t, 0.0, q.Cost(geom.Vec3{5, -3, 2}), 1e-9)
	// A point one unit off the plane has error (1)^2 = 1.
	require.InDelta(t, 1.0, q.Cost(geom.Vec3{0, 0, 3}), 1e-9)
}

func TestQuadric_Add(t *testing.T) {
	t.Parallel()

	a := geom.PlaneQuadric(geom.Vec3{1, 0, 0}, geom.Vec3{0, 0, 0})
	b := geom.PlaneQuadric(geom.Vec3{0, 1, 0}, geom.Vec3{0, 0, 0})
	sum := a.Add(b)

	require.InDelta(t, a.Cost(geom.Vec3{1, 1, 1})+b.Cost(geom.Vec3{1, 1, 1}), sum.Cost(geom.Vec3{1, 1, 1}), 1e-9)
}
