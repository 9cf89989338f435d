package surfacesample

import (
	"math/rand"
	"testing"

	"github.com/quadra-mesh/quadra/geom"
	"github.com/stretchr/testify/require"
)

func unitTriangle() Triangle {
	return Triangle{
		P0: geom.Vec3{0, 0, 0},
		P1: geom.Vec3{1, 0, 0},
		P2: geom.Vec3{0, 1, 0},
	}
}

func TestSamplePoints_StaysWithinTriangleBounds(t *testing.T) {
	t.Parallel()

	tri := unitTriangle()
	pts := SamplePoints([]Triangle{tri}, 200, rand.New(rand.NewSource(7)))
	require.Len(t, pts, 200)
	for _, p := range pts {
		require.InDelta(t, 0, p.Z(), 1e-12)
		require.GreaterOrEqual(t, p.X(), -1e-12)
		require.GreaterOrEqual(t, p.Y(), -1e-12)
		require.LessOrEqual(t, p.X()+p.Y(), 1+1e-12)
	}
}

func TestSamplePoints_EmptyOnZeroArea(t *testing.T) {
	t.Parallel()

	degenerate := Triangle{P0: geom.Vec3{0, 0, 0}, P1: geom.Vec3{1, 0, 0}, P2: geom.Vec3{2, 0, 0}}
	pts := SamplePoints([]Triangle{degenerate}, 10, nil)
	require.Nil(t, pts)
}

func TestNearestDistance_ZeroForPointOnSurface(t *testing.T) {
	t.Parallel()

	tri := unitTriangle()
	d := NearestDistance(geom.Vec3{0.25, 0.25, 0}, []Triangle{tri})
	require.InDelta(t, 0, d, 1e-9)
}

func TestNearestDistance_PerpendicularOffsetMatchesHeight(t *testing.T) {
	t.Parallel()

	tri := unitTriangle()
	d := NearestDistance(geom.Vec3{0.25, 0.25, 2}, []Triangle{tri})
	require.InDelta(t, 2, d, 1e-9)
}

func TestNearestDistance_InfiniteWithNoTriangles(t *testing.T) {
	t.Parallel()

	d := NearestDistance(geom.Vec3{0, 0, 0}, nil)
	require.True(t, d > 1e300)
}

func TestSymmetricSurfaceError_ZeroForIdenticalMeshes(t *testing.T) {
	t.Parallel()

	tri := unitTriangle()
	err := SymmetricSurfaceError([]Triangle{tri}, []Triangle{tri}, 100, rand.New(rand.NewSource(3)))
	require.InDelta(t, 0, err, 1e-9)
}

func TestSymmetricSurfaceError_PositiveForOffsetMeshes(t *testing.T) {
	t.Parallel()

	a := unitTriangle()
	b := Triangle{
		P0: geom.Vec3{0, 0, 1},
		P1: geom.Vec3{1, 0, 1},
		P2: geom.Vec3{0, 1, 1},
	}
	err := SymmetricSurfaceError([]Triangle{a}, []Triangle{b}, 100, rand.New(rand.NewSource(3)))
	require.Greater(t, err, 0.5)
}
