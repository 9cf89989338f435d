package simplify_test

import (
	"testing"

	"github.com/quadra-mesh/quadra/geom"
	"github.com/quadra-mesh/quadra/meshgraph"
	"github.com/quadra-mesh/quadra/simplify"
	"github.com/stretchr/testify/require"
)

func singleTriangle() *meshgraph.Mesh {
	m := meshgraph.New()
	v0 := m.AddVertex(geom.Vec3{0, 0, 0})
	v1 := m.AddVertex(geom.Vec3{1, 0, 0})
	v2 := m.AddVertex(geom.Vec3{0, 1, 0})
	_, _ = m.AddTriangle(v0, v1, v2)

	return m
}

func unitTetrahedron() *meshgraph.Mesh {
	m := meshgraph.New()
	v0 := m.AddVertex(geom.Vec3{0, 0, 0})
	v1 := m.AddVertex(geom.Vec3{1, 0, 0})
	v2 := m.AddVertex(geom.Vec3{0, 1, 0})
	v3 := m.AddVertex(geom.Vec3{0, 0, 1})
	_, _ = m.AddTriangle(v0, v1, v2)
	_, _ = m.AddTriangle(v0, v2, v3)
	_, _ = m.AddTriangle(v0, v3, v1)
	_, _ = m.AddTriangle(v1, v3, v2)

	return m
}

// planarQuad is two coplanar triangles sharing a diagonal, a grid square
// split along (v0, v2): (v0,v1,v2) and (v0,v2,v3).
func planarQuad() *meshgraph.Mesh {
	m := meshgraph.New()
	v0 := m.AddVertex(geom.Vec3{0, 0, 0})
	v1 := m.AddVertex(geom.Vec3{1, 0, 0})
	v2 := m.AddVertex(geom.Vec3{1, 1, 0})
	v3 := m.AddVertex(geom.Vec3{0, 1, 0})
	_, _ = m.AddTriangle(v0, v1, v2)
	_, _ = m.AddTriangle(v0, v2, v3)

	return m
}

func TestSimplify_SingleTriangleHasNothingToContractBelowThreeVertices(t *testing.T) {
	t.Parallel()

	m := singleTriangle()
	result, err := simplify.Simplify(m, simplify.WithTarget(3))
	require.NoError(t, err)
	require.Equal(t, 3, result.VerticesRemaining)
	require.Equal(t, 0, result.Contractions)
	require.False(t, result.Drained)
}

func TestSimplify_SingleTriangleContractsDanglingEdgeAfterFaceCollapses(t *testing.T) {
	t.Parallel()

	// A lone triangle has 3 edges, each incident to both its endpoints'
	// only shared face; contracting any one of them retires that face and
	// leaves a dangling edge with no faces. The scheduler only checks edge
	// and endpoint liveness, so it contracts that dangling edge as well and
	// reaches target=1 without error.
	m := singleTriangle()
	result, err := simplify.Simplify(m, simplify.WithTarget(1))
	require.NoError(t, err)
	require.Equal(t, 2, result.Contractions)
	require.Equal(t, 1, result.VerticesRemaining)
	require.False(t, result.Drained)
}

func TestSimplify_TetrahedronTargetEqualsCurrentIsNoOp(t *testing.T) {
	t.Parallel()

	m := unitTetrahedron()
	result, err := simplify.Simplify(m, simplify.WithTarget(4))
	require.NoError(t, err)
	require.Equal(t, 0, result.Contractions)
	require.Equal(t, 4, result.VerticesRemaining)
	require.False(t, result.Drained)
}

func TestSimplify_TetrahedronTargetAboveCurrentIsNoOp(t *testing.T) {
	t.Parallel()

	m := unitTetrahedron()
	result, err := simplify.Simplify(m, simplify.WithTarget(10))
	require.NoError(t, err)
	require.Equal(t, 0, result.Contractions)
	require.Equal(t, 4, result.VerticesRemaining)
	require.False(t, result.Drained)
}

func TestSimplify_TetrahedronContractsOneEdgeTowardTarget(t *testing.T) {
	t.Parallel()

	m := unitTetrahedron()
	result, err := simplify.Simplify(m, simplify.WithTarget(3))
	require.NoError(t, err)
	require.Equal(t, 1, result.Contractions)
	require.Equal(t, 3, result.VerticesRemaining)
	require.False(t, result.Drained)
	require.Equal(t, 3, m.AliveVertexCount())

	for _, fid := range m.AliveFaceIDs() {
		f, err := m.Face(fid)
		require.NoError(t, err)
		for _, vid := range f.V {
			require.True(t, m.IsVertexAlive(vid))
		}
		for _, eid := range f.EdgeIDs {
			require.True(t, m.IsEdgeAlive(eid))
		}
	}
}

func TestSimplify_PlanarQuadFallsBackToMidpointAndStaysPlanar(t *testing.T) {
	t.Parallel()

	m := planarQuad()
	result, err := simplify.Simplify(m, simplify.WithTarget(3))
	require.NoError(t, err)
	require.Equal(t, 1, result.Contractions)
	require.Equal(t, 3, m.AliveVertexCount())

	for _, id := range m.AliveVertexIDs() {
		v, err := m.Vertex(id)
		require.NoError(t, err)
		require.InDelta(t, 0, v.Position.Z(), 1e-9)
	}
}

func TestSimplify_NilMeshReturnsErrNilMesh(t *testing.T) {
	t.Parallel()

	_, err := simplify.Simplify(nil, simplify.WithTarget(1))
	require.ErrorIs(t, err, simplify.ErrNilMesh)
}

func TestSimplify_NoTargetOptionReturnsErrNoTarget(t *testing.T) {
	t.Parallel()

	m := singleTriangle()
	_, err := simplify.Simplify(m)
	require.ErrorIs(t, err, simplify.ErrNoTarget)
}

func TestSimplify_RatioOptionResolvesAgainstCurrentVertexCount(t *testing.T) {
	t.Parallel()

	m := unitTetrahedron()
	result, err := simplify.Simplify(m, simplify.WithRatio(0.5))
	require.NoError(t, err)
	require.Equal(t, 2, result.VerticesRemaining)
}

func TestSimplify_ContractionCompactsCleanlyAfterward(t *testing.T) {
	t.Parallel()

	m := unitTetrahedron()
	_, err := simplify.Simplify(m, simplify.WithTarget(3))
	require.NoError(t, err)

	m.Compact()
	require.Equal(t, 3, m.VertexCount())
	for _, fid := range m.AliveFaceIDs() {
		f, err := m.Face(fid)
		require.NoError(t, err)
		for _, vid := range f.V {
			require.GreaterOrEqual(t, vid, 0)
			require.Less(t, vid, m.VertexCount())
		}
	}
}

func TestWithTarget_NegativePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { simplify.WithTarget(-1) })
}

func TestWithRatio_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { simplify.WithRatio(0) })
	require.Panics(t, func() { simplify.WithRatio(1.5) })
}
