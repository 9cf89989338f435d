package meshgraph_test

import (
	"testing"

	"github.com/quadra-mesh/quadra/geom"
	"github.com/quadra-mesh/quadra/meshgraph"
	"github.com/stretchr/testify/require"
)

func TestCompact_DropsRetiredAndRenumbers(t *testing.T) {
	t.Parallel()

	m := meshgraph.New()
	v0 := m.AddVertex(geom.Vec3{0, 0, 0})
	v1 := m.AddVertex(geom.Vec3{1, 0, 0})
	v2 := m.AddVertex(geom.Vec3{1, 1, 0})
	v3 := m.AddVertex(geom.Vec3{0, 1, 0})

	f0, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)
	_, err = m.AddTriangle(v0, v2, v3)
	require.NoError(t, err)

	// Retire v1 and its solely-incident face f0; leave v0, v2, v3 and f1 alive.
	require.NoError(t, m.RetireFace(f0))
	require.NoError(t, m.RetireVertex(v1))

	m.Compact()

	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 1, m.FaceCount())

	f, err := m.Face(0)
	require.NoError(t, err)
	for _, vid := range f.V {
		require.GreaterOrEqual(t, vid, 0)
		require.Less(t, vid, m.VertexCount())
	}
}

func TestCompact_Idempotent(t *testing.T) {
	t.Parallel()

	m := meshgraph.New()
	v0 := m.AddVertex(geom.Vec3{0, 0, 0})
	v1 := m.AddVertex(geom.Vec3{1, 0, 0})
	v2 := m.AddVertex(geom.Vec3{0, 1, 0})
	_, err := m.AddTriangle(v0, v1, v2)
	require.NoError(t, err)

	m.Compact()
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 1, m.FaceCount())

	m.Compact()
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 1, m.FaceCount())
}
