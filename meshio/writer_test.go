package meshio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quadra-mesh/quadra/meshio"
	"github.com/stretchr/testify/require"
)

func TestWrite_RoundTripsThroughRead(t *testing.T) {
	t.Parallel()

	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	mesh, err := meshio.ReadMesh(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, meshio.WriteMesh(&buf, mesh))

	again, err := meshio.ReadMesh(&buf)
	require.NoError(t, err)
	require.Equal(t, mesh.AliveVertexCount(), again.AliveVertexCount())
	require.Equal(t, mesh.FaceCount(), again.FaceCount())
}

func TestWrite_RenumbersAroundRetiredVertices(t *testing.T) {
	t.Parallel()

	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3\nf 1 3 4\n"
	mesh, err := meshio.ReadMesh(strings.NewReader(src))
	require.NoError(t, err)

	faces := mesh.AliveFaceIDs()
	require.NoError(t, mesh.RetireFace(faces[0]))
	require.NoError(t, mesh.RetireVertex(1)) // vertex "2", 0-based id 1

	var buf bytes.Buffer
	require.NoError(t, meshio.WriteMesh(&buf, mesh))

	out, err := meshio.ReadMesh(&buf)
	require.NoError(t, err)
	require.Equal(t, 3, out.AliveVertexCount())
	require.Equal(t, 1, out.FaceCount())
}
