package meshio_test

import (
	"strings"
	"testing"

	"github.com/quadra-mesh/quadra/meshio"
	"github.com/stretchr/testify/require"
)

func TestRead_SingleTriangle(t *testing.T) {
	t.Parallel()

	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	mesh, err := meshio.ReadMesh(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, mesh.AliveVertexCount())
	require.Equal(t, 1, mesh.FaceCount())
	require.Equal(t, 3, mesh.EdgeCount())
}

func TestRead_TolerantOfObjStyleSlashSuffix(t *testing.T) {
	t.Parallel()

	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1/1 2/2/2 3/3/3\n"
	mesh, err := meshio.ReadMesh(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 1, mesh.FaceCount())
}

func TestRead_SkipsBlankLines(t *testing.T) {
	t.Parallel()

	src := "v 0 0 0\n\nv 1 0 0\nv 0 1 0\n\nf 1 2 3\n"
	mesh, err := meshio.ReadMesh(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, mesh.AliveVertexCount())
}

func TestRead_RejectsQuadFace(t *testing.T) {
	t.Parallel()

	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nv 1 1 0\nf 1 2 3 4\n"
	_, err := meshio.ReadMesh(strings.NewReader(src))
	require.ErrorIs(t, err, meshio.ErrBadFaceLine)
}

func TestRead_RejectsOutOfRangeFaceIndex(t *testing.T) {
	t.Parallel()

	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 5\n"
	_, err := meshio.ReadMesh(strings.NewReader(src))
	require.ErrorIs(t, err, meshio.ErrFaceIndexOutOfRange)
}

func TestRead_IgnoresUnknownRecordType(t *testing.T) {
	t.Parallel()

	src := "# a comment\nvn 0 0 1\ng group1\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	mesh, err := meshio.ReadMesh(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, mesh.AliveVertexCount())
	require.Equal(t, 1, mesh.FaceCount())
}

func TestRead_RejectsBadVertexLine(t *testing.T) {
	t.Parallel()

	src := "v 0 0\n"
	_, err := meshio.ReadMesh(strings.NewReader(src))
	require.ErrorIs(t, err, meshio.ErrBadVertexLine)
}
