package geom_test

import (
	"testing"

	"github.com/quadra-mesh/quadra/geom"
	"github.com/stretchr/testify/require"
)

func TestSolve4_Identity(t *testing.T) {
	t.Parallel()

	var m geom.Quadric
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	b := geom.Vec4{1, 2, 3, 4}

	x, err := geom.Solve4(m, b)
	require.NoError(t, err)
	require.InDelta(t, b[0], x[0], 1e-9)
	require.InDelta(t, b[1], x[1], 1e-9)
	require.InDelta(t, b[2], x[2], 1e-9)
	require.InDelta(t, b[3], x[3], 1e-9)
}

func TestSolve4_Singular(t *testing.T) {
	t.Parallel()

	// A single plane produces a rank-1 quadric: Q' (row 3 forced to
	// (0,0,0,1)) is still singular because rows 0-2 are linearly dependent.
	q := geom.PlaneQuadric(geom.Vec3{0, 0, 1}, geom.Vec3{0, 0, 0})
	qPrime := q
	qPrime[3] = [4]float64{0, 0, 0, 1}

	_, err := geom.Solve4(qPrime, geom.Vec4{0, 0, 0, 1})
	require.ErrorIs(t, err, geom.ErrSingular)
}

func TestSolve4_RequiresPivoting(t *testing.T) {
	t.Parallel()

	// A zero natural pivot at [0][0] that a pivot-free Doolittle pass would
	// choke on, but which has a perfectly good solution once row 1 is used
	// as the pivot row.
	m := geom.Quadric{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	b := geom.Vec4{2, 3, 5, 7}

	x, err := geom.Solve4(m, b)
	require.NoError(t, err)
	require.InDelta(t, 3.0, x[0], 1e-9)
	require.InDelta(t, 2.0, x[1], 1e-9)
	require.InDelta(t, 5.0, x[2], 1e-9)
	require.InDelta(t, 7.0, x[3], 1e-9)
}
