package geom

import "github.com/go-gl/mathgl/mgl64"

// Vec4 is a homogeneous four-vector (x, y, z, w), aliased from mgl64.Vec4
// the same way Vec3 aliases mgl64.Vec3.
type Vec4 = mgl64.Vec4

// Quadric is a symmetric 4×4 error matrix: for a homogeneous point
// x = (x, y, z, 1), x^T Q x is the sum of squared distances from x to the
// collection of planes Q was accumulated from. Stored as a plain row-major
// array rather than mgl64.Mat4 (which is column-major and tuned for
// transform composition, not accumulation-and-solve) so that row access in
// Solve4's pivoting loop is direct index arithmetic.
type Quadric [4][4]float64

// PlaneQuadric builds the rank-1 quadric π·πᵀ for the plane with unit
// normal n and point p on the plane, where π = (n.X, n.Y, n.Z, d) and
// d = -n·p. This is the per-face contribution summed into a vertex's
// quadric (spec §4.3).
func PlaneQuadric(n, p Vec3) Quadric {
	d := -n.Dot(p)
	plane := Vec4{n[0], n[1], n[2], d}

	return Outer4(plane)
}

// Outer4 returns the outer product π·πᵀ of a four-vector with itself: a
// symmetric, rank-1 4×4 matrix.
func Outer4(pi Vec4) Quadric {
	var q Quadric
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			q[i][j] = pi[i] * pi[j]
		}
	}

	return q
}

// Add returns the element-wise sum of q and other. Quadrics accumulate
// additively: a vertex's quadric is the sum of its incident faces' plane
// quadrics (spec §4.3), and a contracted vertex's quadric is the sum of its
// two parents' quadrics (spec §4.3, §9).
func (q Quadric) Add(other Quadric) Quadric {
	var sum Quadric
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum[i][j] = q[i][j] + other[i][j]
		}
	}

	return sum
}

// Apply evaluates the quadratic form x^T Q x for homogeneous point x.
// This is the contraction cost once x is the candidate contraction point.
func (q Quadric) Apply(x Vec4) float64 {
	var row Vec4
	for i := 0; i < 4; i++ {
		row[i] = q[i][0]*x[0] + q[i][1]*x[1] + q[i][2]*x[2] + q[i][3]*x[3]
	}

	return x[0]*row[0] + x[1]*row[1] + x[2]*row[2] + x[3]*row[3]
}

// Cost evaluates the quadric's error at a plain (non-homogeneous) point p,
// i.e. Apply((p.X, p.Y, p.Z, 1)). Convenience for the midpoint fallback path
// in the quadric engine.
func (q Quadric) Cost(p Vec3) float64 {
	return q.Apply(Vec4{p[0], p[1], p[2], 1})
}
