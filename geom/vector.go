package geom

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is a point or direction in three-space. It is a direct alias for
// mgl64.Vec3 so callers can use Add, Sub, Cross, Dot, Mul, Len and the rest
// of mathgl's vector API without a wrapper layer, the same way
// akmonengine-feather's epa package calls mgl64.Vec3 methods directly.
type Vec3 = mgl64.Vec3

// degenerateLenSqr is the squared-length threshold below which a vector is
// treated as having no direction. Triangle normals below this threshold
// come from zero-area (degenerate) faces.
const degenerateLenSqr = 1e-18

// SafeNormalize returns the unit vector parallel to v, or ErrDegenerateVector
// if v is too short to normalize reliably. Unlike mgl64.Vec3.Normalize,
// which silently divides by a near-zero length and produces Inf/NaN
// components, SafeNormalize reports the degenerate case so callers (the
// quadric engine) can skip it rather than accumulate garbage.
func SafeNormalize(v Vec3) (Vec3, error) {
	if v.Dot(v) < degenerateLenSqr {
		return Vec3{}, ErrDegenerateVector
	}

	return v.Normalize(), nil
}

// TriangleNormal returns the outward unit normal of the triangle (p0, p1,
// p2), oriented by the right-hand rule: normalize(cross(p1-p0, p2-p0)).
// It reports ErrDegenerateVector for collinear or coincident points.
func TriangleNormal(p0, p1, p2 Vec3) (Vec3, error) {
	return SafeNormalize(p1.Sub(p0).Cross(p2.Sub(p0)))
}

// Centroid returns the arithmetic mean of the three triangle vertices.
func Centroid(p0, p1, p2 Vec3) Vec3 {
	return p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec3) Vec3 {
	return a.Add(b).Mul(0.5)
}
