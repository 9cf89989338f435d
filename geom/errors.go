package geom

import "errors"

// ErrSingular is returned by Solve4 when the coefficient matrix has no
// pivot whose magnitude clears the numerical tolerance, i.e. the system is
// singular (or too close to singular to trust). Callers fall back to a
// cheaper, always-defined construction (see quadric.EdgeCandidate).
var ErrSingular = errors.New("geom: matrix is singular")

// ErrDegenerateVector is returned by SafeNormalize (and so TriangleNormal) when the input vector has
// zero (or near-zero) length and therefore no well-defined direction.
var ErrDegenerateVector = errors.New("geom: vector has zero length")
