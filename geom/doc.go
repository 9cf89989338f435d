// Package geom provides the small vector and linear-algebra primitives the
// simplification engine needs: three-dimensional vector arithmetic (via
// github.com/go-gl/mathgl/mgl64) and symmetric 4×4 quadric matrices with a
// pivoted linear solve.
//
// Nothing here is mesh-aware. geom has no notion of vertices, edges, or
// faces; it is the leaf package every other package in this module builds
// on, the way lvlath/matrix/ops is the leaf linear-algebra package beneath
// lvlath's graph algorithms.
package geom
