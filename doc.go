// Package quadra implements Garland-Heckbert quadric-error edge-contraction
// simplification for triangle surface meshes.
//
// Given a triangle mesh and a target surviving-vertex count, it produces a
// smaller mesh whose surface approximates the original under a least-squares
// plane-distance metric, by repeatedly contracting the cheapest edge (per a
// per-vertex quadric error matrix) until the target is reached or no
// further cost-positive contraction remains.
//
// Packages, leaves first:
//
//	geom/      — Vec3/Vec4 arithmetic and the fixed 4x4 linear solve
//	meshgraph/ — the mutable vertex/edge/face incidence graph
//	quadric/   — per-face plane quadrics, per-vertex/per-edge quadric math
//	simplify/  — the lazy-invalidated min-heap contraction scheduler
//	meshio/    — the line-oriented mesh text format reader/writer
//	driver/    — single-file, batch, and evaluation CLI collaborators
//	cmd/quadra — the command-line entrypoint
//
// See DESIGN.md for how each package's algorithms and its third-party
// dependencies are grounded.
package quadra
