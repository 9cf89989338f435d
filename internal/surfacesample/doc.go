// Package surfacesample computes a symmetric surface-to-surface error
// between two triangle meshes: area-weighted random points are drawn from
// each mesh's surface, the nearest point on the other mesh's surface is
// found by brute-force triangle search, and squared distances are averaged
// both ways. Grounded on original_source/utils/eval.py's
// symmetric_surface_error, reimplemented over math/rand (rngFromSeed /
// deriveRNG pattern from package tsp) in place of trimesh, since no mesh
// sampling or nearest-neighbor library appears anywhere in the retrieval
// pack.
package surfacesample
