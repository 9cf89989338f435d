// Package meshgraph implements the mutable triangle-mesh incidence graph
// the simplification engine operates on: vertices, edges and faces with
// bidirectional incidence, unordered-pair edge deduplication, soft deletion
// ("alive" flags) and final compaction.
//
// Identity is a stable int handle into a slice, not a pointer — the same
// strategy lvlath/core uses for its map-keyed Graph, adapted here to
// index-into-vector storage because retired entities must stay addressable
// by handle until Compact runs (pending heap entries in package simplify
// refer to retired handles right up until they are popped and discarded).
//
// Mesh is not safe for concurrent use. Unlike lvlath/core.Graph, which
// guards every map with a sync.RWMutex because it targets concurrent
// callers, one Mesh belongs to exactly one simplification run on one
// goroutine; two independent Mesh values are trivially usable from two
// goroutines without any locking in this package.
package meshgraph
