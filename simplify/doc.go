// Package simplify implements the contraction scheduler (spec §4.4): a
// lazily-invalidated min-heap of candidate edge contractions, and the
// per-contraction transaction that rewires mesh incidence around the new
// vertex.
//
// The heap pattern — push duplicate entries instead of supporting
// decrease-key, and discard stale ones (dead edge, dead endpoint) at pop
// time — is the same one lvlath/dijkstra and lvlath/prim_kruskal use over
// container/heap for their own priority queues.
package simplify
