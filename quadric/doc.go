// Package quadric implements the Garland–Heckbert quadric-error machinery
// (spec §4.3): building each face's plane quadric, summing incident plane
// quadrics into vertex quadrics, and computing an edge's optimal
// contraction point and cost.
//
// It depends on geom (the linear algebra) and meshgraph (the incidence
// graph it reads positions and quadrics from) but meshgraph does not
// depend back on it — the same leaf-to-root layering lvlath uses between
// matrix/ops and the graph algorithm packages that consume it.
package quadric
