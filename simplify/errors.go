package simplify

import "errors"

// Sentinel errors for the simplify package, following the same
// errors.Is-checkable-sentinel convention as lvlath/dijkstra and
// lvlath/builder.
var (
	// ErrNilMesh indicates Simplify was called with a nil *meshgraph.Mesh.
	ErrNilMesh = errors.New("simplify: mesh is nil")

	// ErrNoTarget indicates neither WithTarget nor WithRatio was supplied.
	ErrNoTarget = errors.New("simplify: no target specified; use WithTarget or WithRatio")

	// ErrNegativeTarget indicates WithTarget was called with a negative count.
	ErrNegativeTarget = errors.New("simplify: target vertex count must be non-negative")

	// ErrBadRatio indicates WithRatio was called with a value outside (0, 1].
	ErrBadRatio = errors.New("simplify: ratio must be in (0, 1]")
)
