package simplify

// Options configures Simplify's stopping point. Exactly one of WithTarget
// or WithRatio must be supplied; if both are given, the most recently
// applied one wins, the same last-write-wins behavior lvlath/dijkstra's
// functional options have.
type Options struct {
	targetVertices int
	hasTarget      bool
	ratio          float64
	hasRatio       bool
}

// Option is a functional option for Simplify, mirroring
// lvlath/dijkstra.Option: type Option func(*Options), With... constructors,
// DefaultOptions() to seed the zero value.
type Option func(*Options)

// DefaultOptions returns an Options with no target set; Simplify rejects
// this with ErrNoTarget unless a WithTarget/WithRatio option is also given.
func DefaultOptions() Options {
	return Options{}
}

// WithTarget sets an explicit surviving-vertex count to simplify down to.
// Panics on a negative count, the same fail-fast-in-the-constructor policy
// lvlath/dijkstra's WithMaxDistance and WithInfEdgeThreshold use.
func WithTarget(n int) Option {
	if n < 0 {
		panic(ErrNegativeTarget.Error())
	}

	return func(o *Options) {
		o.targetVertices = n
		o.hasTarget = true
		o.hasRatio = false
	}
}

// WithRatio sets the target as a fraction of the mesh's vertex count at the
// moment Simplify runs (e.g. 0.5 keeps half the vertices, rounded down).
// Panics if ratio is not in (0, 1].
func WithRatio(ratio float64) Option {
	if ratio <= 0 || ratio > 1 {
		panic(ErrBadRatio.Error())
	}

	return func(o *Options) {
		o.ratio = ratio
		o.hasRatio = true
		o.hasTarget = false
	}
}

// Result reports what one Simplify call actually did.
type Result struct {
	// VerticesRemaining is the alive-vertex count once the loop stopped.
	VerticesRemaining int
	// Contractions is the number of edge contractions performed.
	Contractions int
	// Drained is true when the heap emptied before VerticesRemaining
	// reached the requested target — not an error (spec §7 "empty
	// progress"), just a report that no further cost-positive contraction
	// was available.
	Drained bool
}
