package quadric

import (
	"github.com/quadra-mesh/quadra/geom"
	"github.com/quadra-mesh/quadra/meshgraph"
)

// PlaneQuadric returns face f's plane quadric π·πᵀ, where π is built from
// f's unit normal and its first vertex (any point of the face's plane, the
// centroid included, gives the same offset d). A degenerate face — zero area,
// or collinear vertices, whose normal has no well-defined direction —
// contributes nothing: it returns the zero Quadric rather than propagating
// the NaNs a naive normalize-of-zero would produce. This resolves spec §9
// Open Question (b) in favor of skipping degenerate faces from
// accumulation entirely.
func PlaneQuadric(mesh *meshgraph.Mesh, f *meshgraph.Face) geom.Quadric {
	var positions [3]geom.Vec3
	for i, vid := range f.V {
		v, err := mesh.Vertex(vid)
		if err != nil {
			return geom.Quadric{}
		}
		positions[i] = v.Position
	}

	n, err := geom.TriangleNormal(positions[0], positions[1], positions[2])
	if err != nil {
		return geom.Quadric{}
	}

	return geom.PlaneQuadric(n, positions[0])
}

// InitVertexQuadrics computes every alive vertex's quadric as the sum of
// its incident alive faces' plane quadrics (spec §4.3, invariant 6). Call
// this exactly once, right after the mesh is fully loaded and before the
// contraction scheduler starts; it is not re-derived for vertices born
// from a contraction (those inherit Q(v1)+Q(v2) directly — see
// ContractedQuadric).
func InitVertexQuadrics(mesh *meshgraph.Mesh) error {
	for _, vid := range mesh.AliveVertexIDs() {
		v, err := mesh.Vertex(vid)
		if err != nil {
			return err
		}

		var q geom.Quadric
		faceIDs, err := mesh.VertexFaces(vid)
		if err != nil {
			return err
		}
		for _, fid := range faceIDs {
			f, err := mesh.Face(fid)
			if err != nil {
				return err
			}
			q = q.Add(PlaneQuadric(mesh, f))
		}
		v.Quadric = q
	}

	return nil
}

// ContractedQuadric returns the quadric a vertex born from contracting v1
// and v2 should inherit: the plain sum of its parents' quadrics, not a
// quadric rebuilt from the new vertex's face set (spec §4.3, §9 — rebuilding
// from faces would bias cost downward over many contractions).
func ContractedQuadric(v1, v2 *meshgraph.Vertex) geom.Quadric {
	return v1.Quadric.Add(v2.Quadric)
}

// EdgeCandidate computes the optimal contraction point and non-negative
// cost for the edge between v1 and v2 (spec §4.3). It first tries to solve
// the constrained system Q'·x = (0,0,0,1)ᵀ, where Q' is Q with its fourth
// row forced to (0,0,0,1); if that system is singular, it falls back to the
// midpoint of v1 and v2.
func EdgeCandidate(v1, v2 *meshgraph.Vertex) (point geom.Vec3, cost float64) {
	q := v1.Quadric.Add(v2.Quadric)

	qPrime := q
	qPrime[3] = [4]float64{0, 0, 0, 1}

	if x, err := geom.Solve4(qPrime, geom.Vec4{0, 0, 0, 1}); err == nil {
		p := geom.Vec3{x[0], x[1], x[2]}

		return p, q.Apply(x)
	}

	mid := geom.Midpoint(v1.Position, v2.Position)

	return mid, q.Cost(mid)
}
