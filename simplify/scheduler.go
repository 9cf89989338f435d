package simplify

import (
	"container/heap"

	"github.com/quadra-mesh/quadra/meshgraph"
	"github.com/quadra-mesh/quadra/quadric"
)

// Simplify runs the contraction scheduler (spec §4.4) on mesh until either
// the alive-vertex count reaches the requested target or the heap drains,
// whichever comes first (spec §7: draining early is "empty progress", not
// an error). It does not call mesh.Compact; callers do that once they are
// done simplifying (spec §4.4 "Finalization").
func Simplify(mesh *meshgraph.Mesh, opts ...Option) (Result, error) {
	if mesh == nil {
		return Result{}, ErrNilMesh
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	aliveCount := mesh.AliveVertexCount()
	target, err := resolveTarget(cfg, aliveCount)
	if err != nil {
		return Result{}, err
	}

	// spec §4.3/§4.4: initial quadrics are computed once, right after load
	// and before the scheduler computes any edge cost.
	if err := quadric.InitVertexQuadrics(mesh); err != nil {
		return Result{}, err
	}

	h := &edgeHeap{}
	heap.Init(h)
	for _, eid := range mesh.AliveEdgeIDs() {
		if err := pushEdgeCost(mesh, h, eid); err != nil {
			return Result{}, err
		}
	}

	contractions := 0
	for aliveCount > target && h.Len() > 0 {
		entry := heap.Pop(h).(candidate)
		if !mesh.IsEdgeAlive(entry.edgeID) {
			continue // stale: edge already retired since this entry was pushed
		}
		e, err := mesh.Edge(entry.edgeID)
		if err != nil {
			return Result{}, err
		}
		if !mesh.IsVertexAlive(e.V[0]) || !mesh.IsVertexAlive(e.V[1]) {
			continue // stale: an endpoint was retired by an earlier contraction
		}

		if err := contract(mesh, h, e); err != nil {
			return Result{}, err
		}
		aliveCount--
		contractions++
	}

	return Result{
		VerticesRemaining: aliveCount,
		Contractions:      contractions,
		Drained:           aliveCount > target,
	}, nil
}

// resolveTarget turns Options into a concrete target vertex count, given
// the mesh's current alive-vertex count.
func resolveTarget(cfg Options, currentAlive int) (int, error) {
	switch {
	case cfg.hasTarget:
		return cfg.targetVertices, nil
	case cfg.hasRatio:
		return int(float64(currentAlive) * cfg.ratio), nil
	default:
		return 0, ErrNoTarget
	}
}

// pushEdgeCost computes edge eid's optimal contraction point and cost
// (package quadric), caches them on the edge, and pushes a fresh heap
// candidate for it.
func pushEdgeCost(mesh *meshgraph.Mesh, h *edgeHeap, eid int) error {
	e, err := mesh.Edge(eid)
	if err != nil {
		return err
	}
	v1, err := mesh.Vertex(e.V[0])
	if err != nil {
		return err
	}
	v2, err := mesh.Vertex(e.V[1])
	if err != nil {
		return err
	}

	point, cost := quadric.EdgeCandidate(v1, v2)
	e.OptPoint = point
	e.Cost = cost
	e.HasCandidate = true

	tie := e.V[0]
	if e.V[1] < tie {
		tie = e.V[1]
	}
	heap.Push(h, candidate{cost: cost, edgeID: eid, tieKey: tie})

	return nil
}

// contract performs the contraction transaction of spec §4.4 for edge e,
// pushing any freshly-created edges' candidates onto h.
func contract(mesh *meshgraph.Mesh, h *edgeHeap, e *meshgraph.Edge) error {
	v1id, v2id := e.V[0], e.V[1]
	v1, err := mesh.Vertex(v1id)
	if err != nil {
		return err
	}
	v2, err := mesh.Vertex(v2id)
	if err != nil {
		return err
	}

	// Step 1: birth v* at e's cached optimal point, with Q(v1)+Q(v2).
	newQuadric := quadric.ContractedQuadric(v1, v2)
	newID := mesh.AddVertex(e.OptPoint)
	newVertex, err := mesh.Vertex(newID)
	if err != nil {
		return err
	}
	newVertex.Quadric = newQuadric

	// Step 2: retire v1, v2 and e.
	if err := mesh.RetireVertex(v1id); err != nil {
		return err
	}
	if err := mesh.RetireVertex(v2id); err != nil {
		return err
	}
	if err := mesh.RetireEdge(e.ID); err != nil {
		return err
	}

	// Step 3: S = faces incident to both v1 and v2; retire them.
	v1Faces, err := mesh.VertexFaces(v1id)
	if err != nil {
		return err
	}
	v2Faces, err := mesh.VertexFaces(v2id)
	if err != nil {
		return err
	}
	collapsing := intersectInts(v1Faces, v2Faces)
	for _, fid := range collapsing {
		if err := mesh.RetireFace(fid); err != nil {
			return err
		}
	}

	// Step 4: A = (faces incident to v1 or v2) - S, still alive. Substitute
	// v* for whichever of v1/v2 the face references, recompute geometry,
	// and register the face under v*.
	collapsingSet := toIntSet(collapsing)
	for _, fid := range unionUniqueInts(v1Faces, v2Faces) {
		if collapsingSet[fid] {
			continue
		}
		f, err := mesh.Face(fid)
		if err != nil {
			return err
		}
		if !f.Alive {
			continue
		}
		for i, vid := range f.V {
			if vid == v1id || vid == v2id {
				f.V[i] = newID
			}
		}
		if err := mesh.RecomputeFaceGeometry(fid); err != nil {
			return err
		}
		newVertex.FaceIDs = append(newVertex.FaceIDs, fid)
	}

	// Step 5: E = edges incident to v1 or v2, alive, other than e.
	v1Edges, err := mesh.VertexEdges(v1id)
	if err != nil {
		return err
	}
	v2Edges, err := mesh.VertexEdges(v2id)
	if err != nil {
		return err
	}
	for _, eid := range unionUniqueInts(v1Edges, v2Edges) {
		if eid == e.ID {
			continue
		}
		if err := rewireEdge(mesh, h, eid, v1id, v2id, newID, newVertex); err != nil {
			return err
		}
	}

	return nil
}

// rewireEdge handles one member of step 5's edge set E for the edge
// currently at handle eid, substituting newID for whichever of v1id/v2id
// it references.
func rewireEdge(mesh *meshgraph.Mesh, h *edgeHeap, eid, v1id, v2id, newID int, newVertex *meshgraph.Vertex) error {
	old, err := mesh.Edge(eid)
	if err != nil {
		return err
	}
	if !old.Alive {
		return nil
	}

	a, b := old.V[0], old.V[1]
	if a == v1id || a == v2id {
		a = newID
	}
	if b == v1id || b == v2id {
		b = newID
	}

	if a == b {
		// Self-loop after contraction: unreachable under the invariants
		// (would require a second edge between v1 and v2), kept as a
		// defensive guard matching spec §4.4 step 5's explicit case.
		return mesh.RetireEdge(eid)
	}

	stillAliveFaces, err := mesh.EdgeFaces(eid)
	if err != nil {
		return err
	}

	if existingID, ok := mesh.LookupEdge(a, b); ok && mesh.IsEdgeAlive(existingID) {
		// spec §9 Open Question (c): retire the would-be duplicate rather
		// than silently dropping its faces, and migrate its still-alive
		// faces onto the edge that survives.
		for _, fid := range stillAliveFaces {
			if err := mesh.AttachFace(existingID, fid); err != nil {
				return err
			}
			if err := repointFaceEdge(mesh, fid, eid, existingID); err != nil {
				return err
			}
		}

		return mesh.RetireEdge(eid)
	}

	fresh, err := mesh.NewEdge(a, b)
	if err != nil {
		return err
	}
	// NewEdge already appended fresh.ID to both a's and b's EdgeIDs
	// (one of which is newVertex) — do not register it again here.
	for _, fid := range stillAliveFaces {
		if err := mesh.AttachFace(fresh.ID, fid); err != nil {
			return err
		}
		if err := repointFaceEdge(mesh, fid, eid, fresh.ID); err != nil {
			return err
		}
	}

	if err := mesh.RetireEdge(eid); err != nil {
		return err
	}

	return pushEdgeCost(mesh, h, fresh.ID)
}

// repointFaceEdge rewrites face fid's cached edge-handle slot from oldID to
// newID, keeping invariant 2 (a face's edges are alive and reference its
// vertices) intact once the old edge handle is retired.
func repointFaceEdge(mesh *meshgraph.Mesh, fid, oldID, newID int) error {
	f, err := mesh.Face(fid)
	if err != nil {
		return err
	}
	for i, id := range f.EdgeIDs {
		if id == oldID {
			f.EdgeIDs[i] = newID
		}
	}

	return nil
}

func intersectInts(a, b []int) []int {
	set := toIntSet(a)
	out := make([]int, 0, len(a))
	seen := make(map[int]bool, len(a))
	for _, v := range b {
		if set[v] && !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}

	return out
}

func unionUniqueInts(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, v := range append(append([]int{}, a...), b...) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}

func toIntSet(a []int) map[int]bool {
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}

	return set
}
