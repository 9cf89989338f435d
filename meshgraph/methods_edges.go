package meshgraph

// LookupEdge returns the handle currently registered in the edge index for
// the unordered pair (a, b), and whether an entry exists at all. The
// returned edge may or may not be alive; callers that care must also check
// IsEdgeAlive.
func (m *Mesh) LookupEdge(a, b int) (int, bool) {
	id, ok := m.edgeIndex[sortPair(a, b)]

	return id, ok
}

// IsEdgeAlive reports whether the edge at id exists and is alive. Returns
// false (not an error) for an out-of-range id, since callers use this as a
// liveness probe, not a lookup.
func (m *Mesh) IsEdgeAlive(id int) bool {
	if id < 0 || id >= len(m.edges) {
		return false
	}

	return m.edges[id].Alive
}

// Edge returns the edge at handle id.
func (m *Mesh) Edge(id int) (*Edge, error) {
	if id < 0 || id >= len(m.edges) {
		return nil, ErrEdgeOutOfRange
	}

	return m.edges[id], nil
}

// EdgeCount returns the total number of edge slots, alive or retired.
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// AliveEdgeIDs returns the handles of every alive edge, in handle order.
func (m *Mesh) AliveEdgeIDs() []int {
	ids := make([]int, 0, len(m.edges))
	for _, e := range m.edges {
		if e.Alive {
			ids = append(ids, e.ID)
		}
	}

	return ids
}

// EdgeFaces returns the handles of the alive faces incident to edge id.
func (m *Mesh) EdgeFaces(id int) ([]int, error) {
	e, err := m.Edge(id)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(e.FaceIDs))
	for _, fid := range e.FaceIDs {
		if f := m.faces[fid]; f.Alive {
			out = append(out, fid)
		}
	}

	return out, nil
}

// NewEdge creates a fresh alive edge for the unordered pair (a, b),
// registers it in the edge index (overwriting whatever was previously
// registered for that key, which is always either absent or itself
// retired — callers are responsible for that precondition) and threads it
// into both endpoint vertices' incidence lists. It does not attach any
// faces; see AttachFace.
func (m *Mesh) NewEdge(a, b int) (*Edge, error) {
	if a == b {
		return nil, ErrSelfLoop
	}

	id := len(m.edges)
	e := &Edge{ID: id, V: sortPair(a, b), Alive: true}
	m.edges = append(m.edges, e)
	m.edgeIndex[e.V] = id

	va, err := m.Vertex(a)
	if err != nil {
		return nil, err
	}
	vb, err := m.Vertex(b)
	if err != nil {
		return nil, err
	}
	va.EdgeIDs = append(va.EdgeIDs, id)
	vb.EdgeIDs = append(vb.EdgeIDs, id)

	return e, nil
}

// RetireEdge marks the edge at id as not alive. It does not remove the
// edge's entry from the edge index: a subsequent NewEdge for the same pair
// will overwrite that entry, and LookupEdge callers are expected to check
// IsEdgeAlive before trusting a stale hit (see package simplify's rewire
// step, and spec §9 Open Question (a)).
func (m *Mesh) RetireEdge(id int) error {
	e, err := m.Edge(id)
	if err != nil {
		return err
	}
	e.Alive = false

	return nil
}

// AttachFace registers face fid in edge eid's FaceIDs. The face's own edge
// slot is not touched here; see AddTriangle and the contraction rewire in
// package simplify for the face side. A no-op if fid is already in eid's face list, so a
// contraction that migrates faces onto a surviving duplicate edge (spec §9
// Open Question (c)) cannot push it past two incident faces (invariant 5).
func (m *Mesh) AttachFace(eid, fid int) error {
	e, err := m.Edge(eid)
	if err != nil {
		return err
	}
	for _, existing := range e.FaceIDs {
		if existing == fid {
			return nil
		}
	}
	e.FaceIDs = append(e.FaceIDs, fid)

	return nil
}
