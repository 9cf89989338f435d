package meshgraph

import "github.com/quadra-mesh/quadra/geom"

// AddVertex appends a new alive vertex at position and returns its handle.
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(position geom.Vec3) int {
	id := len(m.vertices)
	m.vertices = append(m.vertices, &Vertex{
		ID:       id,
		Position: position,
		Alive:    true,
	})

	return id
}

// Vertex returns the vertex at handle id. The returned pointer is owned by
// the Mesh; callers must not retain it across a Compact call.
func (m *Mesh) Vertex(id int) (*Vertex, error) {
	if id < 0 || id >= len(m.vertices) {
		return nil, ErrVertexOutOfRange
	}

	return m.vertices[id], nil
}

// VertexCount returns the total number of vertex slots, alive or retired.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// IsVertexAlive reports whether the vertex at handle id is alive. Returns
// false for an out-of-range handle rather than an error, matching
// IsEdgeAlive's contract so scheduler loops can check liveness without
// threading errors through a hot path.
func (m *Mesh) IsVertexAlive(id int) bool {
	if id < 0 || id >= len(m.vertices) {
		return false
	}

	return m.vertices[id].Alive
}

// AliveVertexCount returns the number of vertices whose Alive flag is set.
// Complexity: O(V).
func (m *Mesh) AliveVertexCount() int {
	n := 0
	for _, v := range m.vertices {
		if v.Alive {
			n++
		}
	}

	return n
}

// AliveVertexIDs returns the handles of every alive vertex, in handle order.
func (m *Mesh) AliveVertexIDs() []int {
	ids := make([]int, 0, len(m.vertices))
	for _, v := range m.vertices {
		if v.Alive {
			ids = append(ids, v.ID)
		}
	}

	return ids
}

// RetireVertex marks the vertex at id as not alive. It does not touch
// incident edges or faces; callers (the contraction transaction) are
// responsible for retiring those separately and in the right order.
func (m *Mesh) RetireVertex(id int) error {
	v, err := m.Vertex(id)
	if err != nil {
		return err
	}
	v.Alive = false

	return nil
}

// VertexEdges returns the handles of the alive edges incident to vertex id,
// filtering the vertex's full (alive-or-retired) incidence list.
func (m *Mesh) VertexEdges(id int) ([]int, error) {
	v, err := m.Vertex(id)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(v.EdgeIDs))
	for _, eid := range v.EdgeIDs {
		if e := m.edges[eid]; e.Alive {
			out = append(out, eid)
		}
	}

	return out, nil
}

// VertexFaces returns the handles of the alive faces incident to vertex id.
func (m *Mesh) VertexFaces(id int) ([]int, error) {
	v, err := m.Vertex(id)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, len(v.FaceIDs))
	for _, fid := range v.FaceIDs {
		if f := m.faces[fid]; f.Alive {
			out = append(out, fid)
		}
	}

	return out, nil
}
