package meshgraph

import "github.com/quadra-mesh/quadra/geom"

// Face returns the face at handle id.
func (m *Mesh) Face(id int) (*Face, error) {
	if id < 0 || id >= len(m.faces) {
		return nil, ErrFaceOutOfRange
	}

	return m.faces[id], nil
}

// FaceCount returns the total number of face slots, alive or retired.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// AliveFaceIDs returns the handles of every alive face, in handle order.
func (m *Mesh) AliveFaceIDs() []int {
	ids := make([]int, 0, len(m.faces))
	for _, f := range m.faces {
		if f.Alive {
			ids = append(ids, f.ID)
		}
	}

	return ids
}

// RetireFace marks the face at id as not alive.
func (m *Mesh) RetireFace(id int) error {
	f, err := m.Face(id)
	if err != nil {
		return err
	}
	f.Alive = false

	return nil
}

// RecomputeFaceGeometry recomputes face fid's cached normal and centroid
// from its current vertex triple. AddTriangle calls this once at creation;
// package simplify calls it again after substituting a contracted vertex
// into a surviving face's vertex triple (spec §4.4 step 4).
//
// A degenerate (zero-area / collinear) triangle leaves Normal at its zero
// value rather than propagating NaNs — spec §9 Open Question (b), resolved
// the same way package quadric resolves it for plane-quadric accumulation.
func (m *Mesh) RecomputeFaceGeometry(fid int) error {
	f, err := m.Face(fid)
	if err != nil {
		return err
	}

	var positions [3]geom.Vec3
	for i, vid := range f.V {
		v, err := m.Vertex(vid)
		if err != nil {
			return err
		}
		positions[i] = v.Position
	}

	if n, err := geom.TriangleNormal(positions[0], positions[1], positions[2]); err == nil {
		f.Normal = n
	} else {
		f.Normal = geom.Vec3{}
	}
	f.Centroid = geom.Centroid(positions[0], positions[1], positions[2])

	return nil
}

// AddTriangle creates a face referencing v0, v1 and v2 (in that winding
// order) and registers its three edges, creating any that do not already
// exist under their unordered endpoint pair and reusing those that do
// (spec §4.2). Returns the new face's handle.
func (m *Mesh) AddTriangle(v0, v1, v2 int) (int, error) {
	if v0 == v1 || v1 == v2 || v0 == v2 {
		return 0, ErrDegenerateTriangle
	}
	for _, vid := range [3]int{v0, v1, v2} {
		if _, err := m.Vertex(vid); err != nil {
			return 0, err
		}
	}

	fid := len(m.faces)
	f := &Face{ID: fid, V: [3]int{v0, v1, v2}, Alive: true}
	m.faces = append(m.faces, f)

	for _, vid := range f.V {
		v, _ := m.Vertex(vid)
		v.FaceIDs = append(v.FaceIDs, fid)
	}

	sides := [3][2]int{{v0, v1}, {v1, v2}, {v2, v0}}
	for i, side := range sides {
		eid, ok := m.LookupEdge(side[0], side[1])
		if !ok || !m.IsEdgeAlive(eid) {
			e, err := m.NewEdge(side[0], side[1])
			if err != nil {
				return 0, err
			}
			eid = e.ID
		}
		if err := m.AttachFace(eid, fid); err != nil {
			return 0, err
		}
		f.EdgeIDs[i] = eid
	}

	if err := m.RecomputeFaceGeometry(fid); err != nil {
		return 0, err
	}

	return fid, nil
}
