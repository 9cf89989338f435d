package meshgraph

// Compact drops every retired vertex, edge and face, and densely renumbers
// the surviving vertices and faces from zero, preserving their relative
// order (spec §4.2). Face vertex triples and edge indices are rewritten to
// the new numbering. Call this once, after simplification is finished —
// handles are not stable across Compact.
func (m *Mesh) Compact() {
	newVertexID := make(map[int]int, len(m.vertices))
	aliveVertices := make([]*Vertex, 0, len(m.vertices))
	for _, v := range m.vertices {
		if !v.Alive {
			continue
		}
		newVertexID[v.ID] = len(aliveVertices)
		aliveVertices = append(aliveVertices, v)
	}

	newFaceID := make(map[int]int, len(m.faces))
	aliveFaces := make([]*Face, 0, len(m.faces))
	for _, f := range m.faces {
		if !f.Alive {
			continue
		}
		newFaceID[f.ID] = len(aliveFaces)
		aliveFaces = append(aliveFaces, f)
	}

	newEdgeID := make(map[int]int, len(m.edges))
	aliveEdges := make([]*Edge, 0, len(m.edges))
	for _, e := range m.edges {
		if !e.Alive {
			continue
		}
		newEdgeID[e.ID] = len(aliveEdges)
		aliveEdges = append(aliveEdges, e)
	}

	// Rewrite face vertex triples and incident-edge handles, and renumber
	// faces/vertices/edges in place.
	for i, f := range aliveFaces {
		for j, vid := range f.V {
			f.V[j] = newVertexID[vid]
		}
		f.EdgeIDs = remapIDs3(f.EdgeIDs, newEdgeID)
		f.ID = i
	}
	for i, v := range aliveVertices {
		v.EdgeIDs = remapAliveIDs(v.EdgeIDs, newEdgeID)
		v.FaceIDs = remapAliveIDs(v.FaceIDs, newFaceID)
		v.ID = i
	}
	for i, e := range aliveEdges {
		e.V = sortPair(newVertexID[e.V[0]], newVertexID[e.V[1]])
		e.FaceIDs = remapAliveIDs(e.FaceIDs, newFaceID)
		e.ID = i
	}

	m.vertices = aliveVertices
	m.faces = aliveFaces
	m.edges = aliveEdges
	m.edgeIndex = make(map[[2]int]int, len(aliveEdges))
	for i, e := range aliveEdges {
		m.edgeIndex[e.V] = i
	}
}

// remapAliveIDs drops ids with no entry in remap (retired entities, per
// spec §9 Open Question (a)) and rewrites the rest to their post-compact
// handles.
func remapAliveIDs(ids []int, remap map[int]int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if nid, ok := remap[id]; ok {
			out = append(out, nid)
		}
	}

	return out
}

// remapIDs3 is remapAliveIDs for a face's fixed 3-slot EdgeIDs array. A
// retired edge slot (should not occur for an alive face, but guarded
// defensively) is left at -1.
func remapIDs3(ids [3]int, remap map[int]int) [3]int {
	var out [3]int
	for i, id := range ids {
		if nid, ok := remap[id]; ok {
			out[i] = nid
		} else {
			out[i] = -1
		}
	}

	return out
}
