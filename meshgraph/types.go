package meshgraph

import "github.com/quadra-mesh/quadra/geom"

// Vertex is a point in the mesh together with its accumulated quadric and
// its incidence lists. Handle stability: a Vertex's ID never changes except
// during Compact.
type Vertex struct {
	ID       int
	Position geom.Vec3
	Quadric  geom.Quadric
	EdgeIDs  []int // incident alive-or-retired edge handles; filter by Alive
	FaceIDs  []int // incident alive-or-retired face handles; filter by Alive
	Alive    bool
}

// Edge is an unordered pair of distinct vertex handles plus the cached
// optimal-contraction data computed by package quadric. V holds the pair in
// sorted order so two Edge values for the same endpoints always compare
// equal; this is also the dedup key Mesh.edgeIndex is built from.
type Edge struct {
	ID           int
	V            [2]int
	FaceIDs      []int // 0, 1 or 2 incident alive-or-retired faces
	OptPoint     geom.Vec3
	Cost         float64
	HasCandidate bool // false until quadric.EdgeCandidate has computed OptPoint/Cost
	Alive        bool
}

// Face is an oriented triangle: its three vertex handles in winding order,
// plus the cached outward normal and centroid derived from that order.
type Face struct {
	ID       int
	V        [3]int // winding order; determines the outward normal
	Normal   geom.Vec3
	Centroid geom.Vec3
	EdgeIDs  [3]int
	Alive    bool
}

// Mesh is the mutable incidence graph of vertices, edges and faces. Zero
// value is not usable; construct with New.
type Mesh struct {
	vertices []*Vertex
	edges    []*Edge
	faces    []*Face

	// edgeIndex maps a sorted vertex-handle pair to the edge handle
	// currently registered for it, mirroring original_source/mesh/mesh.py's
	// edge_lookup dict keyed by frozenset((v1.index, v2.index)).
	edgeIndex map[[2]int]int
}

// New returns an empty Mesh ready to accept vertices and triangles.
func New() *Mesh {
	return &Mesh{edgeIndex: make(map[[2]int]int)}
}

func sortPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}
