package meshio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/quadra-mesh/quadra/meshgraph"
)

// WriteMesh serializes mesh's alive vertices and faces to w in the text mesh
// format, renumbering handles to a dense 1-based range as it goes (callers
// are not required to have called mesh.Compact first). Mirrors
// original_source/mesh/mesh.py's export_obj.
func WriteMesh(w io.Writer, mesh *meshgraph.Mesh) error {
	bw := bufio.NewWriter(w)

	renumber := make(map[int]int, mesh.AliveVertexCount())
	next := 1
	for _, vid := range mesh.AliveVertexIDs() {
		v, err := mesh.Vertex(vid)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X(), v.Position.Y(), v.Position.Z()); err != nil {
			return err
		}
		renumber[vid] = next
		next++
	}

	for _, fid := range mesh.AliveFaceIDs() {
		f, err := mesh.Face(fid)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n",
			renumber[f.V[0]], renumber[f.V[1]], renumber[f.V[2]]); err != nil {
			return err
		}
	}

	return bw.Flush()
}
