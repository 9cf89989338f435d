package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/quadra-mesh/quadra/geom"
	"github.com/quadra-mesh/quadra/meshgraph"
)

// ReadMesh parses the text mesh format from r into a fresh *meshgraph.Mesh.
// Vertices and faces are appended to the mesh in the order their "v"/"f"
// lines appear; AddTriangle handles edge creation and dedup, mirroring
// original_source/mesh/mesh.py's edge_lookup behavior.
func ReadMesh(r io.Reader) (*meshgraph.Mesh, error) {
	mesh := meshgraph.New()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if err := readVertex(mesh, fields[1:], lineNo); err != nil {
				return nil, err
			}
		case "f":
			if err := readFace(mesh, fields[1:], lineNo); err != nil {
				return nil, err
			}
		default:
			// spec §6: any other line prefix (comments, "vn", "vt", "g", ...)
			// is ignored on read, not rejected.
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: scanning input: %w", err)
	}

	return mesh, nil
}

func readVertex(mesh *meshgraph.Mesh, coords []string, lineNo int) error {
	if len(coords) != 3 {
		return fmt.Errorf("meshio: line %d: %w", lineNo, ErrBadVertexLine)
	}

	var p geom.Vec3
	for i, tok := range coords {
		val, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("meshio: line %d: %w", lineNo, ErrBadVertexLine)
		}
		p[i] = val
	}
	mesh.AddVertex(p)

	return nil
}

func readFace(mesh *meshgraph.Mesh, idxTokens []string, lineNo int) error {
	if len(idxTokens) != 3 {
		return fmt.Errorf("meshio: line %d: %w", lineNo, ErrBadFaceLine)
	}

	var v [3]int
	for i, tok := range idxTokens {
		// Tolerate an OBJ-style "idx/tex/normal" suffix; only the first
		// slash-separated field is a vertex index.
		idxStr := strings.SplitN(tok, "/", 2)[0]
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx <= 0 || idx > mesh.VertexCount() {
			return fmt.Errorf("meshio: line %d: %w", lineNo, ErrFaceIndexOutOfRange)
		}
		v[i] = idx - 1
	}

	if _, err := mesh.AddTriangle(v[0], v[1], v[2]); err != nil {
		return fmt.Errorf("meshio: line %d: %w", lineNo, err)
	}

	return nil
}
