package meshgraph

import "errors"

// Sentinel errors for meshgraph operations. As in lvlath/core, callers
// branch on these with errors.Is; none of them are ever wrapped with
// formatted context at the definition site.
var (
	// ErrVertexOutOfRange indicates a vertex handle outside [0, len(vertices)).
	ErrVertexOutOfRange = errors.New("meshgraph: vertex handle out of range")

	// ErrVertexNotAlive indicates a vertex handle that refers to a retired vertex.
	ErrVertexNotAlive = errors.New("meshgraph: vertex is not alive")

	// ErrEdgeOutOfRange indicates an edge handle outside [0, len(edges)).
	ErrEdgeOutOfRange = errors.New("meshgraph: edge handle out of range")

	// ErrFaceOutOfRange indicates a face handle outside [0, len(faces)).
	ErrFaceOutOfRange = errors.New("meshgraph: face handle out of range")

	// ErrSelfLoop indicates an attempt to create an edge whose two endpoints
	// are the same vertex handle.
	ErrSelfLoop = errors.New("meshgraph: edge endpoints must be distinct")

	// ErrDegenerateTriangle indicates AddTriangle was given fewer than three
	// distinct vertex handles.
	ErrDegenerateTriangle = errors.New("meshgraph: triangle requires three distinct vertices")
)
