package meshio

import "errors"

// Sentinel errors for the meshio package, following the same
// errors.Is-checkable-sentinel convention as lvlath/builder.
var (
	// ErrBadVertexLine indicates a "v" line without exactly 3 coordinates.
	ErrBadVertexLine = errors.New("meshio: vertex line must have 3 coordinates")

	// ErrBadFaceLine indicates an "f" line without exactly 3 indices; only
	// triangle meshes are supported.
	ErrBadFaceLine = errors.New("meshio: only triangle faces are supported")

	// ErrFaceIndexOutOfRange indicates a face line references a vertex
	// index that has not been declared yet (or is <= 0).
	ErrFaceIndexOutOfRange = errors.New("meshio: face references an undeclared vertex")
)
