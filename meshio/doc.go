// Package meshio reads and writes the plain-text triangle mesh format used
// throughout this module: one "v x y z" line per vertex and one "f i j k"
// line per face, 1-based vertex indices, with an optional "/..." suffix on
// each face index tolerated and ignored (the slot other formats use for
// texture/normal indices). Grounded on original_source/mesh/mesh.py's load
// loop and export_obj.
package meshio
